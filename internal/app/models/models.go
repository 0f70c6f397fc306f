package models

import (
	"fmt"
	"strings"
)

// Bounds shared by model validation and the SQL check constraints.
const (
	MinEnrollmentYear = 2000
	MaxEnrollmentYear = 2100
	MinCredits        = 1
	MaxCredits        = 6
	MinSemester       = 1
	MaxSemester       = 8
	MinGrade          = 0.0
	MaxGrade          = 100.0
)

// StudentStatus is the administrative status of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
	StudentWithdrawn StudentStatus = "withdrawn"
)

// StudentStatuses lists every valid StudentStatus.
var StudentStatuses = []StudentStatus{StudentActive, StudentInactive, StudentGraduated, StudentWithdrawn}

// Valid reports whether s is a known student status.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentGraduated, StudentWithdrawn:
		return true
	}
	return false
}

// ParseStudentStatus parses a case-insensitive student status.
func ParseStudentStatus(s string) (StudentStatus, error) {
	status := StudentStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("status must be one of %s", joinValues(StudentStatuses))
	}
	return status, nil
}

// Gender of a student.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders lists every valid Gender.
var Genders = []Gender{GenderMale, GenderFemale}

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender parses a case-insensitive gender.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("gender must be one of %s", joinValues(Genders))
	}
	return g, nil
}

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentRegistered EnrollmentStatus = "registered"
	EnrollmentInProgress EnrollmentStatus = "in-progress"
	EnrollmentCompleted  EnrollmentStatus = "completed"
	EnrollmentCancelled  EnrollmentStatus = "cancelled"
)

// EnrollmentStatuses lists every valid EnrollmentStatus.
var EnrollmentStatuses = []EnrollmentStatus{EnrollmentRegistered, EnrollmentInProgress, EnrollmentCompleted, EnrollmentCancelled}

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentRegistered, EnrollmentInProgress, EnrollmentCompleted, EnrollmentCancelled:
		return true
	}
	return false
}

// ParseEnrollmentStatus parses a case-insensitive enrollment status.
func ParseEnrollmentStatus(s string) (EnrollmentStatus, error) {
	status := EnrollmentStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("status must be one of %s", joinValues(EnrollmentStatuses))
	}
	return status, nil
}

// Terminal reports whether no further transition is possible from s.
func (s EnrollmentStatus) Terminal() bool {
	return s == EnrollmentCompleted || s == EnrollmentCancelled
}

// CanTransitionTo reports whether an administrator may move an enrollment
// from s to next. Staying in the same state is always allowed.
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case EnrollmentRegistered:
		return next == EnrollmentInProgress || next == EnrollmentCancelled
	case EnrollmentInProgress:
		return next == EnrollmentCompleted || next == EnrollmentCancelled
	default:
		return false
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
