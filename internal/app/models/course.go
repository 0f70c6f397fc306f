package models

import (
	"fmt"
	"time"

	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// Course represents a course offered to a program.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	Credits     int       `json:"credits" db:"credits"`
	Semester    int       `json:"semester" db:"semester"`
	Program     string    `json:"program" db:"program"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks the invariants also enforced by the courses table.
func (c *Course) Validate() error {
	if c.Credits < MinCredits || c.Credits > MaxCredits {
		return apperrors.NewRangeError("credits", fmt.Sprintf("credits must be between %d and %d", MinCredits, MaxCredits))
	}
	if c.Semester < MinSemester || c.Semester > MaxSemester {
		return apperrors.NewRangeError("semester", fmt.Sprintf("semester must be between %d and %d", MinSemester, MaxSemester))
	}
	return nil
}
