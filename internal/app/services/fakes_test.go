package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/yigit/akademik/internal/app/identifier"
	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/app/repositories"
	"github.com/yigit/akademik/internal/pkg/apperrors"
)

// memStore is an in-memory Transactor. InTx serializes units of work but
// does not roll back.
type memStore struct {
	mu          sync.Mutex
	txMu        sync.Mutex
	students    map[string]*models.Student
	courses     map[int64]*models.Course
	enrollments map[int64]*models.Enrollment
	nextCourse  int64
	nextEnroll  int64

	// beforeStudentCreate lets tests simulate a concurrent writer.
	beforeStudentCreate func(s *models.Student)
}

func newMemStore() *memStore {
	return &memStore{
		students:    make(map[string]*models.Student),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[int64]*models.Enrollment),
	}
}

func (m *memStore) Students() repositories.StudentRepository       { return memStudents{m} }
func (m *memStore) Courses() repositories.CourseRepository         { return memCourses{m} }
func (m *memStore) Enrollments() repositories.EnrollmentRepository { return memEnrollments{m} }
func (m *memStore) Ping(context.Context) error                     { return nil }

func (m *memStore) InTx(ctx context.Context, fn func(ctx context.Context, store repositories.Store) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m)
}

func notFound(what string) error {
	return apperrors.NewResourceNotFoundError(what + ": not found")
}

type memStudents struct{ m *memStore }

func (r memStudents) Create(_ context.Context, s *models.Student) error {
	if r.m.beforeStudentCreate != nil {
		r.m.beforeStudentCreate(s)
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.students[s.ID]; ok {
		return apperrors.NewCustomError(apperrors.ErrIdentifierConflict, "taken").WithField("id")
	}
	for _, other := range r.m.students {
		if strings.EqualFold(other.Email, s.Email) {
			return apperrors.NewDuplicateError("email", "email taken")
		}
	}
	now := time.Now()
	s.CreatedAt, s.UpdatedAt = now, now
	cp := *s
	r.m.students[s.ID] = &cp
	return nil
}

func (r memStudents) GetByID(_ context.Context, id string) (*models.Student, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.students[id]
	if !ok {
		return nil, notFound("get student")
	}
	cp := *s
	return &cp, nil
}

func (r memStudents) List(_ context.Context, f dto.StudentFilter, skip, limit int) ([]*models.Student, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Student
	for _, s := range r.m.students {
		if f.Program != "" && !strings.Contains(strings.ToLower(s.Program), strings.ToLower(f.Program)) {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, skip, limit), int64(len(out)), nil
}

func (r memStudents) Update(_ context.Context, s *models.Student) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.students[s.ID]; !ok {
		return notFound("update student")
	}
	s.UpdatedAt = time.Now()
	cp := *s
	r.m.students[s.ID] = &cp
	return nil
}

func (r memStudents) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.students[id]; !ok {
		return notFound("delete student")
	}
	delete(r.m.students, id)
	for eid, e := range r.m.enrollments {
		if e.StudentID == id {
			delete(r.m.enrollments, eid)
		}
	}
	return nil
}

func (r memStudents) Exists(_ context.Context, id string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	_, ok := r.m.students[id]
	return ok, nil
}

func (r memStudents) EmailTaken(_ context.Context, email, exceptID string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.students {
		if s.ID != exceptID && strings.EqualFold(s.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r memStudents) MaxSequence(_ context.Context, year int, programCode string) (int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	prefix := identifier.ScopePrefix(year, programCode)
	maxSeq := 0
	for id := range r.m.students {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			return 0, fmt.Errorf("bad id %s", id)
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

type memCourses struct{ m *memStore }

func (r memCourses) Create(_ context.Context, c *models.Course) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, other := range r.m.courses {
		if other.Code == c.Code {
			return apperrors.NewDuplicateError("code", "code taken")
		}
	}
	r.m.nextCourse++
	c.ID = r.m.nextCourse
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	cp := *c
	r.m.courses[c.ID] = &cp
	return nil
}

func (r memCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.courses[id]
	if !ok {
		return nil, notFound("get course")
	}
	cp := *c
	return &cp, nil
}

func (r memCourses) List(_ context.Context, f dto.CourseFilter, skip, limit int) ([]*models.Course, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Course
	for _, c := range r.m.courses {
		if f.Program != "" && !strings.Contains(strings.ToLower(c.Program), strings.ToLower(f.Program)) {
			continue
		}
		if f.Semester != nil && c.Semester != *f.Semester {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, skip, limit), int64(len(out)), nil
}

func (r memCourses) Update(_ context.Context, c *models.Course) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.courses[c.ID]; !ok {
		return notFound("update course")
	}
	c.UpdatedAt = time.Now()
	cp := *c
	r.m.courses[c.ID] = &cp
	return nil
}

func (r memCourses) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.courses[id]; !ok {
		return notFound("delete course")
	}
	delete(r.m.courses, id)
	for eid, e := range r.m.enrollments {
		if e.CourseID == id {
			delete(r.m.enrollments, eid)
		}
	}
	return nil
}

func (r memCourses) Exists(_ context.Context, id int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	_, ok := r.m.courses[id]
	return ok, nil
}

func (r memCourses) CodeTaken(_ context.Context, code string, exceptID int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, c := range r.m.courses {
		if c.ID != exceptID && c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type memEnrollments struct{ m *memStore }

func (r memEnrollments) Create(_ context.Context, e *models.Enrollment) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextEnroll++
	e.ID = r.m.nextEnroll
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	cp := *e
	r.m.enrollments[e.ID] = &cp
	return nil
}

func (r memEnrollments) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.enrollments[id]
	if !ok {
		return nil, notFound("get enrollment")
	}
	cp := *e
	return &cp, nil
}

func (r memEnrollments) List(_ context.Context, f dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Enrollment
	for _, e := range r.m.enrollments {
		if f.StudentID != "" && e.StudentID != f.StudentID {
			continue
		}
		if f.AcademicYear != "" && e.AcademicYear != f.AcademicYear {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, skip, limit), int64(len(out)), nil
}

func (r memEnrollments) Update(_ context.Context, e *models.Enrollment) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.enrollments[e.ID]; !ok {
		return notFound("update enrollment")
	}
	e.UpdatedAt = time.Now()
	cp := *e
	r.m.enrollments[e.ID] = &cp
	return nil
}

func (r memEnrollments) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.enrollments[id]; !ok {
		return notFound("delete enrollment")
	}
	delete(r.m.enrollments, id)
	return nil
}

func (r memEnrollments) Exists(_ context.Context, studentID string, courseID int64, academicYear string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, e := range r.m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID && e.AcademicYear == academicYear {
			return true, nil
		}
	}
	return false, nil
}

func (r memEnrollments) Transcript(_ context.Context, studentID string) ([]*models.Enrollment, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Enrollment
	for _, e := range r.m.enrollments {
		if e.StudentID != studentID {
			continue
		}
		cp := *e
		if c, ok := r.m.courses[e.CourseID]; ok {
			course := *c
			cp.Course = &course
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AcademicYear != out[j].AcademicYear {
			return out[i].AcademicYear > out[j].AcademicYear
		}
		if out[i].Semester != out[j].Semester {
			return out[i].Semester < out[j].Semester
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func window[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
