package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/db"
	"github.com/yigit/akademik/internal/pkg/logger"
)

var enrollmentColumns = []string{
	"id", "student_id", "course_id", "grade", "semester", "academic_year", "status", "created_at", "updated_at",
}

// PgEnrollmentRepository handles database operations for enrollments
type PgEnrollmentRepository struct {
	db db.Querier
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(q db.Querier) *PgEnrollmentRepository {
	return &PgEnrollmentRepository{db: q}
}

func enrollmentDest(e *models.Enrollment) []interface{} {
	return []interface{}{
		&e.ID,
		&e.StudentID,
		&e.CourseID,
		&e.Grade,
		&e.Semester,
		&e.AcademicYear,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := row.Scan(enrollmentDest(&e)...); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts an enrollment and fills its generated fields
func (r *PgEnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	sql, args, err := psql.Insert("enrollments").
		Columns("student_id", "course_id", "grade", "semester", "academic_year", "status").
		Values(e.StudentID, e.CourseID, e.Grade, e.Semester, e.AcademicYear, e.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return translateError(err, "create enrollment")
	}
	return nil
}

// GetByID retrieves an enrollment by ID
func (r *PgEnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := psql.Select(enrollmentColumns...).From("enrollments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "get enrollment")
	}
	return e, nil
}

func applyEnrollmentFilter(b squirrel.SelectBuilder, f dto.EnrollmentFilter) squirrel.SelectBuilder {
	if f.StudentID != "" {
		b = b.Where(squirrel.Eq{"student_id": f.StudentID})
	}
	if f.AcademicYear != "" {
		b = b.Where(squirrel.Eq{"academic_year": f.AcademicYear})
	}
	return b
}

// List retrieves a filtered page of enrollments ordered by ID, with the total match count
func (r *PgEnrollmentRepository) List(ctx context.Context, f dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, int64, error) {
	total, err := count(ctx, r.db, applyEnrollmentFilter(psql.Select("count(*)").From("enrollments"), f), "count enrollments")
	if err != nil {
		return nil, 0, err
	}

	enrollments := make([]*models.Enrollment, 0)
	if total == 0 {
		return enrollments, 0, nil
	}

	sql, args, err := applyEnrollmentFilter(psql.Select(enrollmentColumns...).From("enrollments"), f).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(skip)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrollments SQL")
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, translateError(err, "list enrollments")
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, 0, translateError(err, "scan enrollment")
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "list enrollments")
	}
	return enrollments, total, nil
}

// Update writes the grade and status and refreshes updated_at
func (r *PgEnrollmentRepository) Update(ctx context.Context, e *models.Enrollment) error {
	sql, args, err := psql.Update("enrollments").
		Set("grade", e.Grade).
		Set("status", e.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update enrollment SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.UpdatedAt); err != nil {
		return translateError(err, "update enrollment")
	}
	return nil
}

// Delete removes an enrollment
func (r *PgEnrollmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("enrollments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err, "delete enrollment")
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "delete enrollment")
	}
	return nil
}

// Exists reports whether the (student, course, academic year) triple is already enrolled
func (r *PgEnrollmentRepository) Exists(ctx context.Context, studentID string, courseID int64, academicYear string) (bool, error) {
	return exists(ctx, r.db, psql.Select("1").From("enrollments").Where(squirrel.Eq{
		"student_id":    studentID,
		"course_id":     courseID,
		"academic_year": academicYear,
	}), "enrollment exists")
}

// Transcript returns the student's enrollments joined with their courses
func (r *PgEnrollmentRepository) Transcript(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	cols := make([]string, 0, len(enrollmentColumns)+len(courseColumns))
	for _, c := range enrollmentColumns {
		cols = append(cols, "e."+c)
	}
	for _, c := range courseColumns {
		cols = append(cols, "c."+c)
	}

	sql, args, err := psql.Select(cols...).
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.academic_year DESC", "e.semester", "e.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building transcript SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err, "transcript")
	}
	defer rows.Close()

	enrollments := make([]*models.Enrollment, 0)
	for rows.Next() {
		var e models.Enrollment
		var c models.Course
		dest := append(enrollmentDest(&e),
			&c.ID, &c.Code, &c.Name, &c.Description, &c.Credits, &c.Semester, &c.Program, &c.CreatedAt, &c.UpdatedAt)
		if err := rows.Scan(dest...); err != nil {
			return nil, translateError(err, "scan transcript")
		}
		e.Course = &c
		enrollments = append(enrollments, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "transcript")
	}
	return enrollments, nil
}
