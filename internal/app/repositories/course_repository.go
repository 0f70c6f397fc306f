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

var courseColumns = []string{
	"id", "code", "name", "description", "credits", "semester", "program", "created_at", "updated_at",
}

// PgCourseRepository handles database operations for courses
type PgCourseRepository struct {
	db db.Querier
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(q db.Querier) *PgCourseRepository {
	return &PgCourseRepository{db: q}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	if err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Description,
		&c.Credits,
		&c.Semester,
		&c.Program,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a course and fills its generated fields
func (r *PgCourseRepository) Create(ctx context.Context, c *models.Course) error {
	sql, args, err := psql.Insert("courses").
		Columns("code", "name", "description", "credits", "semester", "program").
		Values(c.Code, c.Name, c.Description, c.Credits, c.Semester, c.Program).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return translateError(err, "create course")
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *PgCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := psql.Select(courseColumns...).From("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "get course")
	}
	return c, nil
}

func applyCourseFilter(b squirrel.SelectBuilder, f dto.CourseFilter) squirrel.SelectBuilder {
	if f.Program != "" {
		b = b.Where(squirrel.ILike{"program": "%" + f.Program + "%"})
	}
	if f.Semester != nil {
		b = b.Where(squirrel.Eq{"semester": *f.Semester})
	}
	return b
}

// List retrieves a filtered page of courses ordered by ID, with the total match count
func (r *PgCourseRepository) List(ctx context.Context, f dto.CourseFilter, skip, limit int) ([]*models.Course, int64, error) {
	total, err := count(ctx, r.db, applyCourseFilter(psql.Select("count(*)").From("courses"), f), "count courses")
	if err != nil {
		return nil, 0, err
	}

	courses := make([]*models.Course, 0)
	if total == 0 {
		return courses, 0, nil
	}

	sql, args, err := applyCourseFilter(psql.Select(courseColumns...).From("courses"), f).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(skip)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, translateError(err, "list courses")
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, translateError(err, "scan course")
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "list courses")
	}
	return courses, total, nil
}

// Update writes every mutable column and refreshes updated_at
func (r *PgCourseRepository) Update(ctx context.Context, c *models.Course) error {
	sql, args, err := psql.Update("courses").
		Set("code", c.Code).
		Set("name", c.Name).
		Set("description", c.Description).
		Set("credits", c.Credits).
		Set("semester", c.Semester).
		Set("program", c.Program).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.UpdatedAt); err != nil {
		return translateError(err, "update course")
	}
	return nil
}

// Delete removes a course; its enrollments are removed by the cascading foreign key
func (r *PgCourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err, "delete course")
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "delete course")
	}
	return nil
}

// Exists reports whether a course with id exists
func (r *PgCourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, psql.Select("1").From("courses").Where(squirrel.Eq{"id": id}), "course exists")
}

// CodeTaken reports whether another course already uses code
func (r *PgCourseRepository) CodeTaken(ctx context.Context, code string, exceptID int64) (bool, error) {
	b := psql.Select("1").From("courses").Where(squirrel.Eq{"code": code})
	if exceptID != 0 {
		b = b.Where(squirrel.NotEq{"id": exceptID})
	}
	return exists(ctx, r.db, b, "course code taken")
}
