package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/akademik/internal/app/identifier"
	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/db"
	"github.com/yigit/akademik/internal/pkg/logger"
)

var studentColumns = []string{
	"id", "name", "email", "phone", "address", "birth_date", "gender",
	"program", "enrollment_year", "status", "created_at", "updated_at",
}

// PgStudentRepository handles database operations for students
type PgStudentRepository struct {
	db db.Querier
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(q db.Querier) *PgStudentRepository {
	return &PgStudentRepository{db: q}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.BirthDate,
		&s.Gender,
		&s.Program,
		&s.EnrollmentYear,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a student whose ID has already been allocated
func (r *PgStudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := psql.Insert("students").
		Columns("id", "name", "email", "phone", "address", "birth_date", "gender", "program", "enrollment_year", "status").
		Values(s.ID, s.Name, s.Email, s.Phone, s.Address, s.BirthDate, s.Gender, s.Program, s.EnrollmentYear, s.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return translateError(err, "create student")
	}
	return nil
}

// GetByID retrieves a student by identifier
func (r *PgStudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	sql, args, err := psql.Select(studentColumns...).From("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "get student")
	}
	return s, nil
}

func applyStudentFilter(b squirrel.SelectBuilder, f dto.StudentFilter) squirrel.SelectBuilder {
	if f.Program != "" {
		b = b.Where(squirrel.ILike{"program": "%" + f.Program + "%"})
	}
	if f.Status != "" {
		b = b.Where(squirrel.Eq{"status": f.Status})
	}
	return b
}

// List retrieves a filtered page of students ordered by identifier, with the total match count
func (r *PgStudentRepository) List(ctx context.Context, f dto.StudentFilter, skip, limit int) ([]*models.Student, int64, error) {
	total, err := count(ctx, r.db, applyStudentFilter(psql.Select("count(*)").From("students"), f), "count students")
	if err != nil {
		return nil, 0, err
	}

	students := make([]*models.Student, 0)
	if total == 0 {
		return students, 0, nil
	}

	sql, args, err := applyStudentFilter(psql.Select(studentColumns...).From("students"), f).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(skip)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, translateError(err, "list students")
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, translateError(err, "scan student")
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "list students")
	}
	return students, total, nil
}

// Update writes every mutable column and refreshes updated_at
func (r *PgStudentRepository) Update(ctx context.Context, s *models.Student) error {
	sql, args, err := psql.Update("students").
		Set("name", s.Name).
		Set("email", s.Email).
		Set("phone", s.Phone).
		Set("address", s.Address).
		Set("birth_date", s.BirthDate).
		Set("gender", s.Gender).
		Set("program", s.Program).
		Set("status", s.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.UpdatedAt); err != nil {
		return translateError(err, "update student")
	}
	return nil
}

// Delete removes a student; enrollments are removed by the cascading foreign key
func (r *PgStudentRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := psql.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err, "delete student")
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "delete student")
	}
	return nil
}

// Exists reports whether a student with id exists
func (r *PgStudentRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, psql.Select("1").From("students").Where(squirrel.Eq{"id": id}), "student exists")
}

// EmailTaken reports whether another student already uses email
func (r *PgStudentRepository) EmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	b := psql.Select("1").From("students").Where(squirrel.Expr("lower(email) = lower(?)", email))
	if exceptID != "" {
		b = b.Where(squirrel.NotEq{"id": exceptID})
	}
	return exists(ctx, r.db, b, "student email taken")
}

// MaxSequence scans the identifiers of the (year, program code) scope for the highest sequence
func (r *PgStudentRepository) MaxSequence(ctx context.Context, year int, programCode string) (int, error) {
	sql, args, err := psql.Select("COALESCE(MAX(CAST(split_part(id, '-', 3) AS INTEGER)), 0)").
		From("students").
		Where(squirrel.Like{"id": identifier.ScopePrefix(year, programCode) + "%"}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var maxSeq int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&maxSeq); err != nil {
		return 0, translateError(err, "max student sequence")
	}
	return maxSeq, nil
}
