package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/akademik/internal/app/models"
	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/db"
)

// psql builds PostgreSQL queries with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// StudentRepository persists students.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context, filter dto.StudentFilter, skip, limit int) ([]*models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	EmailTaken(ctx context.Context, email, exceptID string) (bool, error)
	// MaxSequence returns the highest sequence used by identifiers of the scope, or 0.
	MaxSequence(ctx context.Context, year int, programCode string) (int, error)
}

// CourseRepository persists courses.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter dto.CourseFilter, skip, limit int) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	CodeTaken(ctx context.Context, code string, exceptID int64) (bool, error)
}

// EnrollmentRepository persists enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	List(ctx context.Context, filter dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, int64, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, studentID string, courseID int64, academicYear string) (bool, error)
	// Transcript returns a student's enrollments with their courses, latest academic year first.
	Transcript(ctx context.Context, studentID string) ([]*models.Enrollment, error)
}

// Store groups the repositories that share one connection or transaction.
type Store interface {
	Students() StudentRepository
	Courses() CourseRepository
	Enrollments() EnrollmentRepository
}

// Transactor runs a unit of work against a Store bound to one transaction.
type Transactor interface {
	Store
	InTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
	Ping(ctx context.Context) error
}

// Repositories holds all the repository instances
type Repositories struct {
	db          *db.PostgresDB
	students    *PgStudentRepository
	courses     *PgCourseRepository
	enrollments *PgEnrollmentRepository
}

// NewRepositories initializes all repositories over the connection pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	r := newRepositories(database.Pool)
	r.db = database
	return r
}

func newRepositories(q db.Querier) *Repositories {
	return &Repositories{
		students:    NewStudentRepository(q),
		courses:     NewCourseRepository(q),
		enrollments: NewEnrollmentRepository(q),
	}
}

// Students implements Store.
func (r *Repositories) Students() StudentRepository { return r.students }

// Courses implements Store.
func (r *Repositories) Courses() CourseRepository { return r.courses }

// Enrollments implements Store.
func (r *Repositories) Enrollments() EnrollmentRepository { return r.enrollments }

// InTx runs fn with repositories bound to a single transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (r *Repositories) InTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, newRepositories(tx))
	})
}

// Ping checks the database connection.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func exists(ctx context.Context, q db.Querier, builder squirrel.SelectBuilder, op string) (bool, error) {
	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}
	var found bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, translateError(err, op)
	}
	return found, nil
}

func count(ctx context.Context, q db.Querier, builder squirrel.SelectBuilder, op string) (int64, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}
	var total int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, translateError(err, op)
	}
	return total, nil
}
