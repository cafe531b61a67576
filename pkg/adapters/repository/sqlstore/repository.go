package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"                  // PostgreSQL driver
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.JobRepository = (*SQLRepository)(nil)

type SQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLRepository opens the database behind dbURL, checks it is reachable
// and creates the schema if needed.
func NewSQLRepository(dbURL string) (*SQLRepository, error) {
	driverName, dialect := driverFor(dbURL)
	dsn := dbURL
	if driverName == "sqlite" {
		dsn = sqliteDSN(dbURL)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLRepository{db: db, dialect: dialect}, nil
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func (r *SQLRepository) q(query string) string {
	return r.dialect.Rebind(query)
}

func storeErr(op string, err error) error {
	return &domain.StoreError{Op: op, Err: err}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(s rowScanner) (domain.Job, error) {
	var j domain.Job
	err := s.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Category,
		&j.Description, &j.EmploymentType, &j.SalaryRange, &j.CreatedAt,
		&j.ApplicationCount,
	)
	return j, err
}

func (r *SQLRepository) Search(ctx context.Context, criteria domain.Criteria) ([]domain.Job, error) {
	query, args := buildSearchQuery(r.dialect, criteria)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("search jobs", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, storeErr("scan job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("search jobs", err)
	}
	return jobs, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := r.q(jobSelect + " WHERE jobs.id = ? GROUP BY jobs.id")

	j, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get job", err)
	}
	return &j, nil
}

func (r *SQLRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, r.q(`SELECT id FROM jobs WHERE id = ?`), id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("check job", err)
	}
	return true, nil
}

func (r *SQLRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.CreatedAt = job.CreatedAt.UTC()
	query := r.q(`INSERT INTO jobs (title, company, location, category, description, employment_type, salary_range, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		job.Title, job.Company, job.Location, job.Category,
		job.Description, job.EmploymentType, job.SalaryRange, job.CreatedAt,
	).Scan(&job.ID)
	if err != nil {
		return storeErr("create job", err)
	}
	job.ApplicationCount = 0
	return nil
}

// Delete removes a job and its applications in one transaction. The
// explicit application delete covers drivers where the FK cascade is off.
func (r *SQLRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storeErr("delete job", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.q(`DELETE FROM applications WHERE job_id = ?`), id); err != nil {
		return false, storeErr("delete applications", err)
	}

	res, err := tx.ExecContext(ctx, r.q(`DELETE FROM jobs WHERE id = ?`), id)
	if err != nil {
		return false, storeErr("delete job", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("delete job", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, storeErr("delete job", err)
	}
	return true, nil
}

// Meta runs the three DISTINCT listings concurrently.
func (r *SQLRepository) Meta(ctx context.Context) (*domain.JobMeta, error) {
	meta := &domain.JobMeta{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		meta.Categories, err = r.distinct(gctx, "category")
		return err
	})
	g.Go(func() (err error) {
		meta.Locations, err = r.distinct(gctx, "location")
		return err
	})
	g.Go(func() (err error) {
		meta.EmploymentTypes, err = r.distinct(gctx, "employment_type")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return meta, nil
}

// distinct lists the sorted unique values of a jobs column. column is one
// of a fixed set of identifiers, never user input.
func (r *SQLRepository) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT `+column+` FROM jobs ORDER BY `+column+` ASC`)
	if err != nil {
		return nil, storeErr("list "+column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, storeErr("scan "+column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list "+column, err)
	}
	return values, nil
}

func (r *SQLRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, storeErr("count jobs", err)
	}
	return count, nil
}

// Dump returns every job oldest first, for export.
func (r *SQLRepository) Dump(ctx context.Context) ([]domain.Job, error) {
	return r.Search(ctx, domain.Criteria{Sort: domain.SortOldest})
}

// CreateApplication inserts app only while its job exists, in one statement.
// A missing job yields domain.ErrNotFound.
func (r *SQLRepository) CreateApplication(ctx context.Context, app *domain.Application) error {
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now()
	}
	app.CreatedAt = app.CreatedAt.UTC()
	query := r.q(`INSERT INTO applications (job_id, name, email, resume_link, cover_note, created_at)
			  SELECT jobs.id, ?, ?, ?, ?, ` + r.dialect.timestampParam() + ` FROM jobs WHERE jobs.id = ?
			  RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		app.Name, app.Email, app.ResumeLink, app.CoverNote, app.CreatedAt, app.JobID,
	).Scan(&app.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return storeErr("create application", err)
	}
	return nil
}

const applicationColumns = `id, job_id, name, email, resume_link, cover_note, created_at`

func scanApplication(s rowScanner) (domain.Application, error) {
	var a domain.Application
	err := s.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &a.ResumeLink, &a.CoverNote, &a.CreatedAt)
	return a, err
}

func (r *SQLRepository) GetApplication(ctx context.Context, id int64) (*domain.Application, error) {
	query := r.q(`SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`)

	a, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get application", err)
	}
	return &a, nil
}

func (r *SQLRepository) ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := r.q(`SELECT ` + applicationColumns + ` FROM applications WHERE job_id = ? ORDER BY created_at ASC, id ASC`)

	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, storeErr("list applications", err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, storeErr("scan application", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list applications", err)
	}
	return apps, nil
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}
