package sqlstore

import "database/sql"

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		employment_type TEXT NOT NULL,
		salary_range TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at);

	CREATE TABLE IF NOT EXISTS applications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		resume_link TEXT NOT NULL,
		cover_note TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(job_id) REFERENCES jobs(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id);
	`

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		employment_type TEXT NOT NULL,
		salary_range TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		resume_link TEXT NOT NULL,
		cover_note TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id)`,
}

func migrate(db *sql.DB, dialect Dialect) error {
	if dialect == DialectPostgres {
		// Applied one statement at a time.
		for _, stmt := range postgresSchema {
			if _, err := db.Exec(stmt); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := db.Exec(sqliteSchema)
	return err
}
