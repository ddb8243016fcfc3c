package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(Up, Down)
}

// +goose Up
// +goose StatementBegin
func Up(tx *sql.Tx) error {
	createTranscodeJobsTable := `
	CREATE TABLE transcode_jobs (
		job_id UUID PRIMARY KEY,
		bucket_name VARCHAR(255) NOT NULL,
		key VARCHAR(500) NOT NULL,
		episode_id VARCHAR(255) NOT NULL,
		base_url VARCHAR(500) NOT NULL,
		seq BIGINT NOT NULL,
		status VARCHAR(20) NOT NULL,
		result_key VARCHAR(500),
		last_error VARCHAR(500),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createTranscodeJobsTable); err != nil {
		return fmt.Errorf("could not create transcode_jobs table: %w", err)
	}

	createEpisodeIndex := `
	CREATE INDEX idx_transcode_jobs_episode_id ON transcode_jobs (episode_id);
	`
	if _, err := tx.Exec(createEpisodeIndex); err != nil {
		return fmt.Errorf("could not create transcode_jobs episode index: %w", err)
	}

	return nil
}

// +goose StatementEnd

// +goose Down
// +goose StatementBegin
func Down(tx *sql.Tx) error {
	if _, err := tx.Exec("DROP TABLE IF EXISTS transcode_jobs;"); err != nil {
		return fmt.Errorf("could not drop transcode_jobs table: %w", err)
	}
	return nil
}

// +goose StatementEnd
