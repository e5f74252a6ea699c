package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateCatalogTables, downCreateCatalogTables)
}

func upCreateCatalogTables(ctx context.Context, tx *sql.Tx) error {
	createVideosTable := `
	CREATE TABLE videos (
		id UUID PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		thumbnail_url VARCHAR(1000),
		tags JSONB NOT NULL DEFAULT '[]',
		created_by VARCHAR(255),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.ExecContext(ctx, createVideosTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}

	createDownloadLinksTable := `
	CREATE TABLE download_links (
		id UUID PRIMARY KEY,
		video_id UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		label VARCHAR(255) NOT NULL,
		url VARCHAR(2000) NOT NULL,
		position INTEGER NOT NULL
	);
	`
	if _, err := tx.ExecContext(ctx, createDownloadLinksTable); err != nil {
		return fmt.Errorf("could not create download_links table: %w", err)
	}

	createLinkIndex := `CREATE INDEX idx_download_links_video_id ON download_links(video_id);`
	if _, err := tx.ExecContext(ctx, createLinkIndex); err != nil {
		return fmt.Errorf("could not create download_links index: %w", err)
	}

	return nil
}

func downCreateCatalogTables(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS download_links;`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS videos;`); err != nil {
		return err
	}
	return nil
}
