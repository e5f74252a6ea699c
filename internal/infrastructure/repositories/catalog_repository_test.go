package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vaulttube/internal/domain/entities"
	"vaulttube/internal/infrastructure/db"
)

func newTestRepo(t *testing.T) (*gorm.DB, *catalogRepository) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database))
	return database, &catalogRepository{db: database}
}

func TestCreateVideoWithLinksOrdersBySubmission(t *testing.T) {
	_, repo := newTestRepo(t)

	video := &entities.Video{ID: uuid.New(), Title: "Ordered"}
	links := []entities.DownloadLink{
		{ID: uuid.New(), Label: "1080p", URL: "https://files.example.com/a"},
		{ID: uuid.New(), Label: "720p", URL: "https://files.example.com/b"},
		{ID: uuid.New(), Label: "480p", URL: "https://files.example.com/c"},
	}
	require.NoError(t, repo.CreateVideoWithLinks(context.Background(), video, links))

	got, gotLinks, err := repo.GetVideoByID(context.Background(), video.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ordered", got.Title)

	require.Len(t, gotLinks, 3)
	for i, link := range gotLinks {
		assert.Equal(t, i, link.Position)
		assert.Equal(t, video.ID, link.VideoID)
	}
	assert.Equal(t, "1080p", gotLinks[0].Label)
	assert.Equal(t, "480p", gotLinks[2].Label)
}

func TestCreateVideoWithLinksRollsBackOnLinkFailure(t *testing.T) {
	database, repo := newTestRepo(t)

	duplicate := uuid.New()
	video := &entities.Video{ID: uuid.New(), Title: "Doomed"}
	links := []entities.DownloadLink{
		{ID: duplicate, Label: "1080p", URL: "https://files.example.com/a"},
		{ID: duplicate, Label: "720p", URL: "https://files.example.com/b"},
	}
	require.Error(t, repo.CreateVideoWithLinks(context.Background(), video, links))

	// The link insert failed, so the video row must not survive either
	var videoCount, linkCount int64
	require.NoError(t, database.Model(&entities.Video{}).Count(&videoCount).Error)
	require.NoError(t, database.Model(&entities.DownloadLink{}).Count(&linkCount).Error)
	assert.Zero(t, videoCount)
	assert.Zero(t, linkCount)
}

func TestListVideosPaginatesNewestFirst(t *testing.T) {
	_, repo := newTestRepo(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	titles := []string{"first", "second", "third", "fourth", "fifth"}
	for i, title := range titles {
		video := &entities.Video{ID: uuid.New(), Title: title, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.CreateVideoWithLinks(context.Background(), video, nil))
	}

	page1, total, err := repo.ListVideos(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page1, 2)
	assert.Equal(t, "fifth", page1[0].Title)
	assert.Equal(t, "fourth", page1[1].Title)

	page3, _, err := repo.ListVideos(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "first", page3[0].Title)
}

func TestGetVideoByIDMissing(t *testing.T) {
	_, repo := newTestRepo(t)

	_, _, err := repo.GetVideoByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
