package drive_test

import (
	"context"
	"errors"
	"testing"

	"studio-backend/database"
	"studio-backend/internal/domain/shoots"
	"studio-backend/internal/drive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeLister struct {
	files []drive.File
	err   error
}

func (f *fakeLister) ListImages(ctx context.Context, folderID string) ([]drive.File, error) {
	return f.files, f.err
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// One connection, or each pooled connection gets its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

const folderURL = "https://drive.google.com/drive/folders/abc123"

func TestSyncPhotosReplacesSet(t *testing.T) {
	db := testDB(t)

	// Pre-existing photos from an earlier sync.
	old := shoots.Photo{PhotoshootID: 5, Filename: "old.jpg", OriginalURL: "x", FileOrder: 1}
	require.NoError(t, db.Create(&old).Error)

	lister := &fakeLister{files: []drive.File{
		{ID: "f1", Name: "IMG_0001.jpg", MimeType: "image/jpeg"},
		{ID: "f2", Name: "IMG_0002.jpg", MimeType: "image/jpeg"},
		{ID: "f3", Name: "cover.jpg", MimeType: "image/jpeg"},
	}}

	count, err := drive.SyncPhotos(context.Background(), db, lister, 5, folderURL)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var photos []shoots.Photo
	require.NoError(t, db.Where("photoshoot_id = ?", 5).Find(&photos).Error)
	require.Len(t, photos, 3, "old set fully replaced, count matches listing")

	byName := map[string]shoots.Photo{}
	for _, p := range photos {
		byName[p.Filename] = p
	}
	_, oldStill := byName["old.jpg"]
	assert.False(t, oldStill)

	first := byName["IMG_0001.jpg"]
	assert.Equal(t, "https://drive.google.com/file/d/f1/view", first.OriginalURL)
	require.NotNil(t, first.ThumbnailURL)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=f1&sz=w400", *first.ThumbnailURL)
	require.NotNil(t, first.WatermarkedURL)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=f1&sz=w800", *first.WatermarkedURL)
	assert.Equal(t, 1, first.FileOrder)
}

func TestSyncPhotosInvalidURL(t *testing.T) {
	db := testDB(t)
	lister := &fakeLister{}

	_, err := drive.SyncPhotos(context.Background(), db, lister, 5, "https://example.com/nope")
	assert.ErrorIs(t, err, drive.ErrInvalidFolderURL)
}

func TestSyncPhotosEmptyFolder(t *testing.T) {
	db := testDB(t)
	lister := &fakeLister{}

	_, err := drive.SyncPhotos(context.Background(), db, lister, 5, folderURL)
	assert.ErrorIs(t, err, drive.ErrNoImagesFound)
}

func TestSyncPhotosListingFailureKeepsOldSet(t *testing.T) {
	db := testDB(t)

	old := shoots.Photo{PhotoshootID: 5, Filename: "old.jpg", OriginalURL: "x", FileOrder: 1}
	require.NoError(t, db.Create(&old).Error)

	lister := &fakeLister{err: errors.New("listing down")}

	_, err := drive.SyncPhotos(context.Background(), db, lister, 5, folderURL)
	require.Error(t, err)

	var count int64
	db.Model(&shoots.Photo{}).Where("photoshoot_id = ?", 5).Count(&count)
	assert.Equal(t, int64(1), count, "failed sync must not remove existing photos")
}
