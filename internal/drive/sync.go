package drive

import (
	"context"
	"errors"

	"studio-backend/internal/domain/shoots"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoImagesFound = errors.New("no images found in the folder or folder is not public")

// Widths used for the derived preview URLs.
const (
	thumbnailWidth   = 400
	watermarkedWidth = 800
)

// Lister is the file-listing capability SyncPhotos depends on.
type Lister interface {
	ListImages(ctx context.Context, folderID string) ([]File, error)
}

// SyncPhotos mirrors a shared folder's image listing into the photoshoot's
// photo set. The old set is deleted and the new one inserted in a single
// transaction, so a failed sync leaves the previous photos in place.
// Returns the number of photos imported. Transitioning the photoshoot to
// "available" is the caller's job.
func SyncPhotos(ctx context.Context, db *gorm.DB, lister Lister, photoshootID uint, folderURL string) (int, error) {
	folderID, err := ExtractFolderID(folderURL)
	if err != nil {
		return 0, err
	}

	files, err := lister.ListImages(ctx, folderID)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, ErrNoImagesFound
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photoshoot_id = ?", photoshootID).Delete(&shoots.Photo{}).Error; err != nil {
			return err
		}
		for _, f := range files {
			thumb := ThumbnailURL(f.ID, thumbnailWidth)
			watermarked := ThumbnailURL(f.ID, watermarkedWidth)
			photo := shoots.Photo{
				PhotoshootID:   photoshootID,
				Filename:       f.Name,
				OriginalURL:    ViewURL(f.ID),
				ThumbnailURL:   &thumb,
				WatermarkedURL: &watermarked,
				FileOrder:      ExtractFileOrder(f.Name),
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"photoshoot_id": photoshootID,
		"count":         len(files),
	}).Info("photos synced from drive")

	return len(files), nil
}
