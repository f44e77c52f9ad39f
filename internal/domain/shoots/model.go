package shoots

import "time"

// Photoshoot lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusAvailable = "available"
	StatusArchived  = "archived"
)

type Photoshoot struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ClientID    uint    `gorm:"not null;index" json:"client_id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description *string `json:"description,omitempty"`

	// Shared folder the photo set is mirrored from. Persisted by the sync
	// handler after a successful import.
	DriveFolderURL *string    `gorm:"column:drive_folder_url" json:"drive_folder_url,omitempty"`
	ShootDate      *time.Time `json:"shoot_date,omitempty"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Photo rows are fully replaced on each sync; there is no incremental diff.
type Photo struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	PhotoshootID uint    `gorm:"not null;index" json:"photoshoot_id"`
	Filename     string  `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalURL  string  `gorm:"not null" json:"original_url"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`

	// Larger preview shown in the gallery before purchase.
	WatermarkedURL *string `json:"watermarked_url,omitempty"`

	// Display order derived from the filename.
	FileOrder int `gorm:"not null" json:"file_order"`

	CreatedAt time.Time `json:"created_at"`
}
