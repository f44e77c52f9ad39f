package audit

import "time"

// AccessLog records client-facing actions (logins, account links, orders).
type AccessLog struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ClientID  uint    `gorm:"not null;index" json:"client_id"`
	Action    string  `gorm:"type:varchar(100);not null" json:"action"`
	Details   *string `json:"details,omitempty"`
	IPAddress *string `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
