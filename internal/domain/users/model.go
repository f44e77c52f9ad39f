package users

import "time"

// Roles stored in User.Role.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OpenID      string  `gorm:"column:open_id;not null;uniqueIndex:idx_users_open_id" json:"open_id"`
	Name        *string `json:"name"`
	Email       *string `gorm:"type:varchar(320)" json:"email"`
	LoginMethod *string `gorm:"type:varchar(64)" json:"login_method,omitempty"`
	Role        string  `gorm:"type:varchar(20);not null;default:'client'" json:"role"`

	Phone   *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `gorm:"type:varchar(100)" json:"city,omitempty"`
	State   *string `gorm:"type:varchar(2)" json:"state,omitempty"`
	ZipCode *string `gorm:"type:varchar(10)" json:"zip_code,omitempty"`

	// Generated password for clients, bcrypt-hashed. Never serialized.
	ClientPassword *string `json:"-"`

	// One-time code a client exchanges for account access. Cleared once the
	// explicit link flow consumes it.
	LinkingCode *string    `gorm:"type:varchar(10);uniqueIndex:idx_users_linking_code" json:"linking_code,omitempty"`
	LinkedAt    *time.Time `json:"linked_at,omitempty"`
	IsLinked    bool       `gorm:"not null;default:false" json:"is_linked"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}
