package audit

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Log appends an access-log row. Best effort: a failure is logged and never
// blocks the request that triggered it.
func Log(db *gorm.DB, clientID uint, action, details, ip string) {
	entry := AccessLog{ClientID: clientID, Action: action}
	if details != "" {
		entry.Details = &details
	}
	if ip != "" {
		entry.IPAddress = &ip
	}
	if err := db.Create(&entry).Error; err != nil {
		logrus.WithError(err).WithField("action", action).Warn("failed to write access log")
	}
}
