package admin

import (
	"net/http"
	"time"

	"studio-backend/database"
	"studio-backend/internal/domain/audit"
	"studio-backend/internal/domain/orders"
	"studio-backend/internal/domain/shoots"
	"studio-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalClients     int64          `json:"total_clients"`
	TotalPhotoshoots int64          `json:"total_photoshoots"`
	TotalOrders      int64          `json:"total_orders"`
	TotalRevenue     int64          `json:"total_revenue"`
	RecentRevenue    int64          `json:"recent_revenue"`
	OrdersPerStatus  map[string]int `json:"orders_per_status"`
}

// Dashboard aggregates the admin overview. Revenue counts only orders
// whose payment was confirmed, in integer cents.
func Dashboard(c *gin.Context) {
	var stats DashboardStats

	database.DB.Model(&users.User{}).Where("role = ?", users.RoleClient).Count(&stats.TotalClients)
	database.DB.Model(&shoots.Photoshoot{}).Count(&stats.TotalPhotoshoots)
	database.DB.Model(&orders.Order{}).Count(&stats.TotalOrders)

	database.DB.Model(&orders.Order{}).
		Where("payment_confirmed_at IS NOT NULL").
		Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.TotalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&orders.Order{}).
		Where("payment_confirmed_at IS NOT NULL AND payment_confirmed_at >= ?", thirtyDaysAgo).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.RecentRevenue)

	type statusCount struct {
		Status string
		Count  int
	}
	var counts []statusCount
	database.DB.Model(&orders.Order{}).
		Select("status, COUNT(id) as count").
		Group("status").Scan(&counts)

	stats.OrdersPerStatus = map[string]int{}
	for _, sc := range counts {
		stats.OrdersPerStatus[sc.Status] = sc.Count
	}

	c.JSON(http.StatusOK, stats)
}

// ListAccessLogs returns the most recent client activity.
func ListAccessLogs(c *gin.Context) {
	var logs []audit.AccessLog
	if err := database.DB.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		c.JSON(http.StatusOK, []audit.AccessLog{})
		return
	}
	c.JSON(http.StatusOK, logs)
}
