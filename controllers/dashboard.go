package controllers

import (
	"net/http"
	"time"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/utils"

	"github.com/gin-gonic/gin"
)

type MonthRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

// GetDashboardOverview aggregates the landing-page KPIs: today's income, the
// month's revenue and cash balance, today's appointment count, a monthly
// revenue series and the latest ledger activity.
func GetDashboardOverview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	now := time.Now()
	startOfDay := utils.BeginningOfDay(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Today's inbound cash
	var todayIncome float64
	config.DB.Model(&models.LedgerEntry{}).
		Where("user_id = ? AND direction = ? AND created_at >= ? AND deleted_at IS NULL",
			userID, models.DirectionIn, startOfDay).
		Select("COALESCE(SUM(amount), 0)").Scan(&todayIncome)

	// This month's revenue (inbound only)
	var monthRevenue float64
	config.DB.Model(&models.LedgerEntry{}).
		Where("user_id = ? AND direction = ? AND created_at >= ? AND deleted_at IS NULL",
			userID, models.DirectionIn, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)

	// This month's cash balance (in minus out)
	cashBalance := netTotalSince(userID, firstOfMonth)

	// Appointments booked for today
	var todayAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("user_id = ? AND date = ? AND deleted_at IS NULL", userID, startOfDay).
		Count(&todayAppointments)

	// Revenue per month, last 6 months including the current one
	seriesStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
	var series []MonthRevenue
	config.DB.Raw(`
        SELECT TO_CHAR(created_at, 'YYYY-MM') AS month,
               COALESCE(SUM(amount), 0) AS revenue
        FROM ledger_entries
        WHERE user_id = ? AND direction = 'in' AND created_at >= ? AND deleted_at IS NULL
        GROUP BY 1
        ORDER BY 1
    `, userID, seriesStart).Scan(&series)

	// Latest ledger activity
	var recentEntries []models.LedgerEntry
	config.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(5).
		Find(&recentEntries)

	// Most recently added clients
	var recentClients []models.Client
	config.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(5).
		Find(&recentClients)

	c.JSON(http.StatusOK, gin.H{
		"todayIncome":       todayIncome,
		"monthRevenue":      monthRevenue,
		"cashBalance":       cashBalance,
		"todayAppointments": todayAppointments,
		"revenueByMonth":    series,
		"recentEntries":     recentEntries,
		"recentClients":     recentClients,
	})
}
