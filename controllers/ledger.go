// controllers/ledger.go
package controllers

import (
	"net/http"
	"time"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateLedgerEntryInput defines the expected JSON structure for a manual
// cash-flow entry. Entries derived from completed appointments are created
// by the completion workflow, never through this endpoint.
type CreateLedgerEntryInput struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Direction string  `json:"direction" binding:"required,oneof=in out"`
	Category  string  `json:"category" binding:"required"`
	Note      string  `json:"note"`
}

// CreateLedgerEntry records a manual entry
func CreateLedgerEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateLedgerEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	validCategory := false
	for _, cat := range models.LedgerCategories {
		if cat == input.Category {
			validCategory = true
			break
		}
	}
	if !validCategory {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown category")
		return
	}

	entry := models.LedgerEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    input.Amount,
		Direction: input.Direction,
		Category:  input.Category,
		Note:      input.Note,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create ledger entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetLedgerEntries lists entries newest first, optionally filtered to one day
func GetLedgerEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", userID)

	if dayStr := c.Query("date"); dayStr != "" {
		day, err := utils.ParseDay(dayStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
	}

	var entries []models.LedgerEntry
	if err := query.Order("created_at desc").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteLedgerEntry removes an entry. Entries created by completing an
// appointment may be deleted too; the appointment stays completed.
func DeleteLedgerEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ledger entry ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, entryUUID).
		Delete(&models.LedgerEntry{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete ledger entry")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Ledger entry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ledger entry deleted successfully"})
}

// GetLedgerSummary returns net totals (in minus out) for today, the current
// month and the current year.
func GetLedgerSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	now := time.Now()
	startOfDay := utils.BeginningOfDay(now)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	c.JSON(http.StatusOK, gin.H{
		"today": netTotalSince(userID, startOfDay),
		"month": netTotalSince(userID, startOfMonth),
		"year":  netTotalSince(userID, startOfYear),
	})
}

// netTotalSince sums entries since the given instant, counting inbound
// amounts positive and outbound negative.
func netTotalSince(userID uuid.UUID, since time.Time) float64 {
	var total float64
	config.DB.Model(&models.LedgerEntry{}).
		Where("user_id = ? AND created_at >= ? AND deleted_at IS NULL", userID, since).
		Select("COALESCE(SUM(CASE WHEN direction = 'in' THEN amount ELSE -amount END), 0)").
		Scan(&total)
	return total
}
