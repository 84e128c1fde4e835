package controllers

import (
	"net/http"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/scheduling"
	"studioflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpdateSettingsInput struct {
	BusinessName *string `json:"businessName"`
	Phone        *string `json:"phone"`
	OpeningTime  *string `json:"openingTime"`
	ClosingTime  *string `json:"closingTime"`
	SMSReminders *bool   `json:"smsReminders"`
}

type CreateTimeBlockInput struct {
	Date      string `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime string `json:"startTime" binding:"required"` // HH:MM
	EndTime   string `json:"endTime" binding:"required"`
	Reason    string `json:"reason"`
}

// GetSettings returns the business profile and agenda configuration
func GetSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var blocks []models.TimeBlock
	config.DB.Where("user_id = ?", userID).
		Order("date asc, start_time asc").
		Find(&blocks)

	c.JSON(http.StatusOK, gin.H{
		"businessName": user.BusinessName,
		"phone":        user.Phone,
		"email":        user.Email,
		"openingTime":  user.OpeningTime,
		"closingTime":  user.ClosingTime,
		"smsReminders": user.SMSReminders,
		"timeBlocks":   blocks,
	})
}

// UpdateSettings updates profile fields and agenda hours. Hours must parse
// as HH:MM; an opening after closing is stored as-is and simply renders an
// empty grid.
func UpdateSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.BusinessName != nil {
		user.BusinessName = *input.BusinessName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.OpeningTime != nil {
		if _, err := scheduling.ParseTimeOfDay(*input.OpeningTime); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid opening time, expected HH:MM")
			return
		}
		user.OpeningTime = *input.OpeningTime
	}
	if input.ClosingTime != nil {
		if _, err := scheduling.ParseTimeOfDay(*input.ClosingTime); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid closing time, expected HH:MM")
			return
		}
		user.ClosingTime = *input.ClosingTime
	}
	if input.SMSReminders != nil {
		user.SMSReminders = *input.SMSReminders
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}

// CreateTimeBlock reserves a period of the day as unavailable
func CreateTimeBlock(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateTimeBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	day, err := utils.ParseDay(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	start, err := scheduling.ParseTimeOfDay(input.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start time, expected HH:MM")
		return
	}
	end, err := scheduling.ParseTimeOfDay(input.EndTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end time, expected HH:MM")
		return
	}
	if end <= start {
		utils.RespondWithError(c, http.StatusBadRequest, "End time must be after start time")
		return
	}

	block := models.TimeBlock{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      day,
		StartTime: start.String(),
		EndTime:   end.String(),
		Reason:    input.Reason,
	}

	if err := config.DB.Create(&block).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create time block")
		return
	}

	c.JSON(http.StatusCreated, block)
}

// DeleteTimeBlock frees a blocked period
func DeleteTimeBlock(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	blockUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time block ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, blockUUID).
		Delete(&models.TimeBlock{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete time block")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Time block not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Time block deleted successfully"})
}
