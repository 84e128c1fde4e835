// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	Label           string  `json:"label"`
	DurationMinutes int     `json:"durationMinutes" binding:"min=0"`
	Price           float64 `json:"price" binding:"required,min=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name            *string  `json:"name"`
	Label           *string  `json:"label"`
	DurationMinutes *int     `json:"durationMinutes"`
	Price           *float64 `json:"price"`
	IsActive        *bool    `json:"isActive"`
}

// CreateService adds a service to the catalog
func CreateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	duration := input.DurationMinutes
	if duration == 0 {
		duration = 30
	}

	service := models.Service{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            input.Name,
		Label:           input.Label,
		DurationMinutes: duration,
		Price:           input.Price,
		IsActive:        true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the catalog ordered by name
func GetServices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := config.DB.Where("user_id = ?", userID).
		Order("name asc").
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("user_id = ? AND id = ?", userID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service. Appointments keep the service
// name they were created with; renames only affect future bookings.
func UpdateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("user_id = ? AND id = ?", userID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Label != nil {
		service.Label = *input.Label
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
			return
		}
		service.Price = *input.Price
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service
func DeleteService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, serviceUUID).
		Delete(&models.Service{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
