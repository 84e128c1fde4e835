package controllers

import (
	"errors"
	"net/http"
	"strings"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

// CreateClient adds a client to the roster
func CreateClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Name is required")
		return
	}

	// Phone is optional for roster entries, but must be valid when present
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client := models.Client{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     strings.TrimSpace(input.Name),
		Phone:    strings.TrimSpace(input.Phone),
		Notes:    input.Notes,
		IsActive: true,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves the roster, optionally filtered by a name search term
func GetClients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", userID)
	if term := strings.TrimSpace(c.Query("search")); term != "" {
		query = query.Where("name ILIKE ?", "%"+term+"%")
	}

	var clients []models.Client
	if err := query.Order("name asc").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.Where("user_id = ? AND id = ?", userID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.Where("user_id = ? AND id = ?", userID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Name is required")
			return
		}
		client.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient soft deletes a client
func DeleteClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, clientUUID).
		Delete(&models.Client{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
