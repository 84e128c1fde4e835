package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/scheduling"
	"studioflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking a slot
type CreateAppointmentInput struct {
	Date            string    `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime       string    `json:"startTime" binding:"required"` // HH:MM, must be a grid slot
	ClientName      string    `json:"clientName"`
	Phone           string    `json:"phone"`
	ServiceID       uuid.UUID `json:"serviceId"`
	DurationMinutes int       `json:"durationMinutes"`
}

// UpdateAppointmentInput defines the expected JSON structure for editing a booking
type UpdateAppointmentInput struct {
	Date            *string    `json:"date"`
	StartTime       *string    `json:"startTime"`
	ClientName      *string    `json:"clientName"`
	Phone           *string    `json:"phone"`
	ServiceID       *uuid.UUID `json:"serviceId"`
	DurationMinutes *int       `json:"durationMinutes"`
}

// gridFor returns the user's slot grid boundaries, falling back to the
// default 08:00-20:00 window when settings hold unparsable values.
func gridFor(user *models.User) (scheduling.TimeOfDay, scheduling.TimeOfDay) {
	opening, err := scheduling.ParseTimeOfDay(user.OpeningTime)
	if err != nil {
		opening = scheduling.DefaultOpening
	}
	closing, err := scheduling.ParseTimeOfDay(user.ClosingTime)
	if err != nil {
		closing = scheduling.DefaultClosing
	}
	return opening, closing
}

func slotOnGrid(start, opening, closing scheduling.TimeOfDay) bool {
	if start < opening || start > closing {
		return false
	}
	return int(start-opening)%scheduling.DefaultStepMinutes == 0
}

// dayIntervals re-reads the day's appointments so conflict checks always run
// against the freshest snapshot, not one cached earlier in the session.
// excludeID skips the record being edited.
func dayIntervals(userID uuid.UUID, day time.Time, excludeID uuid.UUID) ([]scheduling.Interval, error) {
	var appts []models.Appointment
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		Order("start_time asc").
		Find(&appts).Error; err != nil {
		return nil, err
	}

	intervals := make([]scheduling.Interval, 0, len(appts))
	for _, a := range appts {
		if a.ID == excludeID {
			continue
		}
		start, err := scheduling.ParseTimeOfDay(a.StartTime)
		if err != nil {
			continue
		}
		intervals = append(intervals, scheduling.Interval{Start: start, DurationMinutes: a.DurationMinutes})
	}
	return intervals, nil
}

func dayBlocks(userID uuid.UUID, day time.Time) ([]scheduling.Interval, error) {
	var blocks []models.TimeBlock
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	intervals := make([]scheduling.Interval, 0, len(blocks))
	for _, b := range blocks {
		start, err := scheduling.ParseTimeOfDay(b.StartTime)
		if err != nil {
			continue
		}
		end, err := scheduling.ParseTimeOfDay(b.EndTime)
		if err != nil || end <= start {
			continue
		}
		intervals = append(intervals, scheduling.Interval{Start: start, DurationMinutes: int(end - start)})
	}
	return intervals, nil
}

// GetAgenda returns the slot grid for a day together with that day's
// appointments and blocked periods.
func GetAgenda(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dayStr := c.DefaultQuery("date", time.Now().Format(utils.DateLayout))
	day, err := utils.ParseDay(dayStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	opening, closing := gridFor(&user)

	var appts []models.Appointment
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		Order("start_time asc").
		Find(&appts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	var blocks []models.TimeBlock
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		Order("start_time asc").
		Find(&blocks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve time blocks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         dayStr,
		"slots":        scheduling.SlotLabels(opening, closing, scheduling.DefaultStepMinutes),
		"appointments": appts,
		"blocks":       blocks,
	})
}

// CreateAppointment books a slot. Field checks run first, then the overlap
// check against a fresh read of the day under the per-day lock.
func CreateAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := scheduling.ValidateBooking(input.ClientName, input.Phone, uuidOrEmpty(input.ServiceID), input.DurationMinutes); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
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

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	opening, closing := gridFor(&user)
	if !slotOnGrid(start, opening, closing) {
		utils.RespondWithError(c, http.StatusBadRequest, "Start time is not an available slot")
		return
	}

	// Resolve the service and snapshot its display name.
	var service models.Service
	if err := config.DB.Where("user_id = ? AND id = ?", userID, input.ServiceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	candidate := scheduling.Interval{Start: start, DurationMinutes: input.DurationMinutes}
	appointment := models.Appointment{
		ID:              uuid.New(),
		UserID:          userID,
		ClientName:      trimmed(input.ClientName),
		Phone:           trimmed(input.Phone),
		ServiceID:       service.ID,
		ServiceName:     scheduling.ServiceDisplayName(service.Name, service.Label, service.ID.String()),
		DurationMinutes: input.DurationMinutes,
		Date:            day,
		StartTime:       start.String(),
		EndTime:         candidate.End().String(),
	}

	err = utils.WithDayLock(c.Request.Context(), config.RDB, userID, input.Date, func(ctx context.Context) error {
		existing, err := dayIntervals(userID, day, uuid.Nil)
		if err != nil {
			return err
		}
		blocks, err := dayBlocks(userID, day)
		if err != nil {
			return err
		}
		if err := scheduling.CanPlaceWithBlocks(candidate, existing, blocks); err != nil {
			return err
		}
		return config.DB.WithContext(ctx).Create(&appointment).Error
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointment edits a booking. Completed appointments are immutable
// and can only be deleted.
func UpdateAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("user_id = ? AND id = ?", userID, apptUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := scheduling.CheckEditable(appointment.Completed); err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	// Apply requested fields onto a copy, then validate the result as a whole.
	if input.ClientName != nil {
		appointment.ClientName = trimmed(*input.ClientName)
	}
	if input.Phone != nil {
		appointment.Phone = trimmed(*input.Phone)
	}
	if input.DurationMinutes != nil {
		appointment.DurationMinutes = *input.DurationMinutes
	}
	if input.ServiceID != nil {
		appointment.ServiceID = *input.ServiceID
	}

	if err := scheduling.ValidateBooking(appointment.ClientName, appointment.Phone, appointment.ServiceID.String(), appointment.DurationMinutes); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	day := appointment.Date
	if input.Date != nil {
		day, err = utils.ParseDay(*input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	startStr := appointment.StartTime
	if input.StartTime != nil {
		startStr = *input.StartTime
	}
	start, err := scheduling.ParseTimeOfDay(startStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start time, expected HH:MM")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	opening, closing := gridFor(&user)
	if !slotOnGrid(start, opening, closing) {
		utils.RespondWithError(c, http.StatusBadRequest, "Start time is not an available slot")
		return
	}

	// Re-snapshot the service name on every edit so renames made since the
	// booking show up, same as at creation.
	var service models.Service
	if err := config.DB.Where("user_id = ? AND id = ?", userID, appointment.ServiceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	appointment.ServiceName = scheduling.ServiceDisplayName(service.Name, service.Label, service.ID.String())

	candidate := scheduling.Interval{Start: start, DurationMinutes: appointment.DurationMinutes}
	appointment.Date = day
	appointment.StartTime = start.String()
	appointment.EndTime = candidate.End().String()

	err = utils.WithDayLock(c.Request.Context(), config.RDB, userID, day.Format(utils.DateLayout), func(ctx context.Context) error {
		// The record being edited must not conflict with itself.
		existing, err := dayIntervals(userID, day, appointment.ID)
		if err != nil {
			return err
		}
		blocks, err := dayBlocks(userID, day)
		if err != nil {
			return err
		}
		if err := scheduling.CanPlaceWithBlocks(candidate, existing, blocks); err != nil {
			return err
		}
		return config.DB.WithContext(ctx).Save(&appointment).Error
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes a booking. Deletion is allowed regardless of
// completion state.
func DeleteAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, apptUUID).
		Delete(&models.Appointment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// CompleteAppointment closes out a visit: it snapshots the service price into
// a ledger entry and marks the appointment done, in one transaction. Any
// precondition failure leaves both records untouched.
func CompleteAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("user_id = ? AND id = ?", userID, apptUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var service models.Service
	serviceFound := true
	if err := config.DB.Where("user_id = ? AND id = ?", userID, appointment.ServiceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			serviceFound = false
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := scheduling.CheckCompletion(appointment.Completed, serviceFound, service.Price); err != nil {
		respondSchedulingError(c, err)
		return
	}

	now := time.Now()
	entry := models.LedgerEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        service.Price,
		Direction:     models.DirectionIn,
		Category:      models.CategoryService,
		AppointmentID: &appointment.ID,
		ServiceID:     &service.ID,
		ClientName:    appointment.ClientName,
		CreatedAt:     now,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create ledger entry")
		return
	}

	if err := tx.Model(&appointment).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": &now,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to complete appointment")
		return
	}

	tx.Commit()

	appointment.Completed = true
	appointment.CompletedAt = &now

	c.JSON(http.StatusOK, gin.H{
		"appointment": appointment,
		"ledgerEntry": entry,
	})
}

// respondSchedulingError maps core scheduling errors onto HTTP statuses.
func respondSchedulingError(c *gin.Context, err error) {
	var vErr *scheduling.ValidationError
	switch {
	case errors.As(err, &vErr), errors.Is(err, scheduling.ErrDurationNotAllowed):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrSlotConflict),
		errors.Is(err, scheduling.ErrTimeBlocked),
		errors.Is(err, scheduling.ErrAlreadyCompleted),
		errors.Is(err, utils.ErrAgendaBusy):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, scheduling.ErrServiceNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, scheduling.ErrInvalidPrice):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func uuidOrEmpty(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
