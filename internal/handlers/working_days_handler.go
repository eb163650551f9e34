package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
)

type WorkingDaysHandler struct {
	db *gorm.DB
}

func NewWorkingDaysHandler(db *gorm.DB) *WorkingDaysHandler {
	return &WorkingDaysHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday   string `json:"weekday" binding:"required"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingDaysUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingDaysHandler) Get(c *gin.Context) {
	barberID := middleware.UserID(c)

	var days []models.WorkingDay
	if err := h.db.
		Where("barber_id = ?", barberID).
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_days"})
		return
	}

	c.JSON(http.StatusOK, days)
}

// Update substitui o template semanal inteiro. Todas as entradas são
// revalidadas pelo motor antes de persistir; uma entrada malformada
// rejeita o lote todo e nada muda.
func (h *WorkingDaysHandler) Update(c *gin.Context) {
	barberID := middleware.UserID(c)

	var req WorkingDaysUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	candidate := make([]schedule.WorkingDay, 0, len(req.Days))
	for _, d := range req.Days {
		candidate = append(candidate, schedule.WorkingDay{
			Day:       schedule.Weekday(d.Weekday),
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	if err := schedule.ValidateWorkingDays(candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_working_days",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.WorkingDay
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingDay{
			BarberID:  barberID,
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.WorkingDay{}).Error; err != nil {
			return err
		}
		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_days"})
		return
	}

	writeAudit(h.db, barberID, "working_days_updated", "working_day", barberID, req)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
