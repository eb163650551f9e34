package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// DashboardHandler agrega os números do painel administrativo.
type DashboardHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewDashboardHandler(db *gorm.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	today := schedule.NormalizeDate(timezone.NowIn(h.cfg.ShopTimezone))

	var (
		todayCount   int64
		pendingCount int64
		totalCount   int64
		clientCount  int64
		revenue      float64
	)

	if err := h.db.Model(&models.Appointment{}).
		Where("date = ? AND status IN ?", today, appointment.BlockingStatuses).
		Count(&todayCount).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Where("status = ?", appointment.StatusPending).
		Count(&pendingCount).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Count(&totalCount).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("role = ?", models.RoleClient).
		Count(&clientCount).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}

	// receita considera apenas atendimentos concluídos
	if err := h.db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.status = ?", appointment.StatusCompleted).
		Scan(&revenue).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments_today":   todayCount,
		"appointments_pending": pendingCount,
		"appointments_total":   totalCount,
		"clients_total":        clientCount,
		"revenue_completed":    revenue,
	})
}
