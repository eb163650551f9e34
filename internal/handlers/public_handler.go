package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db      *gorm.DB
	config  *config.Config
	availUC *ucAppointment.GetAvailability
	repo    domain.Repository
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	availUC *ucAppointment.GetAvailability,
	repo domain.Repository,
) *PublicHandler {
	return &PublicHandler{
		db:      db,
		config:  cfg,
		availUC: availUC,
		repo:    repo,
	}
}

// ======================================================
// BARBERS
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.BarberProfile
	if err := h.db.
		Preload("User").
		Where("active = true").
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}

func (h *PublicHandler) GetBarber(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.
		Preload("User").
		Where("user_id = ? AND active = true", barberID).
		First(&profile).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var days []models.WorkingDay
	h.db.Where("barber_id = ?", barberID).Find(&days)

	c.JSON(http.StatusOK, gin.H{
		"barber":       profile,
		"working_days": days,
	})
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ======================================================
// AVAILABILITY (REUSO TOTAL DO USE CASE)
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := timezone.ParseDate(dateStr, h.config.ShopTimezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:  uint(barberID),
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
			return
		}
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// APPOINTMENT LOOKUP (por código de reserva)
// ======================================================

func (h *PublicHandler) LookupAppointment(c *gin.Context) {
	reference := c.Param("reference")

	ap, err := h.repo.GetAppointmentByReference(c.Request.Context(), reference)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference":  ap.Reference,
		"date":       ap.Date.Format("2006-01-02"),
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
		"barber":     ap.Barber.Name,
		"service":    ap.Service.Name,
	})
}
