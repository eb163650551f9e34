package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	config *config.Config

	bookUC        *ucAppointment.BookAppointment
	confirmUC     *ucAppointment.ConfirmAppointment
	completeUC    *ucAppointment.CompleteAppointment
	cancelUC      *ucAppointment.CancelAppointment
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth

	repo domain.Repository
}

func NewAppointmentHandler(
	cfg *config.Config,
	bookUC *ucAppointment.BookAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:        cfg,
		bookUC:        bookUC,
		confirmUC:     confirmUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		repo:          repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM
	Notes     string `json:"notes"`
}

// ======================================================
// CREATE (cliente autenticado)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := middleware.UserID(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(
		c.Request.Context(),
		ucAppointment.BookAppointmentInput{
			ClientID:  clientID,
			BarberID:  req.BarberID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
			Notes:     req.Notes,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST (cliente: meus agendamentos)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := middleware.UserID(c)

	apps, err := h.repo.ListAppointmentsForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": apps})
}

// ======================================================
// AGENDA (barbeiro)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := middleware.UserID(c)

	date, err := parseDateQuery(c.Query("date"), h.config.ShopTimezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	apps, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date.Format("2006-01-02"),
		"appointments": apps,
	})
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID := middleware.UserID(c)

	monthStr := c.DefaultQuery("month", timezone.NowIn(h.config.ShopTimezone).Format("2006-01"))
	ref, err := time.Parse("2006-01", monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido, use YYYY-MM.")
		return
	}

	apps, err := h.listByMonthUC.Execute(c.Request.Context(), barberID, ref.Year(), ref.Month())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":        monthStr,
		"appointments": apps,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	barberID := middleware.UserID(c)

	appointmentID, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), barberID, appointmentID)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := middleware.UserID(c)

	appointmentID, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barberID, appointmentID)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := middleware.UserID(c)
	actorRole := middleware.UserRole(c)

	appointmentID, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actorID, actorRole, appointmentID)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

// mapBookingErrors traduz recusa de negócio em resposta 4xx com o
// motivo específico; slot_taken vira 409 com o conflito identificado.
func mapBookingErrors(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Erro ao criar agendamento.")
		return
	}

	switch be.Code {
	case "slot_taken":
		msg := "Horário acabou de ser reservado, escolha outro."
		if be.Detail != "" {
			msg = msg + " (" + be.Detail + ")"
		}
		httperr.Conflict(c, be.Code, msg)
	case "past_date":
		httperr.BadRequest(c, be.Code, "Data no passado.")
	case "not_working_day":
		httperr.BadRequest(c, be.Code, "Barbeiro não atende nesse dia.")
	case "outside_working_hours":
		httperr.BadRequest(c, be.Code, "Fora do horário de atendimento.")
	case "barber_not_found":
		httperr.BadRequest(c, be.Code, "Barbeiro não encontrado.")
	case "service_not_found":
		httperr.BadRequest(c, be.Code, "Serviço não encontrado.")
	case "invalid_date", "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "Data ou hora inválida.")
	default:
		httperr.BadRequest(c, be.Code, "Não foi possível agendar.")
	}
}

func mapStateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
	default:
		httperr.Internal(c, "appointment_update_failed", "Erro ao atualizar agendamento.")
	}
}
