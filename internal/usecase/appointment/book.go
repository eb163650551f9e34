package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	avail *cache.Availability
	tz    string

	// injetável nos testes; em produção é o relógio do fuso da loja
	now func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	avail *cache.Availability,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: auditDisp,
		avail: avail,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data no fuso da barbearia
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date, uc.tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 2. Barbeiro + serviço
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 3. Validação pelo motor de disponibilidade
	// --------------------------------------------------
	days, err := uc.repo.ListWorkingDays(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListBlockingAppointments(ctx, barber.ID, date)
	if err != nil {
		return nil, err
	}

	res, err := schedule.ValidateBooking(schedule.BookingInput{
		Days:        toScheduleDays(days),
		Date:        date,
		StartTime:   in.Time,
		DurationMin: service.DurationMin,
		Existing:    toBookedIntervals(existing),
		Today:       uc.now(),
	})
	if err != nil {
		if rej, ok := schedule.IsRejection(err); ok {
			if rej.Reason == schedule.ReasonSlotTaken {
				return nil, httperr.ErrBusinessDetail(
					string(rej.Reason),
					fmt.Sprintf("conflicts with appointment %d", rej.ConflictID),
				)
			}
			return nil, httperr.ErrBusiness(string(rej.Reason))
		}
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4. Persistência (revalida conflito sob lock)
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference: uuid.NewString(),
		BarberID:  barber.ID,
		ServiceID: service.ID,
		ClientID:  in.ClientID,
		Date:      schedule.NormalizeDate(date),
		StartTime: in.Time,
		EndTime:   res.EndTime,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.BookAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.avail.InvalidateDay(ctx, barber.ID, in.Date)

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
