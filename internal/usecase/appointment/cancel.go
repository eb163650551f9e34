package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domainap "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CancelAppointment struct {
	repo  domainap.Repository
	audit *audit.Dispatcher
	avail *cache.Availability
	tz    string
}

func NewCancelAppointment(
	repo domainap.Repository,
	auditDisp *audit.Dispatcher,
	avail *cache.Availability,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDisp,
		avail: avail,
		tz:    tz,
	}
}

// Execute cancela em nome do dono: cliente cancela o próprio
// agendamento, barbeiro cancela itens da própria agenda.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	actorRole string,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment
	var err error

	switch actorRole {
	case models.RoleClient:
		ap, err = uc.repo.GetAppointmentForClient(ctx, appointmentID, actorID)
	case models.RoleBarber:
		ap, err = uc.repo.GetAppointmentForBarber(ctx, appointmentID, actorID)
	default:
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domainap.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelamento libera o slot → disponibilidade cacheada mudou
	uc.avail.InvalidateDay(ctx, ap.BarberID, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
