package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domainap "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CompleteAppointment struct {
	repo  domainap.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCompleteAppointment(
	repo domainap.Repository,
	auditDisp *audit.Dispatcher,
	tz string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDisp,
		tz:    tz,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domainap.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
