package appointment

import (
	"context"
	"time"

	domainap "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

type ListAppointmentsByMonth struct {
	repo domainap.Repository
}

func NewListAppointmentsByMonth(
	repo domainap.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	year int,
	month time.Month,
) ([]dto.AppointmentListDTO, error) {

	from := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barberID,
		from,
		to,
	)
	if err != nil {
		return nil, err
	}

	return dto.ToAppointmentList(appointments), nil
}
