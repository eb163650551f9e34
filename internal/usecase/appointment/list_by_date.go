package appointment

import (
	"context"
	"time"

	domainap "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
)

type ListAppointmentsByDate struct {
	repo domainap.Repository
}

func NewListAppointmentsByDate(
	repo domainap.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	// datas armazenadas são normalizadas; [dia, dia+1) cobre o dia todo
	from := schedule.NormalizeDate(date)
	to := from.Add(24 * time.Hour)

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
