package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domainap "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
)

type GetAvailability struct {
	repo           domainap.Repository
	avail          *cache.Availability
	granularityMin int
}

func NewGetAvailability(
	repo domainap.Repository,
	avail *cache.Availability,
	granularityMin int,
) *GetAvailability {
	return &GetAvailability{
		repo:           repo,
		avail:          avail,
		granularityMin: granularityMin,
	}
}

// Execute devolve os horários de início livres da data, como lista
// de "HH:MM" em ordem crescente. Dia sem expediente → lista vazia.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domainap.AvailabilityInput,
) ([]string, error) {

	dateKey := in.Date.Format("2006-01-02")

	if slots, ok := uc.avail.GetSlots(ctx, in.BarberID, in.ServiceID, dateKey); ok {
		return slots, nil
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	days, err := uc.repo.ListWorkingDays(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListBlockingAppointments(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.AvailableSlots(schedule.SlotQuery{
		Days:           toScheduleDays(days),
		Date:           in.Date,
		DurationMin:    service.DurationMin,
		Existing:       toBookedIntervals(existing),
		GranularityMin: uc.granularityMin,
	})
	if err != nil {
		return nil, err
	}

	uc.avail.SetSlots(ctx, in.BarberID, in.ServiceID, dateKey, slots)

	return slots, nil
}
