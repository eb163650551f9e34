package appointment

import (
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
)

func toScheduleDays(days []models.WorkingDay) []schedule.WorkingDay {
	out := make([]schedule.WorkingDay, 0, len(days))
	for _, d := range days {
		out = append(out, schedule.WorkingDay{
			Day:       schedule.Weekday(d.Weekday),
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}
	return out
}

func toBookedIntervals(apps []models.Appointment) []schedule.BookedInterval {
	out := make([]schedule.BookedInterval, 0, len(apps))
	for _, ap := range apps {
		out = append(out, schedule.BookedInterval{
			ID:        ap.ID,
			StartTime: ap.StartTime,
			EndTime:   ap.EndTime,
			Status:    ap.Status,
		})
	}
	return out
}
