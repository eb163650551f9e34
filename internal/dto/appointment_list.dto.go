package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
}

func ToAppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Reference:   ap.Reference,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
		})
	}
	return out
}
