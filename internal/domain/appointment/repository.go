package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Weekly template --------
	ListWorkingDays(
		ctx context.Context,
		barberID uint,
	) ([]models.WorkingDay, error)

	// -------- Appointment (create / conflict) --------

	// Agendamentos que seguram horário (pending/confirmed) na data.
	ListBlockingAppointments(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// BookAppointment persiste dentro de uma transação, revalidando o
	// conflito com lock; violação da constraint de unicidade volta
	// como recusa de negócio slot_taken, nunca como falha de servidor.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	GetAppointmentByReference(
		ctx context.Context,
		reference string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Agenda / reporting --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
