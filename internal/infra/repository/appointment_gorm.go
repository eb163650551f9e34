package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", serviceID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Weekly template
// --------------------------------------------------

func (r *AppointmentGormRepository) ListWorkingDays(
	ctx context.Context,
	barberID uint,
) ([]models.WorkingDay, error) {

	var days []models.WorkingDay
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBlockingAppointments(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND date = ? AND status IN ?",
			barberID,
			schedule.NormalizeDate(date),
			domain.BlockingStatuses,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// BookAppointment fecha a corrida entre validar e persistir: dentro
// da transação, os agendamentos do dia são relidos com FOR UPDATE e o
// conflito é reavaliado pelo predicado do motor antes do insert. A
// constraint parcial de unicidade fica de rede de segurança; violar
// qualquer um dos dois vira recusa slot_taken, nunca erro de servidor.
func (r *AppointmentGormRepository) BookAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	startMin, err := schedule.ParseClock(ap.StartTime)
	if err != nil {
		return err
	}
	endMin, err := schedule.ParseClock(ap.EndTime)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var held []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "start_time", "end_time", "status").
			Where(
				"barber_id = ? AND date = ? AND status IN ?",
				ap.BarberID,
				ap.Date,
				domain.BlockingStatuses,
			).
			Find(&held).Error; err != nil {
			return err
		}

		for _, h := range held {
			hStart, errS := schedule.ParseClock(h.StartTime)
			hEnd, errE := schedule.ParseClock(h.EndTime)
			if errS != nil || errE != nil {
				continue
			}
			if schedule.Overlaps(startMin, endMin, hStart, hEnd) {
				return httperr.ErrBusinessDetail(
					"slot_taken",
					fmt.Sprintf("conflicts with appointment %d", h.ID),
				)
			}
		}

		return tx.Create(ap).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// outra transação ganhou o slot entre a releitura e o commit
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByReference(
	ctx context.Context,
	reference string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Where("reference = ?", reference).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Agenda / reporting
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID,
			from,
			to,
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
