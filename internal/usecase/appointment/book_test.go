package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domainap "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/schedule"
)

// ======================================================
// Fake repository
// ======================================================

type fakeRepo struct {
	barber  models.User
	service models.Service
	days    []models.WorkingDay
	booked  []models.Appointment
}

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		barber:  models.User{ID: 1, Name: "Jorge", Role: models.RoleBarber},
		service: models.Service{ID: 2, Name: "Corte", DurationMin: 30, Active: true},
	}
	r.days = append(r.days, models.WorkingDay{BarberID: 1, Weekday: "sunday", Active: false})
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		r.days = append(r.days, models.WorkingDay{
			BarberID: 1, Weekday: d, Active: true, StartTime: "09:00", EndTime: "18:00",
		})
	}
	return r
}

func (r *fakeRepo) GetBarber(_ context.Context, id uint) (*models.User, error) {
	if id != r.barber.ID {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	b := r.barber
	return &b, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if id != r.service.ID {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	s := r.service
	return &s, nil
}

func (r *fakeRepo) ListWorkingDays(_ context.Context, _ uint) ([]models.WorkingDay, error) {
	return r.days, nil
}

func (r *fakeRepo) ListBlockingAppointments(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	day := schedule.NormalizeDate(date)
	var out []models.Appointment
	for _, ap := range r.booked {
		if ap.BarberID == barberID && ap.Date.Equal(day) &&
			(ap.Status == string(domainap.StatusPending) || ap.Status == string(domainap.StatusConfirmed)) {
			out = append(out, ap)
		}
	}
	return out, nil
}

// simula a constraint de unicidade do Postgres
func (r *fakeRepo) BookAppointment(ctx context.Context, ap *models.Appointment) error {
	newStart, _ := schedule.ParseClock(ap.StartTime)
	newEnd, _ := schedule.ParseClock(ap.EndTime)

	held, _ := r.ListBlockingAppointments(ctx, ap.BarberID, ap.Date)
	for _, h := range held {
		hStart, _ := schedule.ParseClock(h.StartTime)
		hEnd, _ := schedule.ParseClock(h.EndTime)
		if schedule.Overlaps(newStart, newEnd, hStart, hEnd) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	ap.ID = uint(len(r.booked) + 1)
	r.booked = append(r.booked, *ap)
	return nil
}

func (r *fakeRepo) GetAppointmentForBarber(_ context.Context, id, barberID uint) (*models.Appointment, error) {
	for i := range r.booked {
		if r.booked[i].ID == id && r.booked[i].BarberID == barberID {
			ap := r.booked[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) GetAppointmentForClient(_ context.Context, id, clientID uint) (*models.Appointment, error) {
	for i := range r.booked {
		if r.booked[i].ID == id && r.booked[i].ClientID == clientID {
			ap := r.booked[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) GetAppointmentByReference(_ context.Context, ref string) (*models.Appointment, error) {
	for i := range r.booked {
		if r.booked[i].Reference == ref {
			ap := r.booked[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range r.booked {
		if r.booked[i].ID == ap.ID {
			r.booked[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.booked {
		if ap.BarberID == barberID && !ap.Date.Before(from) && ap.Date.Before(to) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.booked {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domainap.Repository = (*fakeRepo)(nil)

// ======================================================
// Tests
// ======================================================

func newBookUC(repo *fakeRepo) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		avail: cache.NewAvailability(nil, 0),
		tz:    "UTC",
		now: func() time.Time {
			return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		},
	}
}

func TestBookAppointmentSuccess(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  10,
		BarberID:  1,
		ServiceID: 2,
		Date:      "2026-03-09", // segunda
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != "pending" {
		t.Fatalf("status = %s, want pending", ap.Status)
	}
	if ap.EndTime != "10:30" {
		t.Fatalf("end time = %s, want 10:30", ap.EndTime)
	}
	if ap.Reference == "" {
		t.Fatal("booking reference not set")
	}

	want := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	if !ap.Date.Equal(want) {
		t.Fatalf("date = %s, want noon UTC %s", ap.Date, want)
	}
}

func TestBookAppointmentSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, BookAppointmentInput{
		ClientID: 10, BarberID: 1, ServiceID: 2,
		Date: "2026-03-09", Time: "10:00",
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := uc.Execute(ctx, BookAppointmentInput{
		ClientID: 11, BarberID: 1, ServiceID: 2,
		Date: "2026-03-09", Time: "10:15",
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}

	// encostado passa
	if _, err := uc.Execute(ctx, BookAppointmentInput{
		ClientID: 11, BarberID: 1, ServiceID: 2,
		Date: "2026-03-09", Time: "10:30",
	}); err != nil {
		t.Fatalf("back-to-back booking failed: %v", err)
	}
}

func TestBookAppointmentRejections(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		in   BookAppointmentInput
		code string
	}{
		{"past date", BookAppointmentInput{ClientID: 10, BarberID: 1, ServiceID: 2, Date: "2026-02-20", Time: "10:00"}, "past_date"},
		{"sunday off", BookAppointmentInput{ClientID: 10, BarberID: 1, ServiceID: 2, Date: "2026-03-15", Time: "10:00"}, "not_working_day"},
		{"before opening", BookAppointmentInput{ClientID: 10, BarberID: 1, ServiceID: 2, Date: "2026-03-09", Time: "08:00"}, "outside_working_hours"},
		{"span past closing", BookAppointmentInput{ClientID: 10, BarberID: 1, ServiceID: 2, Date: "2026-03-09", Time: "17:45"}, "outside_working_hours"},
		{"bad date", BookAppointmentInput{ClientID: 10, BarberID: 1, ServiceID: 2, Date: "09/03/2026", Time: "10:00"}, "invalid_date"},
		{"bad time", BookAppointmentInput{ClientID: 10, BarberID: 1, ServiceID: 2, Date: "2026-03-09", Time: "10h00"}, "invalid_date_or_time"},
		{"unknown service", BookAppointmentInput{ClientID: 10, BarberID: 1, ServiceID: 99, Date: "2026-03-09", Time: "10:00"}, "service_not_found"},
		{"unknown barber", BookAppointmentInput{ClientID: 10, BarberID: 99, ServiceID: 2, Date: "2026-03-09", Time: "10:00"}, "barber_not_found"},
	}

	for _, c := range cases {
		_, err := uc.Execute(ctx, c.in)
		if !httperr.IsBusiness(err, c.code) {
			t.Fatalf("%s: expected %s, got %v", c.name, c.code, err)
		}
	}

	if len(repo.booked) != 0 {
		t.Fatalf("rejected bookings must not persist, got %d rows", len(repo.booked))
	}
}
