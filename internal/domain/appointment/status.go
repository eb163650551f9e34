package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// BlockingStatuses são os status que seguram horário na agenda.
var BlockingStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// pending → confirmed
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// confirmed → completed
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// qualquer não-terminal → cancelled
func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
