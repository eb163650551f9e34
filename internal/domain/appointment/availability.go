package appointment

import "time"

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}
