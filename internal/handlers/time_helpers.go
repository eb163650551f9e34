package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// parseDateQuery interpreta "YYYY-MM-DD" no fuso da barbearia;
// vazio vale hoje.
func parseDateQuery(dateStr, tz string) (time.Time, error) {
	if dateStr == "" {
		return timezone.NowIn(tz), nil
	}
	return timezone.ParseDate(dateStr, tz)
}
