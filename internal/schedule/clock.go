package schedule

import (
	"errors"
	"fmt"
	"time"
)

const MinutesPerDay = 24 * 60

var (
	ErrInvalidClock    = errors.New("invalid clock string, expected HH:MM")
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrCrossesMidnight: start + duration passaria da meia-noite.
	// Agendamento atravessando o dia não é suportado.
	ErrCrossesMidnight = errors.New("appointment would cross midnight")
)

// ParseClock converte "HH:MM" (24h) em minutos desde a meia-noite.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return h*60 + m, nil
}

// FormatClock converte minutos desde a meia-noite em "HH:MM",
// sempre com zero à esquerda nos dois componentes.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeEndTime deriva o fim do agendamento: start + duração.
// Recusa durações não positivas e spans que passam da meia-noite.
func ComputeEndTime(start string, durationMin int) (string, error) {
	if durationMin <= 0 {
		return "", ErrInvalidDuration
	}

	startMin, err := ParseClock(start)
	if err != nil {
		return "", err
	}

	endMin := startMin + durationMin
	if endMin > MinutesPerDay {
		return "", ErrCrossesMidnight
	}

	return FormatClock(endMin), nil
}

// NormalizeDate ancora a data no meio-dia UTC. O componente de hora
// do campo date não carrega semântica; meio-dia evita que a conversão
// de fuso desloque a data de calendário.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// SameCalendarDayOrLater compara só as datas de calendário,
// ignorando hora e fuso de cada lado.
func SameCalendarDayOrLater(t, ref time.Time) bool {
	return !NormalizeDate(t).Before(NormalizeDate(ref))
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
