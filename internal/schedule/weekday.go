package schedule

import "time"

// ===============================
// Weekday
// ===============================

// Weekday é o dia da semana por nome explícito (domingo = 0,
// mesma convenção do time.Weekday de ponta a ponta).
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// indexado por time.Weekday (Sunday = 0)
var weekdays = [7]Weekday{
	Sunday,
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
}

func WeekdayOf(t time.Time) Weekday {
	return weekdays[int(t.Weekday())]
}

// IsValidWeekday reporta se o nome corresponde a um dia conhecido.
func IsValidWeekday(d Weekday) bool {
	for _, w := range weekdays {
		if w == d {
			return true
		}
	}
	return false
}
