package models

import "time"

// Template semanal: no máximo uma linha por (barbeiro, dia da semana).
// Weekday guarda o nome explícito ("monday".."sunday"), nunca índice.
type WorkingDay struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"index:idx_working_day_barber_weekday,unique" json:"barber_id"`
	Weekday  string `gorm:"size:10;index:idx_working_day_barber_weekday,unique" json:"weekday"`

	Active    bool   `json:"active"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
