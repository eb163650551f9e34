package models

import "time"

// Perfil público do barbeiro; o login fica no User (role = barber)
type BarberProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio       string `gorm:"size:255" json:"bio"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Active    bool   `gorm:"default:true" json:"active"`

	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
