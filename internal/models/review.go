package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `json:"barber_id"`
	ClientID uint `json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:255" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
