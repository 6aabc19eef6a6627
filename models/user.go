package models

import (
	"time"
)

type User struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"not null"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash    string     `json:"-" gorm:"not null"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Restaurants         []Restaurant `json:"restaurants,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews             []Review     `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FavoriteRestaurants []Restaurant `json:"favorite_restaurants,omitempty" gorm:"many2many:favorites;constraint:OnDelete:CASCADE"`
}
