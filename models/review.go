package models

import "time"

type Review struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Rating       int     `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment      *string `json:"comment"`
	UserID       uint    `json:"user_id" gorm:"not null"`
	RestaurantID uint    `json:"restaurant_id" gorm:"not null"`
	User         *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`

	Photos []Photo `json:"photos,omitempty" gorm:"polymorphic:Owner;polymorphicValue:reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
