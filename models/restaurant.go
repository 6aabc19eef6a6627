package models

import "time"

type Restaurant struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"not null"`
	Address string  `json:"address" gorm:"not null"`
	Phone   *string `json:"phone"`
	UserID  uint    `json:"user_id" gorm:"not null"`
	User    *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`

	Reviews     []Review   `json:"reviews,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Photos      []Photo    `json:"photos,omitempty" gorm:"polymorphic:Owner;polymorphicValue:restaurants"`
	Categories  []Category `json:"categories,omitempty" gorm:"many2many:category_restaurant;constraint:OnDelete:CASCADE"`
	FavoritedBy []User     `json:"-" gorm:"many2many:favorites;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
