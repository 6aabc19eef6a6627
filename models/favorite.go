package models

import "time"

// Favorite is the join row between a user and a restaurant they favorited.
// The (user_id, restaurant_id) pair is the primary key, so a restaurant can
// appear at most once in a user's favorites.
type Favorite struct {
	UserID       uint      `json:"user_id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
