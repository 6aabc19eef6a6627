package models

import "time"

// AccessToken backs one issued bearer token. The signed token carries this
// row's id; deleting the row revokes that token and no other.
type AccessToken struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
