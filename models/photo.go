package models

import (
	"time"

	"gorm.io/gorm"
)

// Owner kind tags stored in photos.owner_type. New attachable kinds register
// a resolver in photoOwners below.
const (
	PhotoOwnerRestaurant = "restaurants"
	PhotoOwnerReview     = "reviews"
)

type Photo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"not null"`
	OwnerType string    `json:"owner_type" gorm:"not null;index:idx_photos_owner"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;index:idx_photos_owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// photoOwners resolves a polymorphic (owner_type, owner_id) pair to the user
// who controls the owning row. SQLite cannot enforce a foreign key over the
// tagged pair, so this lookup is the integrity and authorization check.
var photoOwners = map[string]func(db *gorm.DB, ownerID uint) (uint, bool, error){
	PhotoOwnerRestaurant: func(db *gorm.DB, ownerID uint) (uint, bool, error) {
		var restaurant Restaurant
		if err := db.Select("id", "user_id").First(&restaurant, ownerID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return 0, false, nil
			}
			return 0, false, err
		}
		return restaurant.UserID, true, nil
	},
	PhotoOwnerReview: func(db *gorm.DB, ownerID uint) (uint, bool, error) {
		var review Review
		if err := db.Select("id", "user_id").First(&review, ownerID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return 0, false, nil
			}
			return 0, false, err
		}
		return review.UserID, true, nil
	},
}

// ResolvePhotoOwner returns the id of the user controlling the owner row,
// or ok=false when the tag is unknown or the row does not exist.
func ResolvePhotoOwner(db *gorm.DB, ownerType string, ownerID uint) (uint, bool, error) {
	resolve, known := photoOwners[ownerType]
	if !known {
		return 0, false, nil
	}
	return resolve(db, ownerID)
}

// PurgePhotos removes all photos attached to the given owner rows. Callers
// run this inside the transaction that deletes the owners themselves.
func PurgePhotos(tx *gorm.DB, ownerType string, ownerIDs []uint) error {
	if len(ownerIDs) == 0 {
		return nil
	}
	return tx.Where("owner_type = ? AND owner_id IN ?", ownerType, ownerIDs).Delete(&Photo{}).Error
}
