package handlers

import (
	"net/http"
	"strconv"

	"restaurant-reviews-api/config"
	"restaurant-reviews-api/middleware"
	"restaurant-reviews-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Address string  `json:"address" binding:"required,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateRestaurantRequest is an explicit patch: only present fields change.
type UpdateRestaurantRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Address *string `json:"address" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
}

// ListRestaurants returns all restaurants with reviews, photos and owner
// eagerly loaded — one bulk query per relation, never one per restaurant.
// Supports ?search= (name substring) and ?min_rating= filters.
func ListRestaurants(c *gin.Context) {
	query := config.DB.Preload("Reviews").Preload("Photos").Preload("User")

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.Atoi(raw)
		if err != nil {
			failValidation(c, map[string]string{"min_rating": "Must be an integer"})
			return
		}
		query = query.Where("id IN (?)",
			config.DB.Model(&models.Review{}).Select("restaurant_id").Where("rating >= ?", minRating))
	}

	var restaurants []models.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		failStorage(c, "Failed to list restaurants", err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// CreateRestaurant stores a new restaurant owned by the caller. The owner is
// always the authenticated user, never client input.
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	restaurant := models.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		UserID:  middleware.GetUserID(c),
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		failStorage(c, "Failed to create restaurant", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Restaurant created successfully",
		"data":    restaurant,
	})
}

// GetRestaurant returns a single restaurant with its relations. Readable by
// any authenticated caller.
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	err := config.DB.Preload("Reviews").Preload("Photos").Preload("User").
		First(&restaurant, c.Param("id")).Error
	if err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// UpdateRestaurant applies a partial update. Only the owner may update;
// ownership is exact id equality, there is no admin override.
func UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}
	if restaurant.UserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this restaurant")
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.Phone != nil {
		restaurant.Phone = req.Phone
	}
	if err := config.DB.Save(&restaurant).Error; err != nil {
		failStorage(c, "Failed to update restaurant", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Restaurant updated successfully",
		"data":    restaurant,
	})
}

// DeleteRestaurant removes a restaurant with its reviews, photos, category
// links and favorites. Reviews and join rows cascade through foreign keys;
// photos of the restaurant and of its reviews go in the same transaction.
func DeleteRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}
	if restaurant.UserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this restaurant")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var reviewIDs []uint
		if err := tx.Model(&models.Review{}).Where("restaurant_id = ?", restaurant.ID).Pluck("id", &reviewIDs).Error; err != nil {
			return err
		}
		if err := models.PurgePhotos(tx, models.PhotoOwnerRestaurant, []uint{restaurant.ID}); err != nil {
			return err
		}
		if err := models.PurgePhotos(tx, models.PhotoOwnerReview, reviewIDs); err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
	if err != nil {
		failStorage(c, "Failed to delete restaurant", err)
		return
	}
	c.Status(http.StatusNoContent)
}
