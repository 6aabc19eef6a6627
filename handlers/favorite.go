package handlers

import (
	"net/http"

	"restaurant-reviews-api/config"
	"restaurant-reviews-api/middleware"
	"restaurant-reviews-api/models"

	"github.com/gin-gonic/gin"
)

type AddFavoriteRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

// ListFavorites returns the caller's favorited restaurants
func ListFavorites(c *gin.Context) {
	user := models.User{ID: middleware.GetUserID(c)}
	var restaurants []models.Restaurant
	if err := config.DB.Model(&user).Association("FavoriteRestaurants").Find(&restaurants); err != nil {
		failStorage(c, "Failed to list favorites", err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// AddFavorite marks a restaurant as a favorite of the caller. The pair is
// unique; favoriting twice is a validation failure.
func AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}

	userID := middleware.GetUserID(c)
	var count int64
	if err := config.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurant.ID).
		Count(&count).Error; err != nil {
		failStorage(c, "Failed to add favorite", err)
		return
	}
	if count > 0 {
		failValidation(c, map[string]string{"restaurant_id": "Restaurant is already a favorite"})
		return
	}

	favorite := models.Favorite{UserID: userID, RestaurantID: restaurant.ID}
	if err := config.DB.Create(&favorite).Error; err != nil {
		failStorage(c, "Failed to add favorite", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Restaurant favorited",
		"data":    favorite,
	})
}

// RemoveFavorite unmarks a restaurant from the caller's favorites
func RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var favorite models.Favorite
	if err := config.DB.
		Where("user_id = ? AND restaurant_id = ?", userID, c.Param("restaurantId")).
		First(&favorite).Error; err != nil {
		failNotFound(c, "Favorite not found")
		return
	}
	if err := config.DB.
		Where("user_id = ? AND restaurant_id = ?", favorite.UserID, favorite.RestaurantID).
		Delete(&models.Favorite{}).Error; err != nil {
		failStorage(c, "Failed to remove favorite", err)
		return
	}
	c.Status(http.StatusNoContent)
}
