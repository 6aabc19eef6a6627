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

type CreateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

// ListReviews returns the reviews of one restaurant, optionally filtered by
// ?min_rating=.
func ListReviews(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}

	query := config.DB.Preload("User").Preload("Photos").Where("restaurant_id = ?", restaurant.ID)
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.Atoi(raw)
		if err != nil {
			failValidation(c, map[string]string{"min_rating": "Must be an integer"})
			return
		}
		query = query.Where("rating >= ?", minRating)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		failStorage(c, "Failed to list reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview stores a review authored by the caller.
func CreateReview(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	review := models.Review{
		Rating:       req.Rating,
		Comment:      req.Comment,
		UserID:       middleware.GetUserID(c),
		RestaurantID: restaurant.ID,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		failStorage(c, "Failed to create review", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review created successfully",
		"data":    review,
	})
}

// UpdateReview applies a partial update; only the author may change a review.
func UpdateReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		failNotFound(c, "Review not found")
		return
	}
	if review.UserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this review")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}
	if err := config.DB.Save(&review).Error; err != nil {
		failStorage(c, "Failed to update review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review updated successfully",
		"data":    review,
	})
}

// DeleteReview removes a review and its attached photos.
func DeleteReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		failNotFound(c, "Review not found")
		return
	}
	if review.UserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this review")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := models.PurgePhotos(tx, models.PhotoOwnerReview, []uint{review.ID}); err != nil {
			return err
		}
		return tx.Delete(&review).Error
	})
	if err != nil {
		failStorage(c, "Failed to delete review", err)
		return
	}
	c.Status(http.StatusNoContent)
}
