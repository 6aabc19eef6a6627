package handlers

import (
	"net/http"
	"strconv"

	"restaurant-reviews-api/config"
	"restaurant-reviews-api/middleware"
	"restaurant-reviews-api/models"

	"github.com/gin-gonic/gin"
)

type CreatePhotoRequest struct {
	URL string `json:"url" binding:"required,max=2048"`
}

// AddRestaurantPhoto attaches a photo to a restaurant (owner only)
func AddRestaurantPhoto(c *gin.Context) {
	createPhoto(c, models.PhotoOwnerRestaurant)
}

// AddReviewPhoto attaches a photo to a review (author only)
func AddReviewPhoto(c *gin.Context) {
	createPhoto(c, models.PhotoOwnerReview)
}

// createPhoto resolves the polymorphic owner, verifies it exists and belongs
// to the caller, then stores the photo against the (owner_type, owner_id) pair.
func createPhoto(c *gin.Context, ownerType string) {
	ownerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		failNotFound(c, "Owner not found")
		return
	}

	ownerUserID, found, err := models.ResolvePhotoOwner(config.DB, ownerType, uint(ownerID))
	if err != nil {
		failStorage(c, "Failed to add photo", err)
		return
	}
	if !found {
		failNotFound(c, "Owner not found")
		return
	}
	if ownerUserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this resource")
		return
	}

	var req CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	photo := models.Photo{
		URL:       req.URL,
		OwnerType: ownerType,
		OwnerID:   uint(ownerID),
	}
	if err := config.DB.Create(&photo).Error; err != nil {
		failStorage(c, "Failed to add photo", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Photo added successfully",
		"data":    photo,
	})
}

// DeletePhoto removes a photo; only the owner of the attached resource may.
func DeletePhoto(c *gin.Context) {
	var photo models.Photo
	if err := config.DB.First(&photo, c.Param("id")).Error; err != nil {
		failNotFound(c, "Photo not found")
		return
	}

	ownerUserID, found, err := models.ResolvePhotoOwner(config.DB, photo.OwnerType, photo.OwnerID)
	if err != nil {
		failStorage(c, "Failed to delete photo", err)
		return
	}
	if found && ownerUserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this resource")
		return
	}

	if err := config.DB.Delete(&photo).Error; err != nil {
		failStorage(c, "Failed to delete photo", err)
		return
	}
	c.Status(http.StatusNoContent)
}
