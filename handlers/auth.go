package handlers

import (
	"net/http"

	"restaurant-reviews-api/config"
	"restaurant-reviews-api/middleware"
	"restaurant-reviews-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account and issues its first bearer token
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	// Email uniqueness is a validation failure, not a conflict
	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		failStorage(c, "Failed to register user", err)
		return
	}
	if count > 0 {
		failValidation(c, map[string]string{"email": "The email has already been taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		failStorage(c, "Failed to register user", err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		failStorage(c, "Failed to register user", err)
		return
	}

	token, err := middleware.IssueToken(config.DB, &user)
	if err != nil {
		failStorage(c, "Failed to issue token", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "User registered successfully",
		"user":         user,
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// Login verifies credentials and issues a new bearer token. Prior tokens
// for the user remain valid.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		failUnauthorized(c, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		failUnauthorized(c, "Invalid credentials")
		return
	}

	token, err := middleware.IssueToken(config.DB, &user)
	if err != nil {
		failStorage(c, "Failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Login successful",
		"user":         user,
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// Logout revokes exactly the presented token. Other sessions stay open;
// retrying with the revoked token fails authentication in the middleware.
func Logout(c *gin.Context) {
	if err := middleware.RevokeToken(config.DB, middleware.GetTokenID(c)); err != nil {
		failStorage(c, "Failed to log out", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// CurrentUser returns the authenticated user
func CurrentUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		failNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteAccount removes the caller's account. Owned restaurants, authored
// reviews, favorites and tokens cascade through foreign keys; photos hang
// off a polymorphic pair and are purged in the same transaction.
func DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var restaurantIDs []uint
		if err := tx.Model(&models.Restaurant{}).Where("user_id = ?", userID).Pluck("id", &restaurantIDs).Error; err != nil {
			return err
		}
		var reviewIDs []uint
		query := tx.Model(&models.Review{}).Where("user_id = ?", userID)
		if len(restaurantIDs) > 0 {
			query = query.Or("restaurant_id IN ?", restaurantIDs)
		}
		if err := query.Pluck("id", &reviewIDs).Error; err != nil {
			return err
		}
		if err := models.PurgePhotos(tx, models.PhotoOwnerRestaurant, restaurantIDs); err != nil {
			return err
		}
		if err := models.PurgePhotos(tx, models.PhotoOwnerReview, reviewIDs); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		failStorage(c, "Failed to delete account", err)
		return
	}
	c.Status(http.StatusNoContent)
}
