package handlers

import (
	"net/http"

	"restaurant-reviews-api/config"
	"restaurant-reviews-api/middleware"
	"restaurant-reviews-api/models"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// ListCategories returns all categories
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Find(&categories).Error; err != nil {
		failStorage(c, "Failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory stores a new category. Names are unique system-wide.
func CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Category{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		failStorage(c, "Failed to create category", err)
		return
	}
	if count > 0 {
		failValidation(c, map[string]string{"name": "The name has already been taken"})
		return
	}

	category := models.Category{Name: req.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		failStorage(c, "Failed to create category", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// DeleteCategory removes a category and its restaurant links.
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		failNotFound(c, "Category not found")
		return
	}
	if err := config.DB.Select("Restaurants").Delete(&category).Error; err != nil {
		failStorage(c, "Failed to delete category", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachCategory links a category to a restaurant. Owner only; attaching an
// already-linked category is a no-op.
func AttachCategory(c *gin.Context) {
	restaurant, category, ok := restaurantAndCategory(c)
	if !ok {
		return
	}
	if restaurant.UserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this restaurant")
		return
	}
	if err := config.DB.Model(restaurant).Association("Categories").Append(category); err != nil {
		failStorage(c, "Failed to attach category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category attached"})
}

// DetachCategory unlinks a category from a restaurant. Owner only.
func DetachCategory(c *gin.Context) {
	restaurant, category, ok := restaurantAndCategory(c)
	if !ok {
		return
	}
	if restaurant.UserID != middleware.GetUserID(c) {
		failForbidden(c, "You do not own this restaurant")
		return
	}
	if err := config.DB.Model(restaurant).Association("Categories").Delete(category); err != nil {
		failStorage(c, "Failed to detach category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category detached"})
}

func restaurantAndCategory(c *gin.Context) (*models.Restaurant, *models.Category, bool) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return nil, nil, false
	}
	var category models.Category
	if err := config.DB.First(&category, c.Param("categoryId")).Error; err != nil {
		failNotFound(c, "Category not found")
		return nil, nil, false
	}
	return &restaurant, &category, true
}
