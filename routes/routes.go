package routes

import (
	"restaurant-reviews-api/handlers"
	"restaurant-reviews-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/logout", handlers.Logout)
		auth.GET("/user", handlers.CurrentUser)
		auth.DELETE("/user", handlers.DeleteAccount)

		// Restaurants
		auth.GET("/restaurants", handlers.ListRestaurants)
		auth.POST("/restaurants", handlers.CreateRestaurant)
		auth.GET("/restaurants/:id", handlers.GetRestaurant)
		auth.PUT("/restaurants/:id", handlers.UpdateRestaurant)
		auth.PATCH("/restaurants/:id", handlers.UpdateRestaurant)
		auth.DELETE("/restaurants/:id", handlers.DeleteRestaurant)

		// Reviews
		auth.GET("/restaurants/:id/reviews", handlers.ListReviews)
		auth.POST("/restaurants/:id/reviews", handlers.CreateReview)
		auth.PUT("/reviews/:id", handlers.UpdateReview)
		auth.PATCH("/reviews/:id", handlers.UpdateReview)
		auth.DELETE("/reviews/:id", handlers.DeleteReview)

		// Categories
		auth.GET("/categories", handlers.ListCategories)
		auth.POST("/categories", handlers.CreateCategory)
		auth.DELETE("/categories/:id", handlers.DeleteCategory)
		auth.POST("/restaurants/:id/categories/:categoryId", handlers.AttachCategory)
		auth.DELETE("/restaurants/:id/categories/:categoryId", handlers.DetachCategory)

		// Favorites
		auth.GET("/favorites", handlers.ListFavorites)
		auth.POST("/favorites", handlers.AddFavorite)
		auth.DELETE("/favorites/:restaurantId", handlers.RemoveFavorite)

		// Photos
		auth.POST("/restaurants/:id/photos", handlers.AddRestaurantPhoto)
		auth.POST("/reviews/:id/photos", handlers.AddReviewPhoto)
		auth.DELETE("/photos/:id", handlers.DeletePhoto)
	}
}
