package middleware

import (
	"net/http"
	"strings"
	"time"

	"restaurant-reviews-api/config"
	"restaurant-reviews-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Claims struct {
	UserID  uint   `json:"user_id"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// IssueToken creates an access-token record for the user and returns the
// signed bearer token carrying its id. Each call issues an independent
// token; earlier tokens stay valid until individually revoked.
func IssueToken(db *gorm.DB, user *models.User) (string, error) {
	record := models.AccessToken{ID: uuid.NewString(), UserID: user.ID}
	if err := db.Create(&record).Error; err != nil {
		return "", err
	}
	claims := Claims{
		UserID:  user.ID,
		TokenID: record.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// RevokeToken deletes exactly one access-token record. Other tokens for the
// same user are untouched.
func RevokeToken(db *gorm.DB, tokenID string) error {
	return db.Delete(&models.AccessToken{}, "id = ?", tokenID).Error
}

// AuthRequired validates the bearer token and injects the caller's identity
// into the request context. A token whose record was revoked is rejected
// even when its signature is still valid.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Authorization header required (Bearer <token>)")
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		var record models.AccessToken
		if err := config.DB.First(&record, "id = ?", claims.TokenID).Error; err != nil {
			unauthorized(c, "Token has been revoked")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("tokenID", claims.TokenID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
	c.Abort()
}

// GetUserID extracts the authenticated caller's id from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetTokenID extracts the presented token's id from context
func GetTokenID(c *gin.Context) string {
	val, _ := c.Get("tokenID")
	return val.(string)
}
