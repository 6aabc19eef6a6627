package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"restaurant-reviews-api/config"
	"restaurant-reviews-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// newTestDB opens a fresh in-memory database. Shared cache keeps the pool's
// connections pointed at the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := config.Open(dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.DB = newTestDB(t)
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	User        json.RawMessage `json:"user"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
}

// register creates a user through the API and returns its id and token
func register(t *testing.T, r http.Handler, name, email string) (uint, string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":"secret-pass","password_confirmation":"secret-pass"}`, name, email)
	w := doJSON(r, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)

	var user struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.User, &user))
	return user.ID, resp.AccessToken
}

// createRestaurant creates a restaurant through the API and returns its id
func createRestaurant(t *testing.T, r http.Handler, token, name, address string) uint {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"address":%q,"phone":"555-0100"}`, name, address)
	w := doJSON(r, http.MethodPost, "/restaurants", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

// createReview posts a review on a restaurant and returns the review id
func createReview(t *testing.T, r http.Handler, token string, restaurantID uint, rating int) uint {
	t.Helper()
	body := fmt.Sprintf(`{"rating":%d,"comment":"tasty"}`, rating)
	w := doJSON(r, http.MethodPost, fmt.Sprintf("/restaurants/%d/reviews", restaurantID), body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

// validationErrors decodes the 422 envelope's field-error map
func validationErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	return resp.Errors
}
