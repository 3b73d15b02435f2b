package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/services"
	"eventPlanner/internal/utils"
)

func newAuthRouter(key []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authService := services.NewAuthenticationService(nil, key, time.Hour)
	router.GET("/me", MustAuthenticateMiddleware(authService), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": userIDFromContext(ctx)})
	})
	return router
}

func TestMustAuthenticateMiddleware(t *testing.T) {
	key := []byte("secret")
	router := newAuthRouter(key)

	valid, err := utils.CreateJwtToken(12, "a@example.com", key, time.Now().Add(time.Hour))
	require.NoError(t, err)
	expired, err := utils.CreateJwtToken(12, "a@example.com", key, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	foreign, err := utils.CreateJwtToken(12, "a@example.com", []byte("other"), time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"no bearer prefix", valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":12}`, rec.Body.String())
			}
		})
	}
}
