package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al1mk/Meister-Barbershop/internal/config"
)

func adminTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin/ping", AdminAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": StaffActor(c)})
	})
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthRequiresHeader(t *testing.T) {
	r := adminTestRouter(&config.Config{AdminPassword: "secret"})

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Token abc").Code)
}

func TestAdminAuthBasicPassword(t *testing.T) {
	r := adminTestRouter(&config.Config{AdminPassword: "secret"})

	good := "Basic " + base64.StdEncoding.EncodeToString([]byte("anyone:secret"))
	bad := "Basic " + base64.StdEncoding.EncodeToString([]byte("anyone:wrong"))

	assert.Equal(t, http.StatusOK, get(r, good).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, bad).Code)
}

func TestAdminAuthRejectsBasicWhenPasswordUnset(t *testing.T) {
	r := adminTestRouter(&config.Config{})

	header := "Basic " + base64.StdEncoding.EncodeToString([]byte("anyone:"))
	assert.Equal(t, http.StatusUnauthorized, get(r, header).Code)
}

func TestAdminAuthBearerToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "jwt-secret"}
	r := adminTestRouter(cfg)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   1,
		"email": "staff@meisterbarbershop.de",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	w := get(r, "Bearer "+signed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staff@meisterbarbershop.de")
}

func TestAdminAuthRejectsForgedToken(t *testing.T) {
	r := adminTestRouter(&config.Config{JWTSecret: "jwt-secret"})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "staff@meisterbarbershop.de",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+signed).Code)
}
