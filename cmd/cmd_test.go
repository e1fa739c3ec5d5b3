package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booking-app/config"
	"booking-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEngine_CORS(t *testing.T) {
	cfg := &config.Config{
		App:  config.AppConfig{Name: "booking-app", GinMode: gin.TestMode},
		HTTP: config.HTTPConfig{CORSOrigin: "https://fyyur.example.com"},
	}
	r := NewEngine(cfg, zap.NewNop())
	r.GET("/venues", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/venues", nil)
	req.Header.Set("Origin", "https://fyyur.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://fyyur.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/venues", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("DB_URL", "file:unused")
	t.Setenv("EDITOR_JWT_SECRET", "s3cret")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--subject", "ops@example.com", "--role", "admin"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())

	raw := strings.TrimSpace(out.String())
	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) { return []byte("s3cret"), nil })
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "ops@example.com", claims["sub"])
}
