package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func echoRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "text/plain", b)
	})
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestSanitizeInput_JSON(t *testing.T) {
	r := echoRouter(SanitizeInput())

	body := `{"name":"<b>The Musical Hop</b>","genres":["R&B","<script>x</script>Jazz"],"venue_id":12345678901,"nested":{"about":"<i>hi</i>"},"seeking":true}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"name":"The Musical Hop","genres":["R&B","Jazz"],"venue_id":12345678901,"nested":{"about":"hi"},"seeking":true}`,
		w.Body.String())
}

func TestSanitizeInput_Form(t *testing.T) {
	r := echoRouter(SanitizeInput())

	values := url.Values{
		"name":   {"Park Square Live Music & Coffee<img src=x onerror=alert(1)>"},
		"genres": {"<b>Jazz</b>", "Folk"},
	}
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	got, err := url.ParseQuery(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, "Park Square Live Music & Coffee", got.Get("name"))
	assert.Equal(t, []string{"Jazz", "Folk"}, got["genres"])
}

func TestSanitizeInput_EntityEncodedMarkup(t *testing.T) {
	r := echoRouter(SanitizeInput())

	body := `{"name":"&lt;script&gt;alert(1)&lt;/script&gt;Hop","genres":["R&B","&lt;b&gt;Jazz&lt;/b&gt;"]}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Name   string   `json:"name"`
		Genres []string `json:"genres"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotContains(t, got.Name, "<")
	assert.NotContains(t, got.Name, "&lt;")
	assert.Contains(t, got.Name, "Hop")
	assert.Equal(t, []string{"R&B", "Jazz"}, got.Genres)

	tests := map[string]string{
		"plain ampersand":   "Park Square Live Music & Coffee",
		"apostrophe":        "Guns N' Petals",
		"less than":         "a < b",
		"double encoded":    "&amp;lt;i&amp;gt;x",
		"entity in form":    "&lt;img src=x onerror=alert(1)&gt;",
		"nested tag tricks": "<scr<script>ipt>alert(1)</script>",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			out := sanitizeString(in)
			assert.NotContains(t, out, "<scr")
			assert.NotContains(t, out, "<img")
			assert.NotContains(t, out, "<i>")
			assert.Equal(t, out, sanitizeString(out))
		})
	}
	assert.Equal(t, "Park Square Live Music & Coffee", sanitizeString(tests["plain ampersand"]))
	assert.Equal(t, "Guns N' Petals", sanitizeString(tests["apostrophe"]))
}

func TestSanitizeInput_Multipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/form", func(c *gin.Context) {
		var f struct {
			Name   string   `form:"name"`
			Genres []string `form:"genres"`
		}
		require.NoError(t, c.ShouldBind(&f))
		c.JSON(http.StatusOK, gin.H{"name": f.Name, "genres": f.Genres, "post": c.PostForm("name")})
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "<script>x</script>Hop"))
	require.NoError(t, mw.WriteField("genres", "<b>Jazz</b>"))
	require.NoError(t, mw.WriteField("genres", "R&B"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/form", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Hop","genres":["Jazz","R&B"],"post":"Hop"}`, w.Body.String())
}

func TestSanitizeInput_MalformedMultipart(t *testing.T) {
	r := echoRouter(SanitizeInput())

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("not a multipart body"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeInput_MalformedAndEmpty(t *testing.T) {
	r := echoRouter(SanitizeInput())

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/echo", nil)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestEditorGuard_Disabled(t *testing.T) {
	assert.Empty(t, EditorGuard(""))

	r := echoRouter(EditorGuard("")...)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEditorGuard(t *testing.T) {
	const secret = "s3cret"
	r := echoRouter(EditorGuard(secret)...)

	editor, err := SignEditorToken(secret, "ops@example.com", RoleEditor, time.Hour)
	require.NoError(t, err)
	admin, err := SignEditorToken(secret, "root@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)
	viewer, err := SignEditorToken(secret, "guest@example.com", "viewer", time.Hour)
	require.NoError(t, err)
	expired, err := SignEditorToken(secret, "ops@example.com", RoleEditor, -time.Minute)
	require.NoError(t, err)
	foreign, err := SignEditorToken("other", "ops@example.com", RoleEditor, time.Hour)
	require.NoError(t, err)
	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"editor", "Bearer " + editor, http.StatusOK},
		{"admin", "Bearer " + admin, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Token " + editor, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, http.StatusForbidden},
		{"no role", "Bearer " + noRole, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ok"))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := echoRouter(RequestLogger(zap.New(core)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[1].ContextMap()["status"])
}
