package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/foodgram/internal/assets"
	"github.com/nfrund/foodgram/internal/handlers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAssetServer(t *testing.T) *echo.Echo {
	t.Helper()

	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "technologies.jpg", []byte("jpeg-bytes"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "notes", []byte("no extension"), 0644))

	e := echo.New()
	e.GET("/:asset", handlers.NewAssetHandler(assets.NewResolver(memFs)).Get)
	return e
}

func TestAssetHandler(t *testing.T) {
	e := setupAssetServer(t)

	tests := []struct {
		name        string
		path        string
		wantStatus  int
		wantBody    string
		wantContent string
	}{
		{name: "page image", path: "/technologies.jpg", wantStatus: http.StatusOK, wantBody: "jpeg-bytes", wantContent: "image/jpeg"},
		{name: "missing asset", path: "/missing.jpg", wantStatus: http.StatusNotFound},
		{name: "name without extension", path: "/notes", wantStatus: http.StatusNotFound},
		{name: "encoded traversal", path: "/..%2Fsecret.txt", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantContent != "" {
				assert.Equal(t, tt.wantContent, rec.Header().Get(echo.HeaderContentType))
			}
		})
	}
}

func TestHomeGet_RedirectsToLanding(t *testing.T) {
	e := echo.New()
	e.GET("/", handlers.NewHomeHandler("/technologies").HomeGet)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/technologies", rec.Header().Get(echo.HeaderLocation))
}

func TestHealthGet(t *testing.T) {
	e := echo.New()
	e.GET("/health", handlers.HealthGet)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
