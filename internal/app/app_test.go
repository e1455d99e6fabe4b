package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/config"
)

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Database.Enabled = false
	return cfg
}

func TestInitializeApp_WithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	application := InitializeApp(testConfig())
	require.NotNil(t, application)
	t.Cleanup(application.Close)

	require.NotNil(t, application.Router)
	require.NotNil(t, application.Services)
	assert.Nil(t, application.Database)

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitializeApp_SessionRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	application := InitializeApp(testConfig())
	t.Cleanup(application.Close)

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "session_id")
}

func TestAppClose_Idempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	application := InitializeApp(testConfig())
	application.Close()
	// A second close must not panic even though the store is stopped.
	assert.NotPanics(t, func() {
		if application.Database != nil {
			application.Database.Close()
		}
	})
}
