package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pici355/Match-predictory-sub000/internal/handlers"
	"github.com/pici355/Match-predictory-sub000/internal/middleware"
	"github.com/pici355/Match-predictory-sub000/internal/models"
	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	authHandler := handlers.NewAuthHandler(services.NewAuthService(db))

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("pool_session", store))

	r.POST("/api/register", authHandler.Register)
	r.POST("/api/login", authHandler.Login)
	r.POST("/api/logout", authHandler.Logout)
	r.GET("/api/me", middleware.AuthRequired(), authHandler.Me)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthFlow_RegisterMeLogout(t *testing.T) {
	r := newAuthAPI(t)

	w := doJSON(r, http.MethodPost, "/api/register", `{"username":"I Bidoni","pin":"1234"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = doJSON(r, http.MethodGet, "/api/me", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "I Bidoni")

	w = doJSON(r, http.MethodPost, "/api/logout", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// the logout response carries the cleared cookie
	w = doJSON(r, http.MethodGet, "/api/me", "", w.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpoint_WrongPIN(t *testing.T) {
	r := newAuthAPI(t)

	w := doJSON(r, http.MethodPost, "/api/register", `{"username":"I Bidoni","pin":"1234"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/login", `{"username":"I Bidoni","pin":"0000"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "credenziali non valide")
}

func TestRegisterEndpoint_BadPayload(t *testing.T) {
	r := newAuthAPI(t)

	// PIN must be exactly 4 characters at the binding layer
	w := doJSON(r, http.MethodPost, "/api/register", `{"username":"I Bidoni","pin":"12"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
