package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func maintenanceRouter(repo *mockSettingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc, _ := newCacheService(repo, 5*time.Minute)
	r := gin.New()
	NewHandler(svc).RegisterPublicRoutes(r.Group("/"))
	return r
}

func getStatus(r *gin.Engine) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/maintenance/status", nil))
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestMaintenanceStatus_Enabled(t *testing.T) {
	r := maintenanceRouter(&mockSettingRepo{values: map[string]string{
		"platform.maintenance_mode": "true",
	}})

	w, body := getStatus(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["maintenanceMode"])
	assert.NotNil(t, body["timestamp"])
	assert.NotContains(t, body, "error")
}

func TestMaintenanceStatus_UnsetDefaultsOff(t *testing.T) {
	r := maintenanceRouter(&mockSettingRepo{values: map[string]string{}})

	w, body := getStatus(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["maintenanceMode"])
}

func TestMaintenanceStatus_FailsOpenOnStorageError(t *testing.T) {
	r := maintenanceRouter(&mockSettingRepo{fail: errors.New("connection refused")})

	w, body := getStatus(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["maintenanceMode"])
	assert.Contains(t, body, "error")
}
