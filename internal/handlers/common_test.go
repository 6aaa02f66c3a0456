package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/config"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/utils"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Asset{},
		&models.Assignment{},
		&models.SimConnection{},
		&models.IDSequence{},
	))

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpireHours: "1",
		CORSOrigin:     "http://localhost:3000",
	}
	return &testEnv{router: SetupRouter(db, cfg), db: db, cfg: cfg}
}

func (e *testEnv) token(t *testing.T, role string, employeeID *string) string {
	t.Helper()
	token, err := utils.GenerateToken(e.cfg.JWTSecret, "tester", role, employeeID, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// createEmployee provisions an employee through the API and returns its
// generated employee_id.
func (e *testEnv) createEmployee(t *testing.T, token, name, email string) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/employees", gin.H{
		"full_name":       name,
		"department":      "Engineering",
		"designation":     "Engineer",
		"email":           email,
		"date_of_joining": "2024-01-15",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["employee_id"].(string)
}

// createAsset provisions an asset through the API and returns its generated
// asset_id.
func (e *testEnv) createAsset(t *testing.T, token, name, serial string) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/assets", gin.H{
		"asset_name":    name,
		"category":      "Laptop",
		"brand":         "Lenovo",
		"serial_number": serial,
		"condition":     "New",
		"status":        "Available",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["asset_id"].(string)
}

func (e *testEnv) assetByID(t *testing.T, assetID string) *models.Asset {
	t.Helper()
	var asset models.Asset
	require.NoError(t, e.db.Where("asset_id = ?", assetID).First(&asset).Error)
	return &asset
}
