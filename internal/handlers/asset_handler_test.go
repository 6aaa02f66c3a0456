package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
)

type AssetHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	hrToken string
}

func (s *AssetHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.hrToken = s.env.token(s.T(), constants.RoleHR, nil)
}

func (s *AssetHandlerTestSuite) TestCreateAssignsSequentialIDs() {
	first := s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")
	second := s.env.createAsset(s.T(), s.hrToken, "ThinkPad X1", "SN-002")
	s.Equal("AST0001", first)
	s.Equal("AST0002", second)
}

func (s *AssetHandlerTestSuite) TestLaptopRequiresSerialNumber() {
	w := s.env.request(s.T(), http.MethodPost, "/api/assets", gin.H{
		"asset_name": "ThinkPad T14",
		"category":   "Laptop",
		"brand":      "Lenovo",
		"condition":  "New",
		"status":     "Available",
	}, s.hrToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssetHandlerTestSuite) TestMobileAcceptsIMEI2Only() {
	w := s.env.request(s.T(), http.MethodPost, "/api/assets", gin.H{
		"asset_name": "Galaxy S23",
		"category":   "Mobile",
		"brand":      "Samsung",
		"imei_2":     "356789012345678",
		"condition":  "New",
		"status":     "Available",
	}, s.hrToken)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *AssetHandlerTestSuite) TestMobileRequiresSomeIdentifier() {
	w := s.env.request(s.T(), http.MethodPost, "/api/assets", gin.H{
		"asset_name": "Galaxy S23",
		"category":   "Mobile",
		"brand":      "Samsung",
		"condition":  "New",
		"status":     "Available",
	}, s.hrToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssetHandlerTestSuite) TestDuplicateSerialNumberRejected() {
	s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")

	w := s.env.request(s.T(), http.MethodPost, "/api/assets", gin.H{
		"asset_name":    "ThinkPad T14 (2)",
		"category":      "Laptop",
		"brand":         "Lenovo",
		"serial_number": "SN-001",
		"condition":     "New",
		"status":        "Available",
	}, s.hrToken)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *AssetHandlerTestSuite) TestInvalidStatusRejected() {
	w := s.env.request(s.T(), http.MethodPost, "/api/assets", gin.H{
		"asset_name":    "ThinkPad T14",
		"category":      "Laptop",
		"brand":         "Lenovo",
		"serial_number": "SN-001",
		"condition":     "New",
		"status":        "Lost",
	}, s.hrToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssetHandlerTestSuite) TestStatusEditLockedWhileAssigned() {
	employeeID := s.env.createEmployee(s.T(), s.hrToken, "Asha Rao", "asha.rao@example.com")
	assetID := s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")

	w := s.env.request(s.T(), http.MethodPost, "/api/assignments", gin.H{
		"employee_id":   employeeID,
		"asset_id":      assetID,
		"assigned_date": "2024-02-01",
	}, s.hrToken)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.env.request(s.T(), http.MethodPut, fmt.Sprintf("/api/assets/%s", assetID), gin.H{
		"status": "Retired",
	}, s.hrToken)
	s.Equal(http.StatusConflict, w.Code, w.Body.String())

	// Fields the assignment does not own stay editable.
	w = s.env.request(s.T(), http.MethodPut, fmt.Sprintf("/api/assets/%s", assetID), gin.H{
		"remarks": "engraved",
	}, s.hrToken)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *AssetHandlerTestSuite) TestDeleteBlockedByActiveAssignment() {
	employeeID := s.env.createEmployee(s.T(), s.hrToken, "Asha Rao", "asha.rao@example.com")
	assetID := s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")

	w := s.env.request(s.T(), http.MethodPost, "/api/assignments", gin.H{
		"employee_id":   employeeID,
		"asset_id":      assetID,
		"assigned_date": "2024-02-01",
	}, s.hrToken)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.env.request(s.T(), http.MethodDelete, fmt.Sprintf("/api/assets/%s", assetID), nil, s.hrToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssetHandlerTestSuite) TestExportReturnsWorkbook() {
	s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")

	w := s.env.request(s.T(), http.MethodGet, "/api/assets/export", nil, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(contentTypeXLSX, w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "assets.xlsx")
	s.NotZero(w.Body.Len())
}

func (s *AssetHandlerTestSuite) TestGetUnknownAsset() {
	w := s.env.request(s.T(), http.MethodGet, "/api/assets/AST9999", nil, s.hrToken)
	s.Equal(http.StatusNotFound, w.Code)
}

func TestAssetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}
