package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	hrToken string
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.hrToken = s.env.token(s.T(), constants.RoleHR, nil)
}

func (s *ReportHandlerTestSuite) TestDashboardStats() {
	employeeID := s.env.createEmployee(s.T(), s.hrToken, "Asha Rao", "asha.rao@example.com")
	assetID := s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")
	w := s.env.request(s.T(), http.MethodPost, "/api/assignments", gin.H{
		"employee_id":   employeeID,
		"asset_id":      assetID,
		"assigned_date": "2024-02-01",
	}, s.hrToken)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.env.request(s.T(), http.MethodGet, "/api/dashboard/stats", nil, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code)

	body := decodeBody(s.T(), w)
	s.EqualValues(1, body["total_employees"])
	s.EqualValues(1, body["active_employees"])
	s.EqualValues(1, body["assigned_assets"])
	s.EqualValues(1, body["active_assignments"])
	s.EqualValues(0, body["total_sim_connections"])
}

func (s *ReportHandlerTestSuite) TestPendingReturnsLifecycle() {
	employeeID := s.env.createEmployee(s.T(), s.hrToken, "Asha Rao", "asha.rao@example.com")
	assetID := s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")
	w := s.env.request(s.T(), http.MethodPost, "/api/assignments", gin.H{
		"employee_id":   employeeID,
		"asset_id":      assetID,
		"assigned_date": "2024-02-01",
	}, s.hrToken)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	assignmentID := decodeBody(s.T(), w)["assignment_id"].(string)

	w = s.env.request(s.T(), http.MethodPut, "/api/employees/"+employeeID, gin.H{
		"status": "Exit",
	}, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.env.request(s.T(), http.MethodGet, "/api/pending-returns", nil, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code)

	var groups []map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &groups))
	s.Require().Len(groups, 1)
	s.Equal(employeeID, groups[0]["employee_id"])
	s.EqualValues(1, groups[0]["total_pending_assets"])

	w = s.env.request(s.T(), http.MethodPut, "/api/assignments/"+assignmentID, gin.H{
		"return_date":            "2024-04-01",
		"asset_return_condition": "Good",
	}, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.env.request(s.T(), http.MethodGet, "/api/pending-returns", nil, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &groups))
	s.Empty(groups)
}

func (s *ReportHandlerTestSuite) TestSearchRequiresQuery() {
	w := s.env.request(s.T(), http.MethodGet, "/api/search", nil, s.hrToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ReportHandlerTestSuite) TestGlobalSearchAlias() {
	s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")

	w := s.env.request(s.T(), http.MethodGet, "/api/global-search?q=thinkpad", nil, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code)
	body := decodeBody(s.T(), w)
	s.Len(body["assets"], 1)
}

func (s *ReportHandlerTestSuite) TestSearchEmployeesWithAssets() {
	employeeID := s.env.createEmployee(s.T(), s.hrToken, "Asha Rao", "asha.rao@example.com")
	assetID := s.env.createAsset(s.T(), s.hrToken, "ThinkPad T14", "SN-001")
	w := s.env.request(s.T(), http.MethodPost, "/api/assignments", gin.H{
		"employee_id":   employeeID,
		"asset_id":      assetID,
		"assigned_date": "2024-02-01",
	}, s.hrToken)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.env.request(s.T(), http.MethodGet, "/api/search/employees?q=asha", nil, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code)

	var details []map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &details))
	s.Require().Len(details, 1)
	s.Len(details[0]["active_assignments"], 1)
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
