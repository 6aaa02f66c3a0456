package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
)

type SimHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	hrToken string
}

func (s *SimHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.hrToken = s.env.token(s.T(), constants.RoleHR, nil)
}

func (s *SimHandlerTestSuite) createSim(number string) {
	w := s.env.request(s.T(), http.MethodPost, "/api/sim-connections", gin.H{
		"sim_mobile_number":  number,
		"current_owner_name": "Asha Rao",
		"connection_status":  "Active",
		"sim_status":         "Assigned",
	}, s.hrToken)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *SimHandlerTestSuite) TestCreateAndGet() {
	s.createSim("9876543210")

	w := s.env.request(s.T(), http.MethodGet, "/api/sim-connections/9876543210", nil, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("Asha Rao", decodeBody(s.T(), w)["current_owner_name"])
}

func (s *SimHandlerTestSuite) TestDuplicateNumberRejected() {
	s.createSim("9876543210")

	w := s.env.request(s.T(), http.MethodPost, "/api/sim-connections", gin.H{
		"sim_mobile_number": "9876543210",
	}, s.hrToken)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *SimHandlerTestSuite) TestInvalidStatusRejected() {
	w := s.env.request(s.T(), http.MethodPost, "/api/sim-connections", gin.H{
		"sim_mobile_number": "9876543210",
		"sim_status":        "Retired",
	}, s.hrToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *SimHandlerTestSuite) TestUpdateOwnerAndStatus() {
	s.createSim("9876543210")

	w := s.env.request(s.T(), http.MethodPut, "/api/sim-connections/9876543210", gin.H{
		"current_owner_name": "",
		"sim_status":         "In Stock",
		"connection_status":  "Inactive",
	}, s.hrToken)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(s.T(), w)
	s.Equal("In Stock", body["sim_status"])
	s.Equal("Inactive", body["connection_status"])
	s.Equal("", body["current_owner_name"])
}

func (s *SimHandlerTestSuite) TestDelete() {
	s.createSim("9876543210")

	w := s.env.request(s.T(), http.MethodDelete, "/api/sim-connections/9876543210", nil, s.hrToken)
	s.Equal(http.StatusOK, w.Code)

	w = s.env.request(s.T(), http.MethodDelete, "/api/sim-connections/9876543210", nil, s.hrToken)
	s.Equal(http.StatusNotFound, w.Code)
}

func TestSimHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SimHandlerTestSuite))
}
