package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())

	hash, err := bcrypt.GenerateFromPassword([]byte("hr-password"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.Require().NoError(s.env.db.Create(&models.User{
		Username:     "hr",
		PasswordHash: string(hash),
		Role:         constants.RoleHR,
	}).Error)
}

func (s *AuthHandlerTestSuite) TestLoginIssuesBearerToken() {
	w := s.env.request(s.T(), http.MethodPost, "/api/auth/login", gin.H{
		"username": "hr",
		"password": "hr-password",
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(s.T(), w)
	s.Equal("bearer", body["token_type"])
	s.Equal(constants.RoleHR, body["role"])
	s.NotEmpty(body["access_token"])

	// The issued token must be accepted by the protected routes.
	w = s.env.request(s.T(), http.MethodGet, "/api/auth/me", nil, body["access_token"].(string))
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("hr", decodeBody(s.T(), w)["username"])
}

func (s *AuthHandlerTestSuite) TestLoginWrongPassword() {
	w := s.env.request(s.T(), http.MethodPost, "/api/auth/login", gin.H{
		"username": "hr",
		"password": "wrong",
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("INVALID_CREDENTIALS", decodeBody(s.T(), w)["code"])
}

func (s *AuthHandlerTestSuite) TestLoginUnknownUser() {
	w := s.env.request(s.T(), http.MethodPost, "/api/auth/login", gin.H{
		"username": "ghost",
		"password": "whatever",
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerTestSuite) TestLoginMissingFields() {
	w := s.env.request(s.T(), http.MethodPost, "/api/auth/login", gin.H{
		"username": "hr",
	}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestInvalidTokenRejected() {
	w := s.env.request(s.T(), http.MethodGet, "/api/auth/me", nil, "not-a-token")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
