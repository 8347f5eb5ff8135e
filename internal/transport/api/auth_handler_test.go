package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/logger"
	"github.com/fsdevblog/mentorlink/internal/service"
	"github.com/fsdevblog/mentorlink/internal/transport/api/mocks"
	"github.com/fsdevblog/mentorlink/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *AuthHandlerTestSuite) makeJSONRequest(method, url string, payload any) *http.Response {
	body, marshalErr := json.Marshal(payload)
	s.Require().NoError(marshalErr)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	return resp
}

func (s *AuthHandlerTestSuite) TestRegister() {
	login := gofakeit.Username()
	email := gofakeit.Email()

	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			Login:    login,
			Email:    email,
			Password: "super secret",
			Role:     domain.RoleMentor,
		}).
		Return(&domain.User{ID: 1, Login: login, Email: email, Role: domain.RoleMentor}, "jwt-token", nil)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+RegisterRoute, gin.H{
		"login":    login,
		"email":    email,
		"password": "super secret",
		"role":     "mentor",
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("Bearer jwt-token", resp.Header.Get("Authorization"))
}

func (s *AuthHandlerTestSuite) TestRegister_ValidationErrors() {
	// сервис не должен вызываться вовсе.
	s.mockUserService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name    string
		payload gin.H
	}{
		{name: "unknown role", payload: gin.H{
			"login": "user1", "email": "u@example.com", "password": "super secret", "role": "admin",
		}},
		{name: "bad email", payload: gin.H{
			"login": "user1", "email": "not-an-email", "password": "super secret", "role": "student",
		}},
		{name: "short password", payload: gin.H{
			"login": "user1", "email": "u@example.com", "password": "123", "role": "student",
		}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.makeJSONRequest(http.MethodPost, RouteGroup+RegisterRoute, t.payload)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

func (s *AuthHandlerTestSuite) TestRegister_Duplicate() {
	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, "", domain.ErrDuplicateKey)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+RegisterRoute, gin.H{
		"login":    "taken",
		"email":    "taken@example.com",
		"password": "super secret",
		"role":     "student",
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *AuthHandlerTestSuite) TestLogin() {
	login := gofakeit.Username()

	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Login: login, Password: "super secret"}).
		Return(&domain.User{ID: 1, Login: login, Role: domain.RoleStudent}, "jwt-token", nil)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+LoginRoute, gin.H{
		"login":    login,
		"password": "super secret",
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Bearer jwt-token", resp.Header.Get("Authorization"))

	var body struct {
		User UserResponse `json:"user"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(login, body.User.Login)
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	s.mockUserService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, "", domain.ErrPasswordMissMatch)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+LoginRoute, gin.H{
		"login":    "user1",
		"password": "wrong pass",
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
