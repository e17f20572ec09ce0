package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func jsonBody(s *IntegrationTestSuite, body interface{}) *bytes.Buffer {
	reqBody, err := json.Marshal(body)
	require.NoError(s.T(), err)

	return bytes.NewBuffer(reqBody)
}

func (s *IntegrationTestSuite) postJSON(path string, body interface{}, token string) *http.Response {
	reqBody, err := json.Marshal(body)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/api/v1%s", s.app.Config.ServicePort, path),
		bytes.NewBuffer(reqBody),
	)
	require.NoError(s.T(), err)

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)

	return resp
}

func (s *IntegrationTestSuite) Test_Register() {
	type TestCase struct {
		Name           string
		Request        dto.UserRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.UserRequest{
				Name:     "test",
				Email:    "register-test@gmail.com",
				Password: "123456",
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "Duplicate email",
			Request: dto.UserRequest{
				Name:     "test",
				Email:    "register-test@gmail.com",
				Password: "123456",
			},
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name: "Missing email",
			Request: dto.UserRequest{
				Name:     "test",
				Password: "123456",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Invalid email",
			Request: dto.UserRequest{
				Name:     "test",
				Email:    "test",
				Password: "123456",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Password too short",
			Request: dto.UserRequest{
				Name:     "test",
				Email:    "short-password@gmail.com",
				Password: "123",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp := s.postJSON("/users/register", tc.Request, "")
			defer resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) Test_RegisterAndLogin() {
	registerResp := s.postJSON("/users/register", dto.UserRequest{
		Name:     "login flow",
		Email:    "login-flow@gmail.com",
		Password: "123456",
	}, "")
	defer registerResp.Body.Close()
	s.Equal(http.StatusOK, registerResp.StatusCode)

	type TestCase struct {
		Name           string
		Request        dto.LoginRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid credentials",
			Request: dto.LoginRequest{
				Email:    "login-flow@gmail.com",
				Password: "123456",
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "Wrong password",
			Request: dto.LoginRequest{
				Email:    "login-flow@gmail.com",
				Password: "wrong-password",
			},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name: "Unknown account",
			Request: dto.LoginRequest{
				Email:    "nobody@gmail.com",
				Password: "123456",
			},
			ExpectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp := s.postJSON("/users/login", tc.Request, "")
			defer resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)

			if tc.ExpectedStatus == http.StatusOK {
				respBody := struct {
					Data dto.LoginResponse `json:"data"`
				}{}
				err := json.NewDecoder(resp.Body).Decode(&respBody)
				s.NoError(err)
				s.NotEmpty(respBody.Data.Token)
			}
		})
	}
}

func (s *IntegrationTestSuite) Test_ProfileUpdate() {
	registerResp := s.postJSON("/users/register", dto.UserRequest{
		Name:     "profile user",
		Email:    "profile-user@gmail.com",
		Password: "123456",
	}, "")
	defer registerResp.Body.Close()
	s.Require().Equal(http.StatusOK, registerResp.StatusCode)

	token := s.sellerToken(8, "profile user", "profile-user@gmail.com")
	phone := "+6281234567890"

	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("http://localhost:%s/api/v1/users/profile", s.app.Config.ServicePort),
		jsonBody(s, dto.ProfileUpdateRequest{
			Name:  "renamed user",
			Phone: &phone,
		}),
	)
	require.NoError(s.T(), err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	// an account that was never registered cannot be updated
	ghostToken := s.sellerToken(9, "ghost", "ghost-user@gmail.com")
	ghostReq, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("http://localhost:%s/api/v1/users/profile", s.app.Config.ServicePort),
		jsonBody(s, dto.ProfileUpdateRequest{Name: "ghost"}),
	)
	require.NoError(s.T(), err)
	ghostReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ghostReq.Header.Set("Authorization", "Bearer "+ghostToken)

	ghostResp, err := http.DefaultClient.Do(ghostReq)
	require.NoError(s.T(), err)
	defer ghostResp.Body.Close()

	s.Equal(http.StatusNotFound, ghostResp.StatusCode)
}

func (s *IntegrationTestSuite) Test_OAuthLogin() {
	firstResp := s.postJSON("/users/oauth", dto.OAuthRequest{
		Name:  "oauth user",
		Email: "oauth-user@gmail.com",
	}, "")
	defer firstResp.Body.Close()
	s.Equal(http.StatusOK, firstResp.StatusCode)

	first := struct {
		Data dto.LoginResponse `json:"data"`
	}{}
	err := json.NewDecoder(firstResp.Body).Decode(&first)
	s.NoError(err)
	s.NotEmpty(first.Data.Token)

	// a second OAuth login reuses the existing account
	secondResp := s.postJSON("/users/oauth", dto.OAuthRequest{
		Name:  "oauth user",
		Email: "oauth-user@gmail.com",
	}, "")
	defer secondResp.Body.Close()
	s.Equal(http.StatusOK, secondResp.StatusCode)

	second := struct {
		Data dto.LoginResponse `json:"data"`
	}{}
	err = json.NewDecoder(secondResp.Body).Decode(&second)
	s.NoError(err)
	s.Equal(first.Data.UserID, second.Data.UserID)
}
