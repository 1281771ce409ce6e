//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"rentimade/internal/domain/user"
	"rentimade/internal/handler/dto/request"
	"rentimade/internal/handler/dto/response"
	"rentimade/tests/common/authtest"
	"rentimade/tests/common/dbtest"
	"rentimade/tests/common/httptest"
	"rentimade/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "renter@example.com", string(user.RoleRenter))
	dbtest.CreateTestUser(s.T(), s.DB, "lender@example.com", string(user.RoleLender))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleRenter))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignup() {
	tests := []struct {
		name           string
		body           request.SignupRequest
		expectedStatus int
		description    string
	}{
		{
			name:           "valid signup",
			body:           request.SignupRequest{Email: "new@example.com", Password: "password123", Name: "New User"},
			expectedStatus: http.StatusCreated,
			description:    "a fresh email should create an account",
		},
		{
			name:           "duplicate email",
			body:           request.SignupRequest{Email: "renter@example.com", Password: "password123", Name: "Dup"},
			expectedStatus: http.StatusConflict,
			description:    "an already registered email should be rejected",
		},
		{
			name:           "invalid email",
			body:           request.SignupRequest{Email: "not-an-email", Password: "password123", Name: "Bad"},
			expectedStatus: http.StatusBadRequest,
			description:    "a malformed email should be rejected",
		},
		{
			name:           "short password",
			body:           request.SignupRequest{Email: "short@example.com", Password: "short", Name: "Short"},
			expectedStatus: http.StatusBadRequest,
			description:    "a password under 8 characters should be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				var res response.AuthResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)
				require.NotNil(t, res.User)
				require.Equal(t, tt.body.Email, res.User.Email)
				require.Equal(t, string(user.RoleRenter), res.User.Role, "new accounts should start as renters")
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "renter@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "valid credentials should log in",
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "an unknown email should be rejected",
		},
		{
			name:           "wrong password",
			email:          "renter@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "a wrong password should be rejected",
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "a deactivated account should not log in",
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty email should be rejected",
		},
		{
			name:           "empty password",
			email:          "renter@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty password should be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res response.AuthResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "access token cookie not set")

				var lastLogin any
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
		description       string
	}{
		{
			name: "valid refresh token",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{Email: "renter@example.com", Password: "password123"}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				var res response.AuthResponse
				_ = httptest.DecodeResponseBody(s.T(), w.Body, &res)
				return res.RefreshToken
			},
			expectedStatus: http.StatusOK,
			description:    "a valid refresh token should mint new tokens",
		},
		{
			name:              "garbage refresh token",
			setupRefreshToken: func() string { return "invalid-refresh-token" },
			expectedStatus:    http.StatusUnauthorized,
			description:       "a malformed refresh token should be rejected",
		},
		{
			name:              "empty refresh token",
			setupRefreshToken: func() string { return "" },
			expectedStatus:    http.StatusBadRequest,
			description:       "an empty refresh token should be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RefreshRequest{RefreshToken: tt.setupRefreshToken()}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res response.RefreshResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears token cookies", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "renter@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		require.Empty(t, accessCookie.Value, "access token cookie should be cleared")
	})

	s.Run("logout without token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "renter profile",
			setupUser: func() (string, string, string) {
				email := "renter2@example.com"
				role := string(user.RoleRenter)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "a renter should see their own profile",
		},
		{
			name: "lender profile",
			setupUser: func() (string, string, string) {
				email := "lender2@example.com"
				role := string(user.RoleLender)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "a lender should see their own profile",
		},
		{
			name: "invalid token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "a bogus token should be rejected",
		},
		{
			name: "missing token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "an anonymous request should be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email)
				require.Contains(t, responseBody, role)
				require.NotContains(t, responseBody, "password", "response must not leak password material")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleRenter))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleRenter)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints demand a token", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/orders"},
			{http.MethodGet, "/api/wishlist"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should require auth", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("two logins issue distinct valid tokens", func() {
		t := s.T()

		email := "concurrent@example.com"
		dbtest.CreateTestUser(t, s.DB, email, string(user.RoleRenter))

		token1 := authtest.LoginUser(t, s.Router, email, "password123")
		token2 := authtest.LoginUser(t, s.Router, email, "password123")

		require.NotEqual(t, token1, token2)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
