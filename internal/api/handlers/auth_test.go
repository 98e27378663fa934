package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/blogdrown/blogdrown/internal/api/middleware"
	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/service"
	"github.com/blogdrown/blogdrown/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, client *http.Client, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful signup",
			request: map[string]string{
				"email":    "new@example.com",
				"username": "new_user_one",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					ID       string `json:"id"`
					Username string `json:"username"`
					Email    string `json:"email"`
				}
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "new_user_one", result.Username)
				assert.Equal(t, "new@example.com", result.Email)
				assert.NotEmpty(t, result.ID)

				var sessionCookie *http.Cookie
				for _, c := range resp.Cookies() {
					if c.Name == middleware.SessionCookie {
						sessionCookie = c
					}
				}
				require.NotNil(t, sessionCookie, "signup must set the session cookie")
				assert.True(t, sessionCookie.HttpOnly)
				assert.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)
				assert.Equal(t, "/", sessionCookie.Path)
				assert.False(t, sessionCookie.Secure, "not production")
			},
		},
		{
			name: "username too short",
			request: map[string]string{
				"email":    "short@example.com",
				"username": "abc",
				"password": "password123",
			},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, resp *http.Response) {
				_, fields := testutil.DecodeError(t, resp)
				assert.Contains(t, fields, "username")
			},
		},
		{
			name: "missing password",
			request: map[string]string{
				"email":    "nopass@example.com",
				"username": "no_password_user",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "taken username with fresh email",
			request: map[string]string{
				"email":    "fresh@example.com",
				"username": "existing_user",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existing_user").
					WithEmail("existing@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				_, fields := testutil.DecodeError(t, resp)
				assert.Contains(t, fields, "username")
				assert.NotContains(t, fields, "email")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			client := ts.NewClient(t)
			resp := postJSON(t, client, ts.APIURL("/auth/signup"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correct-password").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{
			name: "successful login",
			request: map[string]string{
				"email":    "login@example.com",
				"password": "correct-password",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    "login@example.com",
				"password": "wrong-password",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			request: map[string]string{
				"email":    "ghost@example.com",
				"password": "correct-password",
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := ts.NewClient(t)
			resp := postJSON(t, client, ts.APIURL("/auth/login"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus != http.StatusOK {
				// Failures are indistinguishable to the caller.
				message, _ := testutil.DecodeError(t, resp)
				assert.Equal(t, "Bad Credentials", message)
			}
		})
	}
}

func TestAuthHandler_Info(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.NewClient(t)
	user := testutil.NewUserBuilder().SignupAndLogin(t, ts, client)

	resp, err := client.Get(ts.APIURL("/auth/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, domain.FormatID(user.ID), result.ID)
	assert.Equal(t, user.Username, result.Username)
}

func TestAuthHandler_InfoWithoutSession(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/auth/"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_SessionExpiry(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		issuedAt       time.Time
		expectedStatus int
	}{
		{
			name:           "29 days old is accepted",
			issuedAt:       time.Now().Add(-29 * 24 * time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "31 days old is rejected",
			issuedAt:       time.Now().Add(-31 * 24 * time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.IssueSessionToken(
				service.SessionClaims{UserID: user.ID, IssuedAt: tt.issuedAt},
				ts.Config.SecretKey,
			)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodGet, ts.APIURL("/auth/"), nil)
			require.NoError(t, err)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAuthHandler_DeletedUserSessionIsRejected(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token, err := service.IssueSessionToken(
		service.SessionClaims{UserID: user.ID, IssuedAt: time.Now()},
		ts.Config.SecretKey,
	)
	require.NoError(t, err)

	// Deleting the identity is the only revocation mechanism.
	require.NoError(t, ts.DB.DB.Delete(&domain.User{}, "id = ?", user.ID).Error)

	req, err := http.NewRequest(http.MethodGet, ts.APIURL("/auth/"), nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
