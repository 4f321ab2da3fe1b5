package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/maharit108/Coffee-Talk-API/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	response *models.AuthResponse
	err      error

	gotSignUp models.SignUpCredentials
	gotSignIn models.SignInCredentials
}

func (s *stubAuthService) Register(creds models.SignUpCredentials) (*models.AuthResponse, error) {
	s.gotSignUp = creds
	return s.response, s.err
}

func (s *stubAuthService) Login(creds models.SignInCredentials) (*models.AuthResponse, error) {
	s.gotSignIn = creds
	return s.response, s.err
}

func (s *stubAuthService) ChangePassword(identity models.Identity, change models.PasswordChange) error {
	return s.err
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/sign-up", h.SignUp)
	router.POST("/sign-in", h.SignIn)

	return router
}

func TestSignUpReturnsTokenEnvelope(t *testing.T) {
	svc := &stubAuthService{response: &models.AuthResponse{
		Token: "a.b.c",
		User:  models.User{ID: 1, Email: "alice@example.com"},
	}}
	router := newAuthRouter(svc)

	body := `{"credentials":{"email":"alice@example.com","password":"secret123","password_confirmation":"secret123"}}`
	w := doRequest(router, http.MethodPost, "/sign-up", body)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Code int                 `json:"code"`
		Data models.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 200, response.Code)
	assert.Equal(t, "a.b.c", response.Data.Token)
	assert.Equal(t, "alice@example.com", svc.gotSignUp.Email)
}

func TestSignUpRejectsInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{}
	router := newAuthRouter(svc)

	body := `{"credentials":{"email":"not-an-email","password":"short","password_confirmation":"other"}}`
	w := doRequest(router, http.MethodPost, "/sign-up", body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Code        int                 `json:"code"`
		CodeMessage map[string][]string `json:"code_message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.CodeMessage, "email")
	assert.Contains(t, response.CodeMessage, "password")
	// Service must never be reached with an invalid payload.
	assert.Empty(t, svc.gotSignUp.Email)
}

func TestSignInMapsServiceErrorTo401(t *testing.T) {
	svc := &stubAuthService{err: models.ErrorUnauthorized{Message: "invalid credentials"}}
	router := newAuthRouter(svc)

	body := `{"credentials":{"email":"alice@example.com","password":"wrong-pass"}}`
	w := doRequest(router, http.MethodPost, "/sign-in", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
