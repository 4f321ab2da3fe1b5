package handlers

import (
	"net/http"

	"github.com/maharit108/Coffee-Talk-API/helper"
	"github.com/maharit108/Coffee-Talk-API/middleware"
	"github.com/maharit108/Coffee-Talk-API/models"
	"github.com/maharit108/Coffee-Talk-API/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		Helper:      helper.NewHTTPHelper(),
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req.Credentials); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Register(req.Credentials)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Sign up success", response)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req.Credentials); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req.Credentials)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Sign in success", response)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "identity not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req.Passwords); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.authService.ChangePassword(identity, req.Passwords); err != nil {
		if status := h.Helper.GetStatusCode(err); status == http.StatusUnauthorized {
			h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Password changed", h.Helper.EmptyJsonMap())
}
