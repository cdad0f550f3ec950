package http

import (
	"encoding/json"
	"net/http"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/auth"
	"github.com/autotrack-hq/payroll-backend-go/internal/handler/http/response"
	authService "github.com/autotrack-hq/payroll-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService authService.AuthService
}

func NewAuthHandler(service authService.AuthService) AuthHandler {
	return &authHandlerImpl{authService: service}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}
