// This file contains the HTTP handlers for the auth endpoints, translating
// request bodies into service calls and service errors into status codes.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/projtrack-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user and returns a bearer token with the public user view.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 200 {object} auth.AuthResponse "User created, token issued"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing fields or user already exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Name == "" || req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("name, email and password are required", nil))
			return
		}

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user and returns a fresh bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.AuthResponse "Login successful, token issued"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("email and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleForgotPassword godoc
// @Summary Request Password Reset
// @Description Emails a password reset link to the given address.
// @Tags Auth
// @Accept json
// @Produce json
// @Param forgotBody body auth.ForgotPasswordRequest true "Account email"
// @Success 200 {object} auth.MessageResponse "Recovery email sent"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No user with that email"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error - Mail transport failure"
// @Router /api/auth/forgot-password [post]
func (h *Handlers) HandleForgotPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Email == "" {
			WriteError(w, r, apperror.NewBadRequestError("email is required", nil))
			return
		}

		// The reset link points back at the host serving this request.
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		linkBase := scheme + "://" + r.Host

		if err := h.service.ForgotPassword(r.Context(), req.Email, linkBase); err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, MessageResponse{Message: "recovery email sent"})
	}
}

// HandleResetPassword godoc
// @Summary Reset Password
// @Description Exchanges a valid, unexpired reset token for a new password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param resetBody body auth.ResetPasswordRequest true "New password"
// @Success 200 {object} auth.MessageResponse "Password changed"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid or expired token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth/reset-password/{token} [post]
func (h *Handlers) HandleResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("password is required", nil))
			return
		}

		if err := h.service.ResetPassword(r.Context(), token, req.Password); err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, MessageResponse{Message: "password changed successfully"})
	}
}

// HandleMe godoc
// @Summary Current User
// @Description Returns the public view of the authenticated user.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.UserResponse "Current user"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Identity no longer resolves"
// @Router /api/auth/me [get]
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		user, err := h.service.CurrentUser(r.Context(), userID)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, UserResponse{User: *user})
	}
}

// WriteJSON serializes data to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standardized {message} response.
// Errors that are not AppErrors are wrapped as generic internal errors so no
// detail leaks to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
