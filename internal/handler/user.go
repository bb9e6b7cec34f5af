package handler

import (
	"net/http"

	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/user"
)

// RegisterRequest represents the request to create an account.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,max=50,excludesall=\x00\n\r\t"`
	Email    string  `json:"email" validate:"required,email,max=254"`
	Password string  `json:"password" validate:"required,min=8,max=128"`
	Role     string  `json:"role" validate:"role"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// LoginRequest represents the request to authenticate.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates a new account and returns it with a session token
// @Summary Register a new user
// @Description Create an account. Role defaults to CUSTOMER when omitted.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func HandleRegister(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		created, err := svc.Register(r.Context(), user.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
			Location: req.Location,
		})
		if err != nil {
			respondServiceError(w, r, "Register", err)
			return
		}

		log.Info("User registered", "user_id", created.ID, "username", created.Username)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleLogin authenticates a user and returns a session token
// @Summary Log in
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} user.AuthResult
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func HandleLogin(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		result, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		log.Info("User logged in", "user_id", result.User.ID)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleMe returns the authenticated user's profile
// @Summary Current user
// @Description Returns the profile of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /user/me [get]
func HandleMe(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromContext(r.Context())

		profile, err := svc.Me(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, "Me", err)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}
