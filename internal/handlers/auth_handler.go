package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vazqueztomas/barbershop/internal/audit"
	"github.com/vazqueztomas/barbershop/internal/config"
	domain "github.com/vazqueztomas/barbershop/internal/domain/user"
	"github.com/vazqueztomas/barbershop/internal/dto"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/httpresp"
	"github.com/vazqueztomas/barbershop/internal/models"
	"github.com/vazqueztomas/barbershop/internal/validators"
)

type AuthHandler struct {
	repo   domain.Repository
	audit  *audit.Logger
	config *config.Config
}

func NewAuthHandler(repo domain.Repository, auditLogger *audit.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		repo:   repo,
		audit:  auditLogger,
		config: cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.Unprocessable(c, "invalid_email", "The email address is not valid.")
		return
	}

	user, err := h.repo.CreateUser(c.Request.Context(), email, req.Username, req.FullName, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrUsernameTaken) {
			httperr.Conflict(c, domain.ErrUsernameTaken, "Username already registered.")
			return
		}
		if httperr.IsBusiness(err, domain.ErrEmailTaken) {
			httperr.Conflict(c, domain.ErrEmailTaken, "Email already registered.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create account.")
		return
	}

	h.audit.Log("user_registered", "user", &user.ID, nil)

	httpresp.Created(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	h.issueToken(c, req.Username, req.Password)
}

// Token is the form-encoded variant of Login kept for OAuth2-style
// clients.
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		httperr.BadRequest(c, "invalid_request", "username and password form fields are required.")
		return
	}

	h.issueToken(c, username, password)
}

func (h *AuthHandler) issueToken(c *gin.Context, username, password string) {
	user, err := h.repo.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrInvalidCredentials) {
			httperr.Unauthorized(c, domain.ErrInvalidCredentials, "Incorrect username or password.")
			return
		}
		httperr.Internal(c, "failed_to_authenticate", "Could not authenticate.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	httpresp.OK(c, dto.Token{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *user,
	})
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	token, err := h.repo.CreatePasswordResetToken(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_create_reset_token", "Could not process the request.")
		return
	}

	// Same message whether or not the email is registered. The token
	// rides along when one was issued: there is no mail transport.
	resp := gin.H{"message": "If the email exists, a reset link will be sent"}
	if token != "" {
		h.audit.Log("password_reset_requested", "user", nil, nil)
		resp["reset_token"] = token
	}
	httpresp.OK(c, resp)
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.repo.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if httperr.IsBusiness(err, domain.ErrResetFailed) {
			httperr.BadRequest(c, domain.ErrResetFailed, "Invalid or expired reset token.")
			return
		}
		httperr.Internal(c, "failed_to_reset_password", "Could not reset password.")
		return
	}

	h.audit.Log("password_reset_completed", "user", nil, nil)

	httpresp.Message(c, "Password reset successfully")
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.Username,
		"exp": now.Add(time.Duration(h.config.AccessTokenHours) * time.Hour).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
