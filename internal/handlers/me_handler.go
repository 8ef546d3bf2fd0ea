package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/vazqueztomas/barbershop/internal/domain/user"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/httpresp"
	"github.com/vazqueztomas/barbershop/internal/middleware"
)

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	usernameVal, exists := c.Get(middleware.ContextUsername)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "Could not validate credentials.")
		return
	}

	username, ok := usernameVal.(string)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_context", "Could not validate credentials.")
		return
	}

	user, err := h.repo.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.Unauthorized(c, "user_not_found", "Could not validate credentials.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Could not fetch the current user.")
		return
	}

	httpresp.OK(c, user)
}
