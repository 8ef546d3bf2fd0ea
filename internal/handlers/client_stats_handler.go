package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/vazqueztomas/barbershop/internal/domain/haircut"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/httpresp"
)

const defaultClientRankLimit = 10

type ClientStatsHandler struct {
	repo domain.Repository
}

func NewClientStatsHandler(repo domain.Repository) *ClientStatsHandler {
	return &ClientStatsHandler{repo: repo}
}

func (h *ClientStatsHandler) ListClients(c *gin.Context) {
	names, err := h.repo.UniqueClients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}
	httpresp.OK(c, names)
}

func (h *ClientStatsHandler) Stats(c *gin.Context) {
	name := c.Param("name")

	stats, err := h.repo.ClientStats(c.Request.Context(), name)
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrClientNotFound) {
			httperr.NotFound(c, domain.ErrClientNotFound, "Client not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_stats", "Could not compute client stats.")
		return
	}
	httpresp.OK(c, stats)
}

func (h *ClientStatsHandler) History(c *gin.Context) {
	name := c.Param("name")

	cuts, err := h.repo.ClientHistory(c.Request.Context(), name)
	if err != nil {
		httperr.Internal(c, "failed_to_get_history", "Could not fetch client history.")
		return
	}
	httpresp.OK(c, cuts)
}

func (h *ClientStatsHandler) Top(c *gin.Context) {
	rows, err := h.repo.TopClients(c.Request.Context(), limitQuery(c))
	if err != nil {
		httperr.Internal(c, "failed_to_rank_clients", "Could not rank clients.")
		return
	}
	httpresp.OK(c, rows)
}

func (h *ClientStatsHandler) BySpent(c *gin.Context) {
	rows, err := h.repo.ClientsBySpent(c.Request.Context(), limitQuery(c))
	if err != nil {
		httperr.Internal(c, "failed_to_rank_clients", "Could not rank clients.")
		return
	}
	httpresp.OK(c, rows)
}

func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", ""))
	if err != nil || limit <= 0 || limit > 100 {
		return defaultClientRankLimit
	}
	return limit
}
