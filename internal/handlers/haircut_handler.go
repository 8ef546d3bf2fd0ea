package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vazqueztomas/barbershop/internal/audit"
	"github.com/vazqueztomas/barbershop/internal/config"
	"github.com/vazqueztomas/barbershop/internal/dates"
	domain "github.com/vazqueztomas/barbershop/internal/domain/haircut"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/httpresp"
	"github.com/vazqueztomas/barbershop/internal/models"
)

type HaircutHandler struct {
	repo   domain.Repository
	audit  *audit.Logger
	config *config.Config
}

func NewHaircutHandler(repo domain.Repository, auditLogger *audit.Logger, cfg *config.Config) *HaircutHandler {
	return &HaircutHandler{
		repo:   repo,
		audit:  auditLogger,
		config: cfg,
	}
}

// --------- Requests ---------

type CreateHaircutRequest struct {
	ClientName  string   `json:"clientName" binding:"required"`
	ServiceName string   `json:"serviceName" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Count       int      `json:"count"`
	Tip         float64  `json:"tip" binding:"gte=0"`
}

type UpdateHaircutRequest struct {
	ID          uint     `json:"id" binding:"required"`
	ClientName  string   `json:"clientName" binding:"required"`
	ServiceName string   `json:"serviceName" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Count       int      `json:"count"`
	Tip         float64  `json:"tip" binding:"gte=0"`
}

type UpdateHaircutPriceRequest struct {
	Price *float64 `json:"price" binding:"required,gte=0"`
}

// --------- Handlers ---------

func (h *HaircutHandler) List(c *gin.Context) {
	cuts, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_haircuts", "Could not list haircuts.")
		return
	}
	httpresp.OK(c, cuts)
}

func (h *HaircutHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	cut, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.NotFound(c, domain.ErrNotFound, "Haircut not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_haircut", "Could not fetch haircut.")
		return
	}
	httpresp.OK(c, cut)
}

func (h *HaircutHandler) Create(c *gin.Context) {
	var req CreateHaircutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	date := req.Date
	if date == "" {
		date = dates.Today(h.config.Timezone)
	}
	normalized, err := dates.Normalize(date)
	if err != nil {
		httperr.Unprocessable(c, "invalid_date", "Date must be YYYY-MM-DD or DD/MM/YYYY.")
		return
	}

	cut := models.Haircut{
		ClientName:  req.ClientName,
		ServiceName: req.ServiceName,
		Price:       *req.Price,
		Date:        normalized,
		Time:        req.Time,
		Count:       req.Count,
		Tip:         req.Tip,
	}

	if err := h.repo.Create(c.Request.Context(), &cut); err != nil {
		httperr.Internal(c, "failed_to_create_haircut", "Could not create haircut.")
		return
	}

	h.audit.Log("haircut_created", "haircut", &cut.ID, nil)

	httpresp.Created(c, cut)
}

func (h *HaircutHandler) Update(c *gin.Context) {
	var req UpdateHaircutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	normalized, err := dates.Normalize(req.Date)
	if err != nil {
		httperr.Unprocessable(c, "invalid_date", "Date must be YYYY-MM-DD or DD/MM/YYYY.")
		return
	}

	cut := models.Haircut{
		ID:          req.ID,
		ClientName:  req.ClientName,
		ServiceName: req.ServiceName,
		Price:       *req.Price,
		Date:        normalized,
		Time:        req.Time,
		Count:       req.Count,
		Tip:         req.Tip,
	}

	if err := h.repo.Update(c.Request.Context(), &cut); err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.NotFound(c, domain.ErrNotFound, "Haircut not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_haircut", "Could not update haircut.")
		return
	}

	h.audit.Log("haircut_updated", "haircut", &cut.ID, nil)

	updated, err := h.repo.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_haircut", "Could not fetch haircut.")
		return
	}
	httpresp.OK(c, updated)
}

func (h *HaircutHandler) UpdatePrice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateHaircutPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_price", "A non-negative price is required.")
		return
	}

	cut, err := h.repo.UpdatePrice(c.Request.Context(), id, *req.Price)
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.NotFound(c, domain.ErrNotFound, "Haircut not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_price", "Could not update price.")
		return
	}

	h.audit.Log("haircut_price_updated", "haircut", &cut.ID, gin.H{"price": *req.Price})

	httpresp.OK(c, cut)
}

func (h *HaircutHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.NotFound(c, domain.ErrNotFound, "Haircut not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_haircut", "Could not delete haircut.")
		return
	}

	h.audit.Log("haircut_deleted", "haircut", &id, nil)

	httpresp.Message(c, "Haircut deleted")
}

// --------- History ---------

func (h *HaircutHandler) ListByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	cuts, err := h.repo.GetByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_haircuts", "Could not list haircuts.")
		return
	}
	httpresp.OK(c, cuts)
}

func (h *HaircutHandler) DeleteByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	deleted, err := h.repo.DeleteByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_haircuts", "Could not delete haircuts.")
		return
	}

	h.audit.Log("haircuts_deleted_by_date", "haircut", nil, gin.H{"date": date, "deleted": deleted})

	httpresp.OK(c, gin.H{
		"message": fmt.Sprintf("Deleted %d haircuts", deleted),
		"deleted": deleted,
	})
}

func (h *HaircutHandler) DailyHistory(c *gin.Context) {
	rows, err := h.repo.GetDailySummary(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_summarize", "Could not build daily history.")
		return
	}

	summary := make(map[string]float64, len(rows))
	for _, row := range rows {
		summary[row.Date] = row.Total
	}
	httpresp.OK(c, summary)
}

func (h *HaircutHandler) TodaySummary(c *gin.Context) {
	today := dates.Today(h.config.Timezone)

	summary, err := h.repo.DaySummary(c.Request.Context(), today)
	if err != nil {
		httperr.Internal(c, "failed_to_summarize", "Could not build today's summary.")
		return
	}
	httpresp.OK(c, summary)
}

// --------- Param helpers ---------

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func dateParam(c *gin.Context) (string, bool) {
	date, err := dates.Normalize(c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD or DD/MM/YYYY.")
		return "", false
	}
	return date, true
}
