package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vazqueztomas/barbershop/internal/audit"
	domain "github.com/vazqueztomas/barbershop/internal/domain/catalog"
	"github.com/vazqueztomas/barbershop/internal/httperr"
	"github.com/vazqueztomas/barbershop/internal/httpresp"
	"github.com/vazqueztomas/barbershop/internal/models"
)

type ServicePriceHandler struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewServicePriceHandler(repo domain.Repository, auditLogger *audit.Logger) *ServicePriceHandler {
	return &ServicePriceHandler{repo: repo, audit: auditLogger}
}

// --------- Requests ---------

type CreateServicePriceRequest struct {
	ServiceName string `json:"service_name" binding:"required"`
	BasePrice   *int   `json:"base_price" binding:"required,gte=0"`
}

type UpdateServicePriceRequest struct {
	BasePrice *int `json:"base_price" binding:"required,gte=0"`
}

// --------- Handlers ---------

func (h *ServicePriceHandler) List(c *gin.Context) {
	prices, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list service prices.")
		return
	}
	httpresp.OK(c, prices)
}

func (h *ServicePriceHandler) GetByName(c *gin.Context) {
	sp, err := h.repo.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.NotFound(c, domain.ErrNotFound, "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not fetch service price.")
		return
	}
	httpresp.OK(c, sp)
}

func (h *ServicePriceHandler) Create(c *gin.Context) {
	var req CreateServicePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", err.Error())
		return
	}

	sp := models.ServicePrice{
		ServiceName: req.ServiceName,
		BasePrice:   *req.BasePrice,
	}

	if err := h.repo.Create(c.Request.Context(), &sp); err != nil {
		if httperr.IsBusiness(err, domain.ErrAlreadyExists) {
			httperr.Conflict(c, domain.ErrAlreadyExists, "Service already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Could not create service price.")
		return
	}

	h.audit.Log("service_price_created", "service_price", &sp.ID, nil)

	httpresp.Created(c, sp)
}

func (h *ServicePriceHandler) UpdatePrice(c *gin.Context) {
	var req UpdateServicePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_price", "A non-negative base_price is required.")
		return
	}

	sp, err := h.repo.UpdatePrice(c.Request.Context(), c.Param("name"), *req.BasePrice)
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.NotFound(c, domain.ErrNotFound, "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_service", "Could not update service price.")
		return
	}

	h.audit.Log("service_price_updated", "service_price", &sp.ID, gin.H{"base_price": *req.BasePrice})

	httpresp.OK(c, sp)
}

func (h *ServicePriceHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	if err := h.repo.Delete(c.Request.Context(), name); err != nil {
		if httperr.IsBusiness(err, domain.ErrNotFound) {
			httperr.NotFound(c, domain.ErrNotFound, "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service price.")
		return
	}

	h.audit.Log("service_price_deleted", "service_price", nil, gin.H{"service_name": name})

	httpresp.Message(c, "Service deleted")
}
