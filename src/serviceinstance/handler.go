package serviceinstance

import (
	"net/http"
	"strconv"

	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/middleware"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// CreateInstance godoc
// @Summary      Create a service instance
// @Description  Registers a configured backend connection for the tenant
// @Tags         ServiceInstance
// @Accept       json
// @Produce      json
// @Router       /v1/service-instances [post]
func (h *Handler) CreateInstance(c *gin.Context) {
	var req CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	instance, err := h.Service.CreateInstance(middleware.TenantId(c), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusCreated, instance)
}

// GetInstance godoc
// @Summary      Get a service instance by id
// @Tags         ServiceInstance
// @Produce      json
// @Router       /v1/service-instances/{id} [get]
func (h *Handler) GetInstance(c *gin.Context) {
	instance, err := h.Service.GetInstance(middleware.TenantId(c), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, instance)
}

// ListInstances godoc
// @Summary      List service instances
// @Description  Tenant-owned plus system defaults, newest first
// @Tags         ServiceInstance
// @Produce      json
// @Router       /v1/service-instances [get]
func (h *Handler) ListInstances(c *gin.Context) {
	filter := ListFilter{}
	if serviceType := c.Query("serviceType"); serviceType != "" {
		st := model.ServiceType(serviceType)
		filter.ServiceType = &st
	}
	if adapterType := c.Query("adapterType"); adapterType != "" {
		at := model.AdapterType(adapterType)
		filter.AdapterType = &at
	}
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))

	instances, err := h.Service.ListInstances(middleware.TenantId(c), filter)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, instances)
}

// UpdateInstance godoc
// @Summary      Update a service instance
// @Tags         ServiceInstance
// @Accept       json
// @Produce      json
// @Router       /v1/service-instances/{id} [put]
func (h *Handler) UpdateInstance(c *gin.Context) {
	var req UpdateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	instance, err := h.Service.UpdateInstance(middleware.TenantId(c), c.Param("id"), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, instance)
}

// DeleteInstance godoc
// @Summary      Delete a service instance
// @Tags         ServiceInstance
// @Produce      json
// @Router       /v1/service-instances/{id} [delete]
func (h *Handler) DeleteInstance(c *gin.Context) {
	if err := h.Service.DeleteInstance(middleware.TenantId(c), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, gin.H{"deleted": true})
}
