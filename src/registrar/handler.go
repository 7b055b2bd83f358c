package registrar

import (
	"net/http"

	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// CreateRegistrar godoc
// @Summary      Create a registrar
// @Tags         Registrar
// @Accept       json
// @Produce      json
// @Router       /v1/registrars [post]
func (h *Handler) CreateRegistrar(c *gin.Context) {
	var req CreateRegistrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	record, err := h.Service.CreateRegistrar(middleware.TenantId(c), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusCreated, record)
}

// GetRegistrar godoc
// @Summary      Get a registrar by id
// @Tags         Registrar
// @Produce      json
// @Router       /v1/registrars/{id} [get]
func (h *Handler) GetRegistrar(c *gin.Context) {
	record, err := h.Service.GetRegistrar(middleware.TenantId(c), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// ListRegistrars godoc
// @Summary      List registrars visible to the tenant
// @Tags         Registrar
// @Produce      json
// @Router       /v1/registrars [get]
func (h *Handler) ListRegistrars(c *gin.Context) {
	records, err := h.Service.ListRegistrars(middleware.TenantId(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, records)
}

// UpdateRegistrar godoc
// @Summary      Update a registrar
// @Tags         Registrar
// @Accept       json
// @Produce      json
// @Router       /v1/registrars/{id} [put]
func (h *Handler) UpdateRegistrar(c *gin.Context) {
	var req UpdateRegistrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	record, err := h.Service.UpdateRegistrar(middleware.TenantId(c), c.Param("id"), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// DeleteRegistrar godoc
// @Summary      Delete a registrar
// @Tags         Registrar
// @Produce      json
// @Router       /v1/registrars/{id} [delete]
func (h *Handler) DeleteRegistrar(c *gin.Context) {
	if err := h.Service.DeleteRegistrar(middleware.TenantId(c), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, gin.H{"deleted": true})
}
