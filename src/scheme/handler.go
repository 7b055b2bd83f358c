package scheme

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

// CreateScheme godoc
// @Summary      Create an identifier scheme
// @Tags         Scheme
// @Accept       json
// @Produce      json
// @Router       /v1/schemes [post]
func (h *Handler) CreateScheme(c *gin.Context) {
	var req CreateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	record, err := h.Service.CreateScheme(middleware.TenantId(c), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusCreated, record)
}

// GetScheme godoc
// @Summary      Get a scheme by id
// @Tags         Scheme
// @Produce      json
// @Router       /v1/schemes/{id} [get]
func (h *Handler) GetScheme(c *gin.Context) {
	record, err := h.Service.GetScheme(middleware.TenantId(c), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// ListSchemes godoc
// @Summary      List schemes visible to the tenant
// @Tags         Scheme
// @Produce      json
// @Router       /v1/schemes [get]
func (h *Handler) ListSchemes(c *gin.Context) {
	var registrarId *string
	if value := c.Query("registrarId"); value != "" {
		registrarId = &value
	}

	records, err := h.Service.ListSchemes(middleware.TenantId(c), registrarId)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, records)
}

// UpdateScheme godoc
// @Summary      Update a scheme
// @Description  A qualifiers list in the body replaces the scheme's full qualifier set
// @Tags         Scheme
// @Accept       json
// @Produce      json
// @Router       /v1/schemes/{id} [put]
func (h *Handler) UpdateScheme(c *gin.Context) {
	var req UpdateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	record, err := h.Service.UpdateScheme(middleware.TenantId(c), c.Param("id"), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// DeleteScheme godoc
// @Summary      Delete a scheme
// @Tags         Scheme
// @Produce      json
// @Router       /v1/schemes/{id} [delete]
func (h *Handler) DeleteScheme(c *gin.Context) {
	if err := h.Service.DeleteScheme(middleware.TenantId(c), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, gin.H{"deleted": true})
}
