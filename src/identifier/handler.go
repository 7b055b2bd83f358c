package identifier

import (
	"net/http"

	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/middleware"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// CreateIdentifier godoc
// @Summary      Register an identifier
// @Description  The value must match the owning scheme's validation pattern
// @Tags         Identifier
// @Accept       json
// @Produce      json
// @Router       /v1/identifiers [post]
func (h *Handler) CreateIdentifier(c *gin.Context) {
	var req CreateIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	record, err := h.Service.CreateIdentifier(middleware.TenantId(c), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusCreated, record)
}

// GetIdentifier godoc
// @Summary      Get an identifier by id
// @Tags         Identifier
// @Produce      json
// @Router       /v1/identifiers/{id} [get]
func (h *Handler) GetIdentifier(c *gin.Context) {
	record, err := h.Service.GetIdentifier(middleware.TenantId(c), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// ListIdentifiers godoc
// @Summary      List the tenant's identifiers
// @Tags         Identifier
// @Produce      json
// @Router       /v1/identifiers [get]
func (h *Handler) ListIdentifiers(c *gin.Context) {
	var schemeId *string
	if value := c.Query("schemeId"); value != "" {
		schemeId = &value
	}

	records, err := h.Service.ListIdentifiers(middleware.TenantId(c), schemeId)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, records)
}

// UpdateIdentifier godoc
// @Summary      Update an identifier's value
// @Description  The new value is re-validated against the scheme's pattern
// @Tags         Identifier
// @Accept       json
// @Produce      json
// @Router       /v1/identifiers/{id} [put]
func (h *Handler) UpdateIdentifier(c *gin.Context) {
	var req UpdateIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	record, err := h.Service.UpdateIdentifier(middleware.TenantId(c), c.Param("id"), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// DeleteIdentifier godoc
// @Summary      Delete an identifier
// @Tags         Identifier
// @Produce      json
// @Router       /v1/identifiers/{id} [delete]
func (h *Handler) DeleteIdentifier(c *gin.Context) {
	if err := h.Service.DeleteIdentifier(middleware.TenantId(c), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, gin.H{"deleted": true})
}

// PublishLinks godoc
// @Summary      Publish resolver links for an identifier
// @Description  Resolves the tenant's IDR adapter and registers the linkset
// @Tags         Identifier
// @Accept       json
// @Produce      json
// @Router       /v1/identifiers/{id}/links [post]
func (h *Handler) PublishLinks(c *gin.Context) {
	var req struct {
		Links []serviceregistry.Link `json:"links"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Links) == 0 {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	published, err := h.Service.PublishLinks(c.Request.Context(), middleware.TenantId(c), c.Param("id"), req.Links)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, published)
}
