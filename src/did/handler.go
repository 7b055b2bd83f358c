package did

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

// CreateDid godoc
// @Summary      Register a DID for the tenant
// @Description  MANAGED DIDs are minted through the resolved DID backend
// @Tags         Did
// @Accept       json
// @Produce      json
// @Router       /v1/dids [post]
func (h *Handler) CreateDid(c *gin.Context) {
	var req CreateDidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	record, err := h.Service.CreateDid(c.Request.Context(), middleware.TenantId(c), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusCreated, record)
}

// GetDid godoc
// @Summary      Get a DID record by id
// @Tags         Did
// @Produce      json
// @Router       /v1/dids/{id} [get]
func (h *Handler) GetDid(c *gin.Context) {
	record, err := h.Service.GetDid(middleware.TenantId(c), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// ListDids godoc
// @Summary      List the tenant's DID records
// @Tags         Did
// @Produce      json
// @Router       /v1/dids [get]
func (h *Handler) ListDids(c *gin.Context) {
	records, err := h.Service.ListDids(middleware.TenantId(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, records)
}

// VerifyDid godoc
// @Summary      Verify a DID through its managing backend
// @Tags         Did
// @Produce      json
// @Router       /v1/dids/{id}/verify [post]
func (h *Handler) VerifyDid(c *gin.Context) {
	record, err := h.Service.VerifyDid(c.Request.Context(), middleware.TenantId(c), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, record)
}

// DeleteDid godoc
// @Summary      Delete a DID record
// @Tags         Did
// @Produce      json
// @Router       /v1/dids/{id} [delete]
func (h *Handler) DeleteDid(c *gin.Context) {
	if err := h.Service.DeleteDid(middleware.TenantId(c), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusOK, gin.H{"deleted": true})
}
