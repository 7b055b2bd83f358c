package onboarding

import (
	"net/http"

	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/middleware"

	"github.com/gin-gonic/gin"
)

type OnboardRequest struct {
	Name string `json:"name"`
}

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Onboard godoc
// @Summary      Onboard the calling tenant
// @Description  Creates the tenant record and clones the system defaults
// @Tags         Onboarding
// @Accept       json
// @Produce      json
// @Router       /v1/onboarding [post]
func (h *Handler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rest.Fail(c, http.StatusBadRequest, "Invalid request body", string(apperrors.CodeValidation))
		return
	}

	tenant, err := h.Service.Onboard(middleware.TenantId(c), req.Name)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	rest.Ok(c, http.StatusCreated, tenant)
}
