package onboarding

import (
	"github.com/uncefact/tests-untp-sub002/pkg/rabbitmq"
	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/did"
	"github.com/uncefact/tests-untp-sub002/src/serviceinstance"

	"gorm.io/gorm"
)

const onboardedEventPublisher rabbitmq.PublisherAlias = "TenantOnboardedPublisher"

func Build(db *gorm.DB, instances serviceinstance.Repository, dids did.Repository) *Handler {
	cloner := NewCloner(db, instances, dids)
	service := NewService(db, cloner, rabbitmq.GetPublisher(onboardedEventPublisher))
	return NewHandler(service)
}

func Routes(h *Handler) []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "/onboarding", h.Onboard),
	}
}
