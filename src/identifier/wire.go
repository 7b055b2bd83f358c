package identifier

import (
	"github.com/uncefact/tests-untp-sub002/pkg/rabbitmq"
	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/registrar"
	"github.com/uncefact/tests-untp-sub002/src/resolution"
	"github.com/uncefact/tests-untp-sub002/src/scheme"
)

const createdEventPublisher rabbitmq.PublisherAlias = "IdentifierCreatedPublisher"

func Build(schemes *scheme.Service, registrars *registrar.Service, resolver *resolution.Resolver) *Handler {
	service := NewService(
		NewRepository(),
		schemes,
		registrars,
		resolver,
		rabbitmq.GetPublisher(createdEventPublisher),
	)
	return NewHandler(service)
}

func Routes(h *Handler) []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "/identifiers", h.CreateIdentifier),
		rest.NewRoute(rest.GET, "v1", "/identifiers", h.ListIdentifiers),
		rest.NewRoute(rest.GET, "v1", "/identifiers/:id", h.GetIdentifier),
		rest.NewRoute(rest.PUT, "v1", "/identifiers/:id", h.UpdateIdentifier),
		rest.NewRoute(rest.DELETE, "v1", "/identifiers/:id", h.DeleteIdentifier),
		rest.NewRoute(rest.POST, "v1", "/identifiers/:id/links", h.PublishLinks),
	}
}
