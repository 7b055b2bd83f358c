package serviceinstance

import (
	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/encryption"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"
)

func Build(enc encryption.Service, registry *serviceregistry.Registry) (*Handler, *Service) {
	service := NewService(NewRepository(), enc, registry)
	return NewHandler(service), service
}

func Routes(h *Handler) []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "/service-instances", h.CreateInstance),
		rest.NewRoute(rest.GET, "v1", "/service-instances", h.ListInstances),
		rest.NewRoute(rest.GET, "v1", "/service-instances/:id", h.GetInstance),
		rest.NewRoute(rest.PUT, "v1", "/service-instances/:id", h.UpdateInstance),
		rest.NewRoute(rest.DELETE, "v1", "/service-instances/:id", h.DeleteInstance),
	}
}
