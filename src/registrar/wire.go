package registrar

import "github.com/uncefact/tests-untp-sub002/pkg/rest"

func Build() (*Handler, *Service) {
	service := NewService(NewRepository())
	return NewHandler(service), service
}

func Routes(h *Handler) []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "/registrars", h.CreateRegistrar),
		rest.NewRoute(rest.GET, "v1", "/registrars", h.ListRegistrars),
		rest.NewRoute(rest.GET, "v1", "/registrars/:id", h.GetRegistrar),
		rest.NewRoute(rest.PUT, "v1", "/registrars/:id", h.UpdateRegistrar),
		rest.NewRoute(rest.DELETE, "v1", "/registrars/:id", h.DeleteRegistrar),
	}
}
