package scheme

import "github.com/uncefact/tests-untp-sub002/pkg/rest"

func Build() (*Handler, *Service) {
	service := NewService(NewRepository())
	return NewHandler(service), service
}

func Routes(h *Handler) []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "/schemes", h.CreateScheme),
		rest.NewRoute(rest.GET, "v1", "/schemes", h.ListSchemes),
		rest.NewRoute(rest.GET, "v1", "/schemes/:id", h.GetScheme),
		rest.NewRoute(rest.PUT, "v1", "/schemes/:id", h.UpdateScheme),
		rest.NewRoute(rest.DELETE, "v1", "/schemes/:id", h.DeleteScheme),
	}
}
