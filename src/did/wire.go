package did

import (
	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/src/resolution"
)

func Build(resolver *resolution.Resolver) (*Handler, Repository) {
	repo := NewRepository()
	return NewHandler(NewService(repo, resolver)), repo
}

func Routes(h *Handler) []rest.Route {
	return []rest.Route{
		rest.NewRoute(rest.POST, "v1", "/dids", h.CreateDid),
		rest.NewRoute(rest.GET, "v1", "/dids", h.ListDids),
		rest.NewRoute(rest.GET, "v1", "/dids/:id", h.GetDid),
		rest.NewRoute(rest.POST, "v1", "/dids/:id/verify", h.VerifyDid),
		rest.NewRoute(rest.DELETE, "v1", "/dids/:id", h.DeleteDid),
	}
}
