package serviceregistry

import (
	"context"
	"fmt"
)

// ServiceError is raised by a live adapter during an operation. It carries
// its own HTTP status so the REST layer does not collapse upstream failures
// into a generic 500.
type ServiceError struct {
	Code       string
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) HttpStatus() int {
	return e.StatusCode
}

// Link is one entry of a linkset registered for an identifier.
type Link struct {
	Id          string `json:"id,omitempty"`
	LinkType    string `json:"linkType"`
	TargetUrl   string `json:"targetUrl"`
	Title       string `json:"title,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
	DefaultLink bool   `json:"defaultLink,omitempty"`
}

// PublishLinksRequest registers a linkset for one identifier value under a
// scheme namespace.
type PublishLinksRequest struct {
	Namespace       string            `json:"namespace"`
	IdentifierValue string            `json:"identifierValue"`
	Qualifiers      map[string]string `json:"qualifiers,omitempty"`
	Links           []Link            `json:"links"`
}

type ResolverDescription struct {
	Name          string   `json:"name"`
	ResolverRoot  string   `json:"resolverRoot"`
	SupportedKeys []string `json:"supportedLinkKeys,omitempty"`
}

// IdentityResolver is the operation surface every IDR adapter must expose.
type IdentityResolver interface {
	PublishLinks(ctx context.Context, req PublishLinksRequest) ([]Link, error)
	GetLinkById(ctx context.Context, linkId string) (*Link, error)
	UpdateLink(ctx context.Context, linkId string, link Link) (*Link, error)
	DeleteLink(ctx context.Context, linkId string) error
	GetResolverDescription(ctx context.Context) (*ResolverDescription, error)
	GetLinkTypes(ctx context.Context) ([]string, error)
}

type CreateDidRequest struct {
	Alias  string `json:"alias"`
	Method string `json:"method,omitempty"`
}

type CreateDidResponse struct {
	Did   string `json:"did"`
	KeyId string `json:"keyId,omitempty"`
}

// DidDriver is the operation surface every DID adapter must expose.
type DidDriver interface {
	Create(ctx context.Context, req CreateDidRequest) (*CreateDidResponse, error)
	Verify(ctx context.Context, did string) (bool, error)
	NormaliseAlias(alias string) string
	GetSupportedTypes() []string
	GetSupportedMethods() []string
}
