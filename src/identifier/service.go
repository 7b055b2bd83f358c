package identifier

import (
	"context"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/pkg/rabbitmq"
	"github.com/uncefact/tests-untp-sub002/pkg/utilities"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/model"
	"github.com/uncefact/tests-untp-sub002/src/registrar"
	"github.com/uncefact/tests-untp-sub002/src/resolution"
	"github.com/uncefact/tests-untp-sub002/src/scheme"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"

	"github.com/google/uuid"
)

type CreateIdentifierRequest struct {
	SchemeId string `json:"schemeId"`
	Value    string `json:"value"`
}

type UpdateIdentifierRequest struct {
	Value string `json:"value"`
}

// IdentifierCreatedEvent is published after a successful registration.
type IdentifierCreatedEvent struct {
	IdentifierId string `json:"identifier_id"`
	TenantId     string `json:"tenant_id"`
	SchemeId     string `json:"scheme_id"`
	Value        string `json:"value"`
}

func (e IdentifierCreatedEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type Service struct {
	Repo       Repository
	Schemes    *scheme.Service
	Registrars *registrar.Service
	Resolver   *resolution.Resolver
	Publisher  rabbitmq.IRabbitmqPublisher
	Logger     *logger.Logger
}

func NewService(repo Repository, schemes *scheme.Service, registrars *registrar.Service, resolver *resolution.Resolver, publisher rabbitmq.IRabbitmqPublisher) *Service {
	return &Service{
		Repo:       repo,
		Schemes:    schemes,
		Registrars: registrars,
		Resolver:   resolver,
		Publisher:  publisher,
		Logger:     logger.Default(),
	}
}

// CreateIdentifier registers a value under a scheme. The value is validated
// against the scheme's pattern before anything is persisted.
func (s *Service) CreateIdentifier(tenantId string, req CreateIdentifierRequest) (*model.Identifier, error) {
	if req.SchemeId == "" {
		return nil, apperrors.NewValidationError("schemeId is required")
	}
	if err := s.Schemes.ValidateValue(tenantId, req.SchemeId, req.Value); err != nil {
		return nil, err
	}

	identifier := &model.Identifier{
		Id:       uuid.NewString(),
		TenantId: tenantId,
		SchemeId: req.SchemeId,
		Value:    req.Value,
	}

	if err := s.Repo.Create(identifier); err != nil {
		return nil, err
	}

	event := IdentifierCreatedEvent{
		IdentifierId: identifier.Id,
		TenantId:     tenantId,
		SchemeId:     identifier.SchemeId,
		Value:        identifier.Value,
	}
	if err := s.Publisher.Publish(event); err != nil {
		s.Logger.Error(err, "Could not publish identifier.created event")
	}

	return identifier, nil
}

func (s *Service) GetIdentifier(tenantId, id string) (*model.Identifier, error) {
	identifier, err := s.Repo.GetById(tenantId, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("identifier", id)
		}
		return nil, err
	}
	return identifier, nil
}

func (s *Service) ListIdentifiers(tenantId string, schemeId *string) ([]model.Identifier, error) {
	return s.Repo.List(tenantId, schemeId)
}

// UpdateIdentifier re-validates the value against the scheme on every
// mutation, not just creation.
func (s *Service) UpdateIdentifier(tenantId, id string, req UpdateIdentifierRequest) (*model.Identifier, error) {
	identifier, err := s.GetIdentifier(tenantId, id)
	if err != nil {
		return nil, err
	}

	if err := s.Schemes.ValidateValue(tenantId, identifier.SchemeId, req.Value); err != nil {
		return nil, err
	}

	identifier.Value = req.Value
	if err := s.Repo.Update(tenantId, identifier); err != nil {
		return nil, err
	}
	return identifier, nil
}

func (s *Service) DeleteIdentifier(tenantId, id string) error {
	if err := s.Repo.Delete(tenantId, id); err != nil {
		if IsNotFound(err) {
			return apperrors.NewNotFoundError("identifier", id)
		}
		return err
	}
	return nil
}

// PublishLinks resolves the tenant's IDR adapter and registers a linkset for
// the identifier. The scheme's instance override beats the registrar's; with
// neither, the resolver walks its fallback chain. The instance that served
// the request is stamped on the identifier for provenance.
func (s *Service) PublishLinks(ctx context.Context, tenantId, id string, links []serviceregistry.Link) ([]serviceregistry.Link, error) {
	identifier, err := s.GetIdentifier(tenantId, id)
	if err != nil {
		return nil, err
	}

	identifierScheme, err := s.Schemes.GetScheme(tenantId, identifier.SchemeId)
	if err != nil {
		return nil, err
	}

	owningRegistrar, err := s.Registrars.GetRegistrar(tenantId, identifierScheme.RegistrarId)
	if err != nil {
		return nil, err
	}

	override := resolution.FirstOverride(
		identifierScheme.IdrServiceInstanceId,
		owningRegistrar.IdrServiceInstanceId,
	)

	resolved, err := s.Resolver.Resolve(tenantId, model.ServiceTypeIdr, override)
	if err != nil {
		return nil, err
	}

	idr, ok := resolved.Adapter.(serviceregistry.IdentityResolver)
	if !ok {
		return nil, &apperrors.ServiceResolutionError{
			TenantId:    tenantId,
			ServiceType: string(model.ServiceTypeIdr),
		}
	}

	// A scheme-level namespace lets one IDR instance serve multiple schemes;
	// empty falls back to the instance's configured namespace.
	published, err := idr.PublishLinks(ctx, serviceregistry.PublishLinksRequest{
		IdentifierValue: identifier.Value,
		Namespace:       identifierScheme.Namespace,
		Links:           links,
	})
	if err != nil {
		return nil, err
	}

	identifier.ResolvedByInstanceId = &resolved.InstanceId
	if err := s.Repo.Update(tenantId, identifier); err != nil {
		s.Logger.Error(err, "Could not stamp resolving instance on identifier")
	}

	return published, nil
}
