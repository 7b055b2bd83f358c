package did

import (
	"context"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/model"
	"github.com/uncefact/tests-untp-sub002/src/resolution"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"

	"github.com/google/uuid"
)

type CreateDidRequest struct {
	Alias string        `json:"alias"`
	Type  model.DidType `json:"type"`
	// Optional explicit service instance to create the DID through. Without
	// it the resolver walks the fallback chain.
	ServiceInstanceId *string `json:"serviceInstanceId"`
	// For SELF_MANAGED DIDs the did string comes from the caller and no
	// backend call happens.
	Did string `json:"did"`
}

type Service struct {
	Repo     Repository
	Resolver *resolution.Resolver
	Logger   *logger.Logger
}

func NewService(repo Repository, resolver *resolution.Resolver) *Service {
	return &Service{
		Repo:     repo,
		Resolver: resolver,
		Logger:   logger.Default(),
	}
}

// CreateDid registers a DID for the tenant. MANAGED DIDs are minted through
// the resolved DID adapter; SELF_MANAGED ones are recorded as supplied and
// stay unverified until verification runs.
func (s *Service) CreateDid(ctx context.Context, tenantId string, req CreateDidRequest) (*model.Did, error) {
	switch req.Type {
	case model.DidTypeSelfManaged:
		if req.Did == "" {
			return nil, apperrors.NewValidationError("did is required for SELF_MANAGED type")
		}
		record := &model.Did{
			Id:       uuid.NewString(),
			TenantId: tenantId,
			Did:      req.Did,
			Type:     model.DidTypeSelfManaged,
			Status:   model.DidStatusUnverified,
		}
		if err := s.Repo.Create(record); err != nil {
			return nil, err
		}
		return record, nil

	case model.DidTypeManaged:
		if req.Alias == "" {
			return nil, apperrors.NewValidationError("alias is required for MANAGED type")
		}

		resolved, err := s.Resolver.Resolve(tenantId, model.ServiceTypeDid, req.ServiceInstanceId)
		if err != nil {
			return nil, err
		}
		driver, ok := resolved.Adapter.(serviceregistry.DidDriver)
		if !ok {
			return nil, &apperrors.ServiceResolutionError{
				TenantId:    tenantId,
				ServiceType: string(model.ServiceTypeDid),
			}
		}

		created, err := driver.Create(ctx, serviceregistry.CreateDidRequest{Alias: req.Alias})
		if err != nil {
			return nil, err
		}

		record := &model.Did{
			Id:                uuid.NewString(),
			TenantId:          tenantId,
			Did:               created.Did,
			Type:              model.DidTypeManaged,
			Method:            "web",
			KeyId:             created.KeyId,
			Status:            model.DidStatusActive,
			ServiceInstanceId: &resolved.InstanceId,
		}
		if err := s.Repo.Create(record); err != nil {
			return nil, err
		}
		return record, nil

	default:
		return nil, apperrors.NewValidationError("type must be MANAGED or SELF_MANAGED")
	}
}

func (s *Service) GetDid(tenantId, id string) (*model.Did, error) {
	record, err := s.Repo.GetById(tenantId, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("did", id)
		}
		return nil, err
	}
	return record, nil
}

func (s *Service) ListDids(tenantId string) ([]model.Did, error) {
	return s.Repo.List(tenantId)
}

// VerifyDid runs verification through the instance that manages the record,
// when one is stamped; otherwise through the resolver's fallback chain.
func (s *Service) VerifyDid(ctx context.Context, tenantId, id string) (*model.Did, error) {
	record, err := s.GetDid(tenantId, id)
	if err != nil {
		return nil, err
	}

	resolved, err := s.Resolver.Resolve(tenantId, model.ServiceTypeDid, record.ServiceInstanceId)
	if err != nil {
		return nil, err
	}
	driver, ok := resolved.Adapter.(serviceregistry.DidDriver)
	if !ok {
		return nil, &apperrors.ServiceResolutionError{
			TenantId:    tenantId,
			ServiceType: string(model.ServiceTypeDid),
		}
	}

	verified, err := driver.Verify(ctx, record.Did)
	if err != nil {
		return nil, err
	}

	if verified {
		record.Status = model.DidStatusVerified
	} else {
		record.Status = model.DidStatusUnverified
	}
	record.ServiceInstanceId = &resolved.InstanceId

	if err := s.Repo.Update(tenantId, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) DeleteDid(tenantId, id string) error {
	if err := s.Repo.Delete(tenantId, id); err != nil {
		if IsNotFound(err) {
			return apperrors.NewNotFoundError("did", id)
		}
		return err
	}
	return nil
}
