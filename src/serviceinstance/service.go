package serviceinstance

import (
	"encoding/json"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/encryption"
	"github.com/uncefact/tests-untp-sub002/src/model"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"

	"github.com/google/uuid"
)

type CreateInstanceRequest struct {
	ServiceType model.ServiceType      `json:"serviceType"`
	AdapterType model.AdapterType      `json:"adapterType"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Config      map[string]interface{} `json:"config"`
	ApiVersion  string                 `json:"apiVersion"`
	IsPrimary   bool                   `json:"isPrimary"`
}

type UpdateInstanceRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Config      map[string]interface{} `json:"config"`
	ApiVersion  *string                `json:"apiVersion"`
	IsPrimary   *bool                  `json:"isPrimary"`
}

type Service struct {
	Repo       Repository
	Encryption encryption.Service
	Registry   *serviceregistry.Registry
	Logger     *logger.Logger
}

func NewService(repo Repository, enc encryption.Service, registry *serviceregistry.Registry) *Service {
	return &Service{
		Repo:       repo,
		Encryption: enc,
		Registry:   registry,
		Logger:     logger.Default(),
	}
}

// CreateInstance validates the plaintext configuration against the adapter's
// schema, encrypts it and persists the record. Schema violations at creation
// time are user errors, unlike the server-side ConfigValidationError raised
// during resolution.
func (s *Service) CreateInstance(tenantId string, req CreateInstanceRequest) (*model.ServiceInstance, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	entry, err := s.Registry.Lookup(req.ServiceType, req.AdapterType)
	if err != nil {
		return nil, apperrors.NewValidationError(
			"unknown adapter type %q for service type %q", req.AdapterType, req.ServiceType)
	}

	if fieldErrors := entry.ValidateConfig(req.Config); len(fieldErrors) > 0 {
		return nil, apperrors.NewValidationError(
			"invalid adapter configuration: %s", serviceregistry.JoinFieldErrors(fieldErrors))
	}

	encrypted, err := s.encryptConfig(req.Config)
	if err != nil {
		return nil, err
	}

	instance := &model.ServiceInstance{
		Id:          uuid.NewString(),
		TenantId:    tenantId,
		ServiceType: req.ServiceType,
		AdapterType: req.AdapterType,
		Name:        req.Name,
		Description: req.Description,
		Config:      encrypted,
		ApiVersion:  req.ApiVersion,
		IsPrimary:   req.IsPrimary,
	}

	if err := s.Repo.Create(instance); err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *Service) GetInstance(tenantId, id string) (*model.ServiceInstance, error) {
	instance, err := s.Repo.GetById(tenantId, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("service instance", id)
		}
		return nil, err
	}
	return instance, nil
}

func (s *Service) ListInstances(tenantId string, filter ListFilter) ([]model.ServiceInstance, error) {
	return s.Repo.List(tenantId, filter)
}

func (s *Service) UpdateInstance(tenantId, id string, req UpdateInstanceRequest) (*model.ServiceInstance, error) {
	instance, err := s.GetInstance(tenantId, id)
	if err != nil {
		return nil, err
	}
	if instance.TenantId == model.SystemTenantId {
		return nil, apperrors.NewValidationError("system default service instances cannot be modified")
	}

	if req.Name != nil {
		instance.Name = *req.Name
	}
	if req.Description != nil {
		instance.Description = *req.Description
	}
	if req.ApiVersion != nil {
		instance.ApiVersion = *req.ApiVersion
	}
	if req.IsPrimary != nil {
		instance.IsPrimary = *req.IsPrimary
	}
	if req.Config != nil {
		entry, err := s.Registry.Lookup(instance.ServiceType, instance.AdapterType)
		if err != nil {
			return nil, err
		}
		if fieldErrors := entry.ValidateConfig(req.Config); len(fieldErrors) > 0 {
			return nil, apperrors.NewValidationError(
				"invalid adapter configuration: %s", serviceregistry.JoinFieldErrors(fieldErrors))
		}
		encrypted, err := s.encryptConfig(req.Config)
		if err != nil {
			return nil, err
		}
		instance.Config = encrypted
	}

	if err := s.Repo.Update(tenantId, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *Service) DeleteInstance(tenantId, id string) error {
	instance, err := s.GetInstance(tenantId, id)
	if err != nil {
		return err
	}
	if instance.TenantId == model.SystemTenantId {
		return apperrors.NewValidationError("system default service instances cannot be deleted")
	}

	if err := s.Repo.Delete(tenantId, id); err != nil {
		if IsNotFound(err) {
			return apperrors.NewNotFoundError("service instance", id)
		}
		return err
	}
	return nil
}

func (s *Service) encryptConfig(config map[string]interface{}) (string, error) {
	plainText, err := json.Marshal(config)
	if err != nil {
		return "", err
	}

	envelope, err := s.Encryption.Encrypt(string(plainText))
	if err != nil {
		return "", err
	}

	stored, err := json.Marshal(envelope)
	if err != nil {
		return "", err
	}
	return string(stored), nil
}
