package registrar

import (
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/google/uuid"
)

type CreateRegistrarRequest struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	IdrServiceInstanceId *string `json:"idrServiceInstanceId"`
}

type UpdateRegistrarRequest struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	IdrServiceInstanceId *string `json:"idrServiceInstanceId"`
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateRegistrar(tenantId string, req CreateRegistrarRequest) (*model.Registrar, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	record := &model.Registrar{
		Id:                   uuid.NewString(),
		TenantId:             tenantId,
		Name:                 req.Name,
		Description:          req.Description,
		IdrServiceInstanceId: req.IdrServiceInstanceId,
	}

	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) GetRegistrar(tenantId, id string) (*model.Registrar, error) {
	record, err := s.Repo.GetById(tenantId, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("registrar", id)
		}
		return nil, err
	}
	return record, nil
}

func (s *Service) ListRegistrars(tenantId string) ([]model.Registrar, error) {
	return s.Repo.List(tenantId)
}

func (s *Service) UpdateRegistrar(tenantId, id string, req UpdateRegistrarRequest) (*model.Registrar, error) {
	record, err := s.GetRegistrar(tenantId, id)
	if err != nil {
		return nil, err
	}
	if record.TenantId == model.SystemTenantId {
		return nil, apperrors.NewValidationError("system default registrars cannot be modified")
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.IdrServiceInstanceId != nil {
		record.IdrServiceInstanceId = req.IdrServiceInstanceId
	}

	if err := s.Repo.Update(tenantId, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) DeleteRegistrar(tenantId, id string) error {
	record, err := s.GetRegistrar(tenantId, id)
	if err != nil {
		return err
	}
	if record.TenantId == model.SystemTenantId {
		return apperrors.NewValidationError("system default registrars cannot be deleted")
	}
	return s.Repo.Delete(tenantId, id)
}
