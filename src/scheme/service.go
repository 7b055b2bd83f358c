package scheme

import (
	"regexp"

	"github.com/uncefact/tests-untp-sub002/pkg/utilities"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/google/uuid"
)

type QualifierRequest struct {
	Key               string `json:"key"`
	Name              string `json:"name"`
	ValidationPattern string `json:"validationPattern"`
}

type CreateSchemeRequest struct {
	RegistrarId          string             `json:"registrarId"`
	Name                 string             `json:"name"`
	Description          string             `json:"description"`
	ValidationPattern    string             `json:"validationPattern"`
	Namespace            string             `json:"namespace"`
	IdrServiceInstanceId *string            `json:"idrServiceInstanceId"`
	Qualifiers           []QualifierRequest `json:"qualifiers"`
}

type UpdateSchemeRequest struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	ValidationPattern    *string `json:"validationPattern"`
	Namespace            *string `json:"namespace"`
	IdrServiceInstanceId *string `json:"idrServiceInstanceId"`
	// A non-nil list replaces the scheme's full qualifier set; nil leaves it
	// untouched.
	Qualifiers []QualifierRequest `json:"qualifiers"`
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateScheme(tenantId string, req CreateSchemeRequest) (*model.IdentifierScheme, error) {
	if req.Name == "" || req.RegistrarId == "" {
		return nil, apperrors.NewValidationError("name and registrarId are required")
	}
	if _, err := regexp.Compile(req.ValidationPattern); err != nil {
		return nil, apperrors.NewValidationError("validationPattern is not a valid regular expression: %v", err)
	}

	schemeId := uuid.NewString()
	record := &model.IdentifierScheme{
		Id:                   schemeId,
		TenantId:             tenantId,
		RegistrarId:          req.RegistrarId,
		Name:                 req.Name,
		Description:          req.Description,
		ValidationPattern:    req.ValidationPattern,
		Namespace:            req.Namespace,
		IdrServiceInstanceId: req.IdrServiceInstanceId,
		Qualifiers:           buildQualifiers(schemeId, req.Qualifiers),
	}

	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) GetScheme(tenantId, id string) (*model.IdentifierScheme, error) {
	record, err := s.Repo.GetById(tenantId, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("identifier scheme", id)
		}
		return nil, err
	}
	return record, nil
}

func (s *Service) ListSchemes(tenantId string, registrarId *string) ([]model.IdentifierScheme, error) {
	return s.Repo.List(tenantId, registrarId)
}

func (s *Service) UpdateScheme(tenantId, id string, req UpdateSchemeRequest) (*model.IdentifierScheme, error) {
	record, err := s.GetScheme(tenantId, id)
	if err != nil {
		return nil, err
	}
	if record.TenantId == model.SystemTenantId {
		return nil, apperrors.NewValidationError("system default schemes cannot be modified")
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.ValidationPattern != nil {
		if _, err := regexp.Compile(*req.ValidationPattern); err != nil {
			return nil, apperrors.NewValidationError("validationPattern is not a valid regular expression: %v", err)
		}
		record.ValidationPattern = *req.ValidationPattern
	}
	if req.Namespace != nil {
		record.Namespace = *req.Namespace
	}
	if req.IdrServiceInstanceId != nil {
		record.IdrServiceInstanceId = req.IdrServiceInstanceId
	}

	var replaceQualifiers []model.SchemeQualifier
	if req.Qualifiers != nil {
		replaceQualifiers = buildQualifiers(record.Id, req.Qualifiers)
	}

	if err := s.Repo.Update(tenantId, record, replaceQualifiers); err != nil {
		return nil, err
	}
	return s.GetScheme(tenantId, id)
}

func (s *Service) DeleteScheme(tenantId, id string) error {
	record, err := s.GetScheme(tenantId, id)
	if err != nil {
		return err
	}
	if record.TenantId == model.SystemTenantId {
		return apperrors.NewValidationError("system default schemes cannot be deleted")
	}
	return s.Repo.Delete(tenantId, id)
}

// ValidateValue checks an identifier value against its scheme's validation
// pattern. The value must match in full; a partial match is a failure.
// Invoked on identifier creation and on every value update.
func (s *Service) ValidateValue(tenantId, schemeId, value string) error {
	record, err := s.GetScheme(tenantId, schemeId)
	if err != nil {
		return err
	}

	// Anchor the whole pattern. Matching the leftmost-first result against
	// the value's bounds would reject alternations like `a|abc` for "abc".
	pattern, err := regexp.Compile(`\A(?:` + record.ValidationPattern + `)\z`)
	if err != nil {
		return apperrors.NewValidationError(
			"scheme validation pattern is not a valid regular expression: %s", record.ValidationPattern)
	}

	if !pattern.MatchString(value) {
		return apperrors.NewValidationError(
			"value does not match scheme validation pattern: %s", record.ValidationPattern)
	}
	return nil
}

func buildQualifiers(schemeId string, requests []QualifierRequest) []model.SchemeQualifier {
	return utilities.Map(requests, func(req QualifierRequest) model.SchemeQualifier {
		return model.SchemeQualifier{
			Id:                uuid.NewString(),
			SchemeId:          schemeId,
			Key:               req.Key,
			Name:              req.Name,
			ValidationPattern: req.ValidationPattern,
		}
	})
}
