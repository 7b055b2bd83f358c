package onboarding

import (
	"time"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/pkg/rabbitmq"
	"github.com/uncefact/tests-untp-sub002/pkg/utilities"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TenantOnboardedEvent struct {
	TenantId    string    `json:"tenantId"`
	Name        string    `json:"name"`
	OnboardedAt time.Time `json:"onboardedAt"`
}

func (e TenantOnboardedEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

type Service struct {
	Db        *gorm.DB
	Cloner    *Cloner
	Publisher rabbitmq.IRabbitmqPublisher
	Logger    *logger.Logger
}

func NewService(db *gorm.DB, cloner *Cloner, publisher rabbitmq.IRabbitmqPublisher) *Service {
	return &Service{
		Db:        db,
		Cloner:    cloner,
		Publisher: publisher,
		Logger:    logger.Default(),
	}
}

// Onboard registers the tenant record and seeds it with the system tenant's
// defaults. A clone failure is fatal: the tenant row is created inside the
// same transaction, so a failed onboarding leaves nothing behind and the
// caller retries the whole flow.
func (s *Service) Onboard(tenantId, name string) (*model.Tenant, error) {
	if tenantId == "" {
		return nil, apperrors.NewValidationError("tenant id is required")
	}
	if tenantId == model.SystemTenantId {
		return nil, apperrors.NewValidationError("the system tenant cannot be onboarded")
	}

	tenant := &model.Tenant{
		Id:   tenantId,
		Name: name,
	}

	err := s.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(tenant).Error; err != nil {
			return err
		}
		_, err := s.Cloner.withDb(tx).CloneDefaults(tenantId)
		return err
	})
	if err != nil {
		return nil, err
	}

	event := TenantOnboardedEvent{
		TenantId:    tenantId,
		Name:        name,
		OnboardedAt: time.Now().UTC(),
	}
	if err := s.Publisher.Publish(event); err != nil {
		s.Logger.Error(err, "Failed to publish tenant onboarded event")
	}

	return tenant, nil
}
