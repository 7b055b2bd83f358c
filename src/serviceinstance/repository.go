package serviceinstance

import (
	"errors"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
)

type ListFilter struct {
	ServiceType *model.ServiceType
	AdapterType *model.AdapterType
	Offset      int
	Limit       int
}

const defaultListLimit = 50

type Repository interface {
	// WithTx returns a repository bound to the given transaction so multi-row
	// invariants stay atomic across calls.
	WithTx(tx *gorm.DB) Repository

	Create(instance *model.ServiceInstance) error
	GetById(tenantId, id string) (*model.ServiceInstance, error)
	List(tenantId string, filter ListFilter) ([]model.ServiceInstance, error)
	ListOwned(tenantId string) ([]model.ServiceInstance, error)
	Update(tenantId string, instance *model.ServiceInstance) error
	Delete(tenantId, id string) error

	GetPrimary(tenantId string, serviceType model.ServiceType) (*model.ServiceInstance, error)
	GetSystemDefault(serviceType model.ServiceType) (*model.ServiceInstance, error)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository() Repository {
	return &gormRepository{db: database.GetDatabaseConnection()}
}

func NewRepositoryWithDB(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *gorm.DB) Repository {
	return &gormRepository{db: tx}
}

// Create inserts the instance. When it is flagged primary, any prior primary
// for the same (tenant, service type) pair is unset in the same transaction,
// so a concurrent reader can never observe two primaries.
func (r *gormRepository) Create(instance *model.ServiceInstance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if instance.IsPrimary {
			if err := unsetPrimary(tx, instance.TenantId, instance.ServiceType, ""); err != nil {
				return err
			}
		}
		return tx.Create(instance).Error
	})
}

func (r *gormRepository) GetById(tenantId, id string) (*model.ServiceInstance, error) {
	var instance model.ServiceInstance
	err := r.db.
		Scopes(database.TenantOrSystem(tenantId)).
		Where("id = ?", id).
		First(&instance).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

func (r *gormRepository) List(tenantId string, filter ListFilter) ([]model.ServiceInstance, error) {
	query := r.db.Scopes(database.TenantOrSystem(tenantId))

	if filter.ServiceType != nil {
		query = query.Where("service_type = ?", *filter.ServiceType)
	}
	if filter.AdapterType != nil {
		query = query.Where("adapter_type = ?", *filter.AdapterType)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var instances []model.ServiceInstance
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&instances).Error
	return instances, err
}

func (r *gormRepository) ListOwned(tenantId string) ([]model.ServiceInstance, error) {
	var instances []model.ServiceInstance
	err := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Order("created_at DESC").
		Find(&instances).Error
	return instances, err
}

// Update persists the full record. The primary unset dance excludes the
// instance itself so re-saving an already-primary instance is a no-op.
func (r *gormRepository) Update(tenantId string, instance *model.ServiceInstance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if instance.IsPrimary {
			if err := unsetPrimary(tx, tenantId, instance.ServiceType, instance.Id); err != nil {
				return err
			}
		}
		return tx.
			Scopes(database.OwnedBy(tenantId)).
			Where("id = ?", instance.Id).
			Select("*").
			Omit("id", "tenant_id", "created_at").
			Updates(instance).Error
	})
}

// Delete requires direct ownership; system defaults are not reachable here.
func (r *gormRepository) Delete(tenantId, id string) error {
	result := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", id).
		Delete(&model.ServiceInstance{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository) GetPrimary(tenantId string, serviceType model.ServiceType) (*model.ServiceInstance, error) {
	var instance model.ServiceInstance
	err := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("service_type = ? AND is_primary = ?", serviceType, true).
		First(&instance).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// GetSystemDefault fetches the system tenant's instance for a service type.
// The system tenant holds at most one canonical default per type, so no
// primary filter applies.
func (r *gormRepository) GetSystemDefault(serviceType model.ServiceType) (*model.ServiceInstance, error) {
	var instance model.ServiceInstance
	err := r.db.
		Scopes(database.OwnedBy(model.SystemTenantId)).
		Where("service_type = ?", serviceType).
		First(&instance).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

func unsetPrimary(tx *gorm.DB, tenantId string, serviceType model.ServiceType, excludeId string) error {
	query := tx.
		Model(&model.ServiceInstance{}).
		Scopes(database.OwnedBy(tenantId)).
		Where("service_type = ? AND is_primary = ?", serviceType, true)
	if excludeId != "" {
		query = query.Where("id <> ?", excludeId)
	}
	return query.Update("is_primary", false).Error
}
