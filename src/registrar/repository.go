package registrar

import (
	"errors"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	Create(registrar *model.Registrar) error
	GetById(tenantId, id string) (*model.Registrar, error)
	List(tenantId string) ([]model.Registrar, error)
	Update(tenantId string, registrar *model.Registrar) error
	Delete(tenantId, id string) error
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

func (r *gormRepository) Create(registrar *model.Registrar) error {
	return r.db.Create(registrar).Error
}

func (r *gormRepository) GetById(tenantId, id string) (*model.Registrar, error) {
	var registrar model.Registrar
	err := r.db.
		Scopes(database.TenantOrSystem(tenantId)).
		Where("id = ?", id).
		Preload("Schemes").
		First(&registrar).Error
	if err != nil {
		return nil, err
	}
	return &registrar, nil
}

func (r *gormRepository) List(tenantId string) ([]model.Registrar, error) {
	var registrars []model.Registrar
	err := r.db.
		Scopes(database.TenantOrSystem(tenantId)).
		Order("created_at DESC").
		Find(&registrars).Error
	return registrars, err
}

func (r *gormRepository) Update(tenantId string, registrar *model.Registrar) error {
	return r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", registrar.Id).
		Select("*").
		Omit("id", "tenant_id", "created_at", "Schemes").
		Updates(registrar).Error
}

func (r *gormRepository) Delete(tenantId, id string) error {
	result := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", id).
		Delete(&model.Registrar{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
