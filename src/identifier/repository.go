package identifier

import (
	"errors"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	Create(identifier *model.Identifier) error
	GetById(tenantId, id string) (*model.Identifier, error)
	List(tenantId string, schemeId *string) ([]model.Identifier, error)
	Update(tenantId string, identifier *model.Identifier) error
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

func (r *gormRepository) Create(identifier *model.Identifier) error {
	return r.db.Create(identifier).Error
}

// Identifiers are always tenant-owned; reads use the ownership scope with no
// system fallback.
func (r *gormRepository) GetById(tenantId, id string) (*model.Identifier, error) {
	var identifier model.Identifier
	err := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", id).
		First(&identifier).Error
	if err != nil {
		return nil, err
	}
	return &identifier, nil
}

func (r *gormRepository) List(tenantId string, schemeId *string) ([]model.Identifier, error) {
	query := r.db.Scopes(database.OwnedBy(tenantId))
	if schemeId != nil {
		query = query.Where("scheme_id = ?", *schemeId)
	}

	var identifiers []model.Identifier
	err := query.
		Order("created_at DESC").
		Find(&identifiers).Error
	return identifiers, err
}

func (r *gormRepository) Update(tenantId string, identifier *model.Identifier) error {
	return r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", identifier.Id).
		Select("*").
		Omit("id", "tenant_id", "created_at").
		Updates(identifier).Error
}

func (r *gormRepository) Delete(tenantId, id string) error {
	result := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", id).
		Delete(&model.Identifier{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
