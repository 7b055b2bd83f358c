package scheme

import (
	"errors"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(scheme *model.IdentifierScheme) error
	GetById(tenantId, id string) (*model.IdentifierScheme, error)
	List(tenantId string, registrarId *string) ([]model.IdentifierScheme, error)
	// Update persists the scheme row and, when replaceQualifiers is non-nil,
	// swaps the full qualifier set in the same transaction. A nil slice
	// leaves existing qualifiers untouched; partial edits do not exist.
	Update(tenantId string, scheme *model.IdentifierScheme, replaceQualifiers []model.SchemeQualifier) error
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

func (r *gormRepository) WithTx(tx *gorm.DB) Repository {
	return &gormRepository{db: tx}
}

func (r *gormRepository) Create(scheme *model.IdentifierScheme) error {
	return r.db.Create(scheme).Error
}

func (r *gormRepository) GetById(tenantId, id string) (*model.IdentifierScheme, error) {
	var scheme model.IdentifierScheme
	err := r.db.
		Scopes(database.TenantOrSystem(tenantId)).
		Where("id = ?", id).
		Preload("Qualifiers").
		First(&scheme).Error
	if err != nil {
		return nil, err
	}
	return &scheme, nil
}

func (r *gormRepository) List(tenantId string, registrarId *string) ([]model.IdentifierScheme, error) {
	query := r.db.Scopes(database.TenantOrSystem(tenantId))
	if registrarId != nil {
		query = query.Where("registrar_id = ?", *registrarId)
	}

	var schemes []model.IdentifierScheme
	err := query.
		Preload("Qualifiers").
		Order("created_at DESC").
		Find(&schemes).Error
	return schemes, err
}

func (r *gormRepository) Update(tenantId string, scheme *model.IdentifierScheme, replaceQualifiers []model.SchemeQualifier) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Scopes(database.OwnedBy(tenantId)).
			Where("id = ?", scheme.Id).
			Select("*").
			Omit("id", "tenant_id", "created_at", "Qualifiers").
			Updates(scheme).Error
		if err != nil {
			return err
		}

		if replaceQualifiers == nil {
			return nil
		}

		// Replace, never merge: drop the full existing set before recreating
		// the supplied one.
		if err := tx.Where("scheme_id = ?", scheme.Id).Delete(&model.SchemeQualifier{}).Error; err != nil {
			return err
		}
		for i := range replaceQualifiers {
			replaceQualifiers[i].SchemeId = scheme.Id
			if err := tx.Create(&replaceQualifiers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gormRepository) Delete(tenantId, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Scopes(database.OwnedBy(tenantId)).
			Where("id = ?", id).
			Delete(&model.IdentifierScheme{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("scheme_id = ?", id).Delete(&model.SchemeQualifier{}).Error
	})
}
