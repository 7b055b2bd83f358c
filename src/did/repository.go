package did

import (
	"errors"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(record *model.Did) error
	GetById(tenantId, id string) (*model.Did, error)
	List(tenantId string) ([]model.Did, error)
	Update(tenantId string, record *model.Did) error
	Delete(tenantId, id string) error

	GetDefault(tenantId string) (*model.Did, error)
	ExistsByDidString(tenantId, didString string) (bool, error)
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

func (r *gormRepository) Create(record *model.Did) error {
	return r.db.Create(record).Error
}

func (r *gormRepository) GetById(tenantId, id string) (*model.Did, error) {
	var record model.Did
	err := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *gormRepository) List(tenantId string) ([]model.Did, error) {
	var records []model.Did
	err := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *gormRepository) Update(tenantId string, record *model.Did) error {
	return r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", record.Id).
		Select("*").
		Omit("id", "tenant_id", "created_at").
		Updates(record).Error
}

func (r *gormRepository) Delete(tenantId, id string) error {
	result := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("id = ?", id).
		Delete(&model.Did{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository) GetDefault(tenantId string) (*model.Did, error) {
	var record model.Did
	err := r.db.
		Scopes(database.OwnedBy(tenantId)).
		Where("is_default = ?", true).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *gormRepository) ExistsByDidString(tenantId, didString string) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.Did{}).
		Scopes(database.OwnedBy(tenantId)).
		Where("did = ?", didString).
		Count(&count).Error
	return count > 0, err
}
