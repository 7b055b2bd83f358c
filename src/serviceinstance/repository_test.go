package serviceinstance

import (
	"testing"
	"time"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (Repository, *gorm.DB) {
	t.Helper()
	db := database.SetupTestDB(t)
	return NewRepositoryWithDB(db), db
}

func newInstance(tenantId string, serviceType model.ServiceType, isPrimary bool) *model.ServiceInstance {
	return &model.ServiceInstance{
		Id:          uuid.NewString(),
		TenantId:    tenantId,
		ServiceType: serviceType,
		AdapterType: model.AdapterTypeIdentityResolver,
		Name:        "test instance",
		Config:      `{"cipherText":"00","iv":"00","tag":"00","type":"aes-256-gcm"}`,
		ApiVersion:  "v1",
		IsPrimary:   isPrimary,
	}
}

func countPrimaries(t *testing.T, db *gorm.DB, tenantId string, serviceType model.ServiceType) int64 {
	t.Helper()
	var count int64
	err := db.Model(&model.ServiceInstance{}).
		Where("tenant_id = ? AND service_type = ? AND is_primary = ?", tenantId, serviceType, true).
		Count(&count).Error
	assert.NoError(t, err)
	return count
}

func TestCreateUnsetsPriorPrimary(t *testing.T) {
	repo, db := newTestRepo(t)

	first := newInstance("org-1", model.ServiceTypeIdr, true)
	assert.NoError(t, repo.Create(first))

	second := newInstance("org-1", model.ServiceTypeIdr, true)
	assert.NoError(t, repo.Create(second))

	assert.EqualValues(t, 1, countPrimaries(t, db, "org-1", model.ServiceTypeIdr))

	current, err := repo.GetPrimary("org-1", model.ServiceTypeIdr)
	assert.NoError(t, err)
	assert.Equal(t, second.Id, current.Id)
}

func TestCreateUnsetsPrimaryPerServiceTypeOnly(t *testing.T) {
	repo, db := newTestRepo(t)

	idrPrimary := newInstance("org-1", model.ServiceTypeIdr, true)
	assert.NoError(t, repo.Create(idrPrimary))

	didPrimary := newInstance("org-1", model.ServiceTypeDid, true)
	didPrimary.AdapterType = model.AdapterTypeDidWeb
	assert.NoError(t, repo.Create(didPrimary))

	assert.EqualValues(t, 1, countPrimaries(t, db, "org-1", model.ServiceTypeIdr))
	assert.EqualValues(t, 1, countPrimaries(t, db, "org-1", model.ServiceTypeDid))
}

func TestCreatePrimaryIsTenantScoped(t *testing.T) {
	repo, db := newTestRepo(t)

	assert.NoError(t, repo.Create(newInstance("org-1", model.ServiceTypeIdr, true)))
	assert.NoError(t, repo.Create(newInstance("org-2", model.ServiceTypeIdr, true)))

	assert.EqualValues(t, 1, countPrimaries(t, db, "org-1", model.ServiceTypeIdr))
	assert.EqualValues(t, 1, countPrimaries(t, db, "org-2", model.ServiceTypeIdr))
}

func TestCreateUnsetsMultiplePriorPrimaries(t *testing.T) {
	repo, db := newTestRepo(t)

	// Seed two primaries directly, bypassing the repository invariant.
	stale1 := newInstance("org-1", model.ServiceTypeIdr, true)
	stale2 := newInstance("org-1", model.ServiceTypeIdr, true)
	assert.NoError(t, db.Create(stale1).Error)
	assert.NoError(t, db.Create(stale2).Error)

	fresh := newInstance("org-1", model.ServiceTypeIdr, true)
	assert.NoError(t, repo.Create(fresh))

	assert.EqualValues(t, 1, countPrimaries(t, db, "org-1", model.ServiceTypeIdr))

	current, err := repo.GetPrimary("org-1", model.ServiceTypeIdr)
	assert.NoError(t, err)
	assert.Equal(t, fresh.Id, current.Id)
}

func TestUpdateKeepsSelfPrimary(t *testing.T) {
	repo, db := newTestRepo(t)

	instance := newInstance("org-1", model.ServiceTypeIdr, true)
	assert.NoError(t, repo.Create(instance))

	instance.Name = "renamed"
	assert.NoError(t, repo.Update("org-1", instance))

	assert.EqualValues(t, 1, countPrimaries(t, db, "org-1", model.ServiceTypeIdr))

	current, err := repo.GetPrimary("org-1", model.ServiceTypeIdr)
	assert.NoError(t, err)
	assert.Equal(t, instance.Id, current.Id)
	assert.Equal(t, "renamed", current.Name)
}

func TestUpdatePromotionUnsetsPriorPrimary(t *testing.T) {
	repo, db := newTestRepo(t)

	first := newInstance("org-1", model.ServiceTypeIdr, true)
	assert.NoError(t, repo.Create(first))

	second := newInstance("org-1", model.ServiceTypeIdr, false)
	assert.NoError(t, repo.Create(second))

	second.IsPrimary = true
	assert.NoError(t, repo.Update("org-1", second))

	assert.EqualValues(t, 1, countPrimaries(t, db, "org-1", model.ServiceTypeIdr))

	current, err := repo.GetPrimary("org-1", model.ServiceTypeIdr)
	assert.NoError(t, err)
	assert.Equal(t, second.Id, current.Id)
}

func TestGetByIdSeesOwnAndSystemRows(t *testing.T) {
	repo, _ := newTestRepo(t)

	own := newInstance("org-1", model.ServiceTypeIdr, false)
	assert.NoError(t, repo.Create(own))

	system := newInstance(model.SystemTenantId, model.ServiceTypeIdr, false)
	assert.NoError(t, repo.Create(system))

	other := newInstance("org-2", model.ServiceTypeIdr, false)
	assert.NoError(t, repo.Create(other))

	found, err := repo.GetById("org-1", own.Id)
	assert.NoError(t, err)
	assert.Equal(t, own.Id, found.Id)

	found, err = repo.GetById("org-1", system.Id)
	assert.NoError(t, err)
	assert.Equal(t, system.Id, found.Id)

	_, err = repo.GetById("org-1", other.Id)
	assert.True(t, IsNotFound(err))
}

func TestListFiltersAndPaginates(t *testing.T) {
	repo, _ := newTestRepo(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		instance := newInstance("org-1", model.ServiceTypeIdr, false)
		instance.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		assert.NoError(t, repo.Create(instance))
	}
	didInstance := newInstance("org-1", model.ServiceTypeDid, false)
	didInstance.AdapterType = model.AdapterTypeDidWeb
	didInstance.CreatedAt = base.Add(time.Hour)
	assert.NoError(t, repo.Create(didInstance))

	idr := model.ServiceTypeIdr
	instances, err := repo.List("org-1", ListFilter{ServiceType: &idr})
	assert.NoError(t, err)
	assert.Len(t, instances, 3)

	// Newest first.
	all, err := repo.List("org-1", ListFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, didInstance.Id, all[0].Id)

	page, err := repo.List("org-1", ListFilter{Offset: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, all[1].Id, page[0].Id)
}

func TestListIncludesSystemRows(t *testing.T) {
	repo, _ := newTestRepo(t)

	assert.NoError(t, repo.Create(newInstance("org-1", model.ServiceTypeIdr, false)))
	assert.NoError(t, repo.Create(newInstance(model.SystemTenantId, model.ServiceTypeIdr, false)))
	assert.NoError(t, repo.Create(newInstance("org-2", model.ServiceTypeIdr, false)))

	instances, err := repo.List("org-1", ListFilter{})
	assert.NoError(t, err)
	assert.Len(t, instances, 2)
}

func TestListOwnedExcludesSystemRows(t *testing.T) {
	repo, _ := newTestRepo(t)

	assert.NoError(t, repo.Create(newInstance("org-1", model.ServiceTypeIdr, false)))
	assert.NoError(t, repo.Create(newInstance(model.SystemTenantId, model.ServiceTypeIdr, false)))

	instances, err := repo.ListOwned("org-1")
	assert.NoError(t, err)
	assert.Len(t, instances, 1)
	assert.Equal(t, "org-1", instances[0].TenantId)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	repo, _ := newTestRepo(t)

	system := newInstance(model.SystemTenantId, model.ServiceTypeIdr, false)
	assert.NoError(t, repo.Create(system))

	err := repo.Delete("org-1", system.Id)
	assert.True(t, IsNotFound(err))

	own := newInstance("org-1", model.ServiceTypeIdr, false)
	assert.NoError(t, repo.Create(own))
	assert.NoError(t, repo.Delete("org-1", own.Id))

	_, err = repo.GetById("org-1", own.Id)
	assert.True(t, IsNotFound(err))
}

func TestGetSystemDefault(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetSystemDefault(model.ServiceTypeIdr)
	assert.True(t, IsNotFound(err))

	system := newInstance(model.SystemTenantId, model.ServiceTypeIdr, false)
	assert.NoError(t, repo.Create(system))

	found, err := repo.GetSystemDefault(model.ServiceTypeIdr)
	assert.NoError(t, err)
	assert.Equal(t, system.Id, found.Id)
}
