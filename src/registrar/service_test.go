package registrar

import (
	"testing"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/stretchr/testify/assert"
)

func newRegistrarService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepositoryWithDB(database.SetupTestDB(t)))
}

func TestCreateRegistrarRequiresName(t *testing.T) {
	svc := newRegistrarService(t)

	_, err := svc.CreateRegistrar("org-1", CreateRegistrarRequest{})
	assert.Error(t, err)
}

func TestRegistrarVisibility(t *testing.T) {
	svc := newRegistrarService(t)

	own, err := svc.CreateRegistrar("org-1", CreateRegistrarRequest{Name: "GS1"})
	assert.NoError(t, err)

	system, err := svc.CreateRegistrar(model.SystemTenantId, CreateRegistrarRequest{Name: "Shared"})
	assert.NoError(t, err)

	_, err = svc.CreateRegistrar("org-2", CreateRegistrarRequest{Name: "Other"})
	assert.NoError(t, err)

	listed, err := svc.ListRegistrars("org-1")
	assert.NoError(t, err)
	assert.Len(t, listed, 2)

	found, err := svc.GetRegistrar("org-1", system.Id)
	assert.NoError(t, err)
	assert.Equal(t, system.Id, found.Id)

	found, err = svc.GetRegistrar("org-1", own.Id)
	assert.NoError(t, err)
	assert.Equal(t, own.Id, found.Id)
}

func TestSystemRegistrarsAreImmutableToTenants(t *testing.T) {
	svc := newRegistrarService(t)

	system, err := svc.CreateRegistrar(model.SystemTenantId, CreateRegistrarRequest{Name: "Shared"})
	assert.NoError(t, err)

	name := "renamed"
	_, err = svc.UpdateRegistrar("org-1", system.Id, UpdateRegistrarRequest{Name: &name})
	assert.Error(t, err)

	err = svc.DeleteRegistrar("org-1", system.Id)
	assert.Error(t, err)
}

func TestUpdateRegistrarOverride(t *testing.T) {
	svc := newRegistrarService(t)

	record, err := svc.CreateRegistrar("org-1", CreateRegistrarRequest{Name: "GS1"})
	assert.NoError(t, err)
	assert.Nil(t, record.IdrServiceInstanceId)

	override := "instance-1"
	updated, err := svc.UpdateRegistrar("org-1", record.Id, UpdateRegistrarRequest{
		IdrServiceInstanceId: &override,
	})
	assert.NoError(t, err)
	assert.NotNil(t, updated.IdrServiceInstanceId)
	assert.Equal(t, "instance-1", *updated.IdrServiceInstanceId)
}
