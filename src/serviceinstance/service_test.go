package serviceinstance

import (
	"encoding/json"
	"testing"

	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/encryption"
	"github.com/uncefact/tests-untp-sub002/src/model"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"

	"github.com/stretchr/testify/assert"
)

const serviceTestKey = "000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f"

func newTestService(t *testing.T) (*Service, encryption.Service) {
	t.Helper()
	db := database.SetupTestDB(t)
	enc, err := encryption.NewService(serviceTestKey)
	assert.NoError(t, err)
	return NewService(NewRepositoryWithDB(db), enc, serviceregistry.Default()), enc
}

func validCreateRequest() CreateInstanceRequest {
	return CreateInstanceRequest{
		ServiceType: model.ServiceTypeIdr,
		AdapterType: model.AdapterTypeIdentityResolver,
		Name:        "primary resolver",
		Config: map[string]interface{}{
			"baseUrl":   "https://resolver.example.com",
			"apiKey":    "secret",
			"namespace": "gs1",
		},
		ApiVersion: "v1",
		IsPrimary:  true,
	}
}

func TestCreateInstanceEncryptsConfig(t *testing.T) {
	svc, enc := newTestService(t)

	instance, err := svc.CreateInstance("org-1", validCreateRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, instance.Id)
	assert.NotContains(t, instance.Config, "secret")

	var envelope encryption.Envelope
	assert.NoError(t, json.Unmarshal([]byte(instance.Config), &envelope))
	assert.Equal(t, "aes-256-gcm", envelope.Type)

	plainText, err := enc.Decrypt(envelope)
	assert.NoError(t, err)
	assert.Contains(t, plainText, "resolver.example.com")
}

func TestCreateInstanceRejectsInvalidConfig(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.Config = map[string]interface{}{"baseUrl": "https://resolver.example.com"}

	_, err := svc.CreateInstance("org-1", req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter configuration")
}

func TestCreateInstanceRejectsUnknownAdapter(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.AdapterType = model.AdapterType("unknown")

	_, err := svc.CreateInstance("org-1", req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown adapter type")
}

func TestCreateInstanceRequiresName(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.Name = ""

	_, err := svc.CreateInstance("org-1", req)
	assert.Error(t, err)
}

func TestUpdateInstanceRevalidatesConfig(t *testing.T) {
	svc, _ := newTestService(t)

	instance, err := svc.CreateInstance("org-1", validCreateRequest())
	assert.NoError(t, err)

	_, err = svc.UpdateInstance("org-1", instance.Id, UpdateInstanceRequest{
		Config: map[string]interface{}{"baseUrl": "https://other.example.com"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter configuration")
}

func TestSystemInstancesAreImmutableToTenants(t *testing.T) {
	svc, _ := newTestService(t)

	instance, err := svc.CreateInstance(model.SystemTenantId, validCreateRequest())
	assert.NoError(t, err)

	name := "renamed"
	_, err = svc.UpdateInstance("org-1", instance.Id, UpdateInstanceRequest{Name: &name})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be modified")

	err = svc.DeleteInstance("org-1", instance.Id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be deleted")

	// Still visible to the tenant.
	found, err := svc.GetInstance("org-1", instance.Id)
	assert.NoError(t, err)
	assert.Equal(t, instance.Id, found.Id)
}

func TestDeleteInstanceRemovesOwnRow(t *testing.T) {
	svc, _ := newTestService(t)

	instance, err := svc.CreateInstance("org-1", validCreateRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteInstance("org-1", instance.Id))

	_, err = svc.GetInstance("org-1", instance.Id)
	assert.Error(t, err)
}
