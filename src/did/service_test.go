package did

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/encryption"
	"github.com/uncefact/tests-untp-sub002/src/model"
	"github.com/uncefact/tests-untp-sub002/src/resolution"
	"github.com/uncefact/tests-untp-sub002/src/serviceinstance"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const didTestKey = "303132333435363738393a3b3c3d3e3f303132333435363738393a3b3c3d3e3f"

type didFixture struct {
	db        *gorm.DB
	service   *Service
	instances serviceinstance.Repository
	enc       encryption.Service
}

func newDidFixture(t *testing.T) *didFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	enc, err := encryption.NewService(didTestKey)
	assert.NoError(t, err)

	instances := serviceinstance.NewRepositoryWithDB(db)
	resolver := resolution.NewResolver(instances, enc, serviceregistry.Default())

	return &didFixture{
		db:        db,
		service:   NewService(NewRepositoryWithDB(db), resolver),
		instances: instances,
		enc:       enc,
	}
}

func (f *didFixture) seedDidInstance(t *testing.T, tenantId, baseUrl string, isPrimary bool) *model.ServiceInstance {
	t.Helper()

	config := map[string]interface{}{
		"baseUrl": baseUrl,
		"apiKey":  "test-key",
		"domain":  "example.com",
	}
	plainText, err := json.Marshal(config)
	assert.NoError(t, err)
	envelope, err := f.enc.Encrypt(string(plainText))
	assert.NoError(t, err)
	stored, err := json.Marshal(envelope)
	assert.NoError(t, err)

	instance := &model.ServiceInstance{
		Id:          uuid.NewString(),
		TenantId:    tenantId,
		ServiceType: model.ServiceTypeDid,
		AdapterType: model.AdapterTypeDidWeb,
		Name:        "did backend",
		Config:      string(stored),
		ApiVersion:  "v1",
		IsPrimary:   isPrimary,
	}
	assert.NoError(t, f.instances.Create(instance))
	return instance
}

func TestCreateSelfManagedDid(t *testing.T) {
	f := newDidFixture(t)

	record, err := f.service.CreateDid(context.Background(), "org-1", CreateDidRequest{
		Type: model.DidTypeSelfManaged,
		Did:  "did:web:tenant.example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.DidStatusUnverified, record.Status)
	assert.Nil(t, record.ServiceInstanceId)
}

func TestCreateSelfManagedDidRequiresDidString(t *testing.T) {
	f := newDidFixture(t)

	_, err := f.service.CreateDid(context.Background(), "org-1", CreateDidRequest{
		Type: model.DidTypeSelfManaged,
	})
	assert.Error(t, err)
}

func TestCreateManagedDidThroughBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/dids", r.URL.Path)

		var req serviceregistry.CreateDidRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "acme-corp", req.Alias)

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(serviceregistry.CreateDidResponse{
			Did:   "did:web:example.com:acme-corp",
			KeyId: "key-1",
		}))
	}))
	defer server.Close()

	f := newDidFixture(t)
	instance := f.seedDidInstance(t, "org-1", server.URL, true)

	record, err := f.service.CreateDid(context.Background(), "org-1", CreateDidRequest{
		Type:  model.DidTypeManaged,
		Alias: "Acme Corp",
	})
	assert.NoError(t, err)
	assert.Equal(t, "did:web:example.com:acme-corp", record.Did)
	assert.Equal(t, model.DidStatusActive, record.Status)
	assert.NotNil(t, record.ServiceInstanceId)
	assert.Equal(t, instance.Id, *record.ServiceInstanceId)
}

func TestCreateManagedDidFailsWithoutBackend(t *testing.T) {
	f := newDidFixture(t)

	_, err := f.service.CreateDid(context.Background(), "org-1", CreateDidRequest{
		Type:  model.DidTypeManaged,
		Alias: "Acme Corp",
	})

	var resolutionErr *apperrors.ServiceResolutionError
	assert.ErrorAs(t, err, &resolutionErr)
}

func TestVerifyDidUpdatesStatus(t *testing.T) {
	verified := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]bool{"verified": verified}))
	}))
	defer server.Close()

	f := newDidFixture(t)
	f.seedDidInstance(t, "org-1", server.URL, true)

	record, err := f.service.CreateDid(context.Background(), "org-1", CreateDidRequest{
		Type: model.DidTypeSelfManaged,
		Did:  "did:web:tenant.example.com",
	})
	assert.NoError(t, err)

	checked, err := f.service.VerifyDid(context.Background(), "org-1", record.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.DidStatusVerified, checked.Status)

	verified = false
	checked, err = f.service.VerifyDid(context.Background(), "org-1", record.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.DidStatusUnverified, checked.Status)
}

func TestDidsAreTenantScoped(t *testing.T) {
	f := newDidFixture(t)

	record, err := f.service.CreateDid(context.Background(), "org-1", CreateDidRequest{
		Type: model.DidTypeSelfManaged,
		Did:  "did:web:tenant.example.com",
	})
	assert.NoError(t, err)

	_, err = f.service.GetDid("org-2", record.Id)
	assert.Error(t, err)

	err = f.service.DeleteDid("org-2", record.Id)
	assert.Error(t, err)

	assert.NoError(t, f.service.DeleteDid("org-1", record.Id))
}
