package onboarding

import (
	"testing"

	"github.com/uncefact/tests-untp-sub002/pkg/utilities"
	"github.com/uncefact/tests-untp-sub002/src/did"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/stretchr/testify/assert"
)

type capturingPublisher struct {
	published [][]byte
}

func (p *capturingPublisher) Publish(body utilities.Serializable) error {
	raw, err := body.Serialize()
	if err != nil {
		return err
	}
	p.published = append(p.published, raw)
	return nil
}

func TestOnboardCreatesTenantAndClones(t *testing.T) {
	f := newClonerFixture(t)
	f.seedSystemInstance(t, model.ServiceTypeIdr)
	f.seedSystemDid(t, nil)

	publisher := &capturingPublisher{}
	svc := NewService(f.db, f.cloner, publisher)

	tenant, err := svc.Onboard("org-42", "Acme Corp")
	assert.NoError(t, err)
	assert.Equal(t, "org-42", tenant.Id)

	var stored model.Tenant
	assert.NoError(t, f.db.First(&stored, "id = ?", "org-42").Error)
	assert.Equal(t, "Acme Corp", stored.Name)

	cloned, err := f.instances.ListOwned("org-42")
	assert.NoError(t, err)
	assert.Len(t, cloned, 1)

	assert.Len(t, publisher.published, 1)
	assert.Contains(t, string(publisher.published[0]), "org-42")
}

func TestOnboardRejectsSystemTenant(t *testing.T) {
	f := newClonerFixture(t)
	svc := NewService(f.db, f.cloner, &capturingPublisher{})

	_, err := svc.Onboard(model.SystemTenantId, "System")
	assert.Error(t, err)

	_, err = svc.Onboard("", "Anonymous")
	assert.Error(t, err)
}

func TestOnboardTwiceKeepsSingleDefaultDid(t *testing.T) {
	f := newClonerFixture(t)
	f.seedSystemDid(t, nil)

	svc := NewService(f.db, f.cloner, &capturingPublisher{})

	_, err := svc.Onboard("org-42", "Acme Corp")
	assert.NoError(t, err)
	_, err = svc.Onboard("org-42", "Acme Corp")
	assert.NoError(t, err)

	records, err := did.NewRepositoryWithDB(f.db).List("org-42")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}
