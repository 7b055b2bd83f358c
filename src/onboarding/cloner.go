package onboarding

import (
	"fmt"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/src/did"
	"github.com/uncefact/tests-untp-sub002/src/model"
	"github.com/uncefact/tests-untp-sub002/src/serviceinstance"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cloner copies the system tenant's default service instances and default
// DID into a freshly created tenant. Runs once per tenant during first
// sign-in; the whole copy is one transaction so a crash mid-clone never
// leaves partial tenant state.
type Cloner struct {
	Db        *gorm.DB
	Instances serviceinstance.Repository
	Dids      did.Repository
	Logger    *logger.Logger
}

func NewCloner(db *gorm.DB, instances serviceinstance.Repository, dids did.Repository) *Cloner {
	return &Cloner{
		Db:        db,
		Instances: instances,
		Dids:      dids,
		Logger:    logger.Default(),
	}
}

// withDb rebinds the cloner to an open transaction so onboarding can run the
// clone inside its own unit of work. Gorm turns the inner Transaction call
// into a savepoint.
func (c *Cloner) withDb(db *gorm.DB) *Cloner {
	rebound := *c
	rebound.Db = db
	return &rebound
}

// CloneDefaults returns the tenant id on success. Any failure rolls back
// every clone; the sign-in flow treats that as fatal.
func (c *Cloner) CloneDefaults(tenantId string) (string, error) {
	err := c.Db.Transaction(func(tx *gorm.DB) error {
		instances := c.Instances.WithTx(tx)
		dids := c.Dids.WithTx(tx)

		systemInstances, err := instances.ListOwned(model.SystemTenantId)
		if err != nil {
			return err
		}

		systemDid, err := dids.GetDefault(model.SystemTenantId)
		if err != nil && !did.IsNotFound(err) {
			return err
		}

		if len(systemInstances) == 0 && systemDid == nil {
			return nil
		}

		// Clone instances verbatim, config blob included: one global key
		// encrypts every tenant, so the cipher text stays valid.
		idMap := make(map[string]string, len(systemInstances))
		for _, systemInstance := range systemInstances {
			clone := systemInstance
			clone.Id = uuid.NewString()
			clone.TenantId = tenantId
			if err := instances.Create(&clone); err != nil {
				return err
			}
			idMap[systemInstance.Id] = clone.Id
		}

		if systemDid == nil {
			return nil
		}

		cloneDidString := fmt.Sprintf("%s:org:%s", systemDid.Did, tenantId)

		// Guard against re-entrant onboarding: a second run must not mint
		// another default DID for the same tenant.
		exists, err := dids.ExistsByDidString(tenantId, cloneDidString)
		if err != nil {
			return err
		}
		if exists {
			c.Logger.Infof("Default DID already cloned for tenant %s, skipping", tenantId)
			return nil
		}

		var serviceInstanceId *string
		if systemDid.ServiceInstanceId != nil {
			if mappedId, ok := idMap[*systemDid.ServiceInstanceId]; ok {
				serviceInstanceId = &mappedId
			}
		}

		return dids.Create(&model.Did{
			Id:                uuid.NewString(),
			TenantId:          tenantId,
			Did:               cloneDidString,
			Type:              systemDid.Type,
			Method:            systemDid.Method,
			KeyId:             systemDid.KeyId,
			Status:            systemDid.Status,
			IsDefault:         false,
			ServiceInstanceId: serviceInstanceId,
		})
	})
	if err != nil {
		return "", err
	}

	return tenantId, nil
}
