package resolution

import (
	"encoding/json"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/src/apperrors"
	"github.com/uncefact/tests-untp-sub002/src/encryption"
	"github.com/uncefact/tests-untp-sub002/src/model"
	"github.com/uncefact/tests-untp-sub002/src/serviceinstance"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"
)

// Resolved is a ready-to-use adapter plus the id of the instance that
// produced it. Callers stamp records with the id for provenance.
type Resolved struct {
	Adapter    serviceregistry.Adapter
	InstanceId string
}

type Resolver struct {
	Instances  serviceinstance.Repository
	Encryption encryption.Service
	Registry   *serviceregistry.Registry
	Logger     *logger.Logger
}

func NewResolver(instances serviceinstance.Repository, enc encryption.Service, registry *serviceregistry.Registry) *Resolver {
	return &Resolver{
		Instances:  instances,
		Encryption: enc,
		Registry:   registry,
		Logger:     logger.Default(),
	}
}

// FirstOverride picks the most specific instance override from a caller
// context, e.g. a scheme's own override before its registrar's.
func FirstOverride(ids ...*string) *string {
	for _, id := range ids {
		if id != nil && *id != "" {
			return id
		}
	}
	return nil
}

// Resolve maps (tenant, service type, optional explicit id) to a live
// adapter. An explicit id never falls through to the fallback chain: when it
// cannot be fetched the resolution fails with ServiceInstanceNotFoundError
// rather than silently resolving something else.
func (r *Resolver) Resolve(tenantId string, serviceType model.ServiceType, explicitInstanceId *string) (*Resolved, error) {
	instance, err := r.findCandidate(tenantId, serviceType, explicitInstanceId)
	if err != nil {
		return nil, err
	}

	// Decrypt, parse, validate, construct. Strictly sequential: each step
	// short-circuits with its own error kind.
	config, err := r.decryptConfig(instance)
	if err != nil {
		return nil, err
	}

	entry, err := r.Registry.Lookup(instance.ServiceType, instance.AdapterType)
	if err != nil {
		r.Logger.Errorf(err, "No registry entry for instance %s (%s/%s)",
			instance.Id, instance.ServiceType, instance.AdapterType)
		return nil, &apperrors.ServiceResolutionError{
			TenantId:    tenantId,
			ServiceType: string(serviceType),
		}
	}

	if fieldErrors := entry.ValidateConfig(config); len(fieldErrors) > 0 {
		configErr := &apperrors.ConfigValidationError{
			InstanceId: instance.Id,
			Message:    serviceregistry.JoinFieldErrors(fieldErrors),
		}
		r.Logger.Error(configErr, "Stored configuration failed schema validation")
		return nil, configErr
	}

	adapter, err := entry.Factory(config, serviceregistry.Metadata{
		Name:    string(instance.AdapterType),
		Version: instance.ApiVersion,
		Logger:  r.Logger.WithField("serviceInstanceId", instance.Id),
	})
	if err != nil {
		return nil, err
	}

	return &Resolved{Adapter: adapter, InstanceId: instance.Id}, nil
}

func (r *Resolver) findCandidate(tenantId string, serviceType model.ServiceType, explicitInstanceId *string) (*model.ServiceInstance, error) {
	if explicitInstanceId != nil && *explicitInstanceId != "" {
		instance, err := r.Instances.GetById(tenantId, *explicitInstanceId)
		if err != nil {
			if serviceinstance.IsNotFound(err) {
				return nil, &apperrors.ServiceInstanceNotFoundError{InstanceId: *explicitInstanceId}
			}
			return nil, err
		}
		return instance, nil
	}

	instance, err := r.Instances.GetPrimary(tenantId, serviceType)
	if err == nil {
		return instance, nil
	}
	if !serviceinstance.IsNotFound(err) {
		return nil, err
	}

	instance, err = r.Instances.GetSystemDefault(serviceType)
	if err == nil {
		return instance, nil
	}
	if !serviceinstance.IsNotFound(err) {
		return nil, err
	}

	return nil, &apperrors.ServiceResolutionError{
		TenantId:    tenantId,
		ServiceType: string(serviceType),
	}
}

// decryptConfig unwraps the stored envelope. Failures are logged with the
// instance id only; cipher detail never reaches the caller.
func (r *Resolver) decryptConfig(instance *model.ServiceInstance) (map[string]interface{}, error) {
	var envelope encryption.Envelope
	if err := json.Unmarshal([]byte(instance.Config), &envelope); err != nil {
		decryptErr := &apperrors.ConfigDecryptionError{InstanceId: instance.Id}
		r.Logger.Error(decryptErr, "Stored configuration is not a valid envelope")
		return nil, decryptErr
	}

	plainText, err := r.Encryption.Decrypt(envelope)
	if err != nil {
		decryptErr := &apperrors.ConfigDecryptionError{InstanceId: instance.Id}
		r.Logger.Error(decryptErr, "Could not decrypt stored configuration")
		return nil, decryptErr
	}

	var config map[string]interface{}
	if err := json.Unmarshal([]byte(plainText), &config); err != nil {
		configErr := &apperrors.ConfigValidationError{
			InstanceId: instance.Id,
			Message:    "Invalid structured data in decrypted config",
		}
		r.Logger.Error(configErr, "Decrypted configuration is not structured data")
		return nil, configErr
	}
	return config, nil
}
