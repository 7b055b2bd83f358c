package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes surfaced in the REST envelope.
type Code string

const (
	CodeValidation              Code = "ValidationError"
	CodeNotFound                Code = "NotFoundError"
	CodeServiceInstanceNotFound Code = "ServiceInstanceNotFoundError"
	CodeServiceResolution       Code = "ServiceResolutionError"
	CodeConfigDecryption        Code = "ConfigDecryptionError"
	CodeConfigValidation        Code = "ConfigValidationError"
)

// ValidationError covers malformed request input and values failing a scheme
// validation pattern. Surfaced as 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, v ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, v...)}
}

// NotFoundError covers entities that do not exist or are not visible to the
// caller's tenant. Surfaced as 404.
type NotFoundError struct {
	Entity string
	Id     string
}

func (e *NotFoundError) Error() string {
	if e.Id == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.Id)
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, Id: id}
}

// ServiceInstanceNotFoundError means an explicitly requested service instance
// id could not be resolved for the caller's tenant. Kept distinct from
// ServiceResolutionError so operators can tell a bad reference apart from a
// missing configuration.
type ServiceInstanceNotFoundError struct {
	InstanceId string
}

func (e *ServiceInstanceNotFoundError) Error() string {
	return fmt.Sprintf("service instance %s not found", e.InstanceId)
}

// ServiceResolutionError means the fallback chain found no instance at all
// for a (tenant, service type) pair. A deployment gap, surfaced as 500.
type ServiceResolutionError struct {
	TenantId    string
	ServiceType string
}

func (e *ServiceResolutionError) Error() string {
	return fmt.Sprintf("no %s service instance could be resolved for tenant %s", e.ServiceType, e.TenantId)
}

// ConfigDecryptionError means a stored instance configuration could not be
// decrypted. Carries the instance id only; cipher detail never reaches the
// caller.
type ConfigDecryptionError struct {
	InstanceId string
}

func (e *ConfigDecryptionError) Error() string {
	return fmt.Sprintf("failed to decrypt configuration of service instance %s", e.InstanceId)
}

// ConfigValidationError means a decrypted instance configuration did not
// parse or did not validate against its adapter's schema.
type ConfigValidationError struct {
	InstanceId string
	Message    string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("invalid configuration for service instance %s: %s", e.InstanceId, e.Message)
}

// CodeOf maps an error to its envelope code, or "" for untyped errors.
func CodeOf(err error) Code {
	var ve *ValidationError
	var nf *NotFoundError
	var sinf *ServiceInstanceNotFoundError
	var sre *ServiceResolutionError
	var cde *ConfigDecryptionError
	var cve *ConfigValidationError

	switch {
	case errors.As(err, &ve):
		return CodeValidation
	case errors.As(err, &nf):
		return CodeNotFound
	case errors.As(err, &sinf):
		return CodeServiceInstanceNotFound
	case errors.As(err, &sre):
		return CodeServiceResolution
	case errors.As(err, &cde):
		return CodeConfigDecryption
	case errors.As(err, &cve):
		return CodeConfigValidation
	}
	return ""
}

// StatusOf maps an error to the HTTP status the REST layer should answer
// with. Adapter-level service errors carry their own status and win.
func StatusOf(err error) int {
	type statusCarrier interface {
		HttpStatus() int
	}
	var sc statusCarrier
	if errors.As(err, &sc) {
		return sc.HttpStatus()
	}

	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound, CodeServiceInstanceNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
