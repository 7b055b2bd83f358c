package serviceregistry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrEntryNotFound means no adapter is registered for a (service type,
// adapter type) pair. A deployment defect rather than a user error; the
// resolver treats it like an unresolvable service.
var ErrEntryNotFound = errors.New("no registry entry for service/adapter type pair")

// Adapter is a live backend connection produced by an entry's factory. The
// concrete type depends on the service type: IdentityResolver for IDR,
// DidDriver for DID.
type Adapter interface{}

// Metadata is handed to every factory next to the validated configuration.
type Metadata struct {
	Name    string
	Version string
	Logger  *logger.Logger
}

type FactoryFunc func(config map[string]interface{}, meta Metadata) (Adapter, error)

// Entry pairs a configuration schema with the factory that consumes a
// validated configuration. Entries are pure data; no I/O happens here.
type Entry struct {
	Schema  *jsonschema.Schema
	Factory FactoryFunc
}

// Registry is the static dispatch table keyed by service type then adapter
// type. Adding an adapter means adding one entry here; the resolver never
// changes.
type Registry struct {
	entries map[model.ServiceType]map[model.AdapterType]Entry
}

func Default() *Registry {
	return &Registry{
		entries: map[model.ServiceType]map[model.AdapterType]Entry{
			model.ServiceTypeIdr: {
				model.AdapterTypeIdentityResolver: {
					Schema:  identityResolverConfigSchema,
					Factory: newIdentityResolverAdapter,
				},
			},
			model.ServiceTypeDid: {
				model.AdapterTypeDidWeb: {
					Schema:  didWebConfigSchema,
					Factory: newDidWebAdapter,
				},
			},
		},
	}
}

func (r *Registry) Lookup(serviceType model.ServiceType, adapterType model.AdapterType) (Entry, error) {
	adapters, ok := r.entries[serviceType]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	entry, ok := adapters[adapterType]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	return entry, nil
}

// FieldError is one schema violation, addressed by JSON pointer into the
// configuration document.
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) String() string {
	if fe.Field == "" {
		return fe.Message
	}
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// ValidateConfig checks a parsed configuration against the entry's schema and
// returns every field-level violation.
func (e Entry) ValidateConfig(config map[string]interface{}) []FieldError {
	doc := make(map[string]interface{}, len(config))
	for key, value := range config {
		doc[key] = value
	}

	err := e.Schema.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []FieldError{{Message: err.Error()}}
	}
	return flattenCauses(validationErr)
}

// JoinFieldErrors renders all violations as one comma-joined string for the
// ConfigValidationError message.
func JoinFieldErrors(fieldErrors []FieldError) string {
	messages := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		messages[i] = fe.String()
	}
	return strings.Join(messages, ", ")
}

func flattenCauses(err *jsonschema.ValidationError) []FieldError {
	if len(err.Causes) == 0 {
		return []FieldError{{
			Field:   strings.TrimPrefix(err.InstanceLocation, "/"),
			Message: err.Message,
		}}
	}

	var fieldErrors []FieldError
	for _, cause := range err.Causes {
		fieldErrors = append(fieldErrors, flattenCauses(cause)...)
	}
	sort.Slice(fieldErrors, func(i, j int) bool {
		return fieldErrors[i].Field < fieldErrors[j].Field
	})
	return fieldErrors
}

func compileSchema(name, schemaJson string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(name, strings.NewReader(schemaJson)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}
