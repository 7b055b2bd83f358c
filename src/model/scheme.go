package model

import "time"

// IdentifierScheme is a named identifier format. Every identifier registered
// against it must match ValidationPattern in full.
type IdentifierScheme struct {
	Id                string `gorm:"primaryKey" json:"id"`
	TenantId          string `gorm:"not null;index" json:"tenantId"`
	RegistrarId       string `gorm:"not null;index" json:"registrarId"`
	Name              string `gorm:"not null" json:"name"`
	Description       string `json:"description,omitempty"`
	ValidationPattern string `gorm:"not null" json:"validationPattern"`
	// Link-registration namespace for identifiers of this scheme. Empty
	// defers to the resolving IDR instance's configured namespace.
	Namespace string `json:"namespace,omitempty"`
	// Optional per-scheme override of the IDR service instance. Takes
	// priority over the owning registrar's override.
	IdrServiceInstanceId *string           `json:"idrServiceInstanceId,omitempty"`
	Qualifiers           []SchemeQualifier `gorm:"foreignKey:SchemeId" json:"qualifiers,omitempty"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SchemeQualifier is a named sub-attribute of a scheme (e.g. lot, serial)
// with its own validation pattern. Updates to a scheme replace the full
// qualifier set, never merge.
type SchemeQualifier struct {
	Id                string    `gorm:"primaryKey" json:"id"`
	SchemeId          string    `gorm:"not null;index" json:"schemeId"`
	Key               string    `gorm:"not null" json:"key"`
	Name              string    `json:"name,omitempty"`
	ValidationPattern string    `json:"validationPattern,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
