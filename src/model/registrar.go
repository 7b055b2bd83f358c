package model

import "time"

// Registrar is the root of the identifier hierarchy. A registrar owns zero or
// more identifier schemes. System registrars are shared read-only defaults.
type Registrar struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	TenantId    string    `gorm:"not null;index" json:"tenantId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	// Optional per-registrar override of the IDR service instance to use for
	// identifiers registered under it.
	IdrServiceInstanceId *string            `json:"idrServiceInstanceId,omitempty"`
	Schemes              []IdentifierScheme `gorm:"foreignKey:RegistrarId" json:"schemes,omitempty"`
	CreatedAt            time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}
