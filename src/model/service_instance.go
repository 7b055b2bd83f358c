package model

import "time"

type ServiceType string

const (
	ServiceTypeDid ServiceType = "DID"
	ServiceTypeIdr ServiceType = "IDR"
)

type AdapterType string

const (
	AdapterTypeDidWeb           AdapterType = "did-web"
	AdapterTypeIdentityResolver AdapterType = "identity-resolver"
)

// ServiceInstance is a configured connection to an external backend for one
// service type. Config holds the JSON-marshalled encryption envelope, never
// plaintext credentials.
type ServiceInstance struct {
	Id          string      `gorm:"primaryKey" json:"id"`
	TenantId    string      `gorm:"not null;index:idx_instance_tenant_type" json:"tenantId"`
	ServiceType ServiceType `gorm:"not null;index:idx_instance_tenant_type" json:"serviceType"`
	AdapterType AdapterType `gorm:"not null" json:"adapterType"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description,omitempty"`
	Config      string      `gorm:"not null" json:"-"`
	ApiVersion  string      `json:"apiVersion"`
	IsPrimary   bool        `gorm:"not null;default:false" json:"isPrimary"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}
