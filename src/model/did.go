package model

import "time"

type DidType string

const (
	DidTypeManaged     DidType = "MANAGED"
	DidTypeSelfManaged DidType = "SELF_MANAGED"
	DidTypeDefault     DidType = "DEFAULT"
)

type DidStatus string

const (
	DidStatusActive     DidStatus = "ACTIVE"
	DidStatusUnverified DidStatus = "UNVERIFIED"
	DidStatusVerified   DidStatus = "VERIFIED"
	DidStatusInactive   DidStatus = "INACTIVE"
)

type Did struct {
	Id        string    `gorm:"primaryKey" json:"id"`
	TenantId  string    `gorm:"not null;index" json:"tenantId"`
	Did       string    `gorm:"not null" json:"did"`
	Type      DidType   `gorm:"not null" json:"type"`
	Method    string    `json:"method,omitempty"`
	KeyId     string    `json:"keyId,omitempty"`
	Status    DidStatus `gorm:"not null" json:"status"`
	IsDefault bool      `gorm:"not null;default:false" json:"isDefault"`
	// Service instance used to manage or verify this DID, when any.
	ServiceInstanceId *string   `json:"serviceInstanceId,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
