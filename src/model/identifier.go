package model

import "time"

// Identifier is a registered value under one scheme. Identifiers are always
// tenant-owned; there is no system-default sharing for them.
type Identifier struct {
	Id       string `gorm:"primaryKey" json:"id"`
	TenantId string `gorm:"not null;index" json:"tenantId"`
	SchemeId string `gorm:"not null;index" json:"schemeId"`
	Value    string `gorm:"not null" json:"value"`
	// Service instance that served the last publish for this identifier,
	// recorded for provenance.
	ResolvedByInstanceId *string   `json:"resolvedByInstanceId,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
