package model

import "time"

// SystemTenantId is the reserved tenant owning shared default records.
// Rows owned by it are visible to every tenant read-only.
const SystemTenantId = "system"

type Tenant struct {
	Id        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
