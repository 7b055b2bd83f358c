package database

import (
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
)

// TenantOrSystem is the shared visibility predicate: a tenant sees its own
// rows plus the read-only defaults owned by the system tenant. Every
// repository uses this scope instead of spelling the OR out itself.
func TenantOrSystem(tenantId string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id IN ?", []string{tenantId, model.SystemTenantId})
	}
}

// OwnedBy restricts to rows the tenant owns directly, with no system
// fallback. Mutations go through this scope.
func OwnedBy(tenantId string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantId)
	}
}
