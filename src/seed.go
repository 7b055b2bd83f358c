package main

import (
	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InitializeDev seeds the system tenant and a minimal registrar/scheme pair
// so a fresh local database resolves and validates out of the box. Every
// insert is a FirstOrCreate, so reruns are harmless.
func InitializeDev(db *gorm.DB) error {
	log := logger.Default()

	systemTenant := model.Tenant{
		Id:   model.SystemTenantId,
		Name: "System",
	}
	if result := db.FirstOrCreate(&systemTenant); result.Error != nil {
		log.Error(result.Error, "Error seeding system tenant")
		return result.Error
	}

	registrarRecord := model.Registrar{
		Id:       uuid.NewString(),
		TenantId: model.SystemTenantId,
		Name:     "GS1",
	}
	result := db.Where(&model.Registrar{TenantId: model.SystemTenantId, Name: "GS1"}).
		FirstOrCreate(&registrarRecord)
	if result.Error != nil {
		log.Error(result.Error, "Error seeding default registrar")
		return result.Error
	}

	schemeRecord := model.IdentifierScheme{
		Id:                uuid.NewString(),
		TenantId:          model.SystemTenantId,
		RegistrarId:       registrarRecord.Id,
		Name:              "GTIN",
		ValidationPattern: `^\d{14}$`,
	}
	result = db.Where(&model.IdentifierScheme{TenantId: model.SystemTenantId, Name: "GTIN"}).
		FirstOrCreate(&schemeRecord)
	if result.Error != nil {
		log.Error(result.Error, "Error seeding default scheme")
		return result.Error
	}

	log.Infof("Seeded system defaults: registrar %s, scheme %s", registrarRecord.Id, schemeRecord.Id)
	return nil
}
