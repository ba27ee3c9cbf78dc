package config

import (
	"log"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedCatways(); err != nil {
		log.Printf("⚠️ Catway seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds a default capitainerie account
// This is for development/testing only
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("capitainerie")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "capitainerie",
		Email:    "capitainerie@port-russell.fr",
		Password: hashedPassword,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Default user created: %s", admin.Username)
	return nil
}

// seedCatways seeds a starter set of berths when the table is empty
func (s *Seeder) seedCatways() error {
	var count int64
	s.db.Model(&models.Catway{}).Count(&count)
	if count > 0 {
		return nil
	}

	catways := []models.Catway{
		{CatwayNumber: "1", CatwayType: models.CatwayTypeLong, CatwayState: "bon état"},
		{CatwayNumber: "2", CatwayType: models.CatwayTypeLong, CatwayState: "bon état"},
		{CatwayNumber: "3", CatwayType: models.CatwayTypeShort, CatwayState: "moyen état"},
		{CatwayNumber: "4", CatwayType: models.CatwayTypeShort, CatwayState: "bon état"},
	}

	if err := s.db.Create(&catways).Error; err != nil {
		return err
	}

	log.Printf("✅ %d catways seeded", len(catways))
	return nil
}
