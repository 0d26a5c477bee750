package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/config"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Practitioner{},
		&models.User{},
		&models.Appointment{},
		&models.ChatMessage{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	seedPractitioners(db, log)

	return db
}

// seedPractitioners fills an empty directory so a fresh install has a
// browsable catalog.
func seedPractitioners(db *gorm.DB, log *zap.Logger) {
	var count int64
	db.Model(&models.Practitioner{}).Count(&count)
	if count > 0 {
		return
	}

	seed := []models.Practitioner{
		{Name: "Dr. Sarah Wilson", Specialty: "Cardiology", Rating: 4.9, Reviews: 234, ExperienceYears: 15, ConsultationFee: 150, Location: "New York, NY", AvailableToday: true, NextAvailable: "2:00 PM Today", Languages: "English,Spanish"},
		{Name: "Dr. Michael Chen", Specialty: "Dermatology", Rating: 4.8, Reviews: 189, ExperienceYears: 12, ConsultationFee: 120, Location: "Los Angeles, CA", AvailableToday: true, NextAvailable: "4:30 PM Today", Languages: "English,Mandarin"},
		{Name: "Dr. Emily Rodriguez", Specialty: "Pediatrics", Rating: 4.9, Reviews: 312, ExperienceYears: 18, ConsultationFee: 130, Location: "Chicago, IL", AvailableToday: false, NextAvailable: "Tomorrow 9:00 AM", Languages: "English,Spanish"},
		{Name: "Dr. David Kim", Specialty: "Neurology", Rating: 4.7, Reviews: 156, ExperienceYears: 20, ConsultationFee: 180, Location: "Boston, MA", AvailableToday: true, NextAvailable: "6:00 PM Today", Languages: "English,Korean"},
		{Name: "Dr. Anna Thompson", Specialty: "Psychiatry", Rating: 4.8, Reviews: 278, ExperienceYears: 14, ConsultationFee: 160, Location: "Seattle, WA", AvailableToday: true, NextAvailable: "1:00 PM Today", Languages: "English"},
		{Name: "Dr. James Wilson", Specialty: "Orthopedics", Rating: 4.6, Reviews: 203, ExperienceYears: 16, ConsultationFee: 170, Location: "Miami, FL", AvailableToday: false, NextAvailable: "Tomorrow 10:30 AM", Languages: "English,Spanish"},
	}

	if err := db.Create(&seed).Error; err != nil {
		log.Warn("failed to seed practitioners", zap.Error(err))
	}
}
