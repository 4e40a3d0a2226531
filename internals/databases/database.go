package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clubapp_backend/internals/configs"
	attendanceModel "clubapp_backend/internals/features/club/attendance/model"
	dueModel "clubapp_backend/internals/features/club/dues/model"
	memberModel "clubapp_backend/internals/features/club/members/model"
	sessionModel "clubapp_backend/internals/features/club/sessions/model"
	teamModel "clubapp_backend/internals/features/club/teams/model"
	importModel "clubapp_backend/internals/features/imports/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connexion à PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  configs.DatabaseURL,
		PreferSimpleProtocol: true, // compatible PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Connexion DB impossible: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates every table the API touches. The old deployment
// created tables lazily at import time; doing it once at boot is the explicit
// version of the same thing.
func Migrate() {
	if err := DB.AutoMigrate(
		&teamModel.TeamModel{},
		&memberModel.MemberModel{},
		&sessionModel.SessionModel{},
		&attendanceModel.AttendanceModel{},
		&dueModel.DueModel{},
		&importModel.ImportLogModel{},
	); err != nil {
		log.Fatalf("❌ Migration échouée: %v", err)
	}
	log.Println("✅ Migration OK")
}
