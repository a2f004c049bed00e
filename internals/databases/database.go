package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceModel "schoolhub_backend/internals/features/academics/attendance/model"
	resultModel "schoolhub_backend/internals/features/academics/results/model"
	couponModel "schoolhub_backend/internals/features/finance/coupons/model"
	feeModel "schoolhub_backend/internals/features/finance/fees/model"
	paymentModel "schoolhub_backend/internals/features/finance/payments/model"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	teacherModel "schoolhub_backend/internals/features/school/teachers/model"
	userModel "schoolhub_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout.
	// Note: with PgBouncer switch host/port to the pooler and keep PreferSimpleProtocol=true.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolhub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
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

// Migrate runs AutoMigrate for every collection the API serves.
// Requires the pgcrypto extension for gen_random_uuid().
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("migrate: pgcrypto: %v", err)
	}
	if err := DB.AutoMigrate(
		&userModel.User{},
		&studentModel.Student{},
		&teacherModel.Teacher{},
		&classModel.Class{},
		&classModel.Subject{},
		&attendanceModel.AttendanceRecord{},
		&resultModel.Result{},
		&resultModel.SubjectScore{},
		&feeModel.FeeStructure{},
		&feeModel.FeeRecord{},
		&couponModel.Coupon{},
		&paymentModel.Payment{},
	); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}

func WarmUpQueries() {
	// fire a light query so the pool is primed before real traffic
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
