package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	clearanceModel "campushub_backend/internals/features/academics/clearance/model"
	coursesModel "campushub_backend/internals/features/academics/courses/model"
	enrollmentModel "campushub_backend/internals/features/academics/enrollment/model"
	evaluationModel "campushub_backend/internals/features/academics/evaluation/model"
	gradesModel "campushub_backend/internals/features/academics/grades/model"
	userModel "campushub_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full URL DSN + statement_timeout; PreferSimpleProtocol keeps PgBouncer happy
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=campushub&options=-c statement_timeout=3000",
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
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if err := autoMigrate(); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
}

func autoMigrate() error {
	return DB.AutoMigrate(
		&userModel.UserModel{},
		&coursesModel.DepartmentModel{},
		&coursesModel.CourseModel{},
		&coursesModel.OfferedCourseModel{},
		&enrollmentModel.EnrollmentModel{},
		&gradesModel.GradeRecordModel{},
		&gradesModel.TeacherGradeModel{},
		&clearanceModel.ClearanceModel{},
		&evaluationModel.EvaluationModel{},
	)
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

func WarmUpQueries() {
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
