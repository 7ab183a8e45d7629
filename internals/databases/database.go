package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	activityModel "jebshit_backend/internals/features/content/activities/model"
	jobModel "jebshit_backend/internals/features/content/jobs/model"
	martyrModel "jebshit_backend/internals/features/content/martyrs/model"
	memoryModel "jebshit_backend/internals/features/content/memories/model"
	newsModel "jebshit_backend/internals/features/content/news/model"
	storyModel "jebshit_backend/internals/features/content/stories/model"
	topicModel "jebshit_backend/internals/features/content/topics/model"
	authModel "jebshit_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=jebshit&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // required for PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// Migrate keeps the schema in step with the registered models.
func Migrate() {
	if err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&newsModel.NewsModel{},
		&martyrModel.MartyrModel{},
		&storyModel.StoryModel{},
		&activityModel.ActivityModel{},
		&topicModel.TopicModel{},
		&jobModel.JobModel{},
		&memoryModel.MemoryModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
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

func WarmUp() {
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
