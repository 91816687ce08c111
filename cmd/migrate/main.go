package main

import (
	"log"
	"os"

	"edubot-be/internal/entity"
	"edubot-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running GORM migration...")

	models := []interface{}{
		&entity.Grade{},
		&entity.Semester{},
		&entity.Department{},
		&entity.DepartmentGrade{},
		&entity.CuratedQA{},
		&entity.CurriculumFile{},
		&entity.FileDepartment{},
		&entity.Conversation{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	log.Println("✅ Migration complete")
}
