package main

import (
	"log"
	"os"

	"edubot-be/internal/entity"
	"edubot-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the catalog with the default academic structure plus a couple
// of curated answers so a fresh install responds sensibly.
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

	grades := []entity.Grade{
		{Name: "الفرقة الأولى", IsActive: true},
		{Name: "الفرقة الثانية", IsActive: true},
		{Name: "الفرقة الثالثة", IsActive: true},
		{Name: "الفرقة الرابعة", IsActive: true},
	}
	semesters := []entity.Semester{
		{Name: "الترم الأول", IsActive: true},
		{Name: "الترم الثاني", IsActive: true},
	}
	departments := []entity.Department{
		{Name: "الفيزياء", IsActive: true},
		{Name: "الكيمياء", IsActive: true},
		{Name: "الرياضيات", IsActive: true},
	}

	seed := func(tx *gorm.DB, values interface{}) {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(values).Error; err != nil {
			log.Fatalf("Error: seeding failed: %v", err)
		}
	}

	seed(db, &grades)
	seed(db, &semesters)
	seed(db, &departments)

	// Link every department to every grade as a starting point; admins
	// prune from the dashboard.
	var links []entity.DepartmentGrade
	for _, d := range departments {
		for _, g := range grades {
			links = append(links, entity.DepartmentGrade{DepartmentID: d.ID, GradeID: g.ID})
		}
	}
	seed(db, &links)

	samples := []entity.CuratedQA{
		{
			GradeID:      grades[0].ID,
			SemesterID:   semesters[0].ID,
			DepartmentID: departments[0].ID,
			Question:     "ما هو قانون نيوتن الأول؟",
			Answer:       "قانون نيوتن الأول (قانون القصور الذاتي): يبقى الجسم على حالته من السكون أو الحركة المنتظمة في خط مستقيم ما لم تؤثر عليه قوة خارجية تغير من حالته.",
			Keywords:     "قانون نيوتن الأول, القصور الذاتي",
		},
		{
			GradeID:      grades[0].ID,
			SemesterID:   semesters[0].ID,
			DepartmentID: departments[0].ID,
			Question:     "ما هي وحدة قياس القوة؟",
			Answer:       "وحدة قياس القوة في النظام الدولي هي النيوتن، والنيوتن الواحد هو القوة اللازمة لإكساب كتلة مقدارها كيلوجرام واحد تسارعاً مقداره متر واحد في الثانية المربعة.",
			Keywords:     "وحدة القوة, النيوتن",
		},
	}
	seed(db, &samples)

	log.Println("✅ Seed complete")
}
