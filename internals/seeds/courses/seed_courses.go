package courses

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/courses/model"
)

type CourseSeed struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Units         int      `json:"units"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// SeedCoursesFromJSON loads the starter course catalog. Courses whose
// code already exists are skipped.
func SeedCoursesFromJSON(db *gorm.DB, filePath string) error {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var seedCourses []CourseSeed
	if err := json.Unmarshal(file, &seedCourses); err != nil {
		return err
	}

	for _, c := range seedCourses {
		var existing model.CourseModel
		if err := db.Where("course_code = ?", c.Code).First(&existing).Error; err == nil {
			log.Printf("[INFO] Course %s already exists, skipping", c.Code)
			continue
		}

		course := model.CourseModel{
			CourseCode:          c.Code,
			CourseName:          c.Name,
			CourseUnits:         c.Units,
			CoursePrerequisites: c.Prerequisites,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Printf("❌ Failed to seed course %s: %v", c.Code, err)
			continue
		}
		log.Printf("✅ Seeded course %s (%s)", c.Code, c.Name)
	}

	return nil
}
