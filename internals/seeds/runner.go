package seeds

import (
	"log"

	"gorm.io/gorm"

	courseSeed "campushub_backend/internals/seeds/courses"
	userSeed "campushub_backend/internals/seeds/users"
)

// RunAllSeeds loads the baseline accounts and catalog used by a fresh
// installation. Each seeder skips records that already exist, so the
// runner is safe to call on every boot.
func RunAllSeeds(db *gorm.DB) {
	log.Println("[INFO] Running seeders...")

	if err := userSeed.SeedUsersFromJSON(db, "internals/seeds/users/users.json"); err != nil {
		log.Printf("[ERROR] Failed to seed users: %v", err)
	}

	if err := courseSeed.SeedCoursesFromJSON(db, "internals/seeds/courses/courses.json"); err != nil {
		log.Printf("[ERROR] Failed to seed courses: %v", err)
	}

	log.Println("[INFO] Seeders finished")
}
