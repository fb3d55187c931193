package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	StudentID     string `json:"student_id,omitempty"`
	FacultyID     string `json:"faculty_id,omitempty"`
	AdminID       string `json:"admin_id,omitempty"`
	AdminPosition string `json:"admin_position,omitempty"`
}

// SeedUsersFromJSON loads baseline accounts from a JSON file. Records
// whose email already exists are skipped so reseeding is idempotent.
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var seedUsers []UserSeed
	if err := json.Unmarshal(file, &seedUsers); err != nil {
		return err
	}

	for _, u := range seedUsers {
		var existing model.UserModel
		if err := db.Where("user_email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("[INFO] User %s already exists, skipping", u.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Failed to hash password for %s: %v", u.Email, err)
			continue
		}

		user := model.UserModel{
			UserName:     u.Name,
			UserEmail:    u.Email,
			UserPassword: string(hashed),
			UserRole:     u.Role,
			UserIsActive: true,
		}
		if u.StudentID != "" {
			user.UserStudentID = &u.StudentID
		}
		if u.FacultyID != "" {
			user.UserFacultyID = &u.FacultyID
		}
		if u.AdminID != "" {
			user.UserAdminID = &u.AdminID
		}
		if u.AdminPosition != "" {
			user.UserAdminPosition = &u.AdminPosition
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Failed to seed user %s: %v", u.Email, err)
			continue
		}
		log.Printf("✅ Seeded user %s (%s)", u.Email, u.Role)
	}

	return nil
}
