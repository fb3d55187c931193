package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/users/user/dto"
	"campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

// 🔍 GET /api/students/profile (student)
func (ctrl *UserController) GetStudentProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}
	if user.UserRole != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}
	return helper.JsonOK(c, "Profile fetched successfully", dto.ToUserDTO(user))
}

// ✏️ PUT /api/students/profile (student) — contact info, address, password only
func (ctrl *UserController) UpdateStudentProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.UpdateStudentProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}
	if user.UserRole != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}

	updatedFields := fiber.Map{}

	if body.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		user.UserPassword = string(hashed)
		updatedFields["password"] = "updated"
	}

	if body.ContactInformation != nil || body.Address != nil {
		var info model.StudentInfo
		if len(user.UserStudentInfo) > 0 {
			if err := json.Unmarshal(user.UserStudentInfo, &info); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt student info record")
			}
		}
		if info.DemographicProfile == nil {
			info.DemographicProfile = &model.DemographicProfile{}
		}
		if body.ContactInformation != nil {
			info.DemographicProfile.ContactInformation = body.ContactInformation
			updatedFields["contact_information"] = "updated"
		}
		if body.Address != nil {
			info.DemographicProfile.Address = body.Address
			updatedFields["address"] = "updated"
		}
		user.UserStudentInfo = mustJSON(&info)
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated successfully", fiber.Map{
		"updated_fields": updatedFields,
	})
}
