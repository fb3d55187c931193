package controller

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/users/user/dto"
	"campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ➕ POST /api/users/register (MIS admin)
func (ctrl *UserController) RegisterUser(c *fiber.Ctx) error {
	var body dto.RegisterUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	roleID, err := roleIdentifier(body.UserRole, body.StudentID, body.FacultyID, body.AdminID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if body.UserRole == constants.RoleAdmin && body.AdminPosition == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "admin_position is required for admin users")
	}

	var existing model.UserModel
	err = ctrl.DB.Where(roleIDColumn(body.UserRole)+" = ?", roleID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	newUser := model.UserModel{
		UserName:     body.UserName,
		UserEmail:    body.UserEmail,
		UserPassword: string(hashed),
		UserRole:     body.UserRole,
		UserIsActive: true,
	}
	switch body.UserRole {
	case constants.RoleStudent:
		newUser.UserStudentID = body.StudentID
		if body.StudentInfo != nil {
			newUser.UserStudentInfo = mustJSON(body.StudentInfo)
		}
	case constants.RoleTeacher:
		newUser.UserFacultyID = body.FacultyID
		if body.TeacherInfo != nil {
			newUser.UserTeacherInfo = mustJSON(body.TeacherInfo)
		}
	case constants.RoleAdmin:
		newUser.UserAdminID = body.AdminID
		newUser.UserAdminPosition = body.AdminPosition
	}

	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created successfully", dto.ToUserDTO(newUser))
}

// 📄 GET /api/users (MIS admin)
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Order("user_created_at DESC").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]dto.UserDTO, len(users))
	for i, u := range users {
		resp[i] = dto.ToUserDTO(u)
	}
	return helper.JsonList(c, "Users fetched successfully", resp)
}

// 🔍 GET /api/users/:id (MIS admin)
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID is required")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "User fetched successfully", dto.ToUserDTO(user))
}

// ✏️ PUT /api/users/:id (MIS admin)
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID is required")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if body.UserName != nil {
		user.UserName = *body.UserName
	}
	if body.UserRole != nil {
		user.UserRole = *body.UserRole
	}
	if body.UserIsActive != nil {
		user.UserIsActive = *body.UserIsActive
	}

	switch user.UserRole {
	case constants.RoleStudent:
		if body.StudentID != nil {
			user.UserStudentID = body.StudentID
		}
		if body.StudentInfo != nil {
			user.UserStudentInfo = mustJSON(body.StudentInfo)
		}
	case constants.RoleTeacher:
		if body.FacultyID != nil {
			user.UserFacultyID = body.FacultyID
		}
		if body.TeacherInfo != nil {
			user.UserTeacherInfo = mustJSON(body.TeacherInfo)
		}
	case constants.RoleAdmin:
		if body.AdminID != nil {
			user.UserAdminID = body.AdminID
		}
		if body.AdminPosition != nil {
			user.UserAdminPosition = body.AdminPosition
		}
	}

	if body.UserPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*body.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		user.UserPassword = string(hashed)
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated successfully", dto.ToUserDTO(user))
}

// ❌ DELETE /api/users/:id (MIS admin) — soft delete only
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID is required")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	user.UserIsActive = false
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	return helper.JsonDeleted(c, "User deactivated successfully", fiber.Map{"user_id": user.UserID})
}

// 📄 GET /api/users/role/:role (MIS admin)
func (ctrl *UserController) GetUsersByRole(c *fiber.Ctx) error {
	role := c.Params("role")
	if role != constants.RoleStudent && role != constants.RoleTeacher && role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	var users []model.UserModel
	if err := ctrl.DB.
		Where("user_role = ? AND user_is_active = ?", role, true).
		Order("user_created_at DESC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]dto.UserDTO, len(users))
	for i, u := range users {
		resp[i] = dto.ToUserDTO(u)
	}
	return helper.JsonList(c, "Users fetched successfully", resp)
}

func roleIdentifier(role string, studentID, facultyID, adminID *string) (string, error) {
	switch role {
	case constants.RoleStudent:
		if studentID == nil || *studentID == "" {
			return "", errors.New("student_id is required for student users")
		}
		return *studentID, nil
	case constants.RoleTeacher:
		if facultyID == nil || *facultyID == "" {
			return "", errors.New("faculty_id is required for teacher users")
		}
		return *facultyID, nil
	case constants.RoleAdmin:
		if adminID == nil || *adminID == "" {
			return "", errors.New("admin_id is required for admin users")
		}
		return *adminID, nil
	}
	return "", errors.New("invalid role")
}

func roleIDColumn(role string) string {
	switch role {
	case constants.RoleStudent:
		return "user_student_id"
	case constants.RoleTeacher:
		return "user_faculty_id"
	default:
		return "user_admin_id"
	}
}

func mustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}
