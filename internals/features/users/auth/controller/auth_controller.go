package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/users/auth/dto"
	userDTO "campushub_backend/internals/features/users/user/dto"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🔑 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var column string
	switch body.Role {
	case constants.RoleStudent:
		column = "user_student_id"
	case constants.RoleTeacher:
		column = "user_faculty_id"
	case constants.RoleAdmin:
		column = "user_admin_id"
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where(column+" = ?", body.ID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	token, err := signToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.GetEnv("APP_ENV") == "production",
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Now().Add(configs.JWTExpiry),
	})

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		UserID:        user.UserID.String(),
		Role:          user.UserRole,
		StudentID:     user.UserStudentID,
		FacultyID:     user.UserFacultyID,
		AdminID:       user.UserAdminID,
		AdminPosition: user.UserAdminPosition,
		Token:         token,
	})
}

// 🚪 POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
	})
	return helper.JsonOK(c, "Logged out successfully", nil)
}

// 👤 GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "User fetched successfully", userDTO.ToUserDTO(user))
}

func signToken(u *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   u.UserID.String(),
		"role": u.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(configs.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
