package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Claims are stored into Locals by the auth middleware; these helpers
// read them back with the right error when a claim is missing.

func GetUserIDFromToken(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals("user_id").(string)
	if !ok || id == "" {
		return "", errors.New("user_id not found in token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", errors.New("role not found in token")
	}
	return role, nil
}

// GetStudentIDFromToken returns the institutional student ID of the caller.
func GetStudentIDFromToken(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals("student_id").(string)
	if !ok || id == "" {
		return "", errors.New("student_id not found in token")
	}
	return id, nil
}

// GetFacultyIDFromToken returns the institutional faculty ID of the caller.
func GetFacultyIDFromToken(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals("faculty_id").(string)
	if !ok || id == "" {
		return "", errors.New("faculty_id not found in token")
	}
	return id, nil
}

func GetAdminPositionFromToken(c *fiber.Ctx) (string, error) {
	pos, ok := c.Locals("admin_position").(string)
	if !ok || pos == "" {
		return "", errors.New("admin_position not found in token")
	}
	return pos, nil
}
