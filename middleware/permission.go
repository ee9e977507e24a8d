package middleware

import (
	"errors"

	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Roles carried in the JWT role claim
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// RequireRole returns a middleware that only lets callers with one of the
// given roles through. Runs after JWTMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not found", nil)
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// FindEnrollment loads the enrollment record gating student-scoped course
// operations. Returns gorm.ErrRecordNotFound when the caller is not enrolled.
func FindEnrollment(userID uint, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// IsEnrolled reports whether an enrollment exists for (user, course)
func IsEnrolled(userID uint, courseID uint) (bool, error) {
	_, err := FindEnrollment(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
