package handler

import (
	"time"

	"ewarga-backend/config"
	"ewarga-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	staffRepo repository.StaffRepository
}

func NewAuthHandler(staffRepo repository.StaffRepository) *AuthHandler {
	return &AuthHandler{staffRepo: staffRepo}
}

type LoginRequest struct {
	EmployeeNo string `json:"employee_no"`
	Password   string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	staff, err := h.staffRepo.FindByEmployeeNo(req.EmployeeNo)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong employee number or password"})
	}
	if !staff.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account is inactive"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong employee number or password"})
	}

	claims := jwt.MapClaims{
		"staff_id":    staff.ID,
		"employee_no": staff.EmployeeNo,
		"role":        staff.Role,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign token"})
	}

	return c.JSON(fiber.Map{
		"token": signed,
		"staff": fiber.Map{
			"id":           staff.ID,
			"name":         staff.Name,
			"employee_no":  staff.EmployeeNo,
			"job_category": staff.JobCategory,
			"role":         staff.Role,
		},
	})
}
