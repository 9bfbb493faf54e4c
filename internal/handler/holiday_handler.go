package handler

import (
	"strconv"

	"ewarga-backend/internal/model"
	"ewarga-backend/internal/repository"
	"ewarga-backend/internal/timeclock"

	"github.com/gofiber/fiber/v2"
)

type HolidayHandler struct {
	repo repository.HolidayRepository
}

func NewHolidayHandler(repo repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{repo: repo}
}

func (h *HolidayHandler) List(c *fiber.Ctx) error {
	holidays, err := h.repo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load holidays"})
	}
	return c.JSON(fiber.Map{"data": holidays})
}

func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	var holiday model.Holiday
	if err := c.BodyParser(&holiday); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, err := timeclock.NormalizeDate(holiday.Date)
	if err != nil {
		return writeError(c, err)
	}
	holiday.Date = date

	existing, err := h.repo.FindByDate(holiday.Date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save holiday"})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Holiday already exists for that date"})
	}

	if err := h.repo.Create(&holiday); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save holiday"})
	}
	return c.JSON(fiber.Map{"message": "Holiday created", "data": holiday})
}

func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete holiday"})
	}
	return c.JSON(fiber.Map{"message": "Holiday deleted"})
}
