package handler

import (
	"strconv"

	"ewarga-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	svc *service.SchedulerService
}

func NewScheduleHandler(svc *service.SchedulerService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var input service.CreateScheduleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input.CreatedBy = staffIDFromContext(c)

	schedule, err := h.svc.CreateSchedule(input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Schedule created", "data": schedule})
}

func (h *ScheduleHandler) BulkCreate(c *fiber.Ctx) error {
	var input service.BulkCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input.CreatedBy = staffIDFromContext(c)

	result, err := h.svc.BulkCreateSchedules(input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bulk schedule creation finished", "data": result})
}

func (h *ScheduleHandler) AutoGenerate(c *fiber.Ctx) error {
	var input service.AutoGenerateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	input.CreatedBy = staffIDFromContext(c)

	result, err := h.svc.AutoGenerate(input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Auto-generation finished", "data": result})
}

// GET /api/admin/schedules?date=2026-08-29
func (h *ScheduleHandler) ListByDate(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}

	schedules, err := h.svc.ListByDate(date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": schedules})
}

// GET /api/schedules/mine?month=08&year=2026
func (h *ScheduleHandler) ListMine(c *fiber.Ctx) error {
	staffID := staffIDFromContext(c)
	month := c.Query("month")
	year := c.Query("year")
	if month == "" || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month and year are required"})
	}

	schedules, err := h.svc.ListByStaffAndMonth(staffID, month, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": schedules})
}

func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.svc.DeleteSchedule(uint(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Schedule deleted"})
}
