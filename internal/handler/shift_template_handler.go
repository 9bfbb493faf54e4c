package handler

import (
	"strconv"

	"ewarga-backend/internal/model"
	"ewarga-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ShiftTemplateHandler struct {
	svc *service.ShiftTemplateService
}

func NewShiftTemplateHandler(svc *service.ShiftTemplateService) *ShiftTemplateHandler {
	return &ShiftTemplateHandler{svc: svc}
}

func (h *ShiftTemplateHandler) List(c *fiber.Ctx) error {
	category := model.JobCategory(c.Query("job_category"))
	activeOnly := c.Query("active") == "true"

	templates, err := h.svc.List(category, activeOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": templates})
}

func (h *ShiftTemplateHandler) Get(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	template, err := h.svc.Get(uint(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": template})
}

func (h *ShiftTemplateHandler) Create(c *fiber.Ctx) error {
	var input service.CreateTemplateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	template, err := h.svc.Create(input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shift template created", "data": template})
}

func (h *ShiftTemplateHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var input service.UpdateTemplateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	template, err := h.svc.Update(uint(id), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shift template updated", "data": template})
}

func (h *ShiftTemplateHandler) Retire(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	template, err := h.svc.Retire(uint(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shift template retired", "data": template})
}
