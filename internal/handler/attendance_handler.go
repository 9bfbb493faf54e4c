package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ewarga-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AttendanceHandler struct {
	svc *service.AttendanceService
}

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// ClockIn expects a multipart form: latitude, longitude, optional
// shift_start ("HH:mm"), optional schedule_id, and a photo file (or a
// photo_ref string when the file was stored elsewhere).
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	staffID := staffIDFromContext(c)

	lat, latErr := strconv.ParseFloat(c.FormValue("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if latErr != nil || lonErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "latitude and longitude are required"})
	}

	var scheduleID *uint
	if raw := c.FormValue("schedule_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid schedule_id"})
		}
		u := uint(id)
		scheduleID = &u
	}

	photoRef, err := h.savePhoto(c, "photo")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	attendance, err := h.svc.ClockIn(service.ClockInInput{
		StaffID:        staffID,
		ShiftStartTime: c.FormValue("shift_start"),
		Latitude:       lat,
		Longitude:      lon,
		PhotoRef:       photoRef,
		ScheduleID:     scheduleID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Clock-in recorded",
		"data":    attendance,
	})
}

func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	staffID := staffIDFromContext(c)

	lat, latErr := strconv.ParseFloat(c.FormValue("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if latErr != nil || lonErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "latitude and longitude are required"})
	}

	photoRef, err := h.savePhoto(c, "photo")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	attendance, err := h.svc.ClockOut(service.ClockOutInput{
		StaffID:   staffID,
		Latitude:  lat,
		Longitude: lon,
		PhotoRef:  photoRef,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Clock-out recorded",
		"data":    attendance,
	})
}

func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	staffID := staffIDFromContext(c)

	history, err := h.svc.History(staffID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": history})
}

func (h *AttendanceHandler) GetRecap(c *fiber.Ctx) error {
	staffID := staffIDFromContext(c)
	month := c.Query("month") // "01".."12"
	year := c.Query("year")   // "2026"

	if month == "" || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month and year are required"})
	}

	recap, err := h.svc.Recap(staffID, month, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": recap})
}

func (h *AttendanceHandler) GetToday(c *fiber.Ctx) error {
	staffID := staffIDFromContext(c)

	status, err := h.svc.Today(staffID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": status})
}

// savePhoto stores an uploaded photo under ./uploads/attendance with a
// generated name and returns its reference. Falls back to the photo_ref
// form value when no file is attached.
func (h *AttendanceHandler) savePhoto(c *fiber.Ctx, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return c.FormValue("photo_ref"), nil
	}

	uploadDir := "./uploads/attendance"
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	pathFile := fmt.Sprintf("uploads/attendance/%s", filename)
	if err := c.SaveFile(file, pathFile); err != nil {
		return "", err
	}
	return pathFile, nil
}
