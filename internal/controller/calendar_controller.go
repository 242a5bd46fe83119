package controller

import (
	"time"

	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/pkg/apperr"
	"ai-healthassist-be/internal/pkg/serverutils"
	"ai-healthassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICalendarController interface {
	RegisterRoutes(r fiber.Router)
	CreateMedication(ctx *fiber.Ctx) error
	GetMedications(ctx *fiber.Ctx) error
	UpdateMedication(ctx *fiber.Ctx) error
	DeleteMedication(ctx *fiber.Ctx) error
	TrackMedication(ctx *fiber.Ctx) error
	GetMedicationTracking(ctx *fiber.Ctx) error
	LogMood(ctx *fiber.Ctx) error
	GetMoodEntries(ctx *fiber.Ctx) error
	GetCalendarView(ctx *fiber.Ctx) error
}

type calendarController struct {
	service service.ICalendarService
}

func NewCalendarController(service service.ICalendarService) ICalendarController {
	return &calendarController{service: service}
}

func (c *calendarController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/calendar")
	h.Post("/medications", c.CreateMedication)
	h.Post("/medications/track", c.TrackMedication)
	h.Get("/medications/track/:user_id", c.GetMedicationTracking)
	h.Get("/medications/:user_id", c.GetMedications)
	h.Put("/medications/:medication_id", c.UpdateMedication)
	h.Delete("/medications/:medication_id", c.DeleteMedication)
	h.Post("/mood", c.LogMood)
	h.Get("/mood/:user_id", c.GetMoodEntries)
	h.Get("/view/:user_id/:year/:month", c.GetCalendarView)
}

func (c *calendarController) CreateMedication(ctx *fiber.Ctx) error {
	var req dto.CreateMedicationRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateMedication(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Medication added", res)
}

func (c *calendarController) GetMedications(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active_only", true)

	res, err := c.service.GetMedications(ctx.Context(), ctx.Params("user_id"), activeOnly)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medications", res)
}

func (c *calendarController) UpdateMedication(ctx *fiber.Ctx) error {
	medicationID, err := parseIDParam(ctx, "medication_id")
	if err != nil {
		return err
	}

	var req dto.UpdateMedicationRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateMedication(ctx.Context(), medicationID, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medication updated", res)
}

func (c *calendarController) DeleteMedication(ctx *fiber.Ctx) error {
	medicationID, err := parseIDParam(ctx, "medication_id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteMedication(ctx.Context(), medicationID); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medication deactivated", nil)
}

func (c *calendarController) TrackMedication(ctx *fiber.Ctx) error {
	var req dto.TrackMedicationRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.TrackMedication(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medication intake recorded", res)
}

func (c *calendarController) GetMedicationTracking(ctx *fiber.Ctx) error {
	startDate, err := parseDateQuery(ctx, "start_date")
	if err != nil {
		return err
	}
	endDate, err := parseDateQuery(ctx, "end_date")
	if err != nil {
		return err
	}

	res, err := c.service.GetMedicationTracking(ctx.Context(), ctx.Params("user_id"), startDate, endDate)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medication tracking records", res)
}

func (c *calendarController) LogMood(ctx *fiber.Ctx) error {
	var req dto.LogMoodRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.LogMood(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Mood logged", res)
}

func (c *calendarController) GetMoodEntries(ctx *fiber.Ctx) error {
	startDate, err := parseDateQuery(ctx, "start_date")
	if err != nil {
		return err
	}
	endDate, err := parseDateQuery(ctx, "end_date")
	if err != nil {
		return err
	}
	limit := ctx.QueryInt("limit", 30)

	res, err := c.service.GetMoodEntries(ctx.Context(), ctx.Params("user_id"), startDate, endDate, limit)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Mood entries", res)
}

func (c *calendarController) GetCalendarView(ctx *fiber.Ctx) error {
	year, err := ctx.ParamsInt("year")
	if err != nil {
		return apperr.Validation("year must be an integer")
	}
	month, err := ctx.ParamsInt("month")
	if err != nil {
		return apperr.Validation("month must be an integer")
	}

	res, err := c.service.GetCalendarView(ctx.Context(), ctx.Params("user_id"), month, year)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Calendar view", res)
}

func parseIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validation("%s must be a valid UUID", name)
	}
	return id, nil
}

func parseDateQuery(ctx *fiber.Ctx, name string) (*time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperr.Validation("%s must use the YYYY-MM-DD format", name)
	}
	return &t, nil
}
