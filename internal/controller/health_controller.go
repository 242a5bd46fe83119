package controller

import (
	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/pkg/serverutils"
	"ai-healthassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	CreateCondition(ctx *fiber.Ctx) error
	GetConditions(ctx *fiber.Ctx) error
	UpdateCondition(ctx *fiber.Ctx) error
	DeleteCondition(ctx *fiber.Ctx) error
	GenerateReport(ctx *fiber.Ctx) error
	GetSummary(ctx *fiber.Ctx) error
}

type healthController struct {
	service service.IHealthService
}

func NewHealthController(service service.IHealthService) IHealthController {
	return &healthController{service: service}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health")
	h.Post("/conditions", c.CreateCondition)
	h.Get("/conditions/:user_id", c.GetConditions)
	h.Put("/conditions/:condition_id", c.UpdateCondition)
	h.Delete("/conditions/:condition_id", c.DeleteCondition)
	h.Post("/report", c.GenerateReport)
	h.Get("/summary/:user_id", c.GetSummary)
}

func (c *healthController) CreateCondition(ctx *fiber.Ctx) error {
	var req dto.CreateConditionRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateCondition(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Health condition recorded", res)
}

func (c *healthController) GetConditions(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active_only", true)

	res, err := c.service.GetConditions(ctx.Context(), ctx.Params("user_id"), activeOnly)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Health conditions", res)
}

func (c *healthController) UpdateCondition(ctx *fiber.Ctx) error {
	conditionID, err := parseIDParam(ctx, "condition_id")
	if err != nil {
		return err
	}

	var req dto.UpdateConditionRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateCondition(ctx.Context(), conditionID, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Health condition updated", res)
}

func (c *healthController) DeleteCondition(ctx *fiber.Ctx) error {
	conditionID, err := parseIDParam(ctx, "condition_id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteCondition(ctx.Context(), conditionID); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Health condition deactivated", nil)
}

func (c *healthController) GenerateReport(ctx *fiber.Ctx) error {
	var req dto.HealthReportRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GenerateReport(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Health report", res)
}

func (c *healthController) GetSummary(ctx *fiber.Ctx) error {
	res, err := c.service.GetSummary(ctx.Context(), ctx.Params("user_id"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Health summary", res)
}
