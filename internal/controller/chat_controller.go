package controller

import (
	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/pkg/serverutils"
	"ai-healthassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
	InitializeChat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/message", c.SendMessage)
	h.Get("/history/:user_id", c.GetHistory)
	h.Delete("/history/:user_id", c.ClearHistory)
	h.Post("/initialize/:user_id", c.InitializeChat)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Message sent", res)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 100)
	skip := ctx.QueryInt("skip", 0)

	res, err := c.service.GetHistory(ctx.Context(), ctx.Params("user_id"), limit, skip)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Chat history", res)
}

func (c *chatController) ClearHistory(ctx *fiber.Ctx) error {
	res, err := c.service.ClearHistory(ctx.Context(), ctx.Params("user_id"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Chat history cleared", res)
}

func (c *chatController) InitializeChat(ctx *fiber.Ctx) error {
	res, err := c.service.InitializeChat(ctx.Context(), ctx.Params("user_id"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Chat session initialized", res)
}
