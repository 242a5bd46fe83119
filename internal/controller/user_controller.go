package controller

import (
	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/pkg/serverutils"
	"ai-healthassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	CreateUser(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
	UpdateUser(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("/", c.CreateUser)
	h.Get("/", c.ListUsers)
	h.Get("/:user_id", c.GetUser)
	h.Put("/:user_id", c.UpdateUser)
	h.Delete("/:user_id", c.DeleteUser)
}

func (c *userController) CreateUser(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateUser(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "User profile created", res)
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	res, err := c.service.GetUser(ctx.Context(), ctx.Params("user_id"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "User profile", res)
}

func (c *userController) UpdateUser(ctx *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateUser(ctx.Context(), ctx.Params("user_id"), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "User profile updated", res)
}

func (c *userController) DeleteUser(ctx *fiber.Ctx) error {
	if err := c.service.DeleteUser(ctx.Context(), ctx.Params("user_id")); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "User profile deleted", nil)
}

func (c *userController) ListUsers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 100)
	skip := ctx.QueryInt("skip", 0)

	res, err := c.service.ListUsers(ctx.Context(), limit, skip)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "User profiles", res)
}
