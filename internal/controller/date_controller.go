package controller

import (
	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/pkg/serverutils"
	"marketing-calendar-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDateController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Suggest(ctx *fiber.Ctx) error
}

type dateController struct {
	service service.ISuggestionService
}

func NewDateController(service service.ISuggestionService) IDateController {
	return &dateController{service: service}
}

func (c *dateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dates/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.GetAll)
	h.Post("/suggest", c.Suggest)
}

func (c *dateController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllDates(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get commemorative dates", res))
}

func (c *dateController) Suggest(ctx *fiber.Ctx) error {
	var req dto.SuggestDatesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Suggest(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success suggest dates", res))
}
