package controller

import (
	"bytes"
	"fmt"
	"time"

	"marketing-calendar-be/internal/pkg/serverutils"
	"marketing-calendar-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	ExportCSV(ctx *fiber.Ctx) error
	ExportICS(ctx *fiber.Ctx) error
	ExportPDF(ctx *fiber.Ctx) error
}

type exportController struct {
	service service.IExportService
}

func NewExportController(service service.IExportService) IExportController {
	return &exportController{service: service}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/:calendarId/csv", c.ExportCSV)
	h.Get("/:calendarId/ics", c.ExportICS)
	h.Get("/:calendarId/pdf", c.ExportPDF)
}

func exportParams(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	calendarId, err := uuid.Parse(ctx.Params("calendarId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid calendar ID")
	}
	return userId, calendarId, nil
}

func sendFile(ctx *fiber.Ctx, contentType, filename string, body []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(body)
}

func (c *exportController) ExportCSV(ctx *fiber.Ctx) error {
	userId, calendarId, err := exportParams(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	filename, err := c.service.ExportCSV(ctx.Context(), userId, calendarId, &buf)
	if err != nil {
		return err
	}
	return sendFile(ctx, "text/csv; charset=utf-8", filename, buf.Bytes())
}

func (c *exportController) ExportICS(ctx *fiber.Ctx) error {
	userId, calendarId, err := exportParams(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	filename, err := c.service.ExportICS(ctx.Context(), userId, calendarId, &buf)
	if err != nil {
		return err
	}
	return sendFile(ctx, "text/calendar; charset=utf-8", filename, buf.Bytes())
}

func (c *exportController) ExportPDF(ctx *fiber.Ctx) error {
	userId, calendarId, err := exportParams(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	year := ctx.QueryInt("year", now.Year())
	month := ctx.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month")
	}

	var buf bytes.Buffer
	filename, err := c.service.ExportPDF(ctx.Context(), userId, calendarId, year, time.Month(month), &buf)
	if err != nil {
		return err
	}
	return sendFile(ctx, "application/pdf", filename, buf.Bytes())
}
