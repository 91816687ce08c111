package controller

import (
	"edubot-be/internal/dto"
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMediaController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	GenerateImage(ctx *fiber.Ctx) error
}

type mediaController struct {
	service service.IMediaService
}

func NewMediaController(service service.IMediaService) IMediaController {
	return &mediaController{service: service}
}

func (c *mediaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/media")
	h.Post("/upload", c.Upload)
	h.Post("/analyze", c.Analyze)
	h.Post("/generate-image", c.GenerateImage)
}

func (c *mediaController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewValidationError("file field is required")
	}

	res, err := c.service.Upload(ctx.Context(), fileHeader)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("file uploaded", res))
}

func (c *mediaController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeMediaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Analyze(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("file analyzed", res))
}

func (c *mediaController) GenerateImage(ctx *fiber.Ctx) error {
	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.GenerateImage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("image generated", res))
}
