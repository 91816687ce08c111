package controller

import (
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListGrades(ctx *fiber.Ctx) error
	ListSemesters(ctx *fiber.Ctx) error
	ListDepartments(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

// RegisterRoutes exposes the read-only catalog the chat frontend needs
// to populate its selectors. Mutations live under the admin routes.
func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("/grades", c.ListGrades)
	h.Get("/semesters", c.ListSemesters)
	h.Get("/departments", c.ListDepartments)
}

func (c *catalogController) ListGrades(ctx *fiber.Ctx) error {
	items, err := c.service.ListGrades(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("grades", items))
}

func (c *catalogController) ListSemesters(ctx *fiber.Ctx) error {
	items, err := c.service.ListSemesters(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("semesters", items))
}

func (c *catalogController) ListDepartments(ctx *fiber.Ctx) error {
	gradeId := uint(ctx.QueryInt("grade_id", 0))
	items, err := c.service.ListDepartments(ctx.Context(), gradeId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("departments", items))
}
