package controller

import (
	"strconv"
	"strings"

	"edubot-be/internal/dto"
	"edubot-be/internal/pkg/serverutils"
	"edubot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService      service.IAdminService
	curriculumService service.ICurriculumService
	catalogService    service.ICatalogService
	jwtSecret         string
}

func NewAdminController(
	adminService service.IAdminService,
	curriculumService service.ICurriculumService,
	catalogService service.ICatalogService,
	jwtSecret string,
) IAdminController {
	return &adminController{
		adminService:      adminService,
		curriculumService: curriculumService,
		catalogService:    catalogService,
		jwtSecret:         jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Post("/login", c.Login)

	protected := h.Group("", serverutils.AdminJwtMiddleware(c.jwtSecret))
	protected.Get("/history", c.History)
	protected.Get("/stats", c.Stats)
	protected.Get("/chat-logs", c.ListChatLogs)
	protected.Get("/chat-logs/:username", c.ViewChatLog)
	protected.Get("/logs", c.Logs)

	protected.Post("/curriculum/files", c.UploadCurriculumFile)
	protected.Get("/curriculum/files", c.ListCurriculumFiles)
	protected.Delete("/curriculum/files/:id", c.DeleteCurriculumFile)

	protected.Post("/curriculum/qa", c.CreateQA)
	protected.Get("/curriculum/qa", c.ListQA)
	protected.Put("/curriculum/qa/:id", c.UpdateQA)
	protected.Delete("/curriculum/qa/:id", c.DeleteQA)

	protected.Post("/catalog/grades", c.CreateGrade)
	protected.Post("/catalog/semesters", c.CreateSemester)
	protected.Post("/catalog/departments", c.CreateDepartment)
	protected.Post("/catalog/links", c.LinkDepartmentGrade)
	protected.Delete("/catalog/links", c.UnlinkDepartmentGrade)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.adminService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("logged in", res))
}

func (c *adminController) History(ctx *fiber.Ctx) error {
	username := ctx.Query("username")
	source := ctx.Query("source")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.History(ctx.Context(), username, source, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("conversation history", res))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	res, err := c.adminService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("dashboard stats", res))
}

func (c *adminController) ListChatLogs(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListChatLogs(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("chat logs", res))
}

func (c *adminController) ViewChatLog(ctx *fiber.Ctx) error {
	res, err := c.adminService.ViewChatLog(ctx.Context(), ctx.Params("username"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("chat log", res))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.Logs(ctx.Context(), level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("system logs", res))
}

func (c *adminController) UploadCurriculumFile(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewValidationError("file field is required")
	}

	gradeId, err := strconv.ParseUint(ctx.FormValue("grade_id"), 10, 32)
	if err != nil || gradeId == 0 {
		return serverutils.NewValidationError("grade_id is required")
	}
	semesterId, err := strconv.ParseUint(ctx.FormValue("semester_id"), 10, 32)
	if err != nil || semesterId == 0 {
		return serverutils.NewValidationError("semester_id is required")
	}

	var departmentIds []uint
	if raw := ctx.FormValue("department_ids"); raw != "" {
		for _, part := range splitCommaList(raw) {
			id, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return serverutils.NewValidationError("invalid department id %q", part)
			}
			departmentIds = append(departmentIds, uint(id))
		}
	}

	res, err := c.curriculumService.UploadFile(ctx.Context(), fileHeader, uint(gradeId), uint(semesterId), departmentIds)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("curriculum file uploaded", res))
}

func (c *adminController) ListCurriculumFiles(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.curriculumService.ListFiles(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("curriculum files", res))
}

func (c *adminController) DeleteCurriculumFile(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return serverutils.NewValidationError("invalid file id")
	}
	if err := c.curriculumService.DeleteFile(ctx.Context(), uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("curriculum file deleted", nil))
}

func (c *adminController) CreateQA(ctx *fiber.Ctx) error {
	var req dto.CreateCuratedQARequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.curriculumService.CreateQA(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("curated answer created", res))
}

func (c *adminController) ListQA(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.curriculumService.ListQA(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("curated answers", res))
}

func (c *adminController) UpdateQA(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return serverutils.NewValidationError("invalid id")
	}

	var req dto.CreateCuratedQARequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.curriculumService.UpdateQA(ctx.Context(), uint(id), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("curated answer updated", res))
}

func (c *adminController) DeleteQA(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return serverutils.NewValidationError("invalid id")
	}
	if err := c.curriculumService.DeleteQA(ctx.Context(), uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("curated answer deleted", nil))
}

func (c *adminController) CreateGrade(ctx *fiber.Ctx) error {
	var req dto.CreateCatalogItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateGrade(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("grade created", res))
}

func (c *adminController) CreateSemester(ctx *fiber.Ctx) error {
	var req dto.CreateCatalogItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateSemester(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("semester created", res))
}

func (c *adminController) CreateDepartment(ctx *fiber.Ctx) error {
	var req dto.CreateDepartmentWithGradesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateDepartment(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("department created", res))
}

func (c *adminController) LinkDepartmentGrade(ctx *fiber.Ctx) error {
	var req dto.DepartmentGradeLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.catalogService.LinkDepartmentGrade(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("department linked", nil))
}

func (c *adminController) UnlinkDepartmentGrade(ctx *fiber.Ctx) error {
	var req dto.DepartmentGradeLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.catalogService.UnlinkDepartmentGrade(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("department unlinked", nil))
}

func splitCommaList(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
