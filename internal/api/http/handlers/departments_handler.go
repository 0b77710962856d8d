package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-dto/internal/api/dto"
	"github.com/spec-kit/department-dto/internal/service"
	apperrors "github.com/spec-kit/department-dto/pkg/util/errorutil"
)

// DepartmentsHandler exposes the department DTO operations over HTTP.
type DepartmentsHandler struct {
	departments *service.DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departments *service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departments}
}

// JSON handles POST /departments/json.
func (h *DepartmentsHandler) JSON(c *fiber.Ctx) error {
	var req dto.DepartmentJSONRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	out, err := h.departments.DepartmentJSON(c.UserContext(), req.Name, req.HeadName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DepartmentJSONResponse{JSON: out}})
}

// Matches handles POST /departments/json/matches.
func (h *DepartmentsHandler) Matches(c *fiber.Ctx) error {
	var req dto.DepartmentMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	matches, err := h.departments.DeserializedDepartmentJSONMatches(req.JSON, req.OtherJSON)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DepartmentMatchResponse{Matches: matches}})
}

// Describe handles POST /departments/describe.
func (h *DepartmentsHandler) Describe(c *fiber.Ctx) error {
	var req dto.DepartmentJSONRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	description, err := h.departments.DescribeDepartment(req.Name, req.HeadName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DepartmentDescriptionResponse{Description: description}})
}
