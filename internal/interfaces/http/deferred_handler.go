package http

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acuasoft/acueducto-api/internal/application/deferred"
	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/application/export"
	"github.com/acuasoft/acueducto-api/internal/domain"
	"github.com/acuasoft/acueducto-api/internal/domain/repository"
)

// DeferredPlanHandler maneja las peticiones HTTP del módulo de diferidos (protegido).
type DeferredPlanHandler struct {
	uc     *deferred.DeferredPlanUseCase
	export *export.ExportUseCase
}

// NewDeferredPlanHandler construye el handler.
func NewDeferredPlanHandler(uc *deferred.DeferredPlanUseCase, exportUC *export.ExportUseCase) *DeferredPlanHandler {
	return &DeferredPlanHandler{uc: uc, export: exportUC}
}

func planID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// Create godoc
// @Summary      Crear diferido
// @Tags         deferred-plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeferredPlanRequest  true  "Datos del diferido"
// @Success      201   {object}  dto.DeferredPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/deferred-plans [post]
func (h *DeferredPlanHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateDeferredPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(companyID, GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del diferido inválidos"})
		case errors.Is(err, domain.ErrReference):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BAD_REFERENCE", Message: "instalación o concepto no existe en esta empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar diferidos
// @Tags         deferred-plans
// @Security     Bearer
// @Produce      json
// @Param        installation_code  query  string  false  "Filtrar por contrato"
// @Param        status             query  string  false  "Filtrar por estado (PENDIENTE, ANULADO)"
// @Success      200  {object}  dto.DeferredPlanListResponse
// @Router       /api/deferred-plans [get]
func (h *DeferredPlanHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	filter := repository.DeferredPlanFilter{
		InstallationCode: c.Query("installation_code"),
		Status:           c.Query("status"),
	}
	out, err := h.uc.List(companyID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener diferido por id
// @Tags         deferred-plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del diferido"
// @Success      200  {object}  dto.DeferredPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deferred-plans/{id} [get]
func (h *DeferredPlanHandler) GetByID(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(GetCompanyID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diferido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Schedule godoc
// @Summary      Calendario de cuotas proyectado
// @Tags         deferred-plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del diferido"
// @Success      200  {object}  dto.DeferredPlanScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deferred-plans/{id}/schedule [get]
func (h *DeferredPlanHandler) Schedule(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.Schedule(GetCompanyID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diferido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar diferido (patch parcial)
// @Tags         deferred-plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del diferido"
// @Param        body  body  dto.UpdateDeferredPlanRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DeferredPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/deferred-plans/{id} [patch]
func (h *DeferredPlanHandler) Update(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateDeferredPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), GetUserID(c), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diferido no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos del patch inválidos"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el diferido no admite esta modificación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Anular diferido (borrado lógico)
// @Tags         deferred-plans
// @Security     Bearer
// @Param        id   path  int  true  "ID del diferido"
// @Success      204  "anulado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deferred-plans/{id} [delete]
func (h *DeferredPlanHandler) Cancel(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Cancel(GetCompanyID(c), GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diferido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportBook godoc
// @Summary      Exportar libro de diferidos en Excel
// @Tags         deferred-plans
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        installation_code  query  string  false  "Filtrar por contrato"
// @Param        status             query  string  false  "Filtrar por estado"
// @Success      200  {file}  binary
// @Router       /api/deferred-plans/export [get]
func (h *DeferredPlanHandler) ExportBook(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	filter := repository.DeferredPlanFilter{
		InstallationCode: c.Query("installation_code"),
		Status:           c.Query("status"),
	}
	data, err := h.export.PlanBook(companyID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("diferidos_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(data)
}

// ExportStatement godoc
// @Summary      Exportar estado de cuenta del diferido en PDF
// @Tags         deferred-plans
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del diferido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deferred-plans/{id}/statement [get]
func (h *DeferredPlanHandler) ExportStatement(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	data, err := h.export.PlanStatement(GetCompanyID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diferido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=diferido_%d.pdf", id))
	return c.Send(data)
}
