package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acuasoft/acueducto-api/internal/application/dto"
	"github.com/acuasoft/acueducto-api/internal/application/reading"
	"github.com/acuasoft/acueducto-api/internal/domain"
)

// ReadingHandler maneja las peticiones HTTP para lecturas de medidor (protegido).
type ReadingHandler struct {
	uc *reading.ReadingUseCase
}

// NewReadingHandler construye el handler.
func NewReadingHandler(uc *reading.ReadingUseCase) *ReadingHandler {
	return &ReadingHandler{uc: uc}
}

// Register registra la lectura del período y calcula consumo y cargo.
func (h *ReadingHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateReadingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El código de instalación viene en la ruta, no en el cuerpo.
	in.InstallationCode = c.Params("code")
	out, err := h.uc.Register(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período YYYY-MM y lectura no menor a la anterior"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe lectura para ese período"})
		case errors.Is(err, domain.ErrReference):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BAD_REFERENCE", Message: "instalación no existe o no tiene tarifa vigente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByInstallation lista las lecturas de una instalación.
func (h *ReadingHandler) ListByInstallation(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "código de instalación requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByInstallation(GetCompanyID(c), code, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
