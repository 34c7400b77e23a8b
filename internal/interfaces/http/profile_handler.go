package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/olionece/gestione-olio/internal/application/dto"
	"github.com/olionece/gestione-olio/internal/application/usecase"
)

// ProfileHandler identidad visible del actor (protegido).
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Me godoc
// @Summary      Perfil del usuario autenticado (roles y capacidad de inserción)
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Me(c.Context(), userID, GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
