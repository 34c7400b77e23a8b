package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/olionece/gestione-olio/internal/application/dto"
)

// Locals key con los roles resueltos del actor.
const LocalRoles = "roles"

// roleSource es el contrato mínimo que necesita el middleware para resolver
// membresías. Lo implementa repository.UserRoleRepository; la interfaz local
// evita acoplar este paquete al dominio más de lo necesario.
type roleSource interface {
	RolesForUser(ctx context.Context, userID string) ([]string, error)
}

// RequireRole devuelve un middleware Fiber que autoriza solo a los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Es una comodidad de UX/API: la frontera de seguridad real es el RLS del
// store externo, no este chequeo.
//
// Comportamiento:
//   - 401 → sin identidad en el contexto.
//   - 403 → el actor no tiene ninguno de los roles permitidos.
//   - 503 → fallo de infraestructura al consultar las membresías.
func RequireRole(roles roleSource, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "identidad no encontrada en el contexto",
			})
		}

		memberships, err := roles.RolesForUser(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ROLE_CHECK_FAILED",
				Message: "no se pudieron verificar los roles, intente más tarde",
			})
		}
		c.Locals(LocalRoles, memberships)

		for _, have := range memberships {
			for _, want := range allowed {
				if have == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol actual no permite esta operación",
		})
	}
}

// GetRoles devuelve los roles resueltos por RequireRole; vacío si no corrió.
func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocalRoles)
	if v == nil {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}
