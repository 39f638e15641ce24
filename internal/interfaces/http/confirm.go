package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/dto"
)

// confirmParam query param que confirma una acción destructiva.
const confirmParam = "confirm"

// confirmed indica si la request trae la confirmación explícita del borrado.
func confirmed(c *fiber.Ctx) bool {
	return c.Query(confirmParam) == "true"
}

// confirmRequired responde 409 con el cuerpo que describe el diálogo de
// confirmación. El borrado real ocurre una sola vez: solo en la request
// confirmada.
func confirmRequired(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ConfirmRequiredResponse{
		Code:    "CONFIRM_REQUIRED",
		Message: "confirme la eliminación de " + what + " reenviando con ?confirm=true",
		Confirm: confirmParam + "=true",
	})
}
