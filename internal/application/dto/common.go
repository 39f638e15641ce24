package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse errores de formulario: mensajes por campo. El envío
// quedó bloqueado y el cliente corrige y reintenta.
type ValidationErrorResponse struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// ConfirmRequiredResponse la acción destructiva exige confirmación explícita
// antes de ejecutarse (diálogo de confirmación de la pantalla).
type ConfirmRequiredResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Confirm string `json:"confirm"` // query param que confirma la acción
}

// MessageResponse notificación simple de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}
