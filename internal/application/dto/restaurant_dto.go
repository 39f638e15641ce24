package dto

import "time"

// CreateRestaurantRequest alta de sucursal (formulario de restaurante).
// Image es base64 del archivo leído en memoria; se adjunta al registro.
type CreateRestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Image   string `json:"image,omitempty"`
}

// UpdateRestaurantRequest edición parcial de sucursal.
type UpdateRestaurantRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Status  *string `json:"status"`
}

// RestaurantResponse salida de una sucursal.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	HasImage  bool      `json:"has_image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestaurantListResponse listado paginado.
type RestaurantListResponse struct {
	Items []RestaurantResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
