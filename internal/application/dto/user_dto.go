package dto

import "time"

// SignupRequest entrada de registro público (crea cuentas de rol client; el
// personal lo da de alta el admin/director).
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateStaffRequest alta de una cuenta de personal con rol y sucursal.
type CreateStaffRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT, usuario y la ruta a la que el cliente
// debe navegar (home canónica del rol).
type LoginResponse struct {
	Token      string       `json:"token"`
	User       UserResponse `json:"user"`
	RedirectTo string       `json:"redirect_to"`
}
