package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/auth"
	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/session"
	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// AuthHandler maneja registro, login y logout.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// Signup godoc
// @Summary      Registro público (rol client)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, email y password son requeridos"})
	}
	out, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateStaff godoc
// @Summary      Alta de cuenta de personal (solo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStaffRequest  true  "Cuenta de personal"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/staff [post]
func (h *AuthHandler) CreateStaff(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, email, password y role son requeridos"})
	}
	out, err := h.uc.CreateStaff(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol fuera del conjunto permitido"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Login con email y password
// @Description  Devuelve JWT, datos del usuario y la ruta home del rol.
// @Description  Además emite la cookie de sesión para las rutas de navegación.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, sess, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
			// mismo mensaje para no revelar si el email existe
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "la cuenta no está activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := WriteSessionCookie(c, h.store, sess); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo emitir la sesión"})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cierra la sesión y vuelve al login
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ClearSessionCookie(c, h.store)
	return c.Redirect(rbac.RouteLogin, fiber.StatusSeeOther)
}

// LoginPage página pública de login. Si ya hay sesión vigente redirige a la
// home canónica del rol en lugar de mostrar el formulario.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		return c.Redirect(sess.Role.HomeRoute(), fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{
		"page":   "login",
		"fields": []string{"email", "password"},
		"action": "/api/auth/login",
	})
}

// SignupPage página pública de registro.
func (h *AuthHandler) SignupPage(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		return c.Redirect(sess.Role.HomeRoute(), fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{
		"page":   "signup",
		"fields": []string{"username", "email", "password", "name"},
		"action": "/api/auth/signup",
	})
}

// Me godoc
// @Summary      Usuario de la sesión vigente
// @Tags         auth
// @Produce      json
// @Success      200  {object}  session.Session
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión vigente"})
	}
	return c.JSON(sess)
}
