package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feedme-api/internal/application/usecase"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	apphttp "github.com/jhoicas/feedme-api/internal/interfaces/http"
)

// countingDishRepo repositorio en memoria que cuenta los borrados.
type countingDishRepo struct {
	deletes int
	lastID  string
}

func (r *countingDishRepo) Create(context.Context, *entity.Dish) error { return nil }
func (r *countingDishRepo) GetByID(context.Context, string) (*entity.Dish, error) {
	return nil, nil
}
func (r *countingDishRepo) List(context.Context, int, int) ([]*entity.Dish, error) {
	return nil, nil
}
func (r *countingDishRepo) ListByRestaurant(context.Context, string, int, int) ([]*entity.Dish, error) {
	return nil, nil
}
func (r *countingDishRepo) Update(context.Context, *entity.Dish) error { return nil }
func (r *countingDishRepo) Delete(_ context.Context, id string) error {
	r.deletes++
	r.lastID = id
	return nil
}

// noopIngredientRepo satisface IngredientRepository sin hacer nada.
type noopIngredientRepo struct{}

func (noopIngredientRepo) Create(context.Context, *entity.Ingredient) error { return nil }
func (noopIngredientRepo) GetByID(context.Context, string) (*entity.Ingredient, error) {
	return nil, nil
}
func (noopIngredientRepo) List(context.Context, int, int) ([]*entity.Ingredient, error) {
	return nil, nil
}
func (noopIngredientRepo) Update(context.Context, *entity.Ingredient) error { return nil }
func (noopIngredientRepo) Delete(context.Context, string) error             { return nil }

func buildDeleteApp(repo *countingDishRepo) *fiber.App {
	uc := usecase.NewDishUseCase(repo, noopIngredientRepo{})
	handler := apphttp.NewDishHandler(uc)
	app := fiber.New()
	app.Delete("/api/dishes/:id", handler.Delete)
	return app
}

// Un DELETE sin confirmación responde 409 y NO ejecuta el borrado.
func TestDelete_SinConfirmacionNoBorra(t *testing.T) {
	repo := &countingDishRepo{}
	app := buildDeleteApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/dishes/d-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, 0, repo.deletes, "sin confirmación no debe borrarse nada")
}

// Confirmar ejecuta el borrado exactamente una vez.
func TestDelete_ConfirmacionBorraUnaVez(t *testing.T) {
	repo := &countingDishRepo{}
	app := buildDeleteApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/dishes/d-1?confirm=true", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, repo.deletes, "el borrado confirmado ocurre exactamente una vez")
	assert.Equal(t, "d-1", repo.lastID)
}

// Cualquier valor distinto de true no confirma.
func TestDelete_ConfirmFalsoNoBorra(t *testing.T) {
	repo := &countingDishRepo{}
	app := buildDeleteApp(repo)

	for _, v := range []string{"false", "1", "TRUE", "yes"} {
		req := httptest.NewRequest(http.MethodDelete, "/api/dishes/d-1?confirm="+v, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode, "confirm=%s", v)
	}
	assert.Equal(t, 0, repo.deletes)
}
