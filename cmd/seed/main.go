// seed puebla la base con datos de demostración: una sucursal, las cuentas de
// cada rol, insumos, platos y el menú del día de hoy.
//
// Uso: go run ./cmd/seed
// Lee la configuración de .env (godotenv) y de las variables de entorno.
// Todas las cuentas quedan con la clave "feedme123".
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
	"github.com/jhoicas/feedme-api/internal/infrastructure/postgres"
	"github.com/jhoicas/feedme-api/pkg/config"
)

const demoPassword = "feedme123"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fail("migraciones: %v", err)
	}

	restaurantRepo := postgres.NewRestaurantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)

	now := time.Now()

	// Sucursal demo
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		Name:      "FeedMe Centro",
		Address:   "Calle 10 # 43-12",
		City:      "Medellín",
		Phone:     "3001234567",
		Email:     "centro@feedme.co",
		Status:    entity.RestaurantStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	must(restaurantRepo.Create(ctx, restaurant), "crear sucursal")
	fmt.Println("sucursal:", restaurant.Name, restaurant.ID)

	// Cuentas por rol
	accounts := []struct {
		username string
		role     rbac.Role
		branch   string
	}{
		{"admin", rbac.RoleAdmin, ""},
		{"director", rbac.RoleDirector, restaurant.ID},
		{"chef", rbac.RoleChef, restaurant.ID},
		{"cajero", rbac.RoleCashier, restaurant.ID},
		{"mesero", rbac.RoleWaiter, restaurant.ID},
		{"domicilios", rbac.RoleDelivery, restaurant.ID},
		{"cliente", rbac.RoleClient, ""},
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	must(err, "hashear clave demo")
	for _, a := range accounts {
		u := &entity.User{
			ID:           uuid.New().String(),
			Username:     a.username,
			Email:        a.username + "@feedme.co",
			PasswordHash: string(hash),
			Name:         a.username,
			Role:         a.role,
			RestaurantID: a.branch,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		must(userRepo.Create(ctx, u), "crear cuenta "+a.username)
		fmt.Println("cuenta:", a.username, "/", demoPassword, "rol", a.role)
	}

	// Insumos
	ingredients := map[string]string{}
	for _, name := range []string{"Arroz", "Pollo", "Papa", "Panela", "Fríjol"} {
		i := &entity.Ingredient{
			ID:        uuid.New().String(),
			Name:      name,
			Unit:      "kg",
			Stock:     decimal.NewFromInt(20),
			Status:    entity.IngredientStatusAvailable,
			CreatedAt: now,
			UpdatedAt: now,
		}
		must(ingredientRepo.Create(ctx, i), "crear insumo "+name)
		ingredients[name] = i.ID
	}

	// Platos del catálogo
	dishes := []struct {
		name, category string
		price          int64
		ingredients    []string
	}{
		{"Bandeja paisa", "fuerte", 28000, []string{"Arroz", "Fríjol", "Papa"}},
		{"Sancocho de pollo", "fuerte", 24000, []string{"Pollo", "Papa"}},
		{"Arroz con pollo", "fuerte", 22000, []string{"Arroz", "Pollo"}},
		{"Aguapanela", "bebida", 4000, []string{"Panela"}},
	}
	dishIDs := make([]string, 0, len(dishes))
	for _, d := range dishes {
		ids := make([]string, 0, len(d.ingredients))
		for _, n := range d.ingredients {
			ids = append(ids, ingredients[n])
		}
		dish := &entity.Dish{
			ID:            uuid.New().String(),
			RestaurantID:  restaurant.ID,
			Name:          d.name,
			Category:      d.category,
			Price:         decimal.NewFromInt(d.price),
			Status:        entity.DishStatusAvailable,
			IngredientIDs: ids,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		must(dishRepo.Create(ctx, dish), "crear plato "+d.name)
		dishIDs = append(dishIDs, dish.ID)
	}

	// Menú del día de hoy, publicado
	menu := &entity.DailyMenu{
		ID:           uuid.New().String(),
		RestaurantID: restaurant.ID,
		MenuDate:     now,
		Status:       entity.MenuStatusPublished,
		Items: []entity.DailyMenuItem{
			{
				ID:      uuid.New().String(),
				Name:    "Ejecutivo",
				Price:   decimal.NewFromInt(18000),
				DishIDs: dishIDs[:2],
				Extras:  []string{"sopa", "jugo"},
			},
			{
				ID:      uuid.New().String(),
				Name:    "Especial",
				Price:   decimal.NewFromInt(25000),
				DishIDs: dishIDs[1:3],
				Extras:  []string{"sopa", "jugo", "postre"},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	must(menuRepo.Create(ctx, menu), "crear menú del día")
	fmt.Println("menú del día creado con", len(menu.Items), "packs")

	fmt.Println("listo.")
}

func must(err error, what string) {
	if err != nil {
		fail("%s: %v", what, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
