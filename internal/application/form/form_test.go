package form_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feedme-api/internal/application/form"
)

// Un plato con precio vacío se rechaza localmente; con precio válido pasa.
func TestDishSchema_PrecioObligatorio(t *testing.T) {
	schema := form.DishSchema()

	errs := schema.Validate(form.Values{
		"name":     "Bandeja paisa",
		"category": "fuerte",
		"price":    "",
	})
	require.False(t, errs.Valid())
	assert.Contains(t, errs, "price")

	errs = schema.Validate(form.Values{
		"name":     "Bandeja paisa",
		"category": "fuerte",
		"price":    "12.99",
	})
	assert.True(t, errs.Valid())

	d, err := form.ParsePrice("12.99")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12.99")))
}

func TestSchema_ReportaTodosLosCampos(t *testing.T) {
	errs := form.RestaurantSchema().Validate(form.Values{
		"name":  "ab",        // muy corto
		"email": "no-es-mail", // forma inválida
	})
	require.False(t, errs.Valid())
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "city")
}

func TestParsePrice_Invalidos(t *testing.T) {
	_, err := form.ParsePrice("")
	assert.Error(t, err)

	_, err = form.ParsePrice("doce")
	assert.Error(t, err)

	_, err = form.ParsePrice("-3.50")
	assert.Error(t, err)
}

// Toggle dos veces sobre el mismo id deja la selección como estaba.
func TestSelection_ToggleIdempotenteEnPares(t *testing.T) {
	sel := form.NewSelection("1", "2")

	sel.Toggle("5")
	assert.True(t, sel.Has("5"))
	assert.Equal(t, 3, sel.Len())

	sel.Toggle("5")
	assert.False(t, sel.Has("5"))
	assert.Equal(t, []string{"1", "2"}, sel.IDs())
}

func TestSelection_OrdenEstable(t *testing.T) {
	sel := form.NewSelection()
	sel.Toggle("b")
	sel.Toggle("a")
	sel.Toggle("c")
	assert.Equal(t, []string{"a", "b", "c"}, sel.IDs())
}
