package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feedme-api/internal/application/table"
)

type fila struct {
	ID     string
	Name   string
	City   string
	Email  string
	Status string
	Seats  int
}

func columnas() []table.Column[fila] {
	return []table.Column[fila]{
		{Header: "Nombre", Key: "name", Value: func(f fila) any { return f.Name }},
		{Header: "Ciudad", Key: "city", Value: func(f fila) any { return f.City }},
		{Header: "Puestos", Key: "seats", Value: func(f fila) any { return f.Seats }},
	}
}

func datos() []fila {
	return []fila{
		{ID: "1", Name: "FeedMe Downtown", City: "Medellín", Email: "downtown@feedme.co", Status: "open", Seats: 40},
		{ID: "2", Name: "FeedMe Norte", City: "Bogotá", Email: "norte@feedme.co", Status: "closed", Seats: 25},
		{ID: "3", Name: "FeedMe Centro", City: "Cali", Email: "", Status: "open", Seats: 60},
	}
}

// El filtro de categoría es igualdad exacta contra el status del registro.
func TestSetFilter_ExactoPorStatus(t *testing.T) {
	tbl := table.New(datos(), columnas()).
		WithStatus(func(f fila) string { return f.Status })

	tbl.SetFilter("open")
	rows := tbl.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "FeedMe Downtown", rows[0].Name)
	assert.Equal(t, "FeedMe Centro", rows[1].Name)

	tbl.SetFilter("closed")
	require.Len(t, tbl.Rows(), 1)

	tbl.SetFilter(table.FilterAll)
	assert.Len(t, tbl.Rows(), 3)
}

// Filtro vacío equivale a "all".
func TestSetFilter_VacioEsAll(t *testing.T) {
	tbl := table.New(datos(), columnas()).
		WithStatus(func(f fila) string { return f.Status })
	tbl.SetFilter("")
	assert.Len(t, tbl.Rows(), 3)
	assert.Equal(t, table.FilterAll, tbl.Filter())
}

// La búsqueda conserva un registro si algún valor string contiene el término
// (case-insensitive); los valores no string nunca coinciden.
func TestSetSearch_SubstringCaseInsensitive(t *testing.T) {
	tbl := table.New(datos(), columnas())

	tbl.SetSearch("down")
	rows := tbl.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "FeedMe Downtown", rows[0].Name)

	// Seats es int: buscar "40" no debe coincidir con el valor numérico.
	tbl.SetSearch("40")
	assert.Empty(t, tbl.Rows())
}

// La búsqueda ignora acentos: "medellin" encuentra "Medellín".
func TestSetSearch_SinAcentos(t *testing.T) {
	tbl := table.New(datos(), columnas())
	tbl.SetSearch("medellin")
	rows := tbl.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "FeedMe Downtown", rows[0].Name)
}

// Búsqueda y filtro no se componen: con término activo el filtro de categoría
// no tiene efecto, y al limpiar el término se restaura el filtro.
func TestSetSearch_NoComponeConFiltro(t *testing.T) {
	tbl := table.New(datos(), columnas()).
		WithStatus(func(f fila) string { return f.Status })

	tbl.SetFilter("closed")
	require.Len(t, tbl.Rows(), 1)

	// "feedme" coincide con las 3 filas aunque el filtro "closed" siga activo.
	tbl.SetSearch("feedme")
	assert.Len(t, tbl.Rows(), 3)

	// Limpiar la búsqueda re-aplica el filtro activo.
	tbl.SetSearch("")
	assert.Len(t, tbl.Rows(), 1)
	assert.Equal(t, "closed", tbl.Filter())
}

// Sin resultados la vista queda vacía con su mensaje.
func TestView_SinResultados(t *testing.T) {
	tbl := table.New(datos(), columnas())
	tbl.SetSearch("no-existe-en-ninguna-parte")

	v := tbl.View()
	assert.True(t, v.Empty)
	assert.Equal(t, "No results found", v.EmptyMessage)
	assert.Empty(t, v.Rows)
}

// La columna Actions solo aparece si hay acciones habilitadas, y la acción
// email solo en filas con email no vacío.
func TestView_Acciones(t *testing.T) {
	sinAcciones := table.New(datos(), columnas()).View()
	assert.NotContains(t, sinAcciones.Headers, "Actions")

	tbl := table.New(datos(), columnas()).
		WithID(func(f fila) string { return f.ID }).
		WithEmail(func(f fila) string { return f.Email }).
		WithActions(true, true)

	v := tbl.View()
	require.Contains(t, v.Headers, "Actions")
	require.Len(t, v.Rows, 3)

	assert.Equal(t, []string{"edit", "email", "delete"}, v.Rows[0].Actions)
	assert.Equal(t, "downtown@feedme.co", v.Rows[0].Email)

	// La fila 3 no tiene email: la acción no se ofrece.
	assert.Equal(t, []string{"edit", "delete"}, v.Rows[2].Actions)
	assert.Empty(t, v.Rows[2].Email)
}

// El render usa Cell si existe; si no, el valor crudo sin formateo.
func TestView_RenderDeCeldas(t *testing.T) {
	cols := []table.Column[fila]{
		{Header: "Nombre", Key: "name", Value: func(f fila) any { return f.Name }},
		{Header: "Puestos", Key: "seats", Value: func(f fila) any { return f.Seats },
			Cell: func(f fila) string { return "x" }},
	}
	v := table.New(datos()[:1], cols).View()
	require.Len(t, v.Rows, 1)
	assert.Equal(t, []string{"FeedMe Downtown", "x"}, v.Rows[0].Cells)
}

// Gana la última petición: un token viejo no puede aplicar su resultado.
func TestSequencer_UltimaPeticionGana(t *testing.T) {
	var seq table.Sequencer

	primero := seq.Next()
	segundo := seq.Next()

	// El segundo (más reciente) aplica; el primero, aunque resuelva después, no.
	assert.True(t, seq.Apply(segundo))
	assert.False(t, seq.Apply(primero))

	tercero := seq.Next()
	assert.False(t, seq.Apply(segundo))
	assert.True(t, seq.Apply(tercero))
}
