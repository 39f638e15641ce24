// Package table implementa la tabla genérica de entidades: cualquier lista de
// registros se vuelve una vista tabular con búsqueda, filtro por categoría y
// acciones por fila, sin que la tabla conozca el significado del dominio.
//
// La tabla nunca persiste nada: solo mantiene una copia filtrada/buscada
// derivada de los datos que le entregó el caller.
package table

import "fmt"

// FilterAll valor del filtro que muestra todos los registros.
const FilterAll = "all"

// columna reservada: nunca participa en la búsqueda.
const actionsKey = "actions"

// Column describe una columna tipada sobre T. Value es el accessor fuerte
// (reemplaza el accessorKey por string del patrón original); Cell, si está,
// controla el render de la celda.
type Column[T any] struct {
	Header string
	Key    string
	Value  func(T) any
	Cell   func(T) string
}

// FilterOption una opción del selector de categoría.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Row una fila ya renderizada de la vista.
type Row struct {
	ID      string   `json:"id,omitempty"`
	Cells   []string `json:"cells"`
	Actions []string `json:"actions,omitempty"` // edit, email, delete
	Email   string   `json:"email,omitempty"`
}

// View la vista serializable de la tabla (lo que consume el dashboard).
type View struct {
	Headers       []string       `json:"headers"`
	Rows          []Row          `json:"rows"`
	Empty         bool           `json:"empty"`
	EmptyMessage  string         `json:"empty_message,omitempty"`
	Filter        string         `json:"filter"`
	Search        string         `json:"search,omitempty"`
	FilterOptions []FilterOption `json:"filter_options,omitempty"`
}

// Table estado local de una tabla sobre registros T.
type Table[T any] struct {
	data    []T
	columns []Column[T]

	id      func(T) string
	status  func(T) string
	email   func(T) string
	options []FilterOption

	canEdit   bool
	canDelete bool

	activeFilter string
	searchTerm   string
	filtered     []T
}

// New construye la tabla con filtro "all" y sin término de búsqueda.
func New[T any](data []T, columns []Column[T]) *Table[T] {
	t := &Table[T]{
		data:         data,
		columns:      columns,
		activeFilter: FilterAll,
	}
	t.filtered = data
	return t
}

// WithID registra el accessor del id (habilita acciones por fila).
func (t *Table[T]) WithID(fn func(T) string) *Table[T] {
	t.id = fn
	return t
}

// WithStatus registra el accessor del campo status usado por el filtro.
func (t *Table[T]) WithStatus(fn func(T) string, options ...FilterOption) *Table[T] {
	t.status = fn
	t.options = options
	return t
}

// WithEmail registra el accessor del email; la acción email solo aparece en
// filas cuyo accessor devuelve un valor no vacío.
func (t *Table[T]) WithEmail(fn func(T) string) *Table[T] {
	t.email = fn
	return t
}

// WithActions habilita las acciones edit/delete. La columna "Actions" se
// agrega únicamente si al menos una está habilitada.
func (t *Table[T]) WithActions(edit, del bool) *Table[T] {
	t.canEdit = edit
	t.canDelete = del
	return t
}

// SetFilter aplica el filtro de categoría: igualdad exacta contra el status
// del registro. No es un predicado extensible; un caller que necesite otra
// semántica debe pre-filtrar sus datos.
func (t *Table[T]) SetFilter(value string) {
	if value == "" {
		value = FilterAll
	}
	t.activeFilter = value
	t.filtered = t.applyFilter()
}

// applyFilter recalcula desde el set completo con el filtro activo.
func (t *Table[T]) applyFilter() []T {
	if t.activeFilter == FilterAll || t.status == nil {
		return t.data
	}
	out := make([]T, 0, len(t.data))
	for _, rec := range t.data {
		if t.status(rec) == t.activeFilter {
			out = append(out, rec)
		}
	}
	return out
}

// SetSearch aplica el término de búsqueda. Término vacío re-aplica el filtro
// de categoría activo. Con término, se recorre cada columna salvo la de
// acciones y se conserva el registro si ALGÚN valor string contiene el
// término (case-insensitive y sin acentos); los valores no string nunca
// coinciden.
//
// Búsqueda y filtro NO se componen: la búsqueda recalcula desde el set
// completo e ignora el filtro activo, que solo se restaura al limpiar el
// término. Comportamiento heredado de la pantalla original, conservado tal
// cual; ver DESIGN.md.
func (t *Table[T]) SetSearch(term string) {
	t.searchTerm = term
	if term == "" {
		t.filtered = t.applyFilter()
		return
	}
	needle := Fold(term)
	out := make([]T, 0, len(t.data))
	for _, rec := range t.data {
		if t.matches(rec, needle) {
			out = append(out, rec)
		}
	}
	t.filtered = out
}

func (t *Table[T]) matches(rec T, needle string) bool {
	for _, col := range t.columns {
		if col.Key == actionsKey || col.Value == nil {
			continue
		}
		s, ok := col.Value(rec).(string)
		if !ok {
			continue
		}
		if FoldContains(s, needle) {
			return true
		}
	}
	return false
}

// Filter devuelve el filtro de categoría activo.
func (t *Table[T]) Filter() string { return t.activeFilter }

// Search devuelve el término de búsqueda activo.
func (t *Table[T]) Search() string { return t.searchTerm }

// Rows devuelve la copia filtrada/buscada actual.
func (t *Table[T]) Rows() []T { return t.filtered }

// View renderiza la vista: Cell si la columna lo define, si no el valor crudo
// sin formateo implícito. Sin resultados, la vista queda vacía con el mensaje
// de "sin resultados" (una sola fila a lo ancho en la pantalla).
func (t *Table[T]) View() View {
	headers := make([]string, 0, len(t.columns)+1)
	for _, col := range t.columns {
		headers = append(headers, col.Header)
	}
	withActions := t.canEdit || t.canDelete
	if withActions {
		headers = append(headers, "Actions")
	}

	rows := make([]Row, 0, len(t.filtered))
	for _, rec := range t.filtered {
		row := Row{Cells: make([]string, 0, len(t.columns))}
		for _, col := range t.columns {
			row.Cells = append(row.Cells, renderCell(col, rec))
		}
		if t.id != nil {
			row.ID = t.id(rec)
		}
		if withActions {
			if t.canEdit {
				row.Actions = append(row.Actions, "edit")
			}
			if t.email != nil {
				if addr := t.email(rec); addr != "" {
					row.Actions = append(row.Actions, "email")
					row.Email = addr
				}
			}
			if t.canDelete {
				row.Actions = append(row.Actions, "delete")
			}
		}
		rows = append(rows, row)
	}

	v := View{
		Headers:       headers,
		Rows:          rows,
		Filter:        t.activeFilter,
		Search:        t.searchTerm,
		FilterOptions: t.options,
	}
	if len(rows) == 0 {
		v.Empty = true
		v.EmptyMessage = "No results found"
	}
	return v
}

func renderCell[T any](col Column[T], rec T) string {
	if col.Cell != nil {
		return col.Cell(rec)
	}
	if col.Value == nil {
		return ""
	}
	val := col.Value(rec)
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}
