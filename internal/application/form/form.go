// Package form implementa los formularios declarativos de creación de
// entidades: un esquema de campos define obligatoriedad y forma básica, la
// validación corre síncrona al enviar y, si algo falla, el envío se bloquea
// con mensajes por campo. Nada toca la red hasta que todo pasa.
package form

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind forma básica esperada de un campo.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPrice
	KindImage
)

// Field un campo del esquema.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	MinLen   int
}

// Schema esquema declarativo de un formulario.
type Schema struct {
	Name   string
	Fields []Field
}

// Values valores crudos enviados (campo → valor).
type Values map[string]string

// Errors mensajes de validación por campo; vacío significa envío válido.
type Errors map[string]string

// Valid indica que no hay errores.
func (e Errors) Valid() bool { return len(e) == 0 }

// forma mínima razonable, igual que la validación de la pantalla original
var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate corre las reglas del esquema sobre los valores. No corta en el
// primer error: reporta todos los campos inválidos de una vez.
func (s Schema) Validate(v Values) Errors {
	errs := Errors{}
	for _, f := range s.Fields {
		raw := strings.TrimSpace(v[f.Name])
		if raw == "" {
			if f.Required {
				errs[f.Name] = f.Label + " es obligatorio"
			}
			continue
		}
		if f.MinLen > 0 && len([]rune(raw)) < f.MinLen {
			errs[f.Name] = f.Label + " es demasiado corto"
			continue
		}
		switch f.Kind {
		case KindEmail:
			if !emailRx.MatchString(raw) {
				errs[f.Name] = f.Label + " no es un email válido"
			}
		case KindPrice:
			if _, err := ParsePrice(raw); err != nil {
				errs[f.Name] = f.Label + " debe ser un precio válido"
			}
		}
	}
	return errs
}

// ParsePrice convierte el valor textual de un precio a decimal. Rechaza
// vacíos y negativos.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errNegativePrice
	}
	return d, nil
}

var errNegativePrice = &priceError{"el precio no puede ser negativo"}

type priceError struct{ msg string }

func (e *priceError) Error() string { return e.msg }

// Attachment imagen o archivo leído a memoria y adjuntado al payload del
// formulario (no se sube a ningún lado desde aquí).
type Attachment struct {
	Filename string
	Data     []byte
}

// Selection conjunto de identificadores seleccionados en un campo de
// asociación múltiple (ingredientes de un plato, platos de un pack). El orden
// no importa y volver a seleccionar un id lo quita: el toggle es idempotente
// en pares.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection construye la selección con ids iniciales.
func NewSelection(initial ...string) *Selection {
	s := &Selection{ids: make(map[string]struct{}, len(initial))}
	for _, id := range initial {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle agrega el id si no está, lo quita si ya está.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Has indica si el id está seleccionado.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len número de ids seleccionados.
func (s *Selection) Len() int { return len(s.ids) }

// IDs devuelve los ids seleccionados en orden estable.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
