package form

// Esquemas concretos de los formularios de la aplicación. Cada use case los
// valida antes de persistir; el handler convierte Errors a la respuesta 422.

// RestaurantSchema formulario de alta de sucursal.
func RestaurantSchema() Schema {
	return Schema{
		Name: "restaurant",
		Fields: []Field{
			{Name: "name", Label: "Nombre", Kind: KindText, Required: true, MinLen: 3},
			{Name: "address", Label: "Dirección", Kind: KindText, Required: true, MinLen: 5},
			{Name: "city", Label: "Ciudad", Kind: KindText, Required: true},
			{Name: "phone", Label: "Teléfono", Kind: KindText},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "image", Label: "Imagen", Kind: KindImage},
		},
	}
}

// DishSchema formulario de alta de plato.
func DishSchema() Schema {
	return Schema{
		Name: "dish",
		Fields: []Field{
			{Name: "name", Label: "Nombre", Kind: KindText, Required: true, MinLen: 3},
			{Name: "description", Label: "Descripción", Kind: KindText},
			{Name: "category", Label: "Categoría", Kind: KindText, Required: true},
			{Name: "price", Label: "Precio", Kind: KindPrice, Required: true},
			{Name: "image", Label: "Imagen", Kind: KindImage},
		},
	}
}

// PackSchema formulario de alta de pack del menú del día.
func PackSchema() Schema {
	return Schema{
		Name: "pack",
		Fields: []Field{
			{Name: "name", Label: "Nombre", Kind: KindText, Required: true, MinLen: 3},
			{Name: "price", Label: "Precio", Kind: KindPrice, Required: true},
		},
	}
}

// EmployeeSchema formulario de alta de empleado o director.
func EmployeeSchema() Schema {
	return Schema{
		Name: "employee",
		Fields: []Field{
			{Name: "name", Label: "Nombre", Kind: KindText, Required: true, MinLen: 3},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "phone", Label: "Teléfono", Kind: KindText},
			{Name: "position", Label: "Cargo", Kind: KindText, Required: true},
			{Name: "salary", Label: "Salario", Kind: KindPrice, Required: true},
		},
	}
}
