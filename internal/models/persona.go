package models

// Persona agrupa los campos comunes de clientes y vendedores. Ambos recursos
// comparten la misma forma de tabla: dni, nombres, apellidos y datos.
// Los campos conservan el valor JSON decodificado; la conversión de tipo la
// hace la columna al guardar.
type Persona struct {
	DNI       any `json:"dni"`
	Nombres   any `json:"nombres"`
	Apellidos any `json:"apellidos"`
	// Datos llega ya serializado por el middleware de campos JSON
	Datos any `json:"datos"`
}

// UpdatePersonaRequest representa el body de un PUT; el dni viene en la ruta
type UpdatePersonaRequest struct {
	Nombres   any `json:"nombres"`
	Apellidos any `json:"apellidos"`
	Datos     any `json:"datos"`
}

// Recurso describe una tabla de personas y sus mensajes de respuesta
type Recurso struct {
	Tabla       string
	Entidad     string
	NotFound    string
	Creado      string
	Actualizado string
	Eliminado   string
}

var (
	// Clientes es la configuración del recurso /api/clientes
	Clientes = Recurso{
		Tabla:       "clientes",
		Entidad:     "cliente",
		NotFound:    "Cliente no encontrado",
		Creado:      "Cliente creado exitosamente",
		Actualizado: "Cliente actualizado exitosamente",
		Eliminado:   "Cliente eliminado exitosamente",
	}

	// Vendedores es la configuración del recurso /api/vendedores
	Vendedores = Recurso{
		Tabla:       "vendedores",
		Entidad:     "vendedor",
		NotFound:    "Vendedor no encontrado",
		Creado:      "Vendedor creado exitosamente",
		Actualizado: "Vendedor actualizado exitosamente",
		Eliminado:   "Vendedor eliminado exitosamente",
	}
)
