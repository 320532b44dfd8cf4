package models

const (
	VentaNoEncontrada = "Venta no encontrada"
	VentaCreada       = "Venta creada exitosamente"
	VentaActualizada  = "Venta actualizada exitosamente"
	VentaEliminada    = "Venta eliminada exitosamente"
)

// Venta representa el body de creación de una venta. Igual que en Persona,
// cada campo guarda el valor JSON tal como llegó.
type Venta struct {
	ID          any `json:"id"`
	ClienteDNI  any `json:"cliente_dni"`
	VendedorDNI any `json:"vendedor_dni"`
	Fecha       any `json:"fecha"`
	Productos   any `json:"productos"`
	Total       any `json:"total"`
}

// UpdateVentaRequest representa el body de un PUT; el id viene en la ruta
type UpdateVentaRequest struct {
	ClienteDNI  any `json:"cliente_dni"`
	VendedorDNI any `json:"vendedor_dni"`
	Fecha       any `json:"fecha"`
	Productos   any `json:"productos"`
	Total       any `json:"total"`
}

// VentaDetalle es la respuesta de GET /api/ventas/:id. Cliente y Vendedor
// quedan en nil cuando la referencia no existe.
type VentaDetalle struct {
	Venta    Row `json:"venta"`
	Cliente  Row `json:"cliente"`
	Vendedor Row `json:"vendedor"`
}
