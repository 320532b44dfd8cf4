package database

import (
	"context"

	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// VentaRepository maneja las operaciones de base de datos para ventas
type VentaRepository struct {
	db     *DB
	logger logrus.FieldLogger
}

// NewVentaRepository crea una nueva instancia del repositorio
func NewVentaRepository(db *DB, logger logrus.FieldLogger) *VentaRepository {
	return &VentaRepository{
		db:     db,
		logger: logger.WithField("table", "ventas"),
	}
}

// List obtiene todas las ventas
func (r *VentaRepository) List(ctx context.Context) ([]models.Row, error) {
	rows, err := r.db.Execute(ctx, "SELECT * FROM ventas")
	if err != nil {
		return nil, err
	}
	return ProcessRows(rows, r.logger), nil
}

// GetByID obtiene una venta por id; retorna ErrNotFound si no existe
func (r *VentaRepository) GetByID(ctx context.Context, id string) (models.Row, error) {
	rows, err := r.db.Execute(ctx, "SELECT * FROM ventas WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return ProcessRow(rows[0], r.logger), nil
}

// Create inserta una venta nueva
func (r *VentaRepository) Create(ctx context.Context, v *models.Venta) error {
	_, err := r.db.Execute(ctx,
		"INSERT INTO ventas (id, cliente_dni, vendedor_dni, fecha, productos, total) VALUES (?, ?, ?, ?, ?, ?)",
		v.ID, v.ClienteDNI, v.VendedorDNI, v.Fecha, v.Productos, v.Total,
	)
	return err
}

// Update reemplaza todas las columnas no clave de la venta
func (r *VentaRepository) Update(ctx context.Context, id string, req *models.UpdateVentaRequest) error {
	_, err := r.db.Execute(ctx,
		"UPDATE ventas SET cliente_dni = ?, vendedor_dni = ?, fecha = ?, productos = ?, total = ? WHERE id = ?",
		req.ClienteDNI, req.VendedorDNI, req.Fecha, req.Productos, req.Total, id,
	)
	return err
}

// Delete elimina la venta por id
func (r *VentaRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Execute(ctx, "DELETE FROM ventas WHERE id = ?", id)
	return err
}
