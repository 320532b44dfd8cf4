package database

import (
	"context"

	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// PersonaRepository maneja las operaciones de base de datos de una tabla de
// personas (clientes o vendedores); ambas comparten columnas.
type PersonaRepository struct {
	db     *DB
	table  string
	logger logrus.FieldLogger
}

// NewPersonaRepository crea un repositorio sobre la tabla del recurso
func NewPersonaRepository(db *DB, recurso models.Recurso, logger logrus.FieldLogger) *PersonaRepository {
	return &PersonaRepository{
		db:     db,
		table:  recurso.Tabla,
		logger: logger.WithField("table", recurso.Tabla),
	}
}

// List obtiene todas las filas de la tabla
func (r *PersonaRepository) List(ctx context.Context) ([]models.Row, error) {
	rows, err := r.db.Execute(ctx, "SELECT * FROM "+r.table)
	if err != nil {
		return nil, err
	}
	return ProcessRows(rows, r.logger), nil
}

// GetByDNI obtiene una fila por dni; retorna ErrNotFound si no existe
func (r *PersonaRepository) GetByDNI(ctx context.Context, dni string) (models.Row, error) {
	rows, err := r.db.Execute(ctx, "SELECT * FROM "+r.table+" WHERE dni = ?", dni)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return ProcessRow(rows[0], r.logger), nil
}

// Create inserta una fila nueva
func (r *PersonaRepository) Create(ctx context.Context, p *models.Persona) error {
	_, err := r.db.Execute(ctx,
		"INSERT INTO "+r.table+" (dni, nombres, apellidos, datos) VALUES (?, ?, ?, ?)",
		p.DNI, p.Nombres, p.Apellidos, p.Datos,
	)
	return err
}

// Update reemplaza todas las columnas no clave. No verifica existencia.
func (r *PersonaRepository) Update(ctx context.Context, dni string, req *models.UpdatePersonaRequest) error {
	_, err := r.db.Execute(ctx,
		"UPDATE "+r.table+" SET nombres = ?, apellidos = ?, datos = ? WHERE dni = ?",
		req.Nombres, req.Apellidos, req.Datos, dni,
	)
	return err
}

// Delete elimina la fila por dni. No verifica existencia.
func (r *PersonaRepository) Delete(ctx context.Context, dni string) error {
	_, err := r.db.Execute(ctx, "DELETE FROM "+r.table+" WHERE dni = ?", dni)
	return err
}
