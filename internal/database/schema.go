package database

import (
	"context"
	"fmt"
)

// schemaStatements se ejecutan en orden; todas son idempotentes
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clientes (
		dni TEXT PRIMARY KEY,
		nombres TEXT,
		apellidos TEXT,
		datos TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS vendedores (
		dni TEXT PRIMARY KEY,
		nombres TEXT,
		apellidos TEXT,
		datos TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ventas (
		id TEXT PRIMARY KEY,
		cliente_dni TEXT,
		vendedor_dni TEXT,
		fecha TEXT,
		productos TEXT,
		total REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cliente_dni ON ventas (cliente_dni)`,
	`CREATE INDEX IF NOT EXISTS idx_vendedor_dni ON ventas (vendedor_dni)`,
}

// InitSchema crea las tablas e índices si no existen. Se detiene en el
// primer error; el llamador decide si es fatal.
func (db *DB) InitSchema(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
