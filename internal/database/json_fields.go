package database

import (
	"encoding/json"

	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Columnas TEXT que guardan JSON serializado y el valor que toman en lectura
// cuando el texto almacenado no es JSON válido.
const (
	ColumnDatos     = "datos"
	ColumnProductos = "productos"
)

var jsonColumnDefaults = []struct {
	column   string
	fallback func() any
}{
	{ColumnDatos, func() any { return map[string]any{} }},
	{ColumnProductos, func() any { return []any{} }},
}

// ProcessRows convierte las columnas JSON de cada fila en valores
// estructurados. Un texto inválido se registra y se reemplaza por {} para
// datos o [] para productos; nunca se propaga como error. Las filas sin
// esas columnas quedan igual.
func ProcessRows(rows []models.Row, logger logrus.FieldLogger) []models.Row {
	for _, row := range rows {
		ProcessRow(row, logger)
	}
	return rows
}

// ProcessRow aplica ProcessRows a una sola fila
func ProcessRow(row models.Row, logger logrus.FieldLogger) models.Row {
	if row == nil {
		return nil
	}

	for _, field := range jsonColumnDefaults {
		text, ok := row[field.column].(string)
		if !ok || text == "" {
			continue
		}

		var value any
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			if logger != nil {
				logger.WithError(err).WithField("column", field.column).Error("Error parsing stored JSON column")
			}
			row[field.column] = field.fallback()
			continue
		}
		row[field.column] = value
	}

	return row
}
