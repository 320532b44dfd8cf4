// Package testutil levanta dependencias reales para las pruebas: una base
// SQLite en un directorio temporal con el esquema creado.
package testutil

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/hypernova-labs/ventas-service/internal/config"
	"github.com/hypernova-labs/ventas-service/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// NewSQLiteDB abre una base SQLite nueva con el esquema inicializado y la
// cierra al terminar la prueba.
func NewSQLiteDB(t testing.TB) *database.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			URL:          "file:" + filepath.Join(t.TempDir(), "ventas_test.db"),
			MaxOpenConns: 4,
		},
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.InitSchema(context.Background()); err != nil {
		t.Fatalf("init test schema: %v", err)
	}

	return db
}

// NewLogger retorna un logger silencioso y el hook que captura sus entradas
func NewLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}
