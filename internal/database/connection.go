package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hypernova-labs/ventas-service/internal/config"
	"github.com/hypernova-labs/ventas-service/internal/models"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// ErrNotFound se retorna cuando una búsqueda por clave no encuentra filas
var ErrNotFound = errors.New("not found")

// Dialect identifica el motor detrás de la conexión
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DB representa la conexión a la base de datos
type DB struct {
	*sql.DB
	dialect Dialect
}

// Connect abre la base de datos indicada por DATABASE_URL
func Connect(cfg *config.Config) (*DB, error) {
	dialect, dsn, err := ParseDatabaseURL(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	maxOpen := cfg.Database.MaxOpenConns
	if maxOpen < 1 {
		maxOpen = 1
	}
	// Cada conexión a :memory: es una base distinta
	if dialect == DialectSQLite && strings.Contains(dsn, ":memory:") {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &DB{DB: db, dialect: dialect}, nil
}

// ParseDatabaseURL traduce DATABASE_URL a un driver y su DSN
func ParseDatabaseURL(url string) (Dialect, string, error) {
	url = strings.TrimSpace(url)
	switch {
	case url == "":
		return "", "", errors.New("DATABASE_URL not configured")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DialectPostgres, url, nil
	case strings.HasPrefix(url, "libsql://"), strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return "", "", fmt.Errorf("unsupported database url scheme: %s", url)
	case strings.HasPrefix(url, "sqlite://"):
		return DialectSQLite, withSQLitePragmas(strings.TrimPrefix(url, "sqlite://")), nil
	default:
		return DialectSQLite, withSQLitePragmas(url), nil
	}
}

func withSQLitePragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)"
}

// Dialect retorna el motor de la conexión
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Execute ejecuta una sentencia parametrizada con placeholders "?" y
// retorna las filas resultantes. Las sentencias sin resultado retornan
// un slice vacío. Los errores del driver se retornan sin envolver porque
// su texto llega tal cual al cliente.
func (db *DB) Execute(ctx context.Context, query string, args ...any) ([]models.Row, error) {
	for i, arg := range args {
		args[i] = bindValue(arg)
	}

	rows, err := db.QueryContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(models.Row, len(columns))
		for i, column := range columns {
			// Los drivers entregan TEXT como []byte en algunos casos
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// bindValue adapta un valor decodificado del body al driver. Los números JSON
// enteros se guardan como INTEGER y el resto como REAL; los booleanos como
// 1/0, igual que los guarda SQLite.
func bindValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case bool:
		if val {
			return int64(1)
		}
		return int64(0)
	default:
		return v
	}
}

// Rebind reescribe los placeholders "?" como $1..$n en PostgreSQL
func (db *DB) Rebind(query string) string {
	if db.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HealthCheck verifica la salud de la base de datos
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Execute(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("database query test failed: %w", err)
	}

	return nil
}

// LogStats registra las estadísticas del pool
func (db *DB) LogStats(logger logrus.FieldLogger) {
	stats := db.Stats()
	logger.WithFields(logrus.Fields{
		"dialect":          db.dialect,
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
	}).Info("Database pool statistics")
}
