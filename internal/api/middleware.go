package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// serializedFields son los campos que se guardan como texto JSON
var serializedFields = []string{"datos", "productos"}

// JSONFieldsMiddleware reemplaza datos y productos del body por su forma
// serializada cuando llegan como objeto o arreglo. Los escalares, null y el
// resto de campos pasan sin cambios; un body que no es un objeto JSON se
// deja intacto para que lo rechace el binding.
func JSONFieldsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		_ = c.Request.Body.Close()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.NewErrorResponse(err))
			return
		}

		setBody(c.Request, SerializeJSONFields(raw))
		c.Next()
	}
}

// SerializeJSONFields aplica la conversión sobre un body crudo
func SerializeJSONFields(raw []byte) []byte {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return raw
	}

	changed := false
	for _, field := range serializedFields {
		value, ok := body[field]
		if !ok {
			continue
		}
		trimmed := bytes.TrimSpace(value)
		if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
			continue
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			continue
		}
		text, err := json.Marshal(compact.String())
		if err != nil {
			continue
		}
		body[field] = text
		changed = true
	}

	if !changed {
		return raw
	}

	out, err := json.Marshal(body)
	if err != nil {
		return raw
	}
	return out
}

func setBody(req *http.Request, body []byte) {
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))
}

// CORSMiddleware permite solicitudes de cualquier origen configurado
func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigins)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLoggerMiddleware registra cada request con su request id
func RequestLoggerMiddleware(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := incomingRequestID(c.GetHeader("X-Request-ID"))
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)

		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("Request failed")
			return
		}
		entry.Info("Request handled")
	}
}

// incomingRequestID acepta solo ids con forma de UUID; cualquier otro valor
// se reemplaza por uno nuevo
func incomingRequestID(header string) string {
	if len(header) == 36 {
		if id, err := uuid.Parse(header); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}

// WindowCounter cuenta solicitudes dentro de una ventana de tiempo
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// rateLimitWindow es la ventana fija del limitador
const rateLimitWindow = time.Minute

// RateLimitMiddleware limita las solicitudes por IP en ventanas de un
// minuto. Sin contador no aplica límite; si el contador falla la solicitud
// continúa.
func RateLimitMiddleware(counter WindowCounter, limit int, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		window := time.Now().Unix() / int64(rateLimitWindow.Seconds())
		key := "ratelimit:" + c.ClientIP() + ":" + strconv.FormatInt(window, 10)

		count, err := counter.IncrWindow(c.Request.Context(), key, rateLimitWindow)
		if err != nil {
			logger.WithError(err).Warn("Rate limiter unavailable")
			c.Next()
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "Demasiadas solicitudes"})
			return
		}

		c.Next()
	}
}
