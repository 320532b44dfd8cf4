package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/ventas-service/internal/database"
	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/hypernova-labs/ventas-service/internal/services"
	"github.com/sirupsen/logrus"
)

// HealthChecker verifica la disponibilidad del almacenamiento
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// API maneja todos los endpoints de la API
type API struct {
	clientes     *PersonaHandler
	vendedores   *PersonaHandler
	ventaService *services.VentaService
	health       HealthChecker
	logger       logrus.FieldLogger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	clienteService *services.PersonaService,
	vendedorService *services.PersonaService,
	ventaService *services.VentaService,
	health HealthChecker,
	logger logrus.FieldLogger,
) *API {
	return &API{
		clientes:     NewPersonaHandler(clienteService, logger),
		vendedores:   NewPersonaHandler(vendedorService, logger),
		ventaService: ventaService,
		health:       health,
		logger:       logger,
	}
}

// Health reporta el estado del servicio y de la base de datos
func (api *API) Health(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":    "ok",
		"database":  "ok",
		"timestamp": time.Now().UTC(),
		"service":   "ventas-service",
	}

	if api.health != nil {
		if err := api.health.HealthCheck(c.Request.Context()); err != nil {
			api.logger.WithError(err).Warn("Health check failed")
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = err.Error()
		}
	}

	c.JSON(status, body)
}

// ListVentas retorna todas las ventas
func (api *API) ListVentas(c *gin.Context) {
	rows, err := api.ventaService.List(c.Request.Context())
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetVenta retorna la venta con su cliente y vendedor
func (api *API) GetVenta(c *gin.Context) {
	detalle, err := api.ventaService.GetWithRelations(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.NewMessageResponse(models.VentaNoEncontrada))
			return
		}
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, detalle)
}

// CreateVenta crea una venta
func (api *API) CreateVenta(c *gin.Context) {
	var req models.Venta
	if !bindBody(c, &req) {
		return
	}

	id, err := api.ventaService.Create(c.Request.Context(), &req)
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreatedResponse{Message: models.VentaCreada, ID: id})
}

// UpdateVenta reemplaza los datos de una venta
func (api *API) UpdateVenta(c *gin.Context) {
	var req models.UpdateVentaRequest
	if !bindBody(c, &req) {
		return
	}

	if err := api.ventaService.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewMessageResponse(models.VentaActualizada))
}

// DeleteVenta elimina una venta
func (api *API) DeleteVenta(c *gin.Context) {
	if err := api.ventaService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewMessageResponse(models.VentaEliminada))
}

// bindBody decodifica el body JSON sin imponer tipos: los números quedan como
// json.Number y la columna decide la conversión. Un body vacío deja los campos
// en nil; solo un JSON inválido produce 400.
func bindBody(c *gin.Context, obj any) bool {
	if c.Request.Body == nil {
		return true
	}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(err))
		return false
	}
	return true
}

// respondStorageError expone el mensaje del driver tal cual con un 500
func respondStorageError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.NewErrorResponse(err))
}
