package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/ventas-service/internal/database"
	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/hypernova-labs/ventas-service/internal/services"
	"github.com/sirupsen/logrus"
)

// PersonaHandler expone el CRUD de clientes o vendedores; se crea una
// instancia por recurso.
type PersonaHandler struct {
	service *services.PersonaService
	recurso models.Recurso
	logger  logrus.FieldLogger
}

// NewPersonaHandler crea los handlers del recurso que atiende el servicio
func NewPersonaHandler(service *services.PersonaService, logger logrus.FieldLogger) *PersonaHandler {
	return &PersonaHandler{
		service: service,
		recurso: service.Recurso(),
		logger:  logger,
	}
}

// Register monta las cinco rutas del recurso en el grupo
func (h *PersonaHandler) Register(group *gin.RouterGroup) {
	path := "/" + h.recurso.Tabla
	group.GET(path, h.List)
	group.GET(path+"/:dni", h.Get)
	group.POST(path, h.Create)
	group.PUT(path+"/:dni", h.Update)
	group.DELETE(path+"/:dni", h.Delete)
}

// List retorna todas las filas del recurso
func (h *PersonaHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Get retorna una fila por dni o 404
func (h *PersonaHandler) Get(c *gin.Context) {
	row, err := h.service.Get(c.Request.Context(), c.Param("dni"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.NewMessageResponse(h.recurso.NotFound))
			return
		}
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

// Create inserta una fila nueva
func (h *PersonaHandler) Create(c *gin.Context) {
	var req models.Persona
	if !bindBody(c, &req) {
		return
	}

	if err := h.service.Create(c.Request.Context(), &req); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewMessageResponse(h.recurso.Creado))
}

// Update reemplaza nombres, apellidos y datos sin verificar existencia
func (h *PersonaHandler) Update(c *gin.Context) {
	var req models.UpdatePersonaRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("dni"), &req); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewMessageResponse(h.recurso.Actualizado))
}

// Delete elimina la fila sin verificar existencia
func (h *PersonaHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("dni")); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewMessageResponse(h.recurso.Eliminado))
}
