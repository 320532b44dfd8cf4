package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hypernova-labs/ventas-service/internal/database"
	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// VentaService maneja la lógica de ventas y su vista con relaciones
type VentaService struct {
	ventas     *database.VentaRepository
	clientes   *database.PersonaRepository
	vendedores *database.PersonaRepository
	publisher  EventPublisher
	logger     logrus.FieldLogger
}

// NewVentaService crea una nueva instancia del servicio
func NewVentaService(ventas *database.VentaRepository, clientes, vendedores *database.PersonaRepository, publisher EventPublisher, logger logrus.FieldLogger) *VentaService {
	return &VentaService{
		ventas:     ventas,
		clientes:   clientes,
		vendedores: vendedores,
		publisher:  publisher,
		logger:     logger.WithField("resource", "ventas"),
	}
}

// List obtiene todas las ventas
func (s *VentaService) List(ctx context.Context) ([]models.Row, error) {
	return s.ventas.List(ctx)
}

// GetWithRelations obtiene la venta y, en paralelo, el cliente y el vendedor
// que referencia. Una referencia que no existe produce nil, no un error.
func (s *VentaService) GetWithRelations(ctx context.Context, id string) (*models.VentaDetalle, error) {
	venta, err := s.ventas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detalle := &models.VentaDetalle{Venta: venta}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		row, err := lookupRelation(gctx, s.clientes, venta["cliente_dni"])
		detalle.Cliente = row
		return err
	})
	g.Go(func() error {
		row, err := lookupRelation(gctx, s.vendedores, venta["vendedor_dni"])
		detalle.Vendedor = row
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error fetching sale relations")
		return nil, err
	}

	return detalle, nil
}

func lookupRelation(ctx context.Context, repo *database.PersonaRepository, ref any) (models.Row, error) {
	dni, ok := ref.(string)
	if !ok {
		// Referencia NULL o de otro tipo: no hay fila que coincida
		return nil, nil
	}

	row, err := repo.GetByDNI(ctx, dni)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	return row, err
}

// Create crea una venta. Si el body no trae id se genera un UUID.
func (s *VentaService) Create(ctx context.Context, v *models.Venta) (string, error) {
	if v.ID == nil || v.ID == "" {
		v.ID = uuid.NewString()
	}
	id := fmt.Sprint(v.ID)

	if err := s.ventas.Create(ctx, v); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error creating sale")
		return "", err
	}

	s.logger.WithField("id", id).Info("Sale created")
	publish(ctx, s.publisher, s.logger, "ventas/creado", map[string]any{
		"id":           id,
		"cliente_dni":  v.ClienteDNI,
		"vendedor_dni": v.VendedorDNI,
		"total":        v.Total,
	})
	return id, nil
}

// Update reemplaza los datos de una venta
func (s *VentaService) Update(ctx context.Context, id string, req *models.UpdateVentaRequest) error {
	if err := s.ventas.Update(ctx, id, req); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error updating sale")
		return err
	}

	s.logger.WithField("id", id).Info("Sale updated")
	publish(ctx, s.publisher, s.logger, "ventas/actualizado", map[string]any{
		"id":           id,
		"cliente_dni":  req.ClienteDNI,
		"vendedor_dni": req.VendedorDNI,
		"total":        req.Total,
	})
	return nil
}

// Delete elimina una venta
func (s *VentaService) Delete(ctx context.Context, id string) error {
	if err := s.ventas.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Error deleting sale")
		return err
	}

	s.logger.WithField("id", id).Info("Sale deleted")
	publish(ctx, s.publisher, s.logger, "ventas/eliminado", map[string]any{"id": id})
	return nil
}
