package services

import (
	"context"

	"github.com/hypernova-labs/ventas-service/internal/database"
	"github.com/hypernova-labs/ventas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// PersonaService maneja la lógica de clientes o vendedores
type PersonaService struct {
	repo      *database.PersonaRepository
	recurso   models.Recurso
	publisher EventPublisher
	logger    logrus.FieldLogger
}

// NewPersonaService crea el servicio para el recurso indicado
func NewPersonaService(repo *database.PersonaRepository, recurso models.Recurso, publisher EventPublisher, logger logrus.FieldLogger) *PersonaService {
	return &PersonaService{
		repo:      repo,
		recurso:   recurso,
		publisher: publisher,
		logger:    logger.WithField("resource", recurso.Tabla),
	}
}

// Recurso retorna la descripción del recurso que atiende el servicio
func (s *PersonaService) Recurso() models.Recurso {
	return s.recurso
}

// List obtiene todas las personas
func (s *PersonaService) List(ctx context.Context) ([]models.Row, error) {
	return s.repo.List(ctx)
}

// Get obtiene una persona por dni
func (s *PersonaService) Get(ctx context.Context, dni string) (models.Row, error) {
	return s.repo.GetByDNI(ctx, dni)
}

// Create crea una persona nueva
func (s *PersonaService) Create(ctx context.Context, p *models.Persona) error {
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.WithError(err).Errorf("Error creating %s", s.recurso.Entidad)
		return err
	}

	s.logger.WithField("dni", p.DNI).Infof("%s created", s.recurso.Entidad)
	publish(ctx, s.publisher, s.logger, s.recurso.Tabla+"/creado", map[string]any{
		"dni":       p.DNI,
		"nombres":   p.Nombres,
		"apellidos": p.Apellidos,
	})
	return nil
}

// Update reemplaza los datos de una persona
func (s *PersonaService) Update(ctx context.Context, dni string, req *models.UpdatePersonaRequest) error {
	if err := s.repo.Update(ctx, dni, req); err != nil {
		s.logger.WithError(err).WithField("dni", dni).Errorf("Error updating %s", s.recurso.Entidad)
		return err
	}

	s.logger.WithField("dni", dni).Infof("%s updated", s.recurso.Entidad)
	publish(ctx, s.publisher, s.logger, s.recurso.Tabla+"/actualizado", map[string]any{
		"dni":       dni,
		"nombres":   req.Nombres,
		"apellidos": req.Apellidos,
	})
	return nil
}

// Delete elimina una persona
func (s *PersonaService) Delete(ctx context.Context, dni string) error {
	if err := s.repo.Delete(ctx, dni); err != nil {
		s.logger.WithError(err).WithField("dni", dni).Errorf("Error deleting %s", s.recurso.Entidad)
		return err
	}

	s.logger.WithField("dni", dni).Infof("%s deleted", s.recurso.Entidad)
	publish(ctx, s.publisher, s.logger, s.recurso.Tabla+"/eliminado", map[string]any{"dni": dni})
	return nil
}
