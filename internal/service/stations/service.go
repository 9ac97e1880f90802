package stations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	stationRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/station"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	"github.com/gamebook/GameBook-BookingService/internal/service/stations/models"
)

// Service сервис каталога игровых станций.
// Чтение публичное, изменения доступны только персоналу клуба.
type Service struct {
	stationRepo StationRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса станций
func NewService(stationRepo StationRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		stationRepo: stationRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetByID получает станцию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StationResponse, error) {
	station, err := s.stationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("GetByID: station id=%d not found", id)
			return nil, ErrStationNotFound
		}
		s.logger.Error("GetByID: repository error for station id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStation(station), nil
}

// List возвращает все станции каталога
func (s *Service) List(ctx context.Context) (*models.StationListResponse, error) {
	stations, err := s.stationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStationList(stations), nil
}

// Create создает новую станцию. Доступно только админу.
// Характеристики ПК принимаются только для станций типа "PC Gaming".
func (s *Service) Create(ctx context.Context, req *models.CreateStationRequest) (*models.StationResponse, error) {
	s.logger.Info("Create: creating station name=%s type=%s by user=%d", req.Name, req.Type, req.RequesterID)

	if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
		s.logger.Warn("Create: access denied for user=%d", req.RequesterID)
		return nil, err
	}

	station := &domain.Station{
		Name:         strings.TrimSpace(req.Name),
		Type:         domain.StationType(req.Type),
		PricePerHour: req.PricePerHour,
		Status:       domain.StationAvailable,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Specs:        req.Specs.ToDomainSpecs(),
	}

	if err := validateStation(station); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.stationRepo.Create(ctx, station)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created station id=%d", created.ID)
	return models.FromDomainStation(created), nil
}

// Update обновляет станцию. Доступно только админу.
// Обновляются только переданные поля, остальные сохраняют значения.
func (s *Service) Update(ctx context.Context, req *models.UpdateStationRequest) (*models.StationResponse, error) {
	s.logger.Info("Update: updating station id=%d by user=%d", req.StationID, req.RequesterID)

	if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
		s.logger.Warn("Update: access denied for user=%d", req.RequesterID)
		return nil, err
	}

	station, err := s.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("Update: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		s.logger.Error("Update: repository error for station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		station.Name = strings.TrimSpace(*req.Name)
	}
	if req.PricePerHour != nil {
		station.PricePerHour = *req.PricePerHour
	}
	if req.Status != nil {
		status := domain.StationStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("Update: invalid status=%s for station id=%d", *req.Status, req.StationID)
			return nil, fmt.Errorf("%w: invalid station status: %s", ErrInvalidInput, *req.Status)
		}
		station.Status = status
	}
	if req.Description != nil {
		station.Description = req.Description
	}
	if req.ImageURL != nil {
		station.ImageURL = req.ImageURL
	}
	if req.Specs != nil {
		station.Specs = req.Specs.ToDomainSpecs()
	}

	if err := validateStation(station); err != nil {
		s.logger.Warn("Update: validation failed for station id=%d: %v", req.StationID, err)
		return nil, err
	}

	if err := s.stationRepo.Update(ctx, station); err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			return nil, ErrStationNotFound
		}
		s.logger.Error("Update: repository error for station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated station id=%d", req.StationID)
	return models.FromDomainStation(station), nil
}

// Delete удаляет станцию из каталога. Доступно только админу.
func (s *Service) Delete(ctx context.Context, req *models.DeleteStationRequest) error {
	s.logger.Info("Delete: deleting station id=%d by user=%d", req.StationID, req.RequesterID)

	if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d", req.RequesterID)
		return err
	}

	if err := s.stationRepo.Delete(ctx, req.StationID); err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("Delete: station id=%d not found", req.StationID)
			return ErrStationNotFound
		}
		s.logger.Error("Delete: repository error for station id=%d: %v", req.StationID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted station id=%d", req.StationID)
	return nil
}

// validateStation проверяет бизнес-правила станции
func validateStation(station *domain.Station) error {
	if station.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(station.Name) > domain.MaxStationNameLength {
		return fmt.Errorf("%w: name too long (max %d characters)", ErrInvalidInput, domain.MaxStationNameLength)
	}
	if !station.Type.IsValid() {
		return fmt.Errorf("%w: invalid station type: %s", ErrInvalidInput, station.Type)
	}
	if station.PricePerHour <= 0 {
		return fmt.Errorf("%w: price_per_hour must be positive", ErrInvalidInput)
	}
	// Характеристики ПК есть только у станций типа "PC Gaming"
	if station.Specs != nil && !station.SupportsSpecs() {
		return fmt.Errorf("%w: specs are only allowed for %s stations", ErrInvalidInput, domain.StationPC)
	}
	return nil
}

// checkAdmin проверяет, что пользователь - админ
func (s *Service) checkAdmin(ctx context.Context, requesterID int64) error {
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkAdmin - failed to get user: %v", ErrInternal, err)
	}
	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
