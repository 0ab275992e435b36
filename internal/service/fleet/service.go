package fleet

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	boatRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/boat"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet/models"
)

// Ключ снапшота активного флота в in-process кэше
const activeFleetCacheKey = "fleet:active"

// Service сервис для работы с флотом
//
// Снапшот активного флота кэшируется: он читается на каждый запрос
// доступности и на каждую запись бронирования, а меняется редко.
// Любая мутация флота немедленно сбрасывает кэш
type Service struct {
	boatRepo BoatRepository
	cache    *gocache.Cache
	logger   Logger
}

// NewService создает новый экземпляр сервиса флота
func NewService(boatRepo BoatRepository, fleetTTL time.Duration, logger Logger) *Service {
	return &Service{
		boatRepo: boatRepo,
		cache:    gocache.New(fleetTTL, 2*fleetTTL),
		logger:   logger,
	}
}

// ActiveFleet возвращает активные барки в порядке ротации (id ASC)
// Результат кэшируется на время TTL из конфигурации
func (s *Service) ActiveFleet(ctx context.Context) ([]*domain.Boat, error) {
	if cached, ok := s.cache.Get(activeFleetCacheKey); ok {
		return cached.([]*domain.Boat), nil
	}

	boats, err := s.boatRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ActiveFleet: repository error: %v", err)
		return nil, fmt.Errorf("%w: ActiveFleet - repository error: %v", ErrInternal, err)
	}

	s.cache.Set(activeFleetCacheKey, boats, gocache.DefaultExpiration)
	return boats, nil
}

// CreateBoat создает новую барку
func (s *Service) CreateBoat(ctx context.Context, req *models.CreateBoatRequest) (*models.BoatResponse, error) {
	s.logger.Info("CreateBoat: creating boat name=%q capacity=%d", req.Name, req.Capacity)

	boat, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateBoat: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.boatRepo.Create(ctx, boat)
	if err != nil {
		s.logger.Error("CreateBoat: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBoat - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(activeFleetCacheKey)

	s.logger.Info("CreateBoat: successfully created boat id=%d", created.ID)
	return models.FromDomainBoat(created), nil
}

// UpdateBoat обновляет имя, вместимость и/или статус барки
// Смена статуса меняет состав ротации, но не затрагивает существующие бронирования
func (s *Service) UpdateBoat(ctx context.Context, id int64, req *models.UpdateBoatRequest) (*models.BoatResponse, error) {
	s.logger.Info("UpdateBoat: updating boat id=%d", id)

	boat, err := s.boatRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("UpdateBoat: boat id=%d not found", id)
			return nil, ErrBoatNotFound
		}
		s.logger.Error("UpdateBoat: repository error for boat id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBoat - repository error: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(boat); err != nil {
		s.logger.Warn("UpdateBoat: invalid input for boat id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.boatRepo.Update(ctx, boat)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			return nil, ErrBoatNotFound
		}
		s.logger.Error("UpdateBoat: repository error for boat id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBoat - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(activeFleetCacheKey)

	s.logger.Info("UpdateBoat: successfully updated boat id=%d", id)
	return models.FromDomainBoat(updated), nil
}

// ListBoats возвращает все барки флота, включая неактивные
func (s *Service) ListBoats(ctx context.Context) (*models.BoatListResponse, error) {
	boats, err := s.boatRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListBoats: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBoats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBoatList(boats), nil
}
