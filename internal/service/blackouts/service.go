package blackouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	blackoutRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/blackout"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/blackouts/models"
)

// Service сервис для управления интервалами блокировки отправлений
type Service struct {
	blackoutRepo BlackoutRepository
	scheduleCfg  *domain.ScheduleConfig
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blackoutRepo BlackoutRepository, scheduleCfg *domain.ScheduleConfig, logger Logger) *Service {
	return &Service{
		blackoutRepo: blackoutRepo,
		scheduleCfg:  scheduleCfg,
		logger:       logger,
	}
}

// List возвращает интервалы блокировки, пересекающиеся с периодом [from, to]
// (обе даты включительно, в календарных днях причала)
func (s *Service) List(ctx context.Context, req *models.ListBlackoutsRequest) (*models.BlackoutListResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("List: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	from, _ := schedule.DayBounds(req.From, s.scheduleCfg.Location)
	_, to := schedule.DayBounds(req.To, s.scheduleCfg.Location)

	blocks, err := s.blackoutRepo.ListOverlapping(ctx, from, to)
	if err != nil {
		s.logger.Error("List: repository error for period=%s..%s: %v", req.From, req.To, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlackoutList(blocks, s.scheduleCfg.Location), nil
}

// ListForDay возвращает доменные интервалы блокировки, пересекающиеся с днём
// Используется движком слотов напрямую, без конвертации в response модели
func (s *Service) ListForDay(ctx context.Context, date string) ([]domain.BlackoutInterval, error) {
	dayStart, dayEnd := schedule.DayBounds(date, s.scheduleCfg.Location)

	blocks, err := s.blackoutRepo.ListOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("ListForDay: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}

	result := make([]domain.BlackoutInterval, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, *b)
	}
	return result, nil
}

// Create создает новый интервал блокировки
// Интервал со scope=day нормализуется до границ календарного дня - так
// проверка полного покрытия дня остаётся тривиальной
func (s *Service) Create(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("Create: creating blackout scope=%s date=%s", req.Scope, req.Date)

	block, err := req.ToDomain(s.scheduleCfg.Location)
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.blackoutRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created blackout id=%d", created.ID)
	return models.FromDomainBlackout(created, s.scheduleCfg.Location), nil
}

// Delete удаляет интервал блокировки
// Существующие бронирования внутри интервала не затрагиваются в обе стороны:
// блокировка закрывает только новые записи
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting blackout id=%d", id)

	if err := s.blackoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			s.logger.Warn("Delete: blackout id=%d not found", id)
			return ErrBlackoutNotFound
		}
		s.logger.Error("Delete: repository error for blackout id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blackout id=%d", id)
	return nil
}
