package boat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/pkg/dbmetrics"
	"github.com/sweetnarcisse/SN-BookingService/pkg/psqlbuilder"
)

var boatColumns = []string{
	"id",
	"name",
	"capacity",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с барками флота
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория флота
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую барку
func (r *Repository) Create(ctx context.Context, boat *domain.Boat) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("boats").
		Columns("name", "capacity", "status").
		Values(boat.Name, boat.Capacity, boat.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&boat.ID,
		&boat.CreatedAt,
		&boat.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return boat, nil
}

// Update обновляет имя, вместимость и статус барки
func (r *Repository) Update(ctx context.Context, boat *domain.Boat) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("boats").
		Set("name", boat.Name).
		Set("capacity", boat.Capacity).
		Set("status", boat.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": boat.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&boat.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return boat, nil
}

// GetByID получает барку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(boatColumns...).
		From("boats").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var boat domain.Boat
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&boat.ID,
		&boat.Name,
		&boat.Capacity,
		&boat.Status,
		&boat.CreatedAt,
		&boat.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan boat: %v", ErrScanRow, err)
	}

	return &boat, nil
}

// List получает барки флота в порядке возрастания ID
// Порядок важен: позиция барки в списке определяет её место в ротации
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(boatColumns...).
		From("boats").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.BoatStatusActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	boats := make([]*domain.Boat, 0)
	for rows.Next() {
		var boat domain.Boat
		err = rows.Scan(
			&boat.ID,
			&boat.Name,
			&boat.Capacity,
			&boat.Status,
			&boat.CreatedAt,
			&boat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		boats = append(boats, &boat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return boats, nil
}
