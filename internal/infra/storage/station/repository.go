package station

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	"github.com/gamebook/GameBook-BookingService/pkg/dbmetrics"
	"github.com/gamebook/GameBook-BookingService/pkg/psqlbuilder"
)

var stationColumns = []string{
	"id",
	"name",
	"type",
	"price_per_hour",
	"status",
	"description",
	"image_url",
	"specs",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с игровыми станциями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория станций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую станцию.
// Характеристики ПК сериализуются в jsonb; для остальных типов - NULL.
func (r *Repository) Create(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	specs, err := encodeSpecs(station.Specs)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("stations").
		Columns(
			"name",
			"type",
			"price_per_hour",
			"status",
			"description",
			"image_url",
			"specs",
		).
		Values(
			station.Name,
			station.Type,
			station.PricePerHour,
			station.Status,
			station.Description,
			station.ImageURL,
			specs,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&station.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	station.CreatedAt = createdAt.Time
	station.UpdatedAt = updatedAt.Time

	return station, nil
}

// GetByID получает станцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stationColumns...).
		From("stations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	station, err := r.scanStation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan station: %v", ErrScanRow, err)
	}

	return station, nil
}

// List получает все станции, упорядоченные по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stationColumns...).
		From("stations").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stations := make([]*domain.Station, 0)
	for rows.Next() {
		station, err := r.scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		stations = append(stations, station)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return stations, nil
}

// Update обновляет станцию целиком
func (r *Repository) Update(ctx context.Context, station *domain.Station) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	specs, err := encodeSpecs(station.Specs)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("stations").
		Set("name", station.Name).
		Set("type", station.Type).
		Set("price_per_hour", station.PricePerHour).
		Set("status", station.Status).
		Set("description", station.Description).
		Set("image_url", station.ImageURL).
		Set("specs", specs).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": station.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStationNotFound
	}

	return nil
}

// Delete удаляет станцию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("stations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanStation(row rowScanner) (*domain.Station, error) {
	var station domain.Station
	var specs []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&station.ID,
		&station.Name,
		&station.Type,
		&station.PricePerHour,
		&station.Status,
		&station.Description,
		&station.ImageURL,
		&specs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(specs) > 0 {
		var decoded domain.PCSpecs
		if err := json.Unmarshal(specs, &decoded); err != nil {
			return nil, fmt.Errorf("decode specs: %v", err)
		}
		station.Specs = &decoded
	}

	station.CreatedAt = createdAt.Time
	station.UpdatedAt = updatedAt.Time

	return &station, nil
}

func encodeSpecs(specs *domain.PCSpecs) (interface{}, error) {
	if specs == nil {
		return nil, nil
	}
	data, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSpecs, err)
	}
	return data, nil
}
