package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	devicesTable = "devices"

	pgUniqueViolation = "23505"

	returningColumns = "RETURNING id, name, brand, state, created_at, updated_at"
	upsertClause     = "ON CONFLICT (id) DO UPDATE SET " +
		"name = EXCLUDED.name, brand = EXCLUDED.brand, state = EXCLUDED.state, updated_at = EXCLUDED.updated_at"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	deviceColumns = []string{"id", "name", "brand", "state", "created_at", "updated_at"}
)

type (
	// PoolOps is the subset of pgxpool.Pool the store needs, so tests can
	// inject pgxmock.
	PoolOps interface {
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Ping(ctx context.Context) error
	}

	// DevicesStore persists devices in PostgreSQL.
	DevicesStore struct {
		pool       PoolOps
		scanner    Scanner
		translator *SpecTranslator
		logger     logger.Logger
		now        func() time.Time
	}

	StoreOption func(*DevicesStore)

	deviceRow struct {
		ID        string    `db:"id"`
		Name      string    `db:"name"`
		Brand     string    `db:"brand"`
		State     string    `db:"state"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
)

// WithClock overrides the timestamp source used for created_at and updated_at.
func WithClock(now func() time.Time) StoreOption {
	return func(s *DevicesStore) {
		s.now = now
	}
}

func NewDevicesStore(
	pool PoolOps,
	scanner Scanner,
	translator *SpecTranslator,
	log logger.Logger,
	opts ...StoreOption,
) *DevicesStore {
	store := &DevicesStore{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *DevicesStore) Create(ctx context.Context, input model.NewDevice) (*model.Device, error) {
	device := input.Build(s.now())

	query, args, err := psql.Insert(devicesTable).
		Columns(deviceColumns...).
		Values(
			device.ID.String(),
			device.Name,
			device.Brand,
			device.State.String(),
			device.CreatedAt,
			device.UpdatedAt,
		).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	return s.queryOne(ctx, query, args)
}

func (s *DevicesStore) FetchByID(ctx context.Context, id model.DeviceID) (*model.Device, error) {
	query, args, err := psql.Select(deviceColumns...).
		From(devicesTable).
		Where(sq.Eq{"id": id.String()}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	return s.queryOne(ctx, query, args)
}

func (s *DevicesStore) FindAll(ctx context.Context) ([]*model.Device, error) {
	return s.queryMany(ctx, s.selectOrdered())
}

func (s *DevicesStore) FindWhere(ctx context.Context, spec model.Specification) ([]*model.Device, error) {
	condition, err := s.translator.Translate(spec)
	if err != nil {
		return nil, err
	}

	return s.queryMany(ctx, s.selectOrdered().Where(condition))
}

func (s *DevicesStore) Save(ctx context.Context, device *model.Device) (*model.Device, error) {
	query, args, err := psql.Insert(devicesTable).
		Columns(deviceColumns...).
		Values(
			device.ID.String(),
			device.Name,
			device.Brand,
			device.State.String(),
			device.CreatedAt,
			s.now(),
		).
		Suffix(upsertClause + " " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert query: %w", err)
	}

	return s.queryOne(ctx, query, args)
}

func (s *DevicesStore) Delete(ctx context.Context, device *model.Device) error {
	query, args, err := psql.Delete(devicesTable).
		Where(sq.Eq{"id": device.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return classify(err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrDeviceNotFound
	}

	return nil
}

func (s *DevicesStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// selectOrdered breaks created_at ties by id, which is time ordered for v7 UUIDs.
func (s *DevicesStore) selectOrdered() sq.SelectBuilder {
	return psql.Select(deviceColumns...).
		From(devicesTable).
		OrderBy("created_at DESC", "id DESC")
}

func (s *DevicesStore) queryOne(ctx context.Context, query string, args []any) (*model.Device, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var row deviceRow

	found, err := s.scanner.ScanOne(&row, rows)
	if err != nil {
		return nil, classify(err)
	}

	if !found {
		return nil, model.ErrDeviceNotFound
	}

	return row.toDomain()
}

func (s *DevicesStore) queryMany(ctx context.Context, builder sq.SelectBuilder) ([]*model.Device, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var deviceRows []deviceRow
	if err := s.scanner.ScanAll(&deviceRows, rows); err != nil {
		return nil, classify(err)
	}

	devices := make([]*model.Device, 0, len(deviceRows))
	for index := range deviceRows {
		device, err := deviceRows[index].toDomain()
		if err != nil {
			s.logger.Error().Err(err).Str("device_id", deviceRows[index].ID).Msg("corrupt device row")

			return nil, err
		}

		devices = append(devices, device)
	}

	return devices, nil
}

func (r deviceRow) toDomain() (*model.Device, error) {
	id, err := model.ParseDeviceID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDatabaseQuery, err)
	}

	state, err := model.ParseState(r.State)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDatabaseQuery, err)
	}

	return &model.Device{
		ID:        id,
		Name:      r.Name,
		Brand:     r.Brand,
		State:     state,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// classify maps driver errors onto the domain persistence errors.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return model.ErrDuplicateDevice
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", model.ErrDatabaseConnection, err)
	}

	return fmt.Errorf("%w: %w", model.ErrDatabaseQuery, err)
}
