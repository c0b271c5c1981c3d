package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fleetflow-backend/internal/model"
)

// Store is the entity store: a session-durable home for each collection.
// It carries no business rules; referential integrity and lifecycle
// invariants are the fleet coordinator's job. All entity writes go through
// the coordinator — presentation code only reads.
type Store interface {
	DB() *gorm.DB

	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*model.Vehicle, error)

	ListDrivers(ctx context.Context) ([]model.Driver, error)
	GetDriver(ctx context.Context, id int64) (*model.Driver, error)

	ListTrips(ctx context.Context) ([]model.Trip, error)
	GetTrip(ctx context.Context, id int64) (*model.Trip, error)

	ListMaintenanceLogs(ctx context.Context, vehicleID int64) ([]model.MaintenanceLog, error)
	ListFuelLogs(ctx context.Context, vehicleID int64) ([]model.FuelLog, error)
	ListExpenses(ctx context.Context, vehicleID int64) ([]model.Expense, error)

	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	ListAuditLogs(ctx context.Context) ([]model.AuditLog, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for the coordinator's transactional
// writes and for read-only aggregation queries.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := s.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *gormStore) GetVehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *gormStore) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	if err := s.db.WithContext(ctx).Order("id").Find(&drivers).Error; err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return drivers, nil
}

func (s *gormStore) GetDriver(ctx context.Context, id int64) (*model.Driver, error) {
	var d model.Driver
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *gormStore) ListTrips(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	if err := s.db.WithContext(ctx).Order("id").Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func (s *gormStore) GetTrip(ctx context.Context, id int64) (*model.Trip, error) {
	var t model.Trip
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListMaintenanceLogs returns logs newest first, optionally filtered by
// vehicle. vehicleID 0 means all vehicles.
func (s *gormStore) ListMaintenanceLogs(ctx context.Context, vehicleID int64) ([]model.MaintenanceLog, error) {
	q := s.db.WithContext(ctx).Order("date DESC, id DESC")
	if vehicleID != 0 {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	var logs []model.MaintenanceLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list maintenance logs: %w", err)
	}
	return logs, nil
}

func (s *gormStore) ListFuelLogs(ctx context.Context, vehicleID int64) ([]model.FuelLog, error) {
	q := s.db.WithContext(ctx).Order("date DESC, id DESC")
	if vehicleID != 0 {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	var logs []model.FuelLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list fuel logs: %w", err)
	}
	return logs, nil
}

func (s *gormStore) ListExpenses(ctx context.Context, vehicleID int64) ([]model.Expense, error) {
	q := s.db.WithContext(ctx).Order("date DESC, id DESC")
	if vehicleID != 0 {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	var expenses []model.Expense
	if err := q.Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (s *gormStore) CreateUser(ctx context.Context, u *model.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormStore) ListAuditLogs(ctx context.Context) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	if err := s.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
