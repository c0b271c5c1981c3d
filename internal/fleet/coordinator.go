package fleet

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"fleetflow-backend/internal/model"
	"fleetflow-backend/internal/store"
)

// ServiceAlerter receives vehicle IDs whose odometer has crossed the
// next-service threshold.
type ServiceAlerter interface {
	Dispatch(vehicleID int64)
}

// Coordinator owns every entity-mutating operation that must preserve
// cross-entity invariants: the trip lifecycle, vehicle availability and
// driver duty status. It is the single writer for the entity store; each
// operation runs under one mutex and one database transaction, so all side
// effects of a transition land together or not at all.
type Coordinator struct {
	mu     sync.Mutex
	store  store.Store
	alerts ServiceAlerter
}

// New creates a Coordinator over the given store. alerts may be nil.
func New(s store.Store, alerts ServiceAlerter) *Coordinator {
	return &Coordinator{store: s, alerts: alerts}
}

// ── Trip lifecycle ──────────────────────────────────────────

// CreateTrip validates references and capacity and creates a Draft trip.
// No vehicle or driver side effects happen until dispatch.
func (c *Coordinator) CreateTrip(ctx context.Context, vehicleID, driverID int64, cargoWeight float64) (*model.Trip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	trip := &model.Trip{
		VehicleID:   vehicleID,
		DriverID:    driverID,
		CargoWeight: cargoWeight,
		Status:      model.TripDraft,
	}

	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicle, err := getVehicle(tx, vehicleID)
		if err != nil {
			return err
		}
		driver, err := getDriver(tx, driverID)
		if err != nil {
			return err
		}

		if vehicle.Status == model.VehicleRetired {
			return validationf("vehicle %q is retired", vehicle.Name)
		}
		if driver.Status == model.DriverSuspended {
			return validationf("driver %q is suspended", driver.Name)
		}
		if licenseExpired(driver, time.Now()) {
			return validationf("driver %q has an expired license (expired %s)",
				driver.Name, driver.LicenseExpiry.Format("2006-01-02"))
		}
		if cargoWeight <= 0 {
			return validationf("cargo weight must be positive")
		}
		if cargoWeight > vehicle.MaxCapacity {
			return validationf("cargo weight (%.0f kg) exceeds vehicle max capacity (%.0f kg)",
				cargoWeight, vehicle.MaxCapacity)
		}

		return tx.Create(trip).Error
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// DispatchTrip commits a Draft trip to active execution, claiming its
// vehicle and driver. Availability is re-derived from the authoritative
// sources inside the transaction rather than trusted from cached columns,
// so a trip-driven and a maintenance-driven writer cannot race each other
// into a double claim.
func (c *Coordinator) DispatchTrip(ctx context.Context, tripID int64) (*model.Trip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var trip *model.Trip
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		trip, err = getTrip(tx, tripID)
		if err != nil {
			return err
		}
		if err := advance(ctx, trip, EventDispatch); err != nil {
			return err
		}

		vehicle, err := getVehicle(tx, trip.VehicleID)
		if err != nil {
			return err
		}
		driver, err := getDriver(tx, trip.DriverID)
		if err != nil {
			return err
		}

		effective, err := effectiveVehicleStatus(tx, vehicle)
		if err != nil {
			return err
		}
		if effective != model.VehicleAvailable {
			return conflictf("vehicle %q is %s, only Available vehicles can be dispatched",
				vehicle.Name, effective)
		}
		switch driver.Status {
		case model.DriverSuspended:
			return validationf("driver %q is suspended", driver.Name)
		case model.DriverOnDuty:
			return conflictf("driver %q is already on an active trip", driver.Name)
		}
		claimed, err := dispatchedCount(tx, "driver_id", driver.ID)
		if err != nil {
			return err
		}
		if claimed > 0 {
			return conflictf("driver %q is already claimed by a dispatched trip", driver.Name)
		}
		if licenseExpired(driver, time.Now()) {
			return validationf("driver %q has an expired license (expired %s)",
				driver.Name, driver.LicenseExpiry.Format("2006-01-02"))
		}
		if trip.CargoWeight > vehicle.MaxCapacity {
			return validationf("cargo weight (%.0f kg) exceeds vehicle max capacity (%.0f kg)",
				trip.CargoWeight, vehicle.MaxCapacity)
		}

		trip.StartOdometer = vehicle.Odometer
		vehicle.Status = model.VehicleOnTrip
		driver.Status = model.DriverOnDuty

		if err := tx.Save(vehicle).Error; err != nil {
			return err
		}
		if err := tx.Save(driver).Error; err != nil {
			return err
		}
		return tx.Save(trip).Error
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// CompleteTrip finishes a Dispatched trip, releases the vehicle and driver
// and advances the vehicle's odometer. The end odometer must not regress:
// service-due alerts key off odometer deltas, so a backwards write would
// corrupt every downstream interval computation.
func (c *Coordinator) CompleteTrip(ctx context.Context, tripID int64, endOdometer float64) (*model.Trip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var trip *model.Trip
	var serviceDue int64
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		trip, err = getTrip(tx, tripID)
		if err != nil {
			return err
		}
		if !CanTransition(trip.Status, EventComplete) {
			return transitionf("cannot complete a trip in status %q", trip.Status)
		}

		vehicle, err := getVehicle(tx, trip.VehicleID)
		if err != nil {
			return err
		}
		driver, err := getDriver(tx, trip.DriverID)
		if err != nil {
			return err
		}

		if endOdometer < vehicle.Odometer {
			return transitionf("end odometer (%.0f) is behind the vehicle's current reading (%.0f)",
				endOdometer, vehicle.Odometer)
		}

		if err := advance(ctx, trip, EventComplete); err != nil {
			return err
		}
		trip.EndOdometer = &endOdometer
		vehicle.Odometer = endOdometer
		vehicle.Status = model.VehicleAvailable
		driver.Status = model.DriverOffDuty

		if vehicle.NextServiceOdometer != nil && vehicle.Odometer >= *vehicle.NextServiceOdometer {
			serviceDue = vehicle.ID
		}

		if err := tx.Save(vehicle).Error; err != nil {
			return err
		}
		if err := tx.Save(driver).Error; err != nil {
			return err
		}
		return tx.Save(trip).Error
	})
	if err != nil {
		return nil, err
	}
	if serviceDue != 0 && c.alerts != nil {
		c.alerts.Dispatch(serviceDue)
	}
	return trip, nil
}

// CancelTrip cancels a Draft or Dispatched trip. A dispatched cancel
// releases the vehicle and driver, but never overwrites a vehicle state
// set by a more authoritative writer (In Shop, Retired).
func (c *Coordinator) CancelTrip(ctx context.Context, tripID int64) (*model.Trip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var trip *model.Trip
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		trip, err = getTrip(tx, tripID)
		if err != nil {
			return err
		}
		wasDispatched := trip.Status == model.TripDispatched
		if err := advance(ctx, trip, EventCancel); err != nil {
			return err
		}

		if wasDispatched {
			vehicle, err := getVehicle(tx, trip.VehicleID)
			if err != nil {
				return err
			}
			if vehicle.Status == model.VehicleOnTrip {
				vehicle.Status = model.VehicleAvailable
				if err := tx.Save(vehicle).Error; err != nil {
					return err
				}
			}
			driver, err := getDriver(tx, trip.DriverID)
			if err != nil {
				return err
			}
			if driver.Status == model.DriverOnDuty {
				driver.Status = model.DriverOffDuty
				if err := tx.Save(driver).Error; err != nil {
					return err
				}
			}
		}
		return tx.Save(trip).Error
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// ── Maintenance ─────────────────────────────────────────────

// RecordMaintenance appends a service log and forces the vehicle In Shop.
// An On Trip vehicle cannot be sent to the shop: the active trip is the
// more authoritative claim, and the cancel/complete path must find the
// vehicle where it left it. This is the explicit precedence rule between
// the two status writers.
func (c *Coordinator) RecordMaintenance(ctx context.Context, log *model.MaintenanceLog) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if log.ServiceType == "" {
		return validationf("service type is required")
	}
	if log.Cost < 0 {
		return validationf("cost must not be negative")
	}
	if log.Date.IsZero() {
		log.Date = time.Now().UTC()
	}

	return c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicle, err := getVehicle(tx, log.VehicleID)
		if err != nil {
			return err
		}
		effective, err := effectiveVehicleStatus(tx, vehicle)
		if err != nil {
			return err
		}
		if effective == model.VehicleOnTrip {
			return conflictf("vehicle %q is on an active trip and cannot enter the shop", vehicle.Name)
		}
		if effective == model.VehicleRetired {
			return conflictf("vehicle %q is retired", vehicle.Name)
		}

		if err := tx.Create(log).Error; err != nil {
			return err
		}
		vehicle.Status = model.VehicleInShop
		return tx.Save(vehicle).Error
	})
}

// CompleteMaintenance is the explicit exit from In Shop: it appends a
// "Returned to Service" follow-up log and makes the vehicle Available.
func (c *Coordinator) CompleteMaintenance(ctx context.Context, vehicleID int64) (*model.Vehicle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var vehicle *model.Vehicle
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		vehicle, err = getVehicle(tx, vehicleID)
		if err != nil {
			return err
		}
		if vehicle.Status != model.VehicleInShop {
			return transitionf("vehicle %q is %s, not In Shop", vehicle.Name, vehicle.Status)
		}

		followUp := model.MaintenanceLog{
			VehicleID:   vehicle.ID,
			ServiceType: model.ServiceTypeReturnToService,
			Date:        time.Now().UTC(),
		}
		if err := tx.Create(&followUp).Error; err != nil {
			return err
		}
		vehicle.Status = model.VehicleAvailable
		return tx.Save(vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ── Fuel & expenses ─────────────────────────────────────────

// RecordFuel appends a refueling record. No lifecycle coupling.
func (c *Coordinator) RecordFuel(ctx context.Context, log *model.FuelLog) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if log.Liters <= 0 {
		return validationf("liters must be positive")
	}
	if log.Cost < 0 {
		return validationf("cost must not be negative")
	}
	if log.Date.IsZero() {
		log.Date = time.Now().UTC()
	}

	return c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getVehicle(tx, log.VehicleID); err != nil {
			return err
		}
		return tx.Create(log).Error
	})
}

// RecordExpense appends a non-fuel expense record. No lifecycle coupling.
func (c *Coordinator) RecordExpense(ctx context.Context, e *model.Expense) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.Category == "" {
		return validationf("category is required")
	}
	if e.Amount < 0 {
		return validationf("amount must not be negative")
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}

	return c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getVehicle(tx, e.VehicleID); err != nil {
			return err
		}
		return tx.Create(e).Error
	})
}

// ── Lookup helpers ──────────────────────────────────────────

func getVehicle(tx *gorm.DB, id int64) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := tx.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referentialf("vehicle %d does not exist", id)
		}
		return nil, err
	}
	return &v, nil
}

func getDriver(tx *gorm.DB, id int64) (*model.Driver, error) {
	var d model.Driver
	if err := tx.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referentialf("driver %d does not exist", id)
		}
		return nil, err
	}
	return &d, nil
}

func getTrip(tx *gorm.DB, id int64) (*model.Trip, error) {
	var t model.Trip
	if err := tx.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referentialf("trip %d does not exist", id)
		}
		return nil, err
	}
	return &t, nil
}

// dispatchedCount counts Dispatched trips referencing the given column.
func dispatchedCount(tx *gorm.DB, column string, id int64) (int64, error) {
	var n int64
	err := tx.Model(&model.Trip{}).
		Where(column+" = ? AND status = ?", id, model.TripDispatched).
		Count(&n).Error
	return n, err
}

// activeCount counts non-terminal (Draft or Dispatched) trips referencing
// the given column.
func activeCount(tx *gorm.DB, column string, id int64) (int64, error) {
	var n int64
	err := tx.Model(&model.Trip{}).
		Where(column+" = ? AND status IN ?", id, []model.TripStatus{model.TripDraft, model.TripDispatched}).
		Count(&n).Error
	return n, err
}

func licenseExpired(d *model.Driver, now time.Time) bool {
	y, m, day := now.UTC().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return d.LicenseExpiry.Before(today)
}
