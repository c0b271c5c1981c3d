package fleet

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fleetflow-backend/internal/model"
)

// VehicleUpdate carries the registry fields a vehicle update may change.
// Status and odometer are lifecycle-owned and deliberately absent.
type VehicleUpdate struct {
	Name                *string
	LicensePlate        *string
	MaxCapacity         *float64
	AcquisitionCost     *float64
	NextServiceOdometer *float64
}

// DriverUpdate carries the registry fields a driver update may change.
// Duty status is lifecycle-owned and deliberately absent.
type DriverUpdate struct {
	Name               *string
	LicenseExpiry      *time.Time
	SafetyScore        *float64
	TripCompletionRate *float64
}

// ── Vehicle registry ────────────────────────────────────────

// EnrollVehicle registers a new vehicle. It always enters the fleet as
// Available; status afterwards belongs to the lifecycle operations.
func (c *Coordinator) EnrollVehicle(ctx context.Context, v *model.Vehicle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v.Name == "" {
		return validationf("vehicle name is required")
	}
	if v.LicensePlate == "" {
		return validationf("license plate is required")
	}
	if v.MaxCapacity <= 0 {
		return validationf("max capacity must be positive")
	}
	if v.Odometer < 0 {
		return validationf("odometer must not be negative")
	}
	v.Status = model.VehicleAvailable

	return c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := plateFree(tx, v.LicensePlate, 0); err != nil {
			return err
		}
		return tx.Create(v).Error
	})
}

// UpdateVehicle applies a partial registry update.
func (c *Coordinator) UpdateVehicle(ctx context.Context, id int64, upd VehicleUpdate) (*model.Vehicle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var vehicle *model.Vehicle
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		vehicle, err = getVehicle(tx, id)
		if err != nil {
			return err
		}
		if upd.Name != nil {
			if *upd.Name == "" {
				return validationf("vehicle name is required")
			}
			vehicle.Name = *upd.Name
		}
		if upd.LicensePlate != nil && *upd.LicensePlate != vehicle.LicensePlate {
			if *upd.LicensePlate == "" {
				return validationf("license plate is required")
			}
			if err := plateFree(tx, *upd.LicensePlate, vehicle.ID); err != nil {
				return err
			}
			vehicle.LicensePlate = *upd.LicensePlate
		}
		if upd.MaxCapacity != nil {
			if *upd.MaxCapacity <= 0 {
				return validationf("max capacity must be positive")
			}
			vehicle.MaxCapacity = *upd.MaxCapacity
		}
		if upd.AcquisitionCost != nil {
			vehicle.AcquisitionCost = upd.AcquisitionCost
		}
		if upd.NextServiceOdometer != nil {
			vehicle.NextServiceOdometer = upd.NextServiceOdometer
		}
		return tx.Save(vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

// RetireVehicle takes a vehicle out of the fleet permanently. Blocked while
// the vehicle is claimed by a dispatched trip.
func (c *Coordinator) RetireVehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var vehicle *model.Vehicle
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		vehicle, err = getVehicle(tx, id)
		if err != nil {
			return err
		}
		if vehicle.Status == model.VehicleRetired {
			return transitionf("vehicle %q is already retired", vehicle.Name)
		}
		effective, err := effectiveVehicleStatus(tx, vehicle)
		if err != nil {
			return err
		}
		if effective == model.VehicleOnTrip {
			return conflictf("vehicle %q is on an active trip", vehicle.Name)
		}
		vehicle.Status = model.VehicleRetired
		return tx.Save(vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DecommissionVehicle deletes a vehicle and its dependent records. Deletion
// is blocked while any non-terminal trip references the vehicle; cancel or
// complete those trips first.
func (c *Coordinator) DecommissionVehicle(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicle, err := getVehicle(tx, id)
		if err != nil {
			return err
		}
		active, err := activeCount(tx, "vehicle_id", vehicle.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return conflictf("vehicle %q is referenced by %d active trip(s)", vehicle.Name, active)
		}

		for _, m := range []any{&model.MaintenanceLog{}, &model.FuelLog{}, &model.Expense{}} {
			if err := tx.Where("vehicle_id = ?", vehicle.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(vehicle).Error
	})
}

// ── Driver registry ─────────────────────────────────────────

// EnrollDriver registers a new driver, always Off Duty.
func (c *Coordinator) EnrollDriver(ctx context.Context, d *model.Driver) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d.Name == "" {
		return validationf("driver name is required")
	}
	if d.LicenseExpiry.IsZero() {
		return validationf("license expiry is required")
	}
	if d.SafetyScore < 0 || d.SafetyScore > 100 {
		return validationf("safety score must be between 0 and 100")
	}
	if d.TripCompletionRate < 0 || d.TripCompletionRate > 100 {
		return validationf("trip completion rate must be between 0 and 100")
	}
	d.Status = model.DriverOffDuty

	return c.store.DB().WithContext(ctx).Create(d).Error
}

// UpdateDriver applies a partial registry update.
func (c *Coordinator) UpdateDriver(ctx context.Context, id int64, upd DriverUpdate) (*model.Driver, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var driver *model.Driver
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		driver, err = getDriver(tx, id)
		if err != nil {
			return err
		}
		if upd.Name != nil {
			if *upd.Name == "" {
				return validationf("driver name is required")
			}
			driver.Name = *upd.Name
		}
		if upd.LicenseExpiry != nil {
			driver.LicenseExpiry = *upd.LicenseExpiry
		}
		if upd.SafetyScore != nil {
			if *upd.SafetyScore < 0 || *upd.SafetyScore > 100 {
				return validationf("safety score must be between 0 and 100")
			}
			driver.SafetyScore = *upd.SafetyScore
		}
		if upd.TripCompletionRate != nil {
			if *upd.TripCompletionRate < 0 || *upd.TripCompletionRate > 100 {
				return validationf("trip completion rate must be between 0 and 100")
			}
			driver.TripCompletionRate = *upd.TripCompletionRate
		}
		return tx.Save(driver).Error
	})
	if err != nil {
		return nil, err
	}
	return driver, nil
}

// SuspendDriver takes a driver off the roster. Blocked while the driver is
// claimed by a dispatched trip.
func (c *Coordinator) SuspendDriver(ctx context.Context, id int64) (*model.Driver, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var driver *model.Driver
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		driver, err = getDriver(tx, id)
		if err != nil {
			return err
		}
		switch driver.Status {
		case model.DriverSuspended:
			return transitionf("driver %q is already suspended", driver.Name)
		case model.DriverOnDuty:
			return conflictf("driver %q is on an active trip", driver.Name)
		}
		driver.Status = model.DriverSuspended
		return tx.Save(driver).Error
	})
	if err != nil {
		return nil, err
	}
	return driver, nil
}

// ReinstateDriver returns a suspended driver to Off Duty.
func (c *Coordinator) ReinstateDriver(ctx context.Context, id int64) (*model.Driver, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var driver *model.Driver
	err := c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		driver, err = getDriver(tx, id)
		if err != nil {
			return err
		}
		if driver.Status != model.DriverSuspended {
			return transitionf("driver %q is not suspended", driver.Name)
		}
		driver.Status = model.DriverOffDuty
		return tx.Save(driver).Error
	})
	if err != nil {
		return nil, err
	}
	return driver, nil
}

// RemoveDriver deletes a driver. Blocked while any non-terminal trip
// references the driver.
func (c *Coordinator) RemoveDriver(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		driver, err := getDriver(tx, id)
		if err != nil {
			return err
		}
		active, err := activeCount(tx, "driver_id", driver.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return conflictf("driver %q is referenced by %d active trip(s)", driver.Name, active)
		}
		return tx.Delete(driver).Error
	})
}

func plateFree(tx *gorm.DB, plate string, selfID int64) error {
	var existing model.Vehicle
	err := tx.Where("license_plate = ?", plate).First(&existing).Error
	switch {
	case err == nil:
		if existing.ID != selfID {
			return validationf("license plate %q is already registered", plate)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
