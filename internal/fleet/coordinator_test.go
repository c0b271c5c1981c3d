package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fleetflow-backend/internal/db"
	"fleetflow-backend/internal/model"
	"fleetflow-backend/internal/store"
)

// alertRecorder captures service-due alert dispatches.
type alertRecorder struct {
	vehicleIDs []int64
}

func (a *alertRecorder) Dispatch(vehicleID int64) {
	a.vehicleIDs = append(a.vehicleIDs, vehicleID)
}

func newTestCoordinator(t *testing.T) (*Coordinator, *gorm.DB, *alertRecorder) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	alerts := &alertRecorder{}
	return New(store.NewGormStore(gdb), alerts), gdb, alerts
}

func seedVehicle(t *testing.T, c *Coordinator, plate string, odometer, capacity float64) *model.Vehicle {
	t.Helper()
	v := &model.Vehicle{
		Name:         "Truck " + plate,
		LicensePlate: plate,
		MaxCapacity:  capacity,
		Odometer:     odometer,
	}
	require.NoError(t, c.EnrollVehicle(context.Background(), v))
	return v
}

func seedDriver(t *testing.T, c *Coordinator, name string) *model.Driver {
	t.Helper()
	d := &model.Driver{
		Name:               name,
		LicenseExpiry:      time.Now().AddDate(1, 0, 0),
		SafetyScore:        100,
		TripCompletionRate: 100,
	}
	require.NoError(t, c.EnrollDriver(context.Background(), d))
	return d
}

func reloadVehicle(t *testing.T, gdb *gorm.DB, id int64) *model.Vehicle {
	t.Helper()
	var v model.Vehicle
	require.NoError(t, gdb.First(&v, id).Error)
	return &v
}

func reloadDriver(t *testing.T, gdb *gorm.DB, id int64) *model.Driver {
	t.Helper()
	var d model.Driver
	require.NoError(t, gdb.First(&d, id).Error)
	return &d
}

func reloadTrip(t *testing.T, gdb *gorm.DB, id int64) *model.Trip {
	t.Helper()
	var tr model.Trip
	require.NoError(t, gdb.First(&tr, id).Error)
	return &tr
}

func TestTripLifecycleHappyPath(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-100", 1000, 5000)
	driver := seedDriver(t, coord, "Jordan")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 4000)
	require.NoError(t, err)
	assert.Equal(t, model.TripDraft, trip.Status)

	// Drafting a trip has no side effects.
	assert.Equal(t, model.VehicleAvailable, reloadVehicle(t, gdb, vehicle.ID).Status)
	assert.Equal(t, model.DriverOffDuty, reloadDriver(t, gdb, driver.ID).Status)

	trip, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TripDispatched, trip.Status)
	assert.Equal(t, 1000.0, trip.StartOdometer)
	assert.Equal(t, model.VehicleOnTrip, reloadVehicle(t, gdb, vehicle.ID).Status)
	assert.Equal(t, model.DriverOnDuty, reloadDriver(t, gdb, driver.ID).Status)

	trip, err = coord.CompleteTrip(ctx, trip.ID, 1500)
	require.NoError(t, err)
	assert.Equal(t, model.TripCompleted, trip.Status)
	require.NotNil(t, trip.EndOdometer)
	assert.Equal(t, 1500.0, *trip.EndOdometer)

	v := reloadVehicle(t, gdb, vehicle.ID)
	assert.Equal(t, model.VehicleAvailable, v.Status)
	assert.Equal(t, 1500.0, v.Odometer)
	assert.Equal(t, model.DriverOffDuty, reloadDriver(t, gdb, driver.ID).Status)
}

func TestDispatchTwiceFails(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-101", 0, 5000)
	driver := seedDriver(t, coord, "Riley")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)

	// Nothing moved.
	assert.Equal(t, model.TripDispatched, reloadTrip(t, gdb, trip.ID).Status)
	assert.Equal(t, model.VehicleOnTrip, reloadVehicle(t, gdb, vehicle.ID).Status)
	assert.Equal(t, model.DriverOnDuty, reloadDriver(t, gdb, driver.ID).Status)
}

func TestDispatchClaimedResourcesConflicts(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-102", 0, 5000)
	other := seedVehicle(t, coord, "FL-103", 0, 5000)
	driver := seedDriver(t, coord, "Sam")
	otherDriver := seedDriver(t, coord, "Alex")

	first, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, first.ID)
	require.NoError(t, err)

	// Same vehicle, different driver.
	second, err := coord.CreateTrip(ctx, vehicle.ID, otherDriver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, second.ID)
	require.ErrorIs(t, err, ErrConflict)

	// Same driver, different vehicle.
	third, err := coord.CreateTrip(ctx, other.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, third.ID)
	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateTripCargoValidation(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-104", 0, 5000)
	driver := seedDriver(t, coord, "Casey")

	_, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 6000)
	require.ErrorIs(t, err, ErrValidation)

	_, err = coord.CreateTrip(ctx, vehicle.ID, driver.ID, 0)
	require.ErrorIs(t, err, ErrValidation)

	var n int64
	require.NoError(t, gdb.Model(&model.Trip{}).Count(&n).Error)
	assert.Zero(t, n, "rejected trips must not be persisted")

	// Cargo exactly at capacity is allowed.
	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 5000)
	require.NoError(t, err)
	assert.Equal(t, model.TripDraft, trip.Status)
}

func TestCreateTripReferentialChecks(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-105", 0, 5000)
	driver := seedDriver(t, coord, "Drew")

	_, err := coord.CreateTrip(ctx, 9999, driver.ID, 100)
	require.ErrorIs(t, err, ErrReferential)

	_, err = coord.CreateTrip(ctx, vehicle.ID, 9999, 100)
	require.ErrorIs(t, err, ErrReferential)
}

func TestCreateTripRejectsIneligibleParties(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-106", 0, 5000)
	driver := seedDriver(t, coord, "Morgan")

	_, err := coord.SuspendDriver(ctx, driver.ID)
	require.NoError(t, err)
	_, err = coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.ErrorIs(t, err, ErrValidation)
	_, err = coord.ReinstateDriver(ctx, driver.ID)
	require.NoError(t, err)

	expired := seedDriver(t, coord, "Lapsed")
	_, err = coord.UpdateDriver(ctx, expired.ID, DriverUpdate{
		LicenseExpiry: timePtr(time.Now().AddDate(0, 0, -1)),
	})
	require.NoError(t, err)
	_, err = coord.CreateTrip(ctx, vehicle.ID, expired.ID, 100)
	require.ErrorIs(t, err, ErrValidation)

	_, err = coord.RetireVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	_, err = coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.ErrorIs(t, err, ErrValidation)
}

func TestMaintenanceBlocksDispatch(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-107", 0, 5000)
	driver := seedDriver(t, coord, "Taylor")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)

	require.NoError(t, coord.RecordMaintenance(ctx, &model.MaintenanceLog{
		VehicleID:   vehicle.ID,
		ServiceType: "Brake inspection",
		Cost:        250,
	}))
	assert.Equal(t, model.VehicleInShop, reloadVehicle(t, gdb, vehicle.ID).Status)

	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, model.TripDraft, reloadTrip(t, gdb, trip.ID).Status)

	// Returning to service reopens dispatch.
	_, err = coord.CompleteMaintenance(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleAvailable, reloadVehicle(t, gdb, vehicle.ID).Status)

	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)
}

func TestMaintenanceOnActiveTripConflicts(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-108", 0, 5000)
	driver := seedDriver(t, coord, "Quinn")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	err = coord.RecordMaintenance(ctx, &model.MaintenanceLog{
		VehicleID:   vehicle.ID,
		ServiceType: "Oil change",
	})
	require.ErrorIs(t, err, ErrConflict)

	var n int64
	require.NoError(t, gdb.Model(&model.MaintenanceLog{}).Count(&n).Error)
	assert.Zero(t, n, "rejected maintenance must not be persisted")
}

func TestCompleteMaintenanceRequiresInShop(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-109", 0, 5000)
	_, err := coord.CompleteMaintenance(ctx, vehicle.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteTripRejectsRegressiveOdometer(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-110", 1000, 5000)
	driver := seedDriver(t, coord, "Avery")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	_, err = coord.CompleteTrip(ctx, trip.ID, 900)
	require.ErrorIs(t, err, ErrInvalidTransition)

	// The trip stays dispatched and everything stays claimed.
	assert.Equal(t, model.TripDispatched, reloadTrip(t, gdb, trip.ID).Status)
	v := reloadVehicle(t, gdb, vehicle.ID)
	assert.Equal(t, model.VehicleOnTrip, v.Status)
	assert.Equal(t, 1000.0, v.Odometer)
	assert.Equal(t, model.DriverOnDuty, reloadDriver(t, gdb, driver.ID).Status)

	// Completing at the same reading (zero-distance trip) is allowed.
	_, err = coord.CompleteTrip(ctx, trip.ID, 1000)
	require.NoError(t, err)
}

func TestTerminalTripsStayTerminal(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-111", 0, 5000)
	driver := seedDriver(t, coord, "Reese")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)
	_, err = coord.CompleteTrip(ctx, trip.ID, 100)
	require.NoError(t, err)

	_, err = coord.CancelTrip(ctx, trip.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = coord.CompleteTrip(ctx, trip.ID, 200)
	require.ErrorIs(t, err, ErrInvalidTransition)

	cancelled, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.CancelTrip(ctx, cancelled.ID)
	require.NoError(t, err)
	_, err = coord.CancelTrip(ctx, cancelled.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelTrip(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-112", 0, 5000)
	driver := seedDriver(t, coord, "Emerson")

	t.Run("draft cancel has no side effects", func(t *testing.T) {
		trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
		require.NoError(t, err)
		trip, err = coord.CancelTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, model.TripCancelled, trip.Status)
		assert.Equal(t, model.VehicleAvailable, reloadVehicle(t, gdb, vehicle.ID).Status)
		assert.Equal(t, model.DriverOffDuty, reloadDriver(t, gdb, driver.ID).Status)
	})

	t.Run("dispatched cancel releases vehicle and driver", func(t *testing.T) {
		trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
		require.NoError(t, err)
		_, err = coord.DispatchTrip(ctx, trip.ID)
		require.NoError(t, err)

		trip, err = coord.CancelTrip(ctx, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, model.TripCancelled, trip.Status)
		assert.Equal(t, model.VehicleAvailable, reloadVehicle(t, gdb, vehicle.ID).Status)
		assert.Equal(t, model.DriverOffDuty, reloadDriver(t, gdb, driver.ID).Status)
	})
}

func TestDecommissionVehicle(t *testing.T) {
	coord, gdb, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-113", 0, 5000)
	driver := seedDriver(t, coord, "Rowan")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)

	err = coord.DecommissionVehicle(ctx, vehicle.ID)
	require.ErrorIs(t, err, ErrConflict)

	_, err = coord.CancelTrip(ctx, trip.ID)
	require.NoError(t, err)

	require.NoError(t, coord.RecordFuel(ctx, &model.FuelLog{VehicleID: vehicle.ID, Liters: 40, Cost: 60}))
	require.NoError(t, coord.DecommissionVehicle(ctx, vehicle.ID))

	var vehicles, fuel int64
	require.NoError(t, gdb.Model(&model.Vehicle{}).Where("id = ?", vehicle.ID).Count(&vehicles).Error)
	require.NoError(t, gdb.Model(&model.FuelLog{}).Where("vehicle_id = ?", vehicle.ID).Count(&fuel).Error)
	assert.Zero(t, vehicles)
	assert.Zero(t, fuel, "dependent records are removed with the vehicle")
}

func TestRemoveDriverBlockedByActiveTrip(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-114", 0, 5000)
	driver := seedDriver(t, coord, "Sage")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)

	require.ErrorIs(t, coord.RemoveDriver(ctx, driver.ID), ErrConflict)

	_, err = coord.CancelTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.NoError(t, coord.RemoveDriver(ctx, driver.ID))
}

func TestSuspendAndReinstateDriver(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-115", 0, 5000)
	driver := seedDriver(t, coord, "Hollis")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	// On-duty drivers cannot be suspended out from under a trip.
	_, err = coord.SuspendDriver(ctx, driver.ID)
	require.ErrorIs(t, err, ErrConflict)

	_, err = coord.CompleteTrip(ctx, trip.ID, 50)
	require.NoError(t, err)

	d, err := coord.SuspendDriver(ctx, driver.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DriverSuspended, d.Status)

	_, err = coord.SuspendDriver(ctx, driver.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)

	d, err = coord.ReinstateDriver(ctx, driver.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DriverOffDuty, d.Status)

	_, err = coord.ReinstateDriver(ctx, driver.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRetireVehicle(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-116", 0, 5000)
	driver := seedDriver(t, coord, "Blake")

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)

	_, err = coord.RetireVehicle(ctx, vehicle.ID)
	require.ErrorIs(t, err, ErrConflict)

	_, err = coord.CompleteTrip(ctx, trip.ID, 10)
	require.NoError(t, err)

	v, err := coord.RetireVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleRetired, v.Status)

	_, err = coord.RetireVehicle(ctx, vehicle.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)

	// Retired vehicles cannot re-enter the shop.
	err = coord.RecordMaintenance(ctx, &model.MaintenanceLog{VehicleID: vehicle.ID, ServiceType: "Tires"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestEnrollVehicleDuplicatePlate(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	seedVehicle(t, coord, "FL-117", 0, 5000)
	err := coord.EnrollVehicle(ctx, &model.Vehicle{
		Name:         "Clone",
		LicensePlate: "FL-117",
		MaxCapacity:  1000,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateVehicleRegistry(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-118", 0, 5000)
	other := seedVehicle(t, coord, "FL-119", 0, 5000)

	_, err := coord.UpdateVehicle(ctx, vehicle.ID, VehicleUpdate{LicensePlate: strPtr(other.LicensePlate)})
	require.ErrorIs(t, err, ErrValidation)

	v, err := coord.UpdateVehicle(ctx, vehicle.ID, VehicleUpdate{
		Name:        strPtr("Renamed"),
		MaxCapacity: floatPtr(7500),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", v.Name)
	assert.Equal(t, 7500.0, v.MaxCapacity)

	_, err = coord.UpdateVehicle(ctx, vehicle.ID, VehicleUpdate{MaxCapacity: floatPtr(-1)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestFuelAndExpenseRecords(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-120", 0, 5000)

	require.ErrorIs(t, coord.RecordFuel(ctx, &model.FuelLog{VehicleID: vehicle.ID, Liters: 0}), ErrValidation)
	require.ErrorIs(t, coord.RecordFuel(ctx, &model.FuelLog{VehicleID: 9999, Liters: 10}), ErrReferential)

	fuel := &model.FuelLog{VehicleID: vehicle.ID, Liters: 42.5, Cost: 68.3}
	require.NoError(t, coord.RecordFuel(ctx, fuel))
	assert.False(t, fuel.Date.IsZero(), "date defaults to now")

	require.ErrorIs(t, coord.RecordExpense(ctx, &model.Expense{VehicleID: vehicle.ID}), ErrValidation)
	require.ErrorIs(t, coord.RecordExpense(ctx, &model.Expense{VehicleID: 9999, Category: "Tolls", Amount: 5}), ErrReferential)
	require.NoError(t, coord.RecordExpense(ctx, &model.Expense{VehicleID: vehicle.ID, Category: "Tolls", Amount: 12.5}))
}

func TestServiceDueAlertOnCompletion(t *testing.T) {
	coord, _, alerts := newTestCoordinator(t)
	ctx := context.Background()

	vehicle := seedVehicle(t, coord, "FL-121", 1000, 5000)
	driver := seedDriver(t, coord, "Parker")
	_, err := coord.UpdateVehicle(ctx, vehicle.ID, VehicleUpdate{NextServiceOdometer: floatPtr(1200)})
	require.NoError(t, err)

	trip, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, trip.ID)
	require.NoError(t, err)
	_, err = coord.CompleteTrip(ctx, trip.ID, 1500)
	require.NoError(t, err)

	require.Len(t, alerts.vehicleIDs, 1)
	assert.Equal(t, vehicle.ID, alerts.vehicleIDs[0])

	// Below-threshold completions stay quiet.
	second, err := coord.CreateTrip(ctx, vehicle.ID, driver.ID, 100)
	require.NoError(t, err)
	_, err = coord.UpdateVehicle(ctx, vehicle.ID, VehicleUpdate{NextServiceOdometer: floatPtr(9000)})
	require.NoError(t, err)
	_, err = coord.DispatchTrip(ctx, second.ID)
	require.NoError(t, err)
	_, err = coord.CompleteTrip(ctx, second.ID, 1600)
	require.NoError(t, err)
	assert.Len(t, alerts.vehicleIDs, 1)
}

func TestEnrollDriverValidation(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	ctx := context.Background()

	require.ErrorIs(t, coord.EnrollDriver(ctx, &model.Driver{
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
	}), ErrValidation)

	require.ErrorIs(t, coord.EnrollDriver(ctx, &model.Driver{
		Name: "No expiry",
	}), ErrValidation)

	require.ErrorIs(t, coord.EnrollDriver(ctx, &model.Driver{
		Name:          "Bad score",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
		SafetyScore:   101,
	}), ErrValidation)
}

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }
