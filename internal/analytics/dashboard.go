package analytics

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	"fleetflow-backend/internal/model"
)

// Dashboard holds the computed KPIs for the console's dashboard view.
type Dashboard struct {
	TotalVehicles     int64   `json:"total_vehicles"`
	AvailableVehicles int64   `json:"available_vehicles"`
	OnTripVehicles    int64   `json:"on_trip_vehicles"`
	InShopVehicles    int64   `json:"in_shop_vehicles"`
	FleetUtilization  float64 `json:"fleet_utilization"`

	TotalDrivers  int64 `json:"total_drivers"`
	OnDutyDrivers int64 `json:"on_duty_drivers"`

	TotalTrips     int64 `json:"total_trips"`
	ActiveTrips    int64 `json:"active_trips"`
	CompletedTrips int64 `json:"completed_trips"`

	TotalFuelCost        float64 `json:"total_fuel_cost"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	TotalOperationalCost float64 `json:"total_operational_cost"`

	// Km per liter over completed trips, nil when no fuel is recorded.
	AvgFuelEfficiency *float64 `json:"avg_fuel_efficiency,omitempty"`
}

// ComputeDashboard aggregates all dashboard KPIs in one call. Read-only.
func ComputeDashboard(ctx context.Context, db *gorm.DB) (*Dashboard, error) {
	d := &Dashboard{}
	q := db.WithContext(ctx)

	type statusCount struct {
		Status string
		N      int64
	}

	var vehicleCounts []statusCount
	if err := q.Model(&model.Vehicle{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&vehicleCounts).Error; err != nil {
		return nil, fmt.Errorf("aggregate vehicles: %w", err)
	}
	for _, vc := range vehicleCounts {
		d.TotalVehicles += vc.N
		switch model.VehicleStatus(vc.Status) {
		case model.VehicleAvailable:
			d.AvailableVehicles = vc.N
		case model.VehicleOnTrip:
			d.OnTripVehicles = vc.N
		case model.VehicleInShop:
			d.InShopVehicles = vc.N
		}
	}
	if d.TotalVehicles > 0 {
		d.FleetUtilization = round1(float64(d.OnTripVehicles) / float64(d.TotalVehicles) * 100)
	}

	if err := q.Model(&model.Driver{}).Count(&d.TotalDrivers).Error; err != nil {
		return nil, fmt.Errorf("count drivers: %w", err)
	}
	if err := q.Model(&model.Driver{}).
		Where("status = ?", model.DriverOnDuty).
		Count(&d.OnDutyDrivers).Error; err != nil {
		return nil, fmt.Errorf("count on-duty drivers: %w", err)
	}

	var tripCounts []statusCount
	if err := q.Model(&model.Trip{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&tripCounts).Error; err != nil {
		return nil, fmt.Errorf("aggregate trips: %w", err)
	}
	for _, tc := range tripCounts {
		d.TotalTrips += tc.N
		switch model.TripStatus(tc.Status) {
		case model.TripDispatched:
			d.ActiveTrips = tc.N
		case model.TripCompleted:
			d.CompletedTrips = tc.N
		}
	}

	var fuelCost, fuelLiters float64
	if err := q.Model(&model.FuelLog{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&fuelCost).Error; err != nil {
		return nil, fmt.Errorf("sum fuel cost: %w", err)
	}
	if err := q.Model(&model.FuelLog{}).
		Select("COALESCE(SUM(liters), 0)").
		Scan(&fuelLiters).Error; err != nil {
		return nil, fmt.Errorf("sum fuel liters: %w", err)
	}
	var maintenanceCost float64
	if err := q.Model(&model.MaintenanceLog{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&maintenanceCost).Error; err != nil {
		return nil, fmt.Errorf("sum maintenance cost: %w", err)
	}
	d.TotalFuelCost = round2(fuelCost)
	d.TotalMaintenanceCost = round2(maintenanceCost)
	d.TotalOperationalCost = round2(fuelCost + maintenanceCost)

	// Average fuel efficiency across completed trips with recorded fuel.
	var totalKm float64
	if err := q.Model(&model.Trip{}).
		Select("COALESCE(SUM(end_odometer - start_odometer), 0)").
		Where("status = ? AND end_odometer IS NOT NULL", model.TripCompleted).
		Scan(&totalKm).Error; err != nil {
		return nil, fmt.Errorf("sum trip distance: %w", err)
	}
	if fuelLiters > 0 {
		eff := round2(totalKm / fuelLiters)
		d.AvgFuelEfficiency = &eff
	}

	return d, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
