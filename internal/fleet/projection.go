package fleet

import (
	"errors"

	"gorm.io/gorm"

	"fleetflow-backend/internal/model"
)

// effectiveVehicleStatus recomputes a vehicle's availability from the
// authoritative sources instead of trusting the cached status column:
// the retired flag, then a live Dispatched trip claim, then an open shop
// visit (most recent maintenance log without a "Returned to Service"
// follow-up). The cached column can drift only between writers; this
// projection cannot.
func effectiveVehicleStatus(tx *gorm.DB, v *model.Vehicle) (model.VehicleStatus, error) {
	if v.Status == model.VehicleRetired {
		return model.VehicleRetired, nil
	}

	claimed, err := dispatchedCount(tx, "vehicle_id", v.ID)
	if err != nil {
		return "", err
	}
	if claimed > 0 {
		return model.VehicleOnTrip, nil
	}

	var last model.MaintenanceLog
	err = tx.Where("vehicle_id = ?", v.ID).Order("id DESC").First(&last).Error
	switch {
	case err == nil:
		if last.ServiceType != model.ServiceTypeReturnToService {
			return model.VehicleInShop, nil
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", err
	}

	return model.VehicleAvailable, nil
}
