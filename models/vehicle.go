package models

const (
	VehicleTypeCar = 1
	VehicleTypeVan = 2
	VehicleTypeBus = 3
)

// Vehicle optionally references one Driver. At most one vehicle may hold a
// given driver at a time; this is kept true by the service layer
// (check-then-clear-then-assign), not by a database constraint.
type Vehicle struct {
	RegNum   int    `gorm:"primaryKey;autoIncrement:false;column:vehicle_reg_num" json:"vehicleRegNum"`
	DriverID *int   `gorm:"index" json:"vehicleDriverID"`
	Brand    string `json:"vehicleBrand"`
	Model    string `json:"vehicleModel"`
	Type     int    `gorm:"index" json:"vehicleType"` // 1 car, 2 van, 3 bus
	Capacity int    `json:"vehicleCapacity"`
}
