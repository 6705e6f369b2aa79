package models

type Driver struct {
	DriverID int    `gorm:"primaryKey;autoIncrement:false" json:"driverID"`
	Name     string `gorm:"not null" json:"driverName"`
	Number   int    `json:"driverNumber"`
	Region   string `gorm:"index" json:"driverRegion"`
}
