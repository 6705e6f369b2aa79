package models

// Member belongs to a Team and may be linked to a Vehicle and a Driver
// record. All links are nullable; the data layer does not prevent them from
// dangling.
type Member struct {
	MemberID      int    `gorm:"primaryKey;autoIncrement:false" json:"memberID"`
	TeamID        *int   `gorm:"index" json:"memberTeamID"`
	VehicleRegNum *int   `json:"memberVehicleRegNum"`
	DriverID      *int   `json:"memberDriverID"`
	Name          string `gorm:"not null" json:"memberName"`
	Number        int    `json:"memberNumber"`
}
