package models

type TeamStatus string

const (
	TeamStatusAvailable   TeamStatus = "AVAILABLE"
	TeamStatusUnavailable TeamStatus = "UNAVAILABLE"
)

// Team is a group of Members performing Events. OfficeID links the team to
// the office that owns it; the reverse direction (office -> team) is a
// derived lookup on this column, there is no separate join table.
type Team struct {
	TeamID   int        `gorm:"primaryKey" json:"teamID"`
	OfficeID *int       `gorm:"column:team_office_id;index" json:"teamOfficeID"`
	Name     string     `gorm:"not null" json:"teamName"`
	Leader   string     `json:"teamLeader"`
	Status   TeamStatus `gorm:"default:'AVAILABLE'" json:"teamStatus"`

	// Relations
	Members []Member `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}
