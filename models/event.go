package models

import "time"

type EventStatus string

const (
	EventStatusActive   EventStatus = "ACTIVE"
	EventStatusFinished EventStatus = "FINISHED"
)

// Problem severity runs 1 (low) to 4 (critical); 0 means no problem
// reported.
const MaxProblemType = 4

// Event is a scheduled activity assigned to a Team and owned by the office
// that created it. TeamOfficeID is a denormalized copy of the team's office
// taken at create/update time; it is not kept in sync if the team later
// moves to another office.
type Event struct {
	EventID            int         `gorm:"primaryKey" json:"eventID"`
	OfficeID           int         `gorm:"column:event_office_id;index" json:"eventOfficeID"`
	TeamID             int         `gorm:"column:event_team_id;index" json:"eventTeamID"`
	TeamOfficeID       *int        `gorm:"column:event_team_office_id" json:"eventTeamOfficeID"`
	Name               string      `gorm:"not null" json:"eventName"`
	Description        string      `json:"eventDescription"`
	StartDate          time.Time   `json:"eventStartDate"`
	EndDate            time.Time   `json:"eventEndDate"`
	ProblemType        int         `gorm:"default:0" json:"eventProblemType"`
	ProblemDescription string      `json:"eventProblemDescription"`
	Status             EventStatus `gorm:"default:'ACTIVE'" json:"status"`
}
