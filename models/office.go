package models

// Office is the tenant entity: it authenticates against the API and owns
// at most one Team. IDs are assigned by the branch administrator, not
// generated.
type Office struct {
	OfficeID     int    `gorm:"primaryKey;autoIncrement:false" json:"officeID"`
	Branch       string `gorm:"not null" json:"officeBranch"`
	Phone        int    `json:"officePhone"`
	Email        string `gorm:"uniqueIndex;not null" json:"officeEmail"`
	PasswordHash string `gorm:"not null" json:"-"`
}
