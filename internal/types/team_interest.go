package types

import "time"

// TeamInterest is one persisted lead row. The column set is the canonical
// shape; the POST body additionally accepts the endpoint-variant aliases
// (interestType, position, comments, contactPermission) which the service
// maps onto these columns. Append-only.
type TeamInterest struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Email        string    `gorm:"not null;column:email" json:"email"`
	Role         string    `gorm:"column:role;default:''" json:"role"`
	Organization string    `gorm:"column:organization;default:''" json:"organization"`
	Contribution string    `gorm:"column:contribution;default:''" json:"contribution"`
	Excitement   string    `gorm:"column:excitement;default:''" json:"excitement"`
	Skills       string    `gorm:"column:skills;default:''" json:"skills"`
	WantsUpdates bool      `gorm:"column:wants_updates;default:false" json:"wants_updates"`
	Phone        string    `gorm:"column:phone;default:''" json:"phone"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (TeamInterest) TableName() string {
	return "team_interest"
}

// LocalTeamInterest is the optimistic in-memory copy of a lead submission.
type LocalTeamInterest struct {
	LocalID      string           `json:"localId"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Role         string           `json:"role"`
	Organization string           `json:"organization"`
	Contribution string           `json:"contribution"`
	Excitement   string           `json:"excitement"`
	Skills       string           `json:"skills"`
	WantsUpdates bool             `json:"wantsUpdates"`
	Phone        string           `json:"phone"`
	Status       SubmissionStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}
