package types

import "time"

// Progress records that a group completed a module. Records are append-only;
// idempotency is the caller's responsibility.
type Progress struct {
	ID                 string    `json:"id"`
	ModuleID           string    `json:"moduleId"`
	GroupName          string    `json:"groupName"`
	Completed          bool      `json:"completed"`
	TimeWatchedMinutes int       `json:"timeWatchedEstimate"`
	CreatedAt          time.Time `json:"createdAt"`
}
