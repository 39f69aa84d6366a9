package types

import "time"

// Feedback is one persisted feedback row. Append-only.
type Feedback struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Message        string    `gorm:"not null;column:message" json:"message"`
	EmotionalState *string   `gorm:"column:emotional_state" json:"emotional_state"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// LocalFeedback is the optimistic in-memory copy pushed before the gateway
// forward settles.
type LocalFeedback struct {
	LocalID        string           `json:"localId"`
	Message        string           `json:"message"`
	EmotionalState *string          `json:"emotionalState"`
	Status         SubmissionStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
}
