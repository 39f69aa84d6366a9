package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AICallLog records one recommendation round trip against the language-model
// service. Inserts are best effort and never block the chat path.
type AICallLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Model      string         `gorm:"column:model" json:"model"`
	Request    datatypes.JSON `gorm:"column:request;type:jsonb" json:"request"`
	Response   datatypes.JSON `gorm:"column:response;type:jsonb" json:"response"`
	Status     string         `gorm:"column:status" json:"status"`
	LatencyMS  int64          `gorm:"column:latency_ms" json:"latency_ms"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (AICallLog) TableName() string {
	return "ai_call_log"
}
