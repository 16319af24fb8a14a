package dashboard

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StatsCache holds a per-user snapshot of dashboard aggregates so repeat
// loads skip the aggregate queries. Snapshots expire by age, never by
// invalidation.
type StatsCache struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	RefreshedAt time.Time      `gorm:"not null" json:"refreshed_at"`
}
