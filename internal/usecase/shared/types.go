package shared

import (
	"time"

	"github.com/google/uuid"
)

type PractitionerSnapshot struct {
	ID          uuid.UUID
	DisplayName string
	IsActive    bool
}

type PurchaseSnapshot struct {
	Reference   string
	ClientID    uuid.UUID
	GrantID     uuid.UUID
	ProcessedAt time.Time
}
