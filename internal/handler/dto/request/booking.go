package request

import (
	"time"

	"session-ledger/internal/domain/user"
	"session-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookRequest struct {
	PractitionerID  uuid.UUID  `json:"practitioner_id" binding:"required"`
	ScheduledAt     time.Time  `json:"scheduled_at" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,min=1,max=480"`
	SessionTypeID   *uuid.UUID `json:"session_type_id"`
}

func (r *BookRequest) ToCommand(clientID uuid.UUID) commands.BookRequest {
	return commands.BookRequest{
		ClientID:        clientID,
		PractitionerID:  r.PractitionerID,
		ScheduledAt:     r.ScheduledAt.UTC(),
		DurationMinutes: r.DurationMinutes,
		SessionTypeID:   r.SessionTypeID,
	}
}

type CancelRequest struct {
	Reason   *string `json:"reason" binding:"omitempty,max=500"`
	UseGrace bool    `json:"use_grace"`
}

func (r *CancelRequest) ToCommand(bookingID uuid.UUID, actor user.Principal) commands.CancelRequest {
	return commands.CancelRequest{
		BookingID: bookingID,
		Actor:     actor,
		Reason:    r.Reason,
		UseGrace:  r.UseGrace,
	}
}
