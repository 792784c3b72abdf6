package shared

import (
	"context"
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/domain/cancellation"
	"session-ledger/internal/domain/credit"
	"session-ledger/internal/domain/policy"
	"session-ledger/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Grants() GrantRepository
	Clients() ClientRepository
	Bookings() BookingRepository
	Policies() PolicyRepository
	Cancellations() CancellationRepository
	Purchases() PurchaseRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	PractitionerByID(ctx context.Context, id uuid.UUID) (*PractitionerSnapshot, error)
	ActivePolicy(ctx context.Context) (*policy.Policy, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GrantByID(ctx context.Context, id uuid.UUID) (*credit.Grant, error)
	RedeemableGrants(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*credit.Grant, error)
	ProcessedPurchase(ctx context.Context, reference string) (*PurchaseSnapshot, error)
}

type GrantRepository interface {
	Create(ctx context.Context, g *credit.Grant) error
	// ConsumeOne returns the remaining credits; an exhausted grant yields a NOT_FOUND repository error.
	ConsumeOne(ctx context.Context, grantID uuid.UUID) (int, error)
	MarkGraceUsed(ctx context.Context, grantID uuid.UUID) error
}

type ClientRepository interface {
	Ensure(ctx context.Context, clientID uuid.UUID) error
	// ClaimGrace increments the counter only while it is below allowed.
	ClaimGrace(ctx context.Context, clientID uuid.UUID, allowed int32) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CancelIfScheduled reports false when the booking is no longer scheduled.
	CancelIfScheduled(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type PolicyRepository interface {
	Publish(ctx context.Context, p *policy.Policy) (*policy.Policy, error)
}

type CancellationRepository interface {
	Create(ctx context.Context, r *cancellation.Record) error
}

type PurchaseRepository interface {
	// MarkProcessed reports false when the reference was already recorded.
	MarkProcessed(ctx context.Context, p PurchaseSnapshot) (bool, error)
}
