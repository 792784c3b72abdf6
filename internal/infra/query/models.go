package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Client struct {
	ID                     uuid.UUID
	GraceCancellationsUsed int32
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type Practitioner struct {
	ID          uuid.UUID
	DisplayName string
	IsActive    bool
	CreatedAt   time.Time
}

type CreditGrant struct {
	ID                    uuid.UUID
	OwnerID               uuid.UUID
	SessionTypeID         pgtype.UUID
	InitialCredits        int32
	CreditsRemaining      int32
	UnitPrice             pgtype.Numeric
	PurchasedAt           time.Time
	ExpiresAt             pgtype.Timestamptz
	GraceCancellationUsed bool
	SourceKind            string
	SourceReference       string
	Currency              string
	Amount                pgtype.Numeric
	CreatedAt             time.Time
}

type CancellationPolicy struct {
	Version                   int32
	StandardCancellationHours int32
	LateCancellationHours     int32
	LateFees                  []byte
	GraceCancellationsAllowed int32
	IsActive                  bool
	Text                      string
	CreatedAt                 time.Time
}

type Booking struct {
	ID                        uuid.UUID
	ClientID                  uuid.UUID
	PractitionerID            uuid.UUID
	ScheduledAt               time.Time
	DurationMinutes           int32
	Status                    string
	CancellationPolicyVersion pgtype.Int4
	SessionTypeID             pgtype.UUID
	CreditGrantID             uuid.UUID
	RoomName                  string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

type CancellationRecord struct {
	ID                  uuid.UUID
	BookingID           uuid.UUID
	UserID              uuid.UUID
	CancelledAt         time.Time
	CancellationType    string
	HoursBeforeStart    float64
	FeeCharged          pgtype.Numeric
	FeeCurrency         string
	CreditReturned      pgtype.Numeric
	CreditUnitsReturned int32
	CreditCurrency      string
	ReturnedGrantID     pgtype.UUID
	Reason              pgtype.Text
	PolicyVersion       int32
	GraceRequested      bool
}

type ProcessedPurchase struct {
	PurchaseReference string
	ClientID          uuid.UUID
	GrantID           uuid.UUID
	ProcessedAt       time.Time
}
