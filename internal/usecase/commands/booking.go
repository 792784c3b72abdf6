package commands

import (
	"context"
	"log/slog"
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/domain/credit"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/metrics"
	"session-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPractitionerNotFound = errs.Kind("practitioner not found", errs.ErrNotFound)
	ErrInsufficientCredit   = errs.Kind("no available credit for this session type/duration", errs.ErrInsufficientCredit)
)

type BookRequest struct {
	ClientID        uuid.UUID
	PractitionerID  uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	SessionTypeID   *uuid.UUID
}

type BookResult struct {
	Booking *booking.Booking
	// CreditsRemainingAfter counts every redeemable credit the client still holds.
	CreditsRemainingAfter int
}

type BookingCommands interface {
	Book(ctx context.Context, req BookRequest) (*BookResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	rooms    RoomProvisioner
	notifier Notifier
	clock    clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, rooms RoomProvisioner, notifier Notifier, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		rooms:    rooms,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	now := uc.clock.Now()

	if req.DurationMinutes <= 0 {
		return nil, booking.ErrInvalidDuration
	}
	if !req.ScheduledAt.After(now) {
		return nil, booking.ErrScheduledInPast
	}
	if err := uc.ensurePractitioner(ctx, req.PractitionerID); err != nil {
		return nil, err
	}

	grants, err := uc.uow.CommandReads().RedeemableGrants(ctx, req.ClientID, now)
	if err != nil {
		return nil, err
	}
	grant, err := credit.SelectGrant(grants, req.SessionTypeID, now)
	if err != nil {
		metrics.RecordBooking("insufficient_credit")
		return nil, errs.WithCause(ErrInsufficientCredit, err)
	}

	policyVersion, err := uc.activePolicyVersion(ctx)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(booking.NewParams{
		ClientID:        req.ClientID,
		PractitionerID:  req.PractitionerID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		SessionTypeID:   req.SessionTypeID,
		CreditGrantID:   grant.ID(),
		PolicyVersion:   policyVersion,
	}, now)
	if err != nil {
		return nil, err
	}

	uc.provisionRoom(ctx, b)

	var remaining int
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}

		left, err := tx.Grants().ConsumeOne(ctx, grant.ID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				uc.compensate(ctx, tx, b, grant.ID())
				return errs.WithCause(ErrInsufficientCredit, err)
			}
			return err
		}
		remaining = left
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrInsufficientCredit) {
			metrics.RecordBooking("insufficient_credit")
		} else {
			metrics.RecordBooking("failed")
		}
		return nil, err
	}

	metrics.RecordBooking("confirmed")
	dispatch(ctx, uc.notifier, Notification{
		Template:   TemplateBookingConfirmed,
		BookingID:  b.ID(),
		ClientID:   b.ClientID(),
		OccurredAt: now,
	})

	return &BookResult{
		Booking:               b,
		CreditsRemainingAfter: remainingAfter(grants, grant.ID(), remaining, now),
	}, nil
}

func (uc *bookingUseCaseImpl) ensurePractitioner(ctx context.Context, id uuid.UUID) error {
	p, err := uc.uow.CommandReads().PractitionerByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.WithCause(ErrPractitionerNotFound, err)
		}
		return err
	}
	if !p.IsActive {
		return ErrPractitionerNotFound
	}
	return nil
}

// activePolicyVersion is nil when no policy is active; booking still proceeds.
func (uc *bookingUseCaseImpl) activePolicyVersion(ctx context.Context) (*int32, error) {
	p, err := uc.uow.CommandReads().ActivePolicy(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("booking without an active cancellation policy")
			return nil, nil
		}
		return nil, err
	}
	v := p.Version()
	return &v, nil
}

func (uc *bookingUseCaseImpl) provisionRoom(ctx context.Context, b *booking.Booking) {
	if uc.rooms == nil {
		return
	}
	room, err := uc.rooms.Provision(ctx, b.ID())
	if err != nil {
		metrics.RecordCollaboratorFailure("video")
		slog.Warn("room provisioning failed, using default room",
			"booking_id", b.ID().String(),
			"room", b.RoomName(),
			"error", err.Error())
		return
	}
	b.AssignRoom(room)
}

// compensate removes the booking whose credit could not be consumed. The
// transaction rollback already discards it; a failed delete still needs a human.
func (uc *bookingUseCaseImpl) compensate(ctx context.Context, tx shared.Tx, b *booking.Booking, grantID uuid.UUID) {
	if err := tx.Bookings().Delete(ctx, b.ID()); err != nil {
		metrics.RecordLedgerInconsistency()
		slog.Error("compensating booking delete failed",
			"event", "ledger_inconsistency",
			"booking_id", b.ID().String(),
			"grant_id", grantID.String(),
			"client_id", b.ClientID().String(),
			"error", err.Error())
	}
}

func remainingAfter(grants []*credit.Grant, consumedID uuid.UUID, consumedLeft int, now time.Time) int {
	total := consumedLeft
	for _, g := range grants {
		if g.ID() == consumedID || !g.IsRedeemable(now) {
			continue
		}
		total += g.CreditsRemaining()
	}
	return total
}
