package commands

import (
	"context"
	"log/slog"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/domain/cancellation"
	"session-ledger/internal/domain/credit"
	"session-ledger/internal/domain/user"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/metrics"
	"session-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound   = errs.Kind("booking not found", errs.ErrNotFound)
	ErrPolicyUnavailable = errs.Kind("no active cancellation policy", errs.ErrPolicyUnavailable)
)

type CancelRequest struct {
	BookingID uuid.UUID
	Actor     user.Principal
	Reason    *string
	UseGrace  bool
}

type CancelResult struct {
	RecordID            uuid.UUID
	BookingID           uuid.UUID
	Type                cancellation.Type
	HoursBeforeStart    float64
	FeeCharged          decimal.Decimal
	CreditReturned      decimal.Decimal
	CreditUnitsReturned int
	Currency            string
	ReturnedGrantID     *uuid.UUID
	GraceRejected       bool
	PolicyVersion       int32
}

type CancellationCommands interface {
	Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error)
}

type cancellationUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewCancellationUseCase(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock) CancellationCommands {
	return &cancellationUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *cancellationUseCaseImpl) Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error) {
	now := uc.clock.Now()

	reason, err := cancellation.NormalizeReason(req.Reason)
	if err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	b, err := reads.BookingByID(ctx, req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrBookingNotFound, err)
		}
		return nil, err
	}
	if !req.Actor.IsAdmin() {
		if err := b.EnsureOwnedBy(req.Actor.UserID()); err != nil {
			return nil, err
		}
	}
	// CancelIfScheduled below settles races with a concurrent cancel.
	if err := b.Cancel(now); err != nil {
		return nil, err
	}

	p, err := reads.ActivePolicy(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrPolicyUnavailable, err)
		}
		return nil, err
	}

	consumed, err := reads.GrantByID(ctx, b.CreditGrantID())
	if err != nil {
		return nil, errs.Wrapf(err, "consumed grant %s", b.CreditGrantID())
	}

	var (
		outcome  cancellation.Outcome
		record   *cancellation.Record
		returned *credit.Grant
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		returned = nil

		ok, err := tx.Bookings().CancelIfScheduled(ctx, b.ID(), b.UpdatedAt())
		if err != nil {
			return err
		}
		if !ok {
			return booking.ErrNotCancellable
		}

		granted := false
		if req.UseGrace {
			granted, err = tx.Clients().ClaimGrace(ctx, b.ClientID(), p.GraceCancellationsAllowed())
			if err != nil {
				return err
			}
		}

		outcome, err = cancellation.Evaluate(p, cancellation.Input{
			ScheduledAt:    b.ScheduledAt(),
			Now:            now,
			GraceRequested: req.UseGrace,
			GraceGranted:   granted,
			Currency:       consumed.Currency(),
			PaidUnitPrice:  consumed.UnitPrice(),
		})
		if err != nil {
			return err
		}

		var returnedID *uuid.UUID
		if outcome.CreditUnitsReturned > 0 {
			returned, err = credit.NewReturnGrant(consumed, b.ID(), outcome.CreditReturned, now)
			if err != nil {
				return err
			}
			if err := tx.Grants().Create(ctx, returned); err != nil {
				return err
			}
			id := returned.ID()
			returnedID = &id
		}

		if outcome.Type == cancellation.TypeGrace {
			if err := tx.Grants().MarkGraceUsed(ctx, consumed.ID()); err != nil {
				return err
			}
		}

		record = cancellation.NewRecord(b.ID(), req.Actor.UserID(), outcome, returnedID, reason, p.Version(), req.UseGrace, now)
		if err := tx.Cancellations().Create(ctx, record); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithCause(booking.ErrNotCancellable, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCancellation(outcome.Type.String())
	if returned != nil {
		metrics.RecordCreditsIssued(string(credit.SourceCancellationReturn), returned.InitialCredits())
	}
	slog.Info("booking cancelled",
		"booking_id", b.ID().String(),
		"type", outcome.Type.String(),
		"policy_version", p.Version(),
		"grace_rejected", outcome.GraceRejected)

	recordID := record.ID()
	dispatch(ctx, uc.notifier, Notification{
		Template:       TemplateBookingCancelled,
		BookingID:      b.ID(),
		CancellationID: &recordID,
		ClientID:       b.ClientID(),
		OccurredAt:     now,
	})

	return &CancelResult{
		RecordID:            recordID,
		BookingID:           b.ID(),
		Type:                outcome.Type,
		HoursBeforeStart:    outcome.HoursBeforeStart,
		FeeCharged:          outcome.Fee,
		CreditReturned:      outcome.CreditReturned,
		CreditUnitsReturned: outcome.CreditUnitsReturned,
		Currency:            outcome.CreditCurrency.String(),
		ReturnedGrantID:     record.ReturnedGrantID(),
		GraceRejected:       outcome.GraceRejected,
		PolicyVersion:       p.Version(),
	}, nil
}
