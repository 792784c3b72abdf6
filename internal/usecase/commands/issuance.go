package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/metrics"
	"session-ledger/internal/pkg/money"
	"session-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPackageSize = errs.Kind("package size must be positive", errs.ErrInvalidArgument)
	ErrMissingProduct     = errs.Kind("purchase must name a package size or a session type", errs.ErrInvalidArgument)
	ErrPurchaseConflict   = errs.Kind("purchase reference already issued", errs.ErrInvalidState)
)

// PurchaseEvent is a completed upstream payment. PackageSize marks a package of
// generic credits; otherwise SessionTypeID names the single session bought.
type PurchaseEvent struct {
	PurchaseReference string
	ClientID          uuid.UUID
	PackageSize       *int
	SessionTypeID     *uuid.UUID
	Amount            decimal.Decimal
	Currency          string
	CompletedAt       time.Time
	ExpiresAt         *time.Time
}

type IssuanceResult struct {
	Grant *credit.Grant
	// Replayed is set when the purchase had already been processed.
	Replayed bool
}

type IssuanceCommands interface {
	OnPurchaseCompleted(ctx context.Context, ev PurchaseEvent) (*IssuanceResult, error)
}

type issuanceUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	ledger config.LedgerConfig
}

func NewIssuanceUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) IssuanceCommands {
	return &issuanceUseCaseImpl{
		uow:    uow,
		clock:  clk,
		ledger: cfg.Ledger,
	}
}

func (uc *issuanceUseCaseImpl) OnPurchaseCompleted(ctx context.Context, ev PurchaseEvent) (*IssuanceResult, error) {
	now := uc.clock.Now()

	g, err := uc.grantFor(ev, now)
	if err != nil {
		return nil, err
	}

	result := &IssuanceResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = IssuanceResult{}

		inserted, err := tx.Purchases().MarkProcessed(ctx, shared.PurchaseSnapshot{
			Reference:   g.Source().Reference,
			ClientID:    ev.ClientID,
			GrantID:     g.ID(),
			ProcessedAt: now,
		})
		if err != nil {
			return err
		}
		if !inserted {
			prior, err := tx.Reads().ProcessedPurchase(ctx, g.Source().Reference)
			if err != nil {
				return err
			}
			existing, err := tx.Reads().GrantByID(ctx, prior.GrantID)
			if err != nil {
				return err
			}
			result.Grant = existing
			result.Replayed = true
			return nil
		}

		if err := tx.Clients().Ensure(ctx, ev.ClientID); err != nil {
			return err
		}
		if err := tx.Grants().Create(ctx, g); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithCause(ErrPurchaseConflict, err)
			}
			return err
		}
		result.Grant = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Replayed {
		metrics.RecordDuplicatePurchase()
		slog.Info("duplicate purchase delivery ignored",
			"purchase_reference", ev.PurchaseReference,
			"grant_id", result.Grant.ID().String())
		return result, nil
	}

	metrics.RecordCreditsIssued(string(credit.SourcePurchase), g.InitialCredits())
	slog.Info("credits issued",
		"purchase_reference", ev.PurchaseReference,
		"client_id", ev.ClientID.String(),
		"grant_id", g.ID().String(),
		"credits", g.InitialCredits())
	return result, nil
}

func (uc *issuanceUseCaseImpl) grantFor(ev PurchaseEvent, now time.Time) (*credit.Grant, error) {
	var (
		count       = 1
		sessionType = ev.SessionTypeID
	)
	switch {
	case ev.PackageSize != nil:
		if *ev.PackageSize <= 0 {
			return nil, ErrInvalidPackageSize
		}
		count = *ev.PackageSize
		sessionType = nil
	case ev.SessionTypeID == nil:
		return nil, ErrMissingProduct
	}

	purchasedAt := ev.CompletedAt
	if purchasedAt.IsZero() {
		purchasedAt = now
	}
	expiresAt := ev.ExpiresAt
	if expiresAt == nil && ev.PackageSize != nil && uc.ledger.DefaultCreditExpiry > 0 {
		exp := purchasedAt.Add(uc.ledger.DefaultCreditExpiry)
		expiresAt = &exp
	}

	currency := ev.Currency
	if strings.TrimSpace(currency) == "" {
		currency = uc.ledger.DefaultCurrency
	}

	return credit.NewGrant(ev.ClientID, sessionType, count, purchasedAt, expiresAt, credit.Source{
		Kind:      credit.SourcePurchase,
		Reference: strings.TrimSpace(ev.PurchaseReference),
		Currency:  money.Currency(currency),
		Amount:    ev.Amount,
	})
}
