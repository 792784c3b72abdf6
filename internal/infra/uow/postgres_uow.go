package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/domain/credit"
	"session-ledger/internal/domain/policy"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/readstore"
	"session-ledger/internal/infra/repository"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Ledger mutations are single conditional statements, so ReadCommitted suffices.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db query.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	grantRepo        shared.GrantRepository
	clientRepo       shared.ClientRepository
	bookingRepo      shared.BookingRepository
	policyRepo       shared.PolicyRepository
	cancellationRepo shared.CancellationRepository
	purchaseRepo     shared.PurchaseRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Grants() shared.GrantRepository {
	if t.grantRepo == nil {
		t.grantRepo = repository.NewGrantRepository(t.uow.q, t.dbtx)
	}
	return t.grantRepo
}

func (t *pgTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = repository.NewClientRepository(t.uow.q, t.dbtx)
	}
	return t.clientRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Policies() shared.PolicyRepository {
	if t.policyRepo == nil {
		t.policyRepo = repository.NewPolicyRepository(t.uow.q, t.dbtx)
	}
	return t.policyRepo
}

func (t *pgTx) Cancellations() shared.CancellationRepository {
	if t.cancellationRepo == nil {
		t.cancellationRepo = repository.NewCancellationRepository(t.uow.q, t.dbtx)
	}
	return t.cancellationRepo
}

func (t *pgTx) Purchases() shared.PurchaseRepository {
	if t.purchaseRepo == nil {
		t.purchaseRepo = repository.NewPurchaseRepository(t.uow.q, t.dbtx)
	}
	return t.purchaseRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx query.DBTX

	// Lazy-initialized readstores
	practitionerStore *readstore.PractitionerReadStore
	policyStore       *readstore.PolicyReadStore
	bookingStore      *readstore.BookingReadStore
	grantStore        *readstore.GrantReadStore
	purchaseStore     *readstore.PurchaseReadStore
}

func (r *commandReads) PractitionerByID(ctx context.Context, id uuid.UUID) (*shared.PractitionerSnapshot, error) {
	if r.practitionerStore == nil {
		r.practitionerStore = readstore.NewPractitionerReadStore(r.uow.q, r.dbtx)
	}

	p, err := r.practitionerStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.PractitionerSnapshot{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		IsActive:    p.IsActive,
	}
	return snapshot, nil
}

func (r *commandReads) ActivePolicy(ctx context.Context) (*policy.Policy, error) {
	if r.policyStore == nil {
		r.policyStore = readstore.NewPolicyReadStore(r.uow.q, r.dbtx)
	}
	return r.policyStore.FindActive(ctx)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore.FindByID(ctx, id)
}

func (r *commandReads) GrantByID(ctx context.Context, id uuid.UUID) (*credit.Grant, error) {
	return r.grants().FindByID(ctx, id)
}

func (r *commandReads) RedeemableGrants(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*credit.Grant, error) {
	return r.grants().ListRedeemable(ctx, ownerID, now)
}

func (r *commandReads) grants() *readstore.GrantReadStore {
	if r.grantStore == nil {
		r.grantStore = readstore.NewGrantReadStore(r.uow.q, r.dbtx)
	}
	return r.grantStore
}

func (r *commandReads) ProcessedPurchase(ctx context.Context, reference string) (*shared.PurchaseSnapshot, error) {
	if r.purchaseStore == nil {
		r.purchaseStore = readstore.NewPurchaseReadStore(r.uow.q, r.dbtx)
	}

	p, err := r.purchaseStore.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.PurchaseSnapshot{
		Reference:   p.PurchaseReference,
		ClientID:    p.ClientID,
		GrantID:     p.GrantID,
		ProcessedAt: p.ProcessedAt,
	}
	return snapshot, nil
}
