//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestClient(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO clients (id) VALUES ($1)", clientID)
	require.NoError(t, err)
	return clientID
}

func CreateTestPractitioner(t *testing.T, db DBLike, name string, active bool) uuid.UUID {
	t.Helper()

	practitionerID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO practitioners (id, display_name, is_active) VALUES ($1, $2, $3)",
		practitionerID, name, active)
	require.NoError(t, err)
	return practitionerID
}

// GrantFixture describes a purchase grant inserted directly, bypassing issuance.
type GrantFixture struct {
	OwnerID       uuid.UUID
	SessionTypeID *uuid.UUID
	Credits       int
	Remaining     int
	Amount        decimal.Decimal
	Currency      string
	PurchasedAt   time.Time
	ExpiresAt     *time.Time
	Reference     string
}

func CreateTestGrant(t *testing.T, db DBLike, f GrantFixture) uuid.UUID {
	t.Helper()

	if f.Currency == "" {
		f.Currency = "USD"
	}
	if f.Reference == "" {
		f.Reference = "pi_" + uuid.NewString()
	}
	if f.PurchasedAt.IsZero() {
		f.PurchasedAt = time.Now().Add(-24 * time.Hour)
	}
	unitPrice := decimal.Zero
	if f.Credits > 0 {
		unitPrice = f.Amount.Div(decimal.NewFromInt(int64(f.Credits))).Round(2)
	}

	grantID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO credit_grants (
			id, owner_id, session_type_id, initial_credits, credits_remaining, unit_price,
			purchased_at, expires_at, source_kind, source_reference, currency, amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'purchase', $9, $10, $11)`,
		grantID, f.OwnerID, f.SessionTypeID, f.Credits, f.Remaining, unitPrice,
		f.PurchasedAt, f.ExpiresAt, f.Reference, f.Currency, f.Amount)
	require.NoError(t, err)
	return grantID
}

func GrantRemaining(t *testing.T, db DBLike, grantID uuid.UUID) int {
	t.Helper()

	var remaining int
	err := db.QueryRow(context.Background(),
		"SELECT credits_remaining FROM credit_grants WHERE id = $1", grantID).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// GrantSources lists the source kind of every grant the owner holds, oldest first.
func GrantSources(t *testing.T, db DBLike, ownerID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT source_kind FROM credit_grants WHERE owner_id = $1 ORDER BY created_at, purchased_at", ownerID)
	require.NoError(t, err)

	kinds, err := pgx.CollectRows(rows, pgx.RowTo[string])
	require.NoError(t, err)
	return kinds
}

// DeactivatePolicies leaves the service without a policy in force.
func DeactivatePolicies(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE cancellation_policies SET is_active = false")
	require.NoError(t, err)
}

// inserts the reference policy: 12h standard, 5h late, 25 USD fee, one grace
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cancellation_policies (
			standard_cancellation_hours, late_cancellation_hours, late_fees,
			grace_cancellations_allowed, is_active, text
		) VALUES (12, 5, '{"USD": "25.00", "EUR": "20.00"}'::jsonb, 1, true,
			'Cancel 12 hours ahead for a full credit. Later cancellations incur a fee.')
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
