//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/readstore"
	"session-ledger/internal/pkg/pgconv"
	readstoremock "session-ledger/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errConn = errors.New("database connection error")
	now     = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func grantRow(ownerID uuid.UUID, remaining int32) query.CreditGrant {
	return query.CreditGrant{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		InitialCredits:   5,
		CreditsRemaining: remaining,
		UnitPrice:        pgconv.DecimalToNumeric(decimal.NewFromInt(60)),
		PurchasedAt:      now.Add(-48 * time.Hour),
		SourceKind:       "purchase",
		SourceReference:  "pi_" + uuid.NewString(),
		Currency:         "USD",
		Amount:           pgconv.DecimalToNumeric(decimal.NewFromInt(300)),
		CreatedAt:        now.Add(-48 * time.Hour),
	}
}

// =============================================================================
// GrantReadStore
// =============================================================================

func TestGrantReadStore_FindByID(t *testing.T) {
	ownerID := uuid.New()
	row := grantRow(ownerID, 2)

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database failure", err: errConn, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockGrantViewQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetGrant(gomock.Any(), mockDB, row.ID).Return(row, tc.err)

			g, err := readstore.NewGrantReadStore(mockQueries, mockDB).FindByID(context.Background(), row.ID)
			if tc.expectKind != "" {
				assert.Nil(t, g)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ownerID, g.OwnerID())
			assert.Equal(t, 2, g.CreditsRemaining())
			assert.True(t, g.UnitPrice().Equal(decimal.NewFromInt(60)))
			assert.Equal(t, "USD", string(g.Currency()))
			assert.Nil(t, g.SessionTypeID())
			assert.Nil(t, g.ExpiresAt())
		})
	}
}

func TestGrantReadStore_ListRedeemable(t *testing.T) {
	ownerID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockGrantViewQueries(ctrl)
	mockDB := &mockDBTX{}
	sessionType := uuid.New()
	typed := grantRow(ownerID, 1)
	typed.SessionTypeID = pgtype.UUID{Bytes: sessionType, Valid: true}
	typed.ExpiresAt = pgtype.Timestamptz{Time: now.Add(24 * time.Hour), Valid: true}

	mockQueries.EXPECT().
		ListRedeemableGrants(gomock.Any(), mockDB, query.ListRedeemableGrantsParams{OwnerID: ownerID, Now: now}).
		Return([]query.CreditGrant{grantRow(ownerID, 3), typed}, nil)

	grants, err := readstore.NewGrantReadStore(mockQueries, mockDB).ListRedeemable(context.Background(), ownerID, now)
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.True(t, grants[0].IsGeneric())
	require.NotNil(t, grants[1].SessionTypeID())
	assert.Equal(t, sessionType, *grants[1].SessionTypeID())
	assert.True(t, grants[1].IsRedeemable(now))
}

func TestGrantReadStore_GraceCancellationsUsed(t *testing.T) {
	ownerID := uuid.New()

	testCases := []struct {
		name    string
		row     query.Client
		err     error
		want    int
		wantErr bool
	}{
		{name: "counter read", row: query.Client{ID: ownerID, GraceCancellationsUsed: 2}, want: 2},
		{name: "client without ledger row", err: pgx.ErrNoRows, want: 0},
		{name: "error: database failure", err: errConn, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockGrantViewQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetClient(gomock.Any(), mockDB, ownerID).Return(tc.row, tc.err)

			n, err := readstore.NewGrantReadStore(mockQueries, mockDB).GraceCancellationsUsed(context.Background(), ownerID)
			if tc.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

// =============================================================================
// BookingReadStore
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	row := query.Booking{
		ID:                        uuid.New(),
		ClientID:                  uuid.New(),
		PractitionerID:            uuid.New(),
		ScheduledAt:               now.Add(24 * time.Hour),
		DurationMinutes:           60,
		Status:                    "scheduled",
		CancellationPolicyVersion: pgtype.Int4{Int32: 3, Valid: true},
		CreditGrantID:             uuid.New(),
		RoomName:                  "session-x",
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBooking(gomock.Any(), mockDB, row.ID).Return(row, nil)

		b, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByID(context.Background(), row.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusScheduled, b.Status())
		require.NotNil(t, b.PolicyVersion())
		assert.Equal(t, int32(3), *b.PolicyVersion())
		assert.Nil(t, b.SessionTypeID())
	})

	t.Run("error: unknown status cannot be decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		bad := row
		bad.Status = "archived"
		mockQueries.EXPECT().GetBooking(gomock.Any(), mockDB, row.ID).Return(bad, nil)

		_, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByID(context.Background(), row.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBooking(gomock.Any(), mockDB, row.ID).Return(query.Booking{}, pgx.ErrNoRows)

		_, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByID(context.Background(), row.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingReadStore_FindView(t *testing.T) {
	base := query.GetBookingViewRow{
		ID:               uuid.New(),
		ClientID:         uuid.New(),
		PractitionerID:   uuid.New(),
		PractitionerName: "Aiko",
		ScheduledAt:      now.Add(8 * time.Hour),
		DurationMinutes:  45,
		Status:           "scheduled",
		CreditGrantID:    uuid.New(),
		RoomName:         "session-y",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	t.Run("scheduled booking has no cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBookingView(gomock.Any(), mockDB, base.ID).Return(base, nil)

		view, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindView(context.Background(), base.ID)
		require.NoError(t, err)
		assert.Equal(t, "Aiko", view.PractitionerName)
		assert.Equal(t, int32(45), view.DurationMinutes)
		assert.Nil(t, view.PolicyVersion)
		assert.Nil(t, view.Cancellation)
	})

	t.Run("cancelled booking carries the settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		row := base
		row.Status = "cancelled"
		row.CancellationType = pgtype.Text{String: "late", Valid: true}
		row.CancelledAt = pgtype.Timestamptz{Time: now, Valid: true}
		row.FeeCharged = pgconv.DecimalToNumeric(decimal.NewFromInt(25))
		row.CreditReturned = pgconv.DecimalToNumeric(decimal.NewFromInt(35))
		row.CreditCurrency = pgtype.Text{String: "USD", Valid: true}
		mockQueries.EXPECT().GetBookingView(gomock.Any(), mockDB, base.ID).Return(row, nil)

		view, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindView(context.Background(), base.ID)
		require.NoError(t, err)
		require.NotNil(t, view.Cancellation)
		assert.Equal(t, "late", view.Cancellation.Type)
		assert.True(t, view.Cancellation.FeeCharged.Equal(decimal.NewFromInt(25)))
		assert.True(t, view.Cancellation.CreditReturned.Equal(decimal.NewFromInt(35)))
		assert.Equal(t, "USD", view.Cancellation.Currency)
		assert.Equal(t, now, view.Cancellation.CancelledAt)
	})
}

// =============================================================================
// PolicyReadStore
// =============================================================================

func TestPolicyReadStore(t *testing.T) {
	row := query.CancellationPolicy{
		Version:                   2,
		StandardCancellationHours: 12,
		LateCancellationHours:     5,
		LateFees:                  []byte(`{"USD":"25.00","EUR":"20"}`),
		GraceCancellationsAllowed: 1,
		IsActive:                  true,
		Text:                      "policy text",
		CreatedAt:                 now,
	}

	t.Run("active policy decodes late fees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPolicyViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetActivePolicy(gomock.Any(), mockDB).Return(row, nil)

		p, err := readstore.NewPolicyReadStore(mockQueries, mockDB).FindActive(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), p.Version())
		fee, err := p.LateFee("EUR")
		require.NoError(t, err)
		assert.True(t, fee.Equal(decimal.NewFromInt(20)))
	})

	t.Run("no active policy is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPolicyViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetActivePolicy(gomock.Any(), mockDB).Return(query.CancellationPolicy{}, pgx.ErrNoRows)

		_, err := readstore.NewPolicyReadStore(mockQueries, mockDB).FindActive(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt fee document fails the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPolicyViewQueries(ctrl)
		mockDB := &mockDBTX{}
		corrupt := row
		corrupt.Version = 1
		corrupt.LateFees = []byte(`{"USD":`)
		mockQueries.EXPECT().ListPolicies(gomock.Any(), mockDB).Return([]query.CancellationPolicy{row, corrupt}, nil)

		_, err := readstore.NewPolicyReadStore(mockQueries, mockDB).List(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// PractitionerReadStore / PurchaseReadStore
// =============================================================================

func TestPractitionerReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockPractitionerViewQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().GetPractitioner(gomock.Any(), mockDB, id).Return(query.Practitioner{}, pgx.ErrNoRows)

	_, err := readstore.NewPractitionerReadStore(mockQueries, mockDB).FindByID(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestPurchaseReadStore_FindByReference(t *testing.T) {
	stored := query.ProcessedPurchase{
		PurchaseReference: "pi_1",
		ClientID:          uuid.New(),
		GrantID:           uuid.New(),
		ProcessedAt:       now,
	}

	t.Run("processed reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPurchaseViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetProcessedPurchase(gomock.Any(), mockDB, "pi_1").Return(stored, nil)

		got, err := readstore.NewPurchaseReadStore(mockQueries, mockDB).FindByReference(context.Background(), "pi_1")
		require.NoError(t, err)
		assert.Equal(t, stored.GrantID, got.GrantID)
	})

	t.Run("unseen reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPurchaseViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetProcessedPurchase(gomock.Any(), mockDB, "pi_2").Return(query.ProcessedPurchase{}, pgx.ErrNoRows)

		_, err := readstore.NewPurchaseReadStore(mockQueries, mockDB).FindByReference(context.Background(), "pi_2")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Test helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
