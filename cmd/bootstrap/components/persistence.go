package components

import (
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/readstore"
	"session-ledger/internal/infra/uow"
	"session-ledger/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Ledger
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.GrantViewQueries)),
		),
		fx.Annotate(
			readstore.NewGrantReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		// Booking
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Policy
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.PolicyViewQueries)),
		),
		fx.Annotate(
			readstore.NewPolicyReadStore,
			fx.As(new(queries.PolicyReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
