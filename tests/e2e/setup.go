//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"session-ledger/cmd/bootstrap"
	"session-ledger/cmd/bootstrap/components"
	"session-ledger/internal/infra/db"
	"session-ledger/internal/pkg/config"
	"session-ledger/tests/common/authtest"
	"session-ledger/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" for the readiness probe
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "ledger"
	pgPassword = "ledgerpass"
	pgPort     = nat.Port("5432/tcp")
)

// One postgres container serves every suite in the process; each suite gets
// its own database inside it.
var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

type endpoint struct {
	host string
	port string
}

func (e endpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port, database)
}

// ================================================================================
// Container
// ================================================================================

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// durability is irrelevant for throwaway ledgers
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return endpoint{host: host, port: port.Port()}.dsn("postgres")
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "session-ledger-e2e"},
	}
}

func postgresEndpoint(t *testing.T) endpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, pgErr, "postgres container did not start")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return endpoint{host: host, port: port.Port()}
}

// ================================================================================
// Per-suite database
// ================================================================================

func createLedgerDatabase(t *testing.T, ep endpoint) config.DBConfig {
	t.Helper()

	name := "ledger_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	require.NoError(t, withAdmin(ep, func(ctx context.Context, admin *pgxpool.Pool) error {
		return retry(5, func() error {
			_, err := admin.Exec(ctx, "CREATE DATABASE "+name)
			return err
		})
	}), "could not create %s", name)

	t.Cleanup(func() {
		err := withAdmin(ep, func(ctx context.Context, admin *pgxpool.Pool) error {
			_, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
			return err
		})
		if err != nil {
			slog.Warn("test database left behind", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     ep.host,
		Port:     ep.port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

func withAdmin(ep endpoint, fn func(context.Context, *pgxpool.Pool) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	if err != nil {
		return err
	}
	defer admin.Close()
	return fn(ctx, admin)
}

// retry backs off linearly; CREATE DATABASE races on the template database
// when suites start in parallel.
func retry(attempts int, fn func() error) error {
	var err error
	for i := range attempts {
		if err = fn(); err == nil {
			return nil
		}
		time.Sleep(time.Duration(i+1) * 500 * time.Millisecond)
	}
	return err
}

func openLedger(t *testing.T, dbCfg config.DBConfig) *pgxpool.Pool {
	t.Helper()

	require.NoError(t, db.MigrateUp(dbCfg), "migrations failed")
	pool, _, err := db.Connect(dbCfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, dbtest.SeedReferenceData(pool), "reference policy seed failed")
	return pool
}

// ================================================================================
// Application graph
// ================================================================================

func testConfig(dbCfg config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	// e2e traffic comes from a single address
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000
	return cfg
}

// startLedgerApp wires the production modules around the suite's pool.
func startLedgerApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(bootstrap.SplitConfig),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.IntegrationModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "ledger app did not start")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("ledger app did not stop cleanly", "error", err)
		}
	})
	return router
}

// ================================================================================
// Shared e2e suite
// ================================================================================

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	JWT    *authtest.JWTHelper
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ep := postgresEndpoint(t)
	dbCfg := createLedgerDatabase(t, ep)

	s.DB = openLedger(t, dbCfg)
	s.Config = testConfig(dbCfg)
	s.Router = startLedgerApp(t, s.DB, s.Config)
	s.JWT = authtest.NewJWTHelper(s.Config.JWT)

	slog.Info("e2e ledger ready", "host", ep.host, "port", ep.port, "database", dbCfg.DBName)
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "ledger reset failed")
}
