package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"ridebook/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection wraps the sqlx handle. It is nil-valued when Postgres is
// disabled; repositories fall back to the in-memory store in that case.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	if !config.DB.Postgres.Enable {
		log.Info().Msg("Postgres disabled, using in-memory stores")

		return nil
	}

	return &Connection{
		DB: createConnection(*config),
	}
}

func createConnection(config config.Config) *sqlx.DB {
	pg := config.DB.Postgres

	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Username,
		pg.Password,
		net.JoinHostPort(pg.Host, pg.Port),
		pg.Name,
		pg.SSLMode,
	)

	for retry := range pg.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", pg.Host).
				Str("port", pg.Port).
				Str("dbName", pg.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Str("dbName", pg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Msg("Exhausted database connection retries")

	return nil
}
