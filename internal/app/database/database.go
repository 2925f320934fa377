package database

import (
	"Seenit/internal/app/config"
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx"
	_ "github.com/jackc/pgx/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type Postgres struct {
	db   *sqlx.DB
	pool *pgx.ConnPool
}

func NewPostgres(cfg *config.Config) (*Postgres, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.SSLMode,
	)

	db, err := sqlx.Connect("pgx", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	port, err := strconv.ParseUint(cfg.DB.Port, 10, 16)
	if err != nil {
		return nil, errors.Wrap(err, "bad DB_PORT")
	}
	pool, err := pgx.NewConnPool(pgx.ConnPoolConfig{
		ConnConfig: pgx.ConnConfig{
			Host:     cfg.DB.Host,
			Port:     uint16(port),
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
		},
		MaxConnections: 10,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pgx pool")
	}

	return &Postgres{db: db, pool: pool}, nil
}

func (p *Postgres) GetPostgres() *sqlx.DB {
	return p.db
}

func (p *Postgres) GetPool() *pgx.ConnPool {
	return p.pool
}

func (p *Postgres) Close() {
	_ = p.db.Close()
	p.pool.Close()
}

// RunMigrations executes the schema file. The schema is written to be
// re-runnable (CREATE TABLE IF NOT EXISTS).
func (p *Postgres) RunMigrations(migrationFilePath string) error {
	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return errors.Wrap(err, "failed to read migration file")
	}
	if _, err := p.db.Exec(string(migrationSQL)); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	return nil
}
