// Package storage opens the PostgreSQL backend, applies migrations, and
// hands out repositories to the service layer.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"taskkeeper/internal/dbx"
	"taskkeeper/internal/server/migrations"
	"taskkeeper/internal/server/tasks"
	"taskkeeper/internal/server/users"
)

// Postgres bundles the shared connection pool with repository
// constructors over it.
type Postgres struct {
	db *sql.DB
}

// Open connects to the database and applies pending migrations.
func Open(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	p := &Postgres{db: db}

	if err := p.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return p, nil
}

func (p *Postgres) Conn() *sql.DB {
	return p.db
}

func (p *Postgres) Users() users.Repository {
	return users.NewPostgresRepository(p.db)
}

// Tasks builds a task repository over the given handle, which may be the
// pool or a transaction.
func (p *Postgres) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

func (p *Postgres) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, p.db, "."); err != nil {
		return err
	}

	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
