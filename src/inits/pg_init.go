package inits

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

const postsSchema = `CREATE TABLE IF NOT EXISTS posts (
	post_id    UUID PRIMARY KEY,
	img_url    TEXT NOT NULL DEFAULT '',
	descricao  TEXT NOT NULL DEFAULT '',
	alt        TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
)`

func CreatePostgresPool(connString string, context context.Context) (*m.PGPool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Print(err)
		return nil, err
	}

	cfg.MaxConns = 8
	cfg.MaxConnIdleTime = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context, cfg)
	if err != nil {
		log.Print(err)
		return nil, err
	}

	if _, err := pool.Exec(context, postsSchema); err != nil {
		log.Printf("Unable to ensure posts table: %v", err)
		return nil, err
	}

	return &m.PGPool{Pool: pool}, nil
}
