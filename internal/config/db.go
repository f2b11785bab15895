package config

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// DSN builds the driver connection string for env.
func DSN(env Env) string {
	cfg := mysql.NewConfig()
	cfg.User = env.DBUser
	cfg.Passwd = env.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(env.DBHost, env.DBPort)
	cfg.DBName = env.DBName
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// ConnectDB opens the shared pool, retrying the first ping a few times
// while the database comes up. It is idempotent.
func ConnectDB(ctx context.Context, env Env, log *zap.Logger) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB, nil
	}

	db, err := sql.Open("mysql", DSN(env))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	attempts := max(env.DBRetries, 1)
	delay := time.Duration(env.DBRetryDelay) * time.Second
	for i := 1; ; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			break
		}
		if i >= attempts {
			_ = db.Close()
			return nil, fmt.Errorf("ping db after %d attempts: %w", i, err)
		}
		log.Warn("database not ready, retrying",
			zap.Int("attempt", i),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	DB = db
	log.Info("connected to mysql", zap.String("addr", net.JoinHostPort(env.DBHost, env.DBPort)), zap.String("db", env.DBName))
	return DB, nil
}

func EnsureDB(ctx context.Context) error {
	dbMu.Lock()
	db := DB
	dbMu.Unlock()

	if db == nil {
		return fmt.Errorf("database not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
