package storage

import (
	"errors"
	"fmt"
	"log"
	"time"

	"pocket-ledger/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Collection keys for the two persisted blobs.
const (
	TransactionsKey = "transactions"
	BudgetsKey      = "budgets"
)

// Collection is a single keyed blob holding one serialized entity
// collection as a JSON array. Collections are always written and read
// whole; there are no partial updates.
type Collection struct {
	Key       string    `gorm:"primaryKey;type:varchar(50)"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for Collection
func (c *Collection) TableName() string {
	return "collections"
}

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		dialector = postgres.Open(cfg.DSN())
	} else {
		dialector = sqlite.Open(cfg.Path)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&Collection{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ReadBlob returns the payload stored under key. A missing key means
// "empty collection", not an error, and yields a nil payload.
func (db *DB) ReadBlob(key string) ([]byte, error) {
	var collection Collection
	if err := db.DB.First(&collection, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	return collection.Payload, nil
}

// WriteBlob replaces the payload stored under key in a single upsert.
// The blob is only considered committed once this returns nil.
func (db *DB) WriteBlob(key string, payload []byte) error {
	collection := Collection{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	if err := db.DB.Save(&collection).Error; err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for the migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled (postgres only)
	if err := RunMigrationsIfEnabled(sqlDB, &cfg.Database); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Storage initialized successfully")

	return db, nil
}
