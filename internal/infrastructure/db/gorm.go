package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prestamos-ledger/internal/domain/client"
	"prestamos-ledger/internal/domain/loan"
	"prestamos-ledger/internal/domain/payment"
)

// OpenGorm opens the local SQLite database file. The DSN should carry
// _foreign_keys=on (see config.DSN) so cascade deletes work on every
// connection; EnsureSchema re-asserts the pragma as a belt-and-braces measure.
func OpenGorm(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// single local writer; keep the pool at one connection so the
	// foreign_keys pragma and tx state always apply
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: sqlite opened")
	return db, nil
}

// EnsureSchema creates the clients/loans/payments/accumulations tables with
// their cascade foreign keys. Idempotent; safe to run on every start.
func EnsureSchema(db *gorm.DB) error {
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return err
	}
	for _, m := range []any{
		&client.Client{},
		&loan.Loan{},
		&payment.Payment{},
		&loan.Accumulation{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}
