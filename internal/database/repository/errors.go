package repository

import (
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StoreError is the generic "operation failed" condition surfaced for any
// persistence failure. The original cause is logged and captured server-side;
// callers only see the entity and operation.
type StoreError struct {
	Entity string
	Op     string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s failed", e.Entity, e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr logs and captures the underlying cause, then wraps it into a
// StoreError. Record-not-found passes through unwrapped so callers can map
// it to 404.
func storeErr(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	logrus.Errorf("%s %s failed: %v", entity, op, err)
	sentry.CaptureException(err)
	return &StoreError{Entity: entity, Op: op, Err: err}
}

// TableExists probes information_schema for a table in the public schema.
func TableExists(db *gorm.DB, name string) (bool, error) {
	var exists bool
	err := db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = ?
		)
	`, name).Scan(&exists).Error
	if err != nil {
		return false, storeErr(name, "probe", err)
	}
	return exists, nil
}
