package application

import (
	"errors"
	"fmt"
)

var (
	ErrAnimalNotFound    = errors.New("animal not found")
	ErrFormNotFound      = errors.New("form not found")
	ErrInvalidTransition = errors.New("invalid form status")
)

// StoreError is a persistence failure surfaced unchanged to the caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// ReconcileError reports that an animal's mirrored status could not be
// refreshed after a form change had already been committed.
type ReconcileError struct {
	AnimalID uint
	Err      error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("reconcile animal %d: %v", e.AnimalID, e.Err)
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// IsReconcileWarning reports whether err only signals a failed reconciliation.
func IsReconcileWarning(err error) bool {
	var re *ReconcileError
	return errors.As(err, &re)
}

func IsStoreFailure(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
