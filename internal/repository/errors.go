// Package repository defines the data access contracts and the error
// taxonomy shared by all repositories. The sentinel values let higher
// layers distinguish expected failure scenarios without inspecting
// driver-specific error shapes.
package repository

import "errors"

// ErrNotFound is returned when a lookup or keyed write matches no row
// where one was expected (film detail by id, processing a return,
// updating a customer that does not exist).
var ErrNotFound = errors.New("record not found")

// ErrInsertFailed is returned when an insert did not yield the
// generated identity a dependent statement needs. The enclosing
// transaction is rolled back, so no partial writes remain.
var ErrInsertFailed = errors.New("insert failed")

// ErrConstraintViolation is returned when the store rejects a write
// because of a referential or uniqueness rule, e.g. deleting a row
// that dependent rows still reference.
var ErrConstraintViolation = errors.New("constraint violation")
