// Package audit holds the creation/modification metadata embedded in
// every persisted entity.
package audit

import "time"

// Fields records who created and last modified an entity, and when.
// CreatedAt/CreatedBy are written once on first persist and never
// change afterwards; ModifiedAt/ModifiedBy move on every mutation.
type Fields struct {
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	CreatedBy  string    `json:"created_by" db:"created_by"`
	ModifiedAt time.Time `json:"modified_at" db:"modified_at"`
	ModifiedBy string    `json:"modified_by" db:"modified_by"`
}

// Stamp initializes all four fields for a first persist. The actor is
// the caller-supplied acting identity; this package never resolves it.
func Stamp(actor string, now time.Time) Fields {
	return Fields{
		CreatedAt:  now,
		CreatedBy:  actor,
		ModifiedAt: now,
		ModifiedBy: actor,
	}
}

// Touch updates the modification pair, leaving creation untouched.
func (f *Fields) Touch(actor string, now time.Time) {
	f.ModifiedAt = now
	f.ModifiedBy = actor
}
