// Package store provides a generic repository over gorm shared by every
// catalog entity, so each resource gets identical create/get/list/update/
// delete semantics without hand-written query code.
package store

import (
	"context"

	"gorm.io/gorm"
)

// DefaultListLimit bounds unpaged listings.
const DefaultListLimit = 200

// MutationOutcome is the tagged result of an update or delete. A missing
// record is an expected outcome, not an error; the route layer maps it to 404.
type MutationOutcome int

const (
	OutcomeApplied MutationOutcome = iota
	OutcomeNotFound
)

// ListQuery narrows and pages a listing. A non-empty ID collapses the listing
// to at most one record.
type ListQuery struct {
	ID     string
	Limit  int
	Offset int
}

// Store is a generic repository for a single entity type.
type Store[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// DB exposes the underlying handle for callers that need to compose the
// store into a wider transaction.
func (s *Store[T]) DB() *gorm.DB {
	return s.db
}

// WithTx returns a store bound to the given transaction handle.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	return &Store[T]{db: tx}
}

// Create inserts the record and returns its assigned identifier.
func (s *Store[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// GetByID fetches a single record. A missing record surfaces as
// gorm.ErrRecordNotFound.
func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns records in storage order. Get-one and get-many share the same
// path: an ID filter narrows the listing before pagination is applied.
func (s *Store[T]) List(ctx context.Context, q ListQuery) ([]T, error) {
	query := s.db.WithContext(ctx)
	if q.ID != "" {
		query = query.Where("id = ?", q.ID)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query = query.Limit(limit)
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	var records []T
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListAll returns every record with no limit. Derived queries that must see
// the whole table (cross-sensitivity scans, remaining-catalog diffs) use this
// instead of List so rows past the default page are never dropped.
func (s *Store[T]) ListAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByIDs fetches the records matching the given identifiers.
func (s *Store[T]) ListByIDs(ctx context.Context, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Update applies a partial update: every field present in fields is written,
// absent fields are untouched.
func (s *Store[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (MutationOutcome, error) {
	var model T
	result := s.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return OutcomeNotFound, result.Error
	}
	if result.RowsAffected == 0 {
		return OutcomeNotFound, nil
	}
	return OutcomeApplied, nil
}

// Delete removes the record with the given identifier.
func (s *Store[T]) Delete(ctx context.Context, id string) (MutationOutcome, error) {
	var model T
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if result.Error != nil {
		return OutcomeNotFound, result.Error
	}
	if result.RowsAffected == 0 {
		return OutcomeNotFound, nil
	}
	return OutcomeApplied, nil
}

// Count returns the number of records, honoring an optional ID filter.
func (s *Store[T]) Count(ctx context.Context, q ListQuery) (int64, error) {
	var model T
	query := s.db.WithContext(ctx).Model(&model)
	if q.ID != "" {
		query = query.Where("id = ?", q.ID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
