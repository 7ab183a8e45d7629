// Generic binding of one content table to an ordered live view plus
// create/update/delete with date-field coercion and audit stamping.
package core

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jebshit_backend/internals/helpers/dbtime"
)

// Schema describes one content table: where it lives, how snapshots are
// ordered and which columns hold calendar dates. Attaching it to the model
// type keeps the date-coercion list type-checked instead of stringly-keyed.
type Schema struct {
	Table      string
	IDCol      string
	CreatedCol string
	UpdatedCol string
	OrderCol   string // defaults to CreatedCol
	OrderAsc   bool   // default: descending
	DateCols   []string
	MaxImages  int
	MaxVideos  int
}

func (s Schema) orderClause() string {
	col := s.OrderCol
	if col == "" {
		col = s.CreatedCol
	}
	dir := "DESC"
	if s.OrderAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

func (s Schema) isDateCol(col string) bool {
	for _, c := range s.DateCols {
		if c == col {
			return true
		}
	}
	return false
}

// Record is implemented by every content model (pointer receiver).
type Record interface {
	Schema() Schema
	PrimaryID() uuid.UUID
	EnsureID()
	Stamp(now time.Time)
}

// Snapshot is one delivery to a subscriber: either the full ordered list
// (ready) or an error (errored). There are no other states.
type Snapshot[T Record] struct {
	Items []T
	Err   error
}

// Unsubscribe deregisters an observer. Safe to call more than once;
// deregistration happens exactly once.
type Unsubscribe func()

type Store[T Record] struct {
	db  *gorm.DB
	sch Schema

	mu     sync.Mutex
	subs   map[int]func(Snapshot[T])
	nextID int
}

func NewStore[T Record](db *gorm.DB) *Store[T] {
	var zero T
	return &Store[T]{
		db:   db,
		sch:  zero.Schema(),
		subs: make(map[int]func(Snapshot[T])),
	}
}

func (s *Store[T]) Schema() Schema { return s.sch }

// ===================== READ =====================

// List returns the full snapshot in schema order. Filtering stays client-side.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := s.db.WithContext(ctx).
		Table(s.sch.Table).
		Order(s.sch.orderClause()).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one record; gorm.ErrRecordNotFound when absent.
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var item T
	err := s.db.WithContext(ctx).
		Table(s.sch.Table).
		Where(s.sch.IDCol+" = ?", id).
		First(&item).Error
	return item, err
}

// ===================== WRITE =====================

// Create assigns the id if unset, stamps created==updated and inserts.
// The caller never supplies id or audit fields.
func (s *Store[T]) Create(ctx context.Context, rec T) (uuid.UUID, error) {
	rec.EnsureID()
	rec.Stamp(time.Now().UTC())
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return uuid.Nil, err
	}
	s.broadcast(ctx)
	return rec.PrimaryID(), nil
}

// Update applies a partial column map. Date columns given as strings are
// coerced ("" becomes NULL); created_at is never written; updated_at always
// is. Unknown id yields gorm.ErrRecordNotFound.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	upd := make(map[string]any, len(changes)+1)
	for col, v := range changes {
		if s.sch.isDateCol(col) {
			if sv, ok := v.(string); ok {
				upd[col] = dbtime.ToDBTime(sv)
				continue
			}
		}
		upd[col] = v
	}
	delete(upd, s.sch.IDCol)
	delete(upd, s.sch.CreatedCol)
	upd[s.sch.UpdatedCol] = time.Now().UTC()

	res := s.db.WithContext(ctx).
		Table(s.sch.Table).
		Where(s.sch.IDCol+" = ?", id).
		Updates(upd)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.broadcast(ctx)
	return nil
}

// Delete removes the record. Already-absent rows count as success, so the
// caller sees delete as idempotent.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Table(s.sch.Table).
		Where(s.sch.IDCol+" = ?", id).
		Delete(nil)
	if res.Error != nil {
		return res.Error
	}
	s.broadcast(ctx)
	return nil
}

// ===================== LIVE VIEW =====================

// Subscribe registers an observer. The current snapshot is delivered
// immediately, then one per server-side change, in emission order. The
// returned handle must be invoked on teardown to avoid leaked listeners.
func (s *Store[T]) Subscribe(ctx context.Context, fn func(Snapshot[T])) Unsubscribe {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	fn(s.snapshot(ctx))

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store[T]) snapshot(ctx context.Context) Snapshot[T] {
	items, err := s.List(ctx)
	if err != nil {
		log.Printf("[ERROR] store %s: snapshot failed: %v", s.sch.Table, err)
		return Snapshot[T]{Err: err}
	}
	return Snapshot[T]{Items: items}
}

func (s *Store[T]) broadcast(ctx context.Context) {
	s.mu.Lock()
	if len(s.subs) == 0 {
		s.mu.Unlock()
		return
	}
	fns := make([]func(Snapshot[T]), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	snap := s.snapshot(ctx)
	for _, fn := range fns {
		fn(snap)
	}
}
