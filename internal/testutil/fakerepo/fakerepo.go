// Package fakerepo provides in-memory repositories for tests. List fields are
// kept in their encoded column form so reads go through the same decode path
// as PostgreSQL rows.
package fakerepo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sort"
	"sync"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// Runner is a repositories.TxRunner without a real session. When Err is set
// WithinTx fails without calling fn.
type Runner struct {
	Err   error
	mu    sync.Mutex
	calls int
}

func (r *Runner) WithinTx(ctx context.Context, fn func(ctx context.Context, executor repositories.SQLExecutor) error) error {
	r.mu.Lock()
	r.calls++
	err := r.Err
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(ctx, nil)
}

// Calls reports how many sessions were opened.
func (r *Runner) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type table[T any] struct {
	mu   sync.Mutex
	next int64
	rows map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[int64]T{}}
}

// insert stores build(id) unless conflicts reports a clash with an existing row.
func (t *table[T]) insert(build func(id int64) T, conflicts func(T) bool) (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if conflicts != nil {
		for _, row := range t.rows {
			if conflicts(row) {
				return 0, false
			}
		}
	}
	t.next++
	t.rows[t.next] = build(t.next)
	return t.next, true
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) list() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// replace overwrites row id. It reports ErrNotFound or ErrDuplicateKey.
func (t *table[T]) replace(id int64, row T, conflicts func(otherID int64, other T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	if conflicts != nil {
		for otherID, other := range t.rows {
			if otherID != id && conflicts(otherID, other) {
				return duplicate()
			}
		}
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) remove(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// mutate edits row id in place.
func (t *table[T]) mutate(id int64, fn func(*T)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return false
	}
	fn(&row)
	t.rows[id] = row
	return true
}

func duplicate() error {
	return fmt.Errorf("%w: value is taken", repositories.ErrDuplicateKey)
}

// encode and decode mirror what the PostgreSQL driver does with a StringList column.
func encode(l models.StringList) driver.Value {
	v, _ := l.Value()
	return v
}

func decode(v driver.Value) models.StringList {
	var l models.StringList
	_ = l.Scan(v)
	return l
}

// Store holds one in-memory table per resource.
type Store struct {
	clients  *table[models.Client]
	trainers *table[models.Trainer]
	groups   *table[models.Group]
	periods  *table[models.Period]
	payments *table[paymentRow]
	freeze   *table[freezeRow]
}

func New() *Store {
	return &Store{
		clients:  newTable[models.Client](),
		trainers: newTable[models.Trainer](),
		groups:   newTable[models.Group](),
		periods:  newTable[models.Period](),
		payments: newTable[paymentRow](),
		freeze:   newTable[freezeRow](),
	}
}

// Repositories returns repositories backed by s.
func (s *Store) Repositories() repositories.Repositories {
	return repositories.Repositories{
		Clients:        &clientRepo{t: s.clients},
		Trainers:       &trainerRepo{t: s.trainers},
		Groups:         &groupRepo{t: s.groups},
		Periods:        &periodRepo{t: s.periods},
		Payments:       &paymentRepo{t: s.payments},
		FreezeSettings: &freezeRepo{t: s.freeze},
	}
}

// SetRawBanks overwrites the stored banks column of payment id.
func (s *Store) SetRawBanks(id int64, raw driver.Value) bool {
	return s.payments.mutate(id, func(r *paymentRow) { r.banks = raw })
}

// SetRawReasons overwrites the stored reasons column of freeze settings id.
func (s *Store) SetRawReasons(id int64, raw driver.Value) bool {
	return s.freeze.mutate(id, func(r *freezeRow) { r.reasons = raw })
}

// RawBanks returns the stored banks column of payment id.
func (s *Store) RawBanks(id int64) driver.Value {
	row, _ := s.payments.get(id)
	return row.banks
}

func stamp(created, updated *time.Time) {
	now := time.Now()
	if created != nil {
		*created = now
	}
	*updated = now
}
