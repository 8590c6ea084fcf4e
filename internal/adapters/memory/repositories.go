package memory

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

// ActivityRepository is the in-memory activity registry. Roster mutations are
// check-then-mutate under a single mutex; activities are never created or
// deleted after construction.
type ActivityRepository struct {
	mu   sync.Mutex
	rows map[string]domain.Activity
}

func NewActivityRepository(catalog []domain.Activity) *ActivityRepository {
	rows := make(map[string]domain.Activity, len(catalog))
	for _, a := range catalog {
		rows[a.Name] = a.Clone()
	}
	return &ActivityRepository{rows: rows}
}

func (r *ActivityRepository) List(_ context.Context) (map[string]domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]domain.Activity, len(r.rows))
	for name, row := range r.rows {
		out[name] = row.Clone()
	}
	return out, nil
}

func (r *ActivityRepository) Get(_ context.Context, name string) (domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return row.Clone(), nil
}

func (r *ActivityRepository) AddParticipant(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if row.HasParticipant(email) {
		return domain.ErrAlreadyRegistered
	}
	row.Participants = append(row.Participants, email)
	r.rows[name] = row
	return nil
}

func (r *ActivityRepository) RemoveParticipant(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if !row.HasParticipant(email) {
		return domain.ErrNotRegistered
	}
	kept := make([]string, 0, len(row.Participants)-1)
	for _, p := range row.Participants {
		if p != email {
			kept = append(kept, p)
		}
	}
	row.Participants = kept
	r.rows[name] = row
	return nil
}
