package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// memoryMatch keeps records for the lifetime of the process.
type memoryMatch struct {
	mu      sync.RWMutex
	records map[string]*entity.MatchRecord
	order   []string
}

func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatch{
		records: make(map[string]*entity.MatchRecord),
	}
}

func (that *memoryMatch) Save(_ context.Context, record *entity.MatchRecord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.records[record.ID]; ok {
		that.order = slices.DeleteFunc(that.order, func(id string) bool { return id == record.ID })
	}
	that.order = append(that.order, record.ID)

	that.records[record.ID] = cloneRecord(record)

	return nil
}

func (that *memoryMatch) GetByID(_ context.Context, id string) (*entity.MatchRecord, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.records[id]
	if !ok {
		return nil, apperror.ErrMatchNotFound
	}

	return cloneRecord(record), nil
}

func (that *memoryMatch) ListRecent(_ context.Context, limit int) ([]*entity.MatchRecord, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	limit = normalizeLimit(limit)

	records := make([]*entity.MatchRecord, 0, min(limit, len(that.order)))
	for i := len(that.order) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, cloneRecord(that.records[that.order[i]]))
	}

	return records, nil
}

// cloneRecord copies every slice and pointer so stored history never aliases a caller's record.
func cloneRecord(record *entity.MatchRecord) *entity.MatchRecord {
	clone := *record

	if record.Players != nil {
		clone.Players = make([]*entity.Player, len(record.Players))
		for i, player := range record.Players {
			if player != nil {
				copied := *player
				clone.Players[i] = &copied
			}
		}
	}

	if record.LastMove != nil {
		move := *record.LastMove
		clone.LastMove = &move
	}

	clone.Board = slices.Clone(record.Board)

	return &clone
}
