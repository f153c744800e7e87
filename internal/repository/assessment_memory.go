package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mindwell/assessment-backend/internal/entity"
)

var _ AssessmentRepository = &AssessmentMemory{}

// AssessmentMemory is an in-memory AssessmentRepository used in tests and
// for local runs without a database.
type AssessmentMemory struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]*entity.AssessmentRecord
}

func NewAssessmentMemory() *AssessmentMemory {
	return &AssessmentMemory{
		nextID:  1,
		records: make(map[int64]*entity.AssessmentRecord),
	}
}

func (r *AssessmentMemory) Add(_ context.Context, input entity.AssessmentRecordInput) (*entity.AssessmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := &entity.AssessmentRecord{
		ID:                    r.nextID,
		AssessmentRecordInput: input,
		CreatedAt:             time.Now(),
	}
	r.nextID++
	r.records[record.ID] = record
	return record, nil
}

func (r *AssessmentMemory) List(_ context.Context) ([]*entity.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*entity.AssessmentRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	return records, nil
}

func (r *AssessmentMemory) GetByID(_ context.Context, id int64) (*entity.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, entity.ErrRecordNotFound
	}
	return record, nil
}

func (r *AssessmentMemory) Remove(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return entity.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}
