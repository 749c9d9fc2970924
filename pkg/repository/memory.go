package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/domain/interfaces"
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// Memory implements Repository with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	activity map[types.TailNumber]*model.ActivityRecord
	weather  []model.WeatherRecord
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		activity: make(map[types.TailNumber]*model.ActivityRecord),
	}
}

// PutActivity stores the activity record for one aircraft
func (m *Memory) PutActivity(ctx context.Context, record *model.ActivityRecord) error {
	if record == nil {
		return goerr.New("activity record is nil")
	}
	if record.Tail == "" {
		return goerr.New("tail number is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recordCopy := *record
	m.activity[record.Tail] = &recordCopy
	return nil
}

// GetActivity retrieves the activity record for a tail number
func (m *Memory) GetActivity(ctx context.Context, tail types.TailNumber) (*model.ActivityRecord, error) {
	if tail == "" {
		return nil, goerr.New("tail number is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.activity[tail]
	if !exists {
		return nil, goerr.Wrap(model.ErrTailNotFound, "no activity record",
			goerr.V("tail", tail))
	}

	// Return a copy to prevent external modification
	recordCopy := *record
	return &recordCopy, nil
}

// ListTails lists all known tail numbers in sorted order
func (m *Memory) ListTails(ctx context.Context) ([]types.TailNumber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tails := make([]types.TailNumber, 0, len(m.activity))
	for tail := range m.activity {
		tails = append(tails, tail)
	}
	sort.Slice(tails, func(i, j int) bool { return tails[i] < tails[j] })
	return tails, nil
}

// PutWeather appends weather observations to the dataset
func (m *Memory) PutWeather(ctx context.Context, records ...model.WeatherRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.weather = append(m.weather, records...)
	return nil
}

// ListWeather returns all weather observations in insertion order
func (m *Memory) ListWeather(ctx context.Context) ([]model.WeatherRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]model.WeatherRecord, len(m.weather))
	copy(records, m.weather)
	return records, nil
}
