package interfaces

import (
	"context"

	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// Repository provides access to the loaded activity and weather datasets.
// Both datasets are load-once reference data; implementations only need to
// guard concurrent readers.
type Repository interface {
	// PutActivity stores the activity record for one aircraft
	PutActivity(ctx context.Context, record *model.ActivityRecord) error
	// GetActivity retrieves the activity record for a tail number
	GetActivity(ctx context.Context, tail types.TailNumber) (*model.ActivityRecord, error)
	// ListTails lists all known tail numbers in sorted order
	ListTails(ctx context.Context) ([]types.TailNumber, error)

	// PutWeather appends weather observations to the dataset
	PutWeather(ctx context.Context, records ...model.WeatherRecord) error
	// ListWeather returns all weather observations in insertion order
	ListWeather(ctx context.Context) ([]model.WeatherRecord, error)
}
