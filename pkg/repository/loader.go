package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/domain/interfaces"
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// activityFile is the on-disk shape of the activity dataset:
// tail number -> ISO date -> ordered [start, end] clock code pairs.
type activityFile map[types.TailNumber]map[types.Date][][2]model.ClockCode

// weatherEntry is the on-disk shape of one weather observation
type weatherEntry struct {
	Time           string   `json:"time"`
	FlightCategory string   `json:"flight_category"`
	TempC          *float64 `json:"temp_c"`
}

// LoadActivityFile reads the activity dataset from a JSON file and stores
// each aircraft's record into the repository.
func LoadActivityFile(ctx context.Context, repo interfaces.Repository, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read activity dataset", goerr.V("path", path))
	}

	var file activityFile
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, goerr.Wrap(err, "failed to parse activity dataset", goerr.V("path", path))
	}

	// Deterministic load order for reproducible logs
	tails := make([]types.TailNumber, 0, len(file))
	for tail := range file {
		tails = append(tails, tail)
	}
	sort.Slice(tails, func(i, j int) bool { return tails[i] < tails[j] })

	for _, tail := range tails {
		record := &model.ActivityRecord{
			Tail: tail,
			Days: make(map[types.Date][]model.Interval, len(file[tail])),
		}
		for date, pairs := range file[tail] {
			intervals := make([]model.Interval, 0, len(pairs))
			for _, pair := range pairs {
				intervals = append(intervals, model.NewInterval(pair[0], pair[1]))
			}
			record.Days[date] = intervals
		}
		if err := repo.PutActivity(ctx, record); err != nil {
			return 0, goerr.Wrap(err, "failed to store activity record", goerr.V("tail", tail))
		}
	}

	return len(tails), nil
}

// LoadWeatherFile reads the weather dataset from a JSON file and stores the
// observations into the repository. Unknown flight categories are a load
// error; the engine itself never validates them.
func LoadWeatherFile(ctx context.Context, repo interfaces.Repository, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read weather dataset", goerr.V("path", path))
	}

	var entries []weatherEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, goerr.Wrap(err, "failed to parse weather dataset", goerr.V("path", path))
	}

	records := make([]model.WeatherRecord, 0, len(entries))
	for i, entry := range entries {
		category, err := types.ParseFlightCategory(entry.FlightCategory)
		if err != nil {
			return 0, goerr.Wrap(err, "invalid weather record",
				goerr.V("path", path), goerr.V("index", i))
		}
		records = append(records, model.WeatherRecord{
			ObservedAt:  entry.Time,
			Category:    category,
			Temperature: entry.TempC,
		})
	}

	if err := repo.PutWeather(ctx, records...); err != nil {
		return 0, goerr.Wrap(err, "failed to store weather records")
	}
	return len(records), nil
}
