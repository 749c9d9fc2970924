package weatherindex

import (
	"sort"

	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

// Index is the derived (date, hour) lookup over the weather dataset. It is
// built once from the immutable source records and is safe for concurrent
// readers. At most one record is kept per bucket; when the source carries
// duplicates the last record wins.
type Index struct {
	byDate map[types.Date]map[int]model.WeatherRecord
	size   int
}

// New builds the join index from the source observations in one pass
func New(records []model.WeatherRecord) *Index {
	idx := &Index{
		byDate: make(map[types.Date]map[int]model.WeatherRecord),
	}
	for _, record := range records {
		date, hour, ok := record.Bucket()
		if !ok {
			continue
		}
		hours, exists := idx.byDate[date]
		if !exists {
			hours = make(map[int]model.WeatherRecord, 24)
			idx.byDate[date] = hours
		}
		if _, dup := hours[hour]; !dup {
			idx.size++
		}
		hours[hour] = record
	}
	return idx
}

// Lookup returns the observation bucketed at (date, hour). A missing bucket
// is reported through ok=false; it is normal, not an error.
func (x *Index) Lookup(date types.Date, hour int) (model.WeatherRecord, bool) {
	record, ok := x.byDate[date][hour]
	return record, ok
}

// HoursOn returns the sorted hours of the date that have an observation
func (x *Index) HoursOn(date types.Date) []int {
	buckets := x.byDate[date]
	if len(buckets) == 0 {
		return nil
	}
	hours := make([]int, 0, len(buckets))
	for hour := range buckets {
		hours = append(hours, hour)
	}
	sort.Ints(hours)
	return hours
}

// Len returns the number of distinct (date, hour) buckets
func (x *Index) Len() int {
	return x.size
}
