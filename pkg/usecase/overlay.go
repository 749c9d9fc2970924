package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/domain/interfaces"
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
	"github.com/skygrid-lab/skygrid/pkg/service/weatherindex"
	"github.com/skygrid-lab/skygrid/pkg/utils/metrics"
)

// Overlay evaluates per-day renderable segments from the loaded datasets.
// The weather join index and the calendar grid are derived once at
// construction; every evaluation afterwards is a pure read.
type Overlay struct {
	repo      interfaces.Repository
	index     *weatherindex.Index
	config    *model.OverlayConfig
	weeks     []model.WeekSpan
	collector *metrics.Collector
}

// NewOverlay builds the overlay use case: it validates the configuration,
// indexes the weather dataset and materializes the calendar grid for the
// configured range. The collector may be nil.
func NewOverlay(ctx context.Context, repo interfaces.Repository, cfg *model.OverlayConfig, collector *metrics.Collector) (*Overlay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid overlay configuration")
	}

	records, err := repo.ListWeather(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list weather records")
	}

	index := weatherindex.New(records)
	start, end := cfg.Range()
	weeks := model.BuildWeeks(start, end)

	if collector != nil {
		collector.IndexBuckets.Set(float64(index.Len()))
	}

	ctxlog.From(ctx).Info("overlay engine ready",
		"weatherRecords", len(records),
		"indexBuckets", index.Len(),
		"weeks", len(weeks),
	)

	return &Overlay{
		repo:      repo,
		index:     index,
		config:    cfg,
		weeks:     weeks,
		collector: collector,
	}, nil
}

// Config returns the engine configuration
func (uc *Overlay) Config() *model.OverlayConfig {
	return uc.config
}

// Weeks returns the cached calendar grid covering the configured range
func (uc *Overlay) Weeks() []model.WeekSpan {
	return uc.weeks
}

// Tails lists the tail numbers present in the activity dataset
func (uc *Overlay) Tails(ctx context.Context) ([]types.TailNumber, error) {
	return uc.repo.ListTails(ctx)
}

// DefaultFilter returns the everything-on filter for the loaded dataset
func (uc *Overlay) DefaultFilter(ctx context.Context) (model.FilterState, error) {
	tails, err := uc.repo.ListTails(ctx)
	if err != nil {
		return model.FilterState{}, goerr.Wrap(err, "failed to list tails")
	}
	return model.DefaultFilter(uc.config, tails), nil
}

// DayOverlay produces the renderable segments for one day column under the
// given filter snapshot. Activity intervals survive only when at least one
// enabled weather category co-occurs with them.
func (uc *Overlay) DayOverlay(ctx context.Context, date types.Date, filter model.FilterState) (*model.DayOverlay, error) {
	passID := uuid.New().String()
	scale := filter.PxPerHour
	if scale <= 0 {
		scale = uc.config.PxPerHour
	}

	overlay := &model.DayOverlay{Date: date}

	tails, err := uc.repo.ListTails(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tails")
	}

	suppressed := 0
	for _, tail := range tails {
		if !filter.TailVisible(tail) {
			continue
		}
		record, err := uc.repo.GetActivity(ctx, tail)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get activity record", goerr.V("tail", tail))
		}
		for _, iv := range record.IntervalsOn(date) {
			if !uc.index.MatchesAny(date, iv, filter.Categories) {
				suppressed++
				continue
			}
			overlay.Activities = append(overlay.Activities, model.ActivitySegment{
				Tail:            tail,
				Start:           iv.Start,
				End:             iv.End,
				OffsetPx:        iv.OffsetPx(scale),
				WidthPx:         iv.WidthPx(scale),
				Color:           uc.config.TailColor(tail),
				CrossesMidnight: iv.CrossesMidnight(),
			})
		}
	}

	if filter.ShowCategories || filter.ShowTemperature {
		for _, hour := range uc.index.HoursOn(date) {
			record, ok := uc.index.Lookup(date, hour)
			if !ok {
				continue
			}
			if filter.ShowCategories {
				overlay.Weather = append(overlay.Weather, model.WeatherSegment{
					Hour:     hour,
					Category: record.Category,
					OffsetPx: float64(hour) * scale,
					WidthPx:  scale,
					Color:    uc.config.CategoryColor(record.Category),
				})
			}
			if filter.ShowTemperature && record.Temperature != nil {
				temp := *record.Temperature
				overlay.Temperature = append(overlay.Temperature, model.TemperatureSegment{
					Hour:     hour,
					TempC:    temp,
					Band:     uc.config.TemperatureBandIndex(temp),
					OffsetPx: float64(hour) * scale,
					WidthPx:  scale,
					Color:    uc.config.TemperatureColor(temp),
				})
			}
		}
	}

	if uc.collector != nil {
		uc.collector.OverlayEvaluationsTotal.Inc()
		uc.collector.SuppressedIntervalsTotal.Add(float64(suppressed))
	}

	ctxlog.From(ctx).Debug("day overlay evaluated",
		"pass", passID,
		"date", date,
		"activities", len(overlay.Activities),
		"suppressed", suppressed,
		"weatherHours", len(overlay.Weather),
	)

	return overlay, nil
}

// WeekOverlays evaluates the overlay for each day of a week span
func (uc *Overlay) WeekOverlays(ctx context.Context, span model.WeekSpan, filter model.FilterState) ([]*model.DayOverlay, error) {
	overlays := make([]*model.DayOverlay, 0, len(span.Days))
	for _, date := range span.Days {
		overlay, err := uc.DayOverlay(ctx, date, filter)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to evaluate day overlay", goerr.V("date", date))
		}
		overlays = append(overlays, overlay)
	}
	return overlays, nil
}

// WeekContaining returns the week span of the configured grid that holds
// the date, or ok=false when the date falls outside the range.
func (uc *Overlay) WeekContaining(date types.Date) (model.WeekSpan, bool) {
	for _, week := range uc.weeks {
		if week.Contains(date) {
			return week, true
		}
	}
	return model.WeekSpan{}, false
}
