package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/skygrid-lab/skygrid/pkg/domain/interfaces"
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
	"github.com/skygrid-lab/skygrid/pkg/repository"
	"github.com/skygrid-lab/skygrid/pkg/usecase"
)

func testConfig() *model.OverlayConfig {
	return &model.OverlayConfig{
		RangeStart: "2025-01-13",
		RangeEnd:   "2025-01-19",
		PxPerHour:  4,
		TailColors: map[types.TailNumber]string{
			"N123AB": "#1f77b4",
			"N456CD": "#ff7f0e",
		},
		FallbackColor: "#999999",
		CategoryColors: map[types.FlightCategory]string{
			types.CategoryVFR:  "#00a000",
			types.CategoryMVFR: "#0000d0",
			types.CategoryIFR:  "#d00000",
			types.CategoryLIFR: "#c000c0",
		},
		TemperatureBands: model.DefaultTemperatureBands(),
	}
}

func temp(v float64) *float64 { return &v }

func seedRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewMemory()

	gt.NoError(t, repo.PutActivity(ctx, &model.ActivityRecord{
		Tail: "N123AB",
		Days: map[types.Date][]model.Interval{
			"2025-01-15": {
				{Start: "0930", End: "1130"},
				{Start: "2330", End: "0130"},
			},
		},
	}))
	gt.NoError(t, repo.PutActivity(ctx, &model.ActivityRecord{
		Tail: "N456CD",
		Days: map[types.Date][]model.Interval{
			"2025-01-15": {{Start: "1400", End: "1530"}},
		},
	}))

	gt.NoError(t, repo.PutWeather(ctx,
		model.WeatherRecord{ObservedAt: "2025-01-15T09:53", Category: types.CategoryVFR, Temperature: temp(-12)},
		model.WeatherRecord{ObservedAt: "2025-01-15T10:53", Category: types.CategoryVFR, Temperature: temp(-8)},
		model.WeatherRecord{ObservedAt: "2025-01-15T14:53", Category: types.CategoryIFR, Temperature: temp(2)},
		model.WeatherRecord{ObservedAt: "2025-01-15T23:53", Category: types.CategoryMVFR, Temperature: nil},
		model.WeatherRecord{ObservedAt: "2025-01-16T00:53", Category: types.CategoryLIFR, Temperature: temp(-1)},
	))
	return repo
}

func newOverlay(t *testing.T) *usecase.Overlay {
	t.Helper()
	uc, err := usecase.NewOverlay(context.Background(), seedRepo(t), testConfig(), nil)
	gt.NoError(t, err).Required()
	return uc
}

func TestNewOverlay(t *testing.T) {
	t.Run("rejects invalid configuration", func(t *testing.T) {
		cfg := testConfig()
		cfg.PxPerHour = -1
		_, err := usecase.NewOverlay(context.Background(), seedRepo(t), cfg, nil)
		gt.Error(t, err)
	})

	t.Run("builds the calendar grid", func(t *testing.T) {
		uc := newOverlay(t)
		gt.A(t, uc.Weeks()).Length(1)
		gt.Equal(t, uc.Weeks()[0].Monday(), types.Date("2025-01-13"))
	})
}

func TestDayOverlayActivities(t *testing.T) {
	ctx := context.Background()
	uc := newOverlay(t)

	t.Run("all filters on keeps matching intervals", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		gt.A(t, overlay.Activities).Length(3)
	})

	t.Run("hidden tail drops its intervals", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)
		filter.Tails["N123AB"] = false

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		gt.A(t, overlay.Activities).Length(1)
		gt.Equal(t, overlay.Activities[0].Tail, types.TailNumber("N456CD"))
	})

	t.Run("interval with only disabled co-occurring category is suppressed", func(t *testing.T) {
		// The 0930-1130 interval only co-occurs with VFR hours
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)
		filter.Categories[types.CategoryVFR] = false

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		for _, seg := range overlay.Activities {
			if seg.Start == "0930" {
				t.Errorf("VFR-only interval should be suppressed, got %+v", seg)
			}
		}
	})

	t.Run("cross midnight interval matches next-day weather", func(t *testing.T) {
		// 2330-0130 touches MVFR at 23:00 and LIFR at 00:00 next day;
		// disabling MVFR must keep it alive through LIFR
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)
		filter.Categories[types.CategoryMVFR] = false

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)

		found := false
		for _, seg := range overlay.Activities {
			if seg.Start == "2330" {
				found = true
				gt.True(t, seg.CrossesMidnight)
				gt.Equal(t, seg.WidthPx, 8.0)
				gt.Equal(t, seg.OffsetPx, 94.0)
			}
		}
		gt.True(t, found)
	})

	t.Run("day without activity yields no segments", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)

		overlay, err := uc.DayOverlay(ctx, "2025-01-14", filter)
		gt.NoError(t, err)
		gt.A(t, overlay.Activities).Length(0)
	})
}

func TestDayOverlayLayers(t *testing.T) {
	ctx := context.Background()
	uc := newOverlay(t)

	t.Run("weather segments per indexed hour", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		gt.A(t, overlay.Weather).Length(4)
		gt.Equal(t, overlay.Weather[0].Hour, 9)
		gt.Equal(t, overlay.Weather[0].Category, types.CategoryVFR)
		gt.Equal(t, overlay.Weather[0].OffsetPx, 36.0)
		gt.Equal(t, overlay.Weather[0].WidthPx, 4.0)
	})

	t.Run("temperature segments skip nil temperatures", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		// hour 23 has no temperature
		gt.A(t, overlay.Temperature).Length(3)
		gt.Equal(t, overlay.Temperature[0].Hour, 9)
		gt.Equal(t, overlay.Temperature[0].Band, 1) // -12C is in the second band
	})

	t.Run("category layer off", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)
		filter.ShowCategories = false

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		gt.A(t, overlay.Weather).Length(0)
		gt.A(t, overlay.Temperature).Length(3)
	})

	t.Run("temperature layer off", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)
		filter.ShowTemperature = false

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		gt.A(t, overlay.Temperature).Length(0)
	})

	t.Run("filter scale overrides the default", func(t *testing.T) {
		filter, err := uc.DefaultFilter(ctx)
		gt.NoError(t, err)
		filter.PxPerHour = 10

		overlay, err := uc.DayOverlay(ctx, "2025-01-15", filter)
		gt.NoError(t, err)
		gt.Equal(t, overlay.Weather[0].OffsetPx, 90.0)
		gt.Equal(t, overlay.Weather[0].WidthPx, 10.0)
	})
}

func TestWeekOverlays(t *testing.T) {
	ctx := context.Background()
	uc := newOverlay(t)

	filter, err := uc.DefaultFilter(ctx)
	gt.NoError(t, err)

	week, ok := uc.WeekContaining("2025-01-15")
	gt.True(t, ok)

	overlays, err := uc.WeekOverlays(ctx, week, filter)
	gt.NoError(t, err)
	gt.A(t, overlays).Length(7)
	gt.Equal(t, overlays[2].Date, types.Date("2025-01-15"))
	gt.A(t, overlays[2].Activities).Length(3)
}

func TestWeekContaining(t *testing.T) {
	uc := newOverlay(t)

	t.Run("date inside range", func(t *testing.T) {
		week, ok := uc.WeekContaining("2025-01-17")
		gt.True(t, ok)
		gt.Equal(t, week.Monday(), types.Date("2025-01-13"))
	})

	t.Run("date outside range", func(t *testing.T) {
		_, ok := uc.WeekContaining("2025-06-01")
		gt.False(t, ok)
	})
}
