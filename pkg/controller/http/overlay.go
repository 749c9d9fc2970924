package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
	"github.com/skygrid-lab/skygrid/pkg/usecase"
)

// OverlayHandler serves the overlay engine over JSON
type OverlayHandler struct {
	overlayUC *usecase.Overlay
}

// NewOverlayHandler creates a new overlay handler
func NewOverlayHandler(overlayUC *usecase.Overlay) *OverlayHandler {
	return &OverlayHandler{overlayUC: overlayUC}
}

// HandleWeeks returns the calendar grid for the configured date range
func (h *OverlayHandler) HandleWeeks(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"weeks": h.overlayUC.Weeks(),
	})
}

// tailInfo pairs a tail number with its assigned color
type tailInfo struct {
	Tail  types.TailNumber `json:"tail"`
	Color string           `json:"color"`
}

// HandleTails returns the known tail numbers and their colors
func (h *OverlayHandler) HandleTails(w http.ResponseWriter, r *http.Request) {
	tails, err := h.overlayUC.Tails(r.Context())
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	infos := make([]tailInfo, 0, len(tails))
	for _, tail := range tails {
		infos = append(infos, tailInfo{
			Tail:  tail,
			Color: h.overlayUC.Config().TailColor(tail),
		})
	}
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"tails": infos})
}

// HandleDayOverlay returns the renderable segments for one day. The filter
// snapshot is built from query parameters; everything is enabled when a
// parameter is absent.
func (h *OverlayHandler) HandleDayOverlay(w http.ResponseWriter, r *http.Request) {
	rawDate := chi.URLParam(r, "date")
	if _, err := time.Parse(types.DateLayout, rawDate); err != nil {
		writeError(r.Context(), w, goerr.Wrap(err, "invalid date", goerr.V("date", rawDate)), http.StatusBadRequest)
		return
	}
	date := types.Date(rawDate)

	filter, err := h.filterFromQuery(r)
	if err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	overlay, err := h.overlayUC.DayOverlay(r.Context(), date, filter)
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, overlay)
}

// filterFromQuery builds the engine filter snapshot from request query
// parameters:
//
//	tails=N123AB,N456CD   restrict visible tails (default: all)
//	categories=VFR,IFR    restrict enabled categories (default: all)
//	layers=categories     restrict visible layers (default: both)
//	scale=6               pixels per hour (default: configured value)
func (h *OverlayHandler) filterFromQuery(r *http.Request) (model.FilterState, error) {
	filter, err := h.overlayUC.DefaultFilter(r.Context())
	if err != nil {
		return model.FilterState{}, err
	}

	if raw := r.URL.Query().Get("tails"); raw != "" {
		filter.Tails = make(map[types.TailNumber]bool)
		for _, tail := range strings.Split(raw, ",") {
			filter.Tails[types.TailNumber(tail)] = true
		}
	}

	if raw := r.URL.Query().Get("categories"); raw != "" {
		filter.Categories = make(map[types.FlightCategory]bool)
		for _, name := range strings.Split(raw, ",") {
			category, err := types.ParseFlightCategory(name)
			if err != nil {
				return model.FilterState{}, err
			}
			filter.Categories[category] = true
		}
	}

	if raw := r.URL.Query().Get("layers"); raw != "" {
		filter.ShowCategories = false
		filter.ShowTemperature = false
		for _, layer := range strings.Split(raw, ",") {
			switch layer {
			case "categories":
				filter.ShowCategories = true
			case "temperature":
				filter.ShowTemperature = true
			default:
				return model.FilterState{}, goerr.New("unknown layer", goerr.V("layer", layer))
			}
		}
	}

	if raw := r.URL.Query().Get("scale"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 {
			return model.FilterState{}, goerr.New("invalid scale", goerr.V("scale", raw))
		}
		filter.PxPerHour = scale
	}

	return filter, nil
}
