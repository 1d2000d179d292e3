// Package app implements the application layer behind the scaledash CLI.
package app

import (
	"context"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
	"go.trai.ch/scaledash/internal/core/services"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultOverviewWindow is the history window shown by Overview.
const DefaultOverviewWindow = 24 * time.Hour

// App ties the domain services together for the CLI.
type App struct {
	info        *services.InfoService
	history     *services.HistoryService
	definitions *services.DefinitionService
	logger      ports.Logger
	clock       clockwork.Clock
}

// New creates a new App instance.
func New(
	info *services.InfoService,
	history *services.HistoryService,
	definitions *services.DefinitionService,
	log ports.Logger,
) *App {
	return &App{
		info:        info,
		history:     history,
		definitions: definitions,
		logger:      log,
		clock:       clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used to compute relative windows.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// Info returns the backend summary.
func (a *App) Info(ctx context.Context) (domain.Payload, error) {
	payload, err := a.info.GetInfo(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load info")
	}
	return payload, nil
}

// History returns the history records between from and to.
func (a *App) History(ctx context.Context, from, to time.Time) (domain.Payload, error) {
	payload, err := a.history.GetHistoryByRange(ctx, from, to)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load history")
	}
	return payload, nil
}

// HistoryPage is one page of history records.
type HistoryPage struct {
	Records    []any
	Pagination domain.Pagination
}

// HistoryPage loads the records between from and to and returns the requested
// page. The backend payload must be a JSON array.
func (a *App) HistoryPage(ctx context.Context, from, to time.Time, pageSize, page int) (HistoryPage, error) {
	payload, err := a.History(ctx, from, to)
	if err != nil {
		return HistoryPage{}, err
	}

	records, ok := payload.([]any)
	if !ok && payload != nil {
		return HistoryPage{}, zerr.With(zerr.Wrap(domain.ErrUnexpectedPayload, "history is not a list"), "expected", "array")
	}

	p := domain.NewPagination(pageSize, len(records), page)
	window := records[p.Offset() : p.Offset()+p.Limit()]
	return HistoryPage{Records: window, Pagination: p}, nil
}

// ApplyResult reports a definition submission.
type ApplyResult struct {
	Documents int
	Response  domain.Payload
}

// Apply validates doc and submits it.
func (a *App) Apply(ctx context.Context, doc domain.DefinitionDocument) (ApplyResult, error) {
	count, err := a.definitions.ValidateDefinitions(doc)
	if err != nil {
		return ApplyResult{}, err
	}
	if count == 0 {
		a.logger.Warn("definition file holds no documents")
	}

	resp, err := a.definitions.CreateDefinitions(ctx, doc)
	if err != nil {
		return ApplyResult{}, zerr.Wrap(err, "failed to submit definitions")
	}

	a.logger.Info(pluralize(count, "definition document") + " submitted")
	return ApplyResult{Documents: count, Response: resp}, nil
}

// Overview is the summary and the most recent history window.
type Overview struct {
	Info    domain.Payload
	History domain.Payload
	Window  domain.TimeRange
}

// Overview loads the summary and the history of the last window concurrently
// and returns the first failure. A request already started runs to completion.
func (a *App) Overview(ctx context.Context, window time.Duration) (Overview, error) {
	if window <= 0 {
		window = DefaultOverviewWindow
	}

	out := Overview{Window: domain.LastWindow(a.clock.Now(), window)}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := a.Info(ctx)
		out.Info = info
		return err
	})
	g.Go(func() error {
		history, err := a.History(ctx, out.Window.From, out.Window.To)
		out.History = history
		return err
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}

// Refresh drops every cached result so the next call reaches the backend.
func (a *App) Refresh() int {
	return a.info.InvalidateInfo() + a.history.InvalidateHistory()
}

// Pages computes a pagination state.
func (a *App) Pages(pageSize, total, page int) domain.Pagination {
	return domain.NewPagination(pageSize, total, page)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
