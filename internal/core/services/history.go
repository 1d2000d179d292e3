package services

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
)

const historyPath = "/autoscaling-history"

// HistoryKeyPrefix matches every cached history window.
var HistoryKeyPrefix = domain.NewRequestKey("history")

// HistoryKey returns the cache key of one history window.
func HistoryKey(r domain.TimeRange) domain.RequestKey {
	return domain.NewRequestKey(HistoryKeyPrefix[0], r.FromISO(), r.ToISO())
}

// HistoryService reads autoscaling history by time window.
type HistoryService struct {
	transport ports.Transport
	cache     ports.QueryCache
	staleness domain.Staleness
}

// NewHistoryService creates a HistoryService. Windows are served from cache
// for staleness; use domain.NeverStale to keep them until invalidated.
func NewHistoryService(transport ports.Transport, cache ports.QueryCache, staleness domain.Staleness) *HistoryService {
	return &HistoryService{transport: transport, cache: cache, staleness: staleness}
}

// GetHistoryByRange returns the history records between from and to, exactly
// as the backend sent them. A window with from after to is rejected with a
// ValidationError; the pair is never swapped.
func (s *HistoryService) GetHistoryByRange(ctx context.Context, from, to time.Time) (domain.Payload, error) {
	window, err := domain.NewTimeRange(from, to)
	if err != nil {
		return nil, err
	}

	return s.cache.Fetch(ctx, HistoryKey(window), func(ctx context.Context) (domain.Payload, error) {
		resp, err := s.transport.Do(ctx, domain.Request{
			Method: http.MethodGet,
			Path:   historyPath,
			Query: url.Values{
				"from": {window.FromISO()},
				"to":   {window.ToISO()},
			},
		})
		if err != nil {
			return nil, err
		}
		return resp.Decode()
	}, s.staleness)
}

// InvalidateHistory marks every cached window stale and reports how many there were.
func (s *HistoryService) InvalidateHistory() int {
	return s.cache.Invalidate(HistoryKeyPrefix)
}
