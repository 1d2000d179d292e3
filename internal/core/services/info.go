// Package services holds the domain services. Each one builds requests for a
// single API resource, owns its validation, and reads through the query cache.
package services

import (
	"context"
	"net/http"

	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
)

const infoPath = "/info"

// InfoKey is the cache key of the backend summary.
var InfoKey = domain.NewRequestKey("info")

// InfoService reads the backend summary.
type InfoService struct {
	transport ports.Transport
	cache     ports.QueryCache
}

// NewInfoService creates an InfoService.
func NewInfoService(transport ports.Transport, cache ports.QueryCache) *InfoService {
	return &InfoService{transport: transport, cache: cache}
}

// GetInfo returns the summary. It is fetched once and served from cache until
// InvalidateInfo is called.
func (s *InfoService) GetInfo(ctx context.Context) (domain.Payload, error) {
	return s.cache.Fetch(ctx, InfoKey, s.fetchInfo, domain.NeverStale)
}

// InvalidateInfo forces the next GetInfo to hit the backend.
func (s *InfoService) InvalidateInfo() int {
	return s.cache.Invalidate(InfoKey)
}

func (s *InfoService) fetchInfo(ctx context.Context) (domain.Payload, error) {
	resp, err := s.transport.Do(ctx, domain.Request{Method: http.MethodGet, Path: infoPath})
	if err != nil {
		return nil, err
	}
	return resp.Decode()
}
