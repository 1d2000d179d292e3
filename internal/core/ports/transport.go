// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/scaledash/internal/core/domain"
)

// Transport is the single point of outbound HTTP communication.
//
//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks
type Transport interface {
	// Do performs one request. Any network failure, timeout or non-2xx
	// status is returned as a *domain.TransportError after the transport's
	// error hook has run. Do never retries.
	Do(ctx context.Context, req domain.Request) (*domain.Response, error)
}
