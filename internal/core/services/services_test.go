package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/scaledash/internal/adapters/querycache"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCache(t *testing.T) *querycache.Registry {
	t.Helper()
	r, err := querycache.New()
	require.NoError(t, err)
	return r
}

func newTransport(t *testing.T) *mocks.MockTransport {
	t.Helper()
	return mocks.NewMockTransport(gomock.NewController(t))
}

func jsonResponse(body string) *domain.Response {
	return &domain.Response{StatusCode: 200, Body: []byte(body)}
}
