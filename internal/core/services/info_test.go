package services_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/services"
	"go.uber.org/mock/gomock"
)

func TestInfoService_GetInfo(t *testing.T) {
	transport := newTransport(t)
	transport.EXPECT().
		Do(gomock.Any(), domain.Request{Method: http.MethodGet, Path: "/info"}).
		Return(jsonResponse(`{"definitions":2,"scaler":"ok"}`), nil).
		Times(1)

	svc := services.NewInfoService(transport, newCache(t))

	for range 3 {
		got, err := svc.GetInfo(t.Context())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"definitions": json.Number("2"), "scaler": "ok"}, got)
	}
}

func TestInfoService_InvalidateInfo(t *testing.T) {
	transport := newTransport(t)
	transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(jsonResponse(`{}`), nil).Times(2)

	svc := services.NewInfoService(transport, newCache(t))

	_, err := svc.GetInfo(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, svc.InvalidateInfo())
	_, err = svc.GetInfo(t.Context())
	require.NoError(t, err)
}

func TestInfoService_GetInfo_TransportError(t *testing.T) {
	terr := &domain.TransportError{Method: http.MethodGet, Path: "/info", StatusCode: http.StatusInternalServerError}

	transport := newTransport(t)
	gomock.InOrder(
		transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, terr),
		transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(jsonResponse(`{"ok":true}`), nil),
	)

	svc := services.NewInfoService(transport, newCache(t))

	_, err := svc.GetInfo(t.Context())
	var got *domain.TransportError
	require.True(t, errors.As(err, &got))
	assert.Same(t, terr, got)

	payload, err := svc.GetInfo(t.Context())
	require.NoError(t, err, "a failed fetch is retried on the next call")
	assert.Equal(t, map[string]any{"ok": true}, payload)
}
