package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaledash/internal/adapters/querycache"
	"go.trai.ch/scaledash/internal/app"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports/mocks"
	"go.trai.ch/scaledash/internal/core/services"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	transport *mocks.MockTransport
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	tr := mocks.NewMockTransport(ctrl)
	log := mocks.NewMockLogger(ctrl)

	cache, err := querycache.New()
	require.NoError(t, err)

	a := app.New(
		services.NewInfoService(tr, cache),
		services.NewHistoryService(tr, cache, domain.NeverStale),
		services.NewDefinitionService(tr, cache),
		log,
	)
	return fixture{transport: tr, logger: log, app: a}
}

func ok(body string) *domain.Response {
	return &domain.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

var (
	jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
)

func TestApp_Info(t *testing.T) {
	f := newFixture(t)
	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(ok(`{"definitions":2}`), nil).Times(1)

	got, err := f.app.Info(t.Context())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"definitions": json.Number("2")}, got)

	// Served from cache.
	_, err = f.app.Info(t.Context())
	require.NoError(t, err)
}

func TestApp_Info_Error(t *testing.T) {
	f := newFixture(t)
	terr := &domain.TransportError{Method: http.MethodGet, Path: "/info", StatusCode: http.StatusInternalServerError}
	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, terr)

	_, err := f.app.Info(t.Context())
	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestApp_HistoryPage(t *testing.T) {
	tests := []struct {
		name      string
		pageSize  int
		page      int
		wantLen   int
		wantPage  int
		wantPages int
	}{
		{name: "first page", pageSize: 2, page: 1, wantLen: 2, wantPage: 1, wantPages: 3},
		{name: "last partial page", pageSize: 2, page: 3, wantLen: 1, wantPage: 3, wantPages: 3},
		{name: "page past the end is clamped", pageSize: 2, page: 9, wantLen: 1, wantPage: 3, wantPages: 3},
		{name: "zero page size", pageSize: 0, page: 4, wantLen: 0, wantPage: 1, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(ok(`[1,2,3,4,5]`), nil)

			got, err := f.app.HistoryPage(t.Context(), jan1, jan2, tt.pageSize, tt.page)
			require.NoError(t, err)
			assert.Len(t, got.Records, tt.wantLen)
			assert.Equal(t, tt.wantPage, got.Pagination.CurrentPage())
			assert.Equal(t, tt.wantPages, got.Pagination.TotalPage())
			assert.Equal(t, 5, got.Pagination.Total())
		})
	}
}

func TestApp_HistoryPage_NotAList(t *testing.T) {
	f := newFixture(t)
	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(ok(`{"items":[]}`), nil)

	_, err := f.app.HistoryPage(t.Context(), jan1, jan2, 10, 1)
	require.ErrorIs(t, err, domain.ErrUnexpectedPayload)
}

func TestApp_History_InvalidRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.History(t.Context(), jan2, jan1)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestApp_Apply(t *testing.T) {
	f := newFixture(t)
	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.Request) (*domain.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/definitions", req.Path)
			return ok(`{"created":2}`), nil
		})
	f.logger.EXPECT().Info("2 definition documents submitted")

	got, err := f.app.Apply(t.Context(), "a: 1\n---\nb: 2\n")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Documents)
	assert.Equal(t, map[string]any{"created": json.Number("2")}, got.Response)
}

func TestApp_Apply_InvalidDocument(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Apply(t.Context(), "a: [1, 2\n")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid document syntax", verr.Message)
}

func TestApp_Apply_Empty(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn("definition file holds no documents")
	f.logger.EXPECT().Info("0 definition documents submitted")
	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(ok(`{}`), nil)

	got, err := f.app.Apply(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Documents)
}

func TestApp_Overview(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f.app.WithClock(clockwork.NewFakeClockAt(now))

	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.Request) (*domain.Response, error) {
			switch req.Path {
			case "/info":
				return ok(`{"definitions":1}`), nil
			case "/autoscaling-history":
				assert.Equal(t, "2024-02-29T12:00:00Z", req.Query.Get("from"))
				assert.Equal(t, "2024-03-01T12:00:00Z", req.Query.Get("to"))
				return ok(`[]`), nil
			}
			return nil, errors.New("unexpected path " + req.Path)
		}).Times(2)

	got, err := f.app.Overview(t.Context(), 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"definitions": json.Number("1")}, got.Info)
	assert.Equal(t, []any{}, got.History)
	assert.Equal(t, now.Add(-app.DefaultOverviewWindow), got.Window.From)
	assert.Equal(t, now, got.Window.To)
}

func TestApp_Overview_Error(t *testing.T) {
	f := newFixture(t)
	terr := &domain.TransportError{Method: http.MethodGet, Path: "/info", StatusCode: http.StatusInternalServerError}

	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.Request) (*domain.Response, error) {
			if req.Path == "/info" {
				return nil, terr
			}
			return ok(`[]`), nil
		}).Times(2)

	_, err := f.app.Overview(t.Context(), time.Hour)
	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestApp_Refresh(t *testing.T) {
	f := newFixture(t)
	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(ok(`[]`), nil).Times(2)
	f.transport.EXPECT().Do(gomock.Any(), gomock.Any()).Return(ok(`{}`), nil).Times(1)

	_, err := f.app.History(t.Context(), jan1, jan2)
	require.NoError(t, err)
	_, err = f.app.History(t.Context(), jan1, jan1)
	require.NoError(t, err)
	_, err = f.app.Info(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 3, f.app.Refresh())
}

func TestApp_Pages(t *testing.T) {
	f := newFixture(t)

	p := f.app.Pages(10, 95, 20)
	assert.Equal(t, 10, p.TotalPage())
	assert.Equal(t, 10, p.CurrentPage())

	p = f.app.Pages(0, 95, 3)
	assert.Equal(t, 0, p.TotalPage())
	assert.Equal(t, 1, p.CurrentPage())
}
