package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaledash/internal/adapters/querycache"
	"go.trai.ch/scaledash/internal/app"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports/mocks"
	"go.trai.ch/scaledash/internal/core/services"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, tr *mocks.MockTransport, log *mocks.MockLogger) ComponentProvider {
	t.Helper()
	cache, err := querycache.New()
	require.NoError(t, err)

	application := app.New(
		services.NewInfoService(tr, cache),
		services.NewHistoryService(tr, cache, domain.NeverStale),
		services.NewDefinitionService(tr, cache),
		log,
	)
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mocks.NewMockTransport(ctrl)
	log := mocks.NewMockLogger(ctrl)

	tr.EXPECT().Do(gomock.Any(), gomock.Any()).
		Return(&domain.Response{StatusCode: http.StatusOK, Body: []byte(`{"definitions":2}`)}, nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"info"}, stdout, new(bytes.Buffer), newProvider(t, tr, log))
	assert.Equal(t, 0, exitCode)
	assert.JSONEq(t, `{"definitions":2}`, stdout.String())
}

// TestRun_Version verifies that version needs no backend.
func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer),
		newProvider(t, mocks.NewMockTransport(ctrl), mocks.NewMockLogger(ctrl)))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "scaledash version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mocks.NewMockTransport(ctrl)
	log := mocks.NewMockLogger(ctrl)

	terr := &domain.TransportError{Method: http.MethodGet, Path: "/info", StatusCode: http.StatusInternalServerError}
	tr.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, terr)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrTransport)
	})

	exitCode := run(context.Background(), []string{"info"}, new(bytes.Buffer), new(bytes.Buffer), newProvider(t, tr, log))
	assert.Equal(t, 1, exitCode)
}

// TestRun_ValidationErrorSkipsTransport verifies that an invalid document never reaches the backend.
func TestRun_ValidationErrorSkipsTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mocks.NewMockTransport(ctrl)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [1, 2\n"), 0o600))

	exitCode := run(context.Background(), []string{"apply", "-f", path}, new(bytes.Buffer), new(bytes.Buffer), newProvider(t, tr, log))
	assert.Equal(t, 1, exitCode)
}
