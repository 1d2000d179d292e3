package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const definitionsPath = "/definitions"

// DefinitionService submits autoscaling definitions.
type DefinitionService struct {
	transport ports.Transport
	cache     ports.QueryCache
}

// NewDefinitionService creates a DefinitionService.
func NewDefinitionService(transport ports.Transport, cache ports.QueryCache) *DefinitionService {
	return &DefinitionService{transport: transport, cache: cache}
}

// ValidateDefinitions checks that doc parses as a stream of YAML documents and
// returns how many it holds. Empty input holds zero documents.
func (s *DefinitionService) ValidateDefinitions(doc domain.DefinitionDocument) (int, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(doc)))

	count := 0
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return 0, domain.NewInvalidDocumentError(zerr.With(err, "document", count+1))
		}
		count++
	}
}

// CreateDefinitions validates doc and submits its raw text. Nothing is sent
// when validation fails. A successful submission invalidates the cached summary.
func (s *DefinitionService) CreateDefinitions(ctx context.Context, doc domain.DefinitionDocument) (domain.Payload, error) {
	if _, err := s.ValidateDefinitions(doc); err != nil {
		return nil, err
	}

	resp, err := s.transport.Do(ctx, domain.Request{
		Method: http.MethodPost,
		Path:   definitionsPath,
		Body:   domain.DefinitionRequest{Document: string(doc)},
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(InfoKey)
	return resp.Decode()
}
