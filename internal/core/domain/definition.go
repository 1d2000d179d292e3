package domain

// DefinitionDocument is the raw multi-document YAML text submitted to the
// backend. The client never interprets its content; it only checks that it
// parses as a sequence of documents.
type DefinitionDocument string

// DefinitionRequest is the body of POST /definitions.
type DefinitionRequest struct {
	Document string `json:"document"`
}
