// internal/audit/elasticsearch.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"renovation-core/internal/common/database"
)

// ElasticsearchStore indexes audit entries for diagnostics search. It is
// used as a mirror behind the memory store, never as the canonical log:
// Entries is not served from here.
type ElasticsearchStore struct {
	client *database.ElasticsearchClient
	index  string
}

func NewElasticsearchStore(client *database.ElasticsearchClient, index string) *ElasticsearchStore {
	return &ElasticsearchStore{client: client, index: index}
}

func (s *ElasticsearchStore) Append(entry Entry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := s.client.Client.Index(
		s.index,
		bytes.NewReader(body),
		s.client.Client.Index.WithContext(ctx),
		s.client.Client.Index.WithDocumentID(entry.RequestID+":"+string(entry.Event)),
	)
	if err != nil {
		return fmt.Errorf("index audit entry: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index audit entry: %s", res.Status())
	}
	return nil
}

// Entries is not supported on the mirror; the canonical store owns reads.
func (s *ElasticsearchStore) Entries() []Entry {
	return nil
}

func (s *ElasticsearchStore) Close() error {
	return nil
}
