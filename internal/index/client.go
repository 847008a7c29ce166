package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v7"

	"github.com/scanworks/scanvault/internal/common"
)

// NewClient builds the Elasticsearch client from config.
func NewClient(cfg common.IndexConfig, logger *slog.Logger) (*elasticsearch.Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
	})
	if err != nil {
		logger.Error("failed to create elasticsearch client", "addresses", cfg.Addresses, "error", err)
		return nil, err
	}
	return es, nil
}

// Ping verifies the cluster answers. Used by health checks.
func Ping(ctx context.Context, es *elasticsearch.Client) error {
	res, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		return fmt.Errorf("elasticsearch ping: %s", res.Status())
	}
	return nil
}
