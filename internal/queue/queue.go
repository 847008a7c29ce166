// Package queue dispatches processing tasks over AMQP and runs them inline
// when the broker is unreachable.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler runs one document through the pipeline to a terminal status. A nil
// return means the document reached a terminal status or was benignly
// skipped; only then may the message be acked.
type Handler func(ctx context.Context, documentID int) error

// Dispatcher enqueues documents for processing.
type Dispatcher interface {
	Dispatch(ctx context.Context, documentID int) error
	DispatchBatch(ctx context.Context, documentIDs []int) error
}

type task struct {
	DocumentID int `json:"document_id"`
}

func encodeTask(documentID int) ([]byte, error) {
	return json.Marshal(task{DocumentID: documentID})
}

func decodeTask(body []byte) (int, error) {
	var t task
	if err := json.Unmarshal(body, &t); err != nil {
		return 0, fmt.Errorf("decode task: %w", err)
	}
	if t.DocumentID <= 0 {
		return 0, fmt.Errorf("task missing document_id")
	}
	return t.DocumentID, nil
}
