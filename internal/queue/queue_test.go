package queue

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCodecRoundtrip(t *testing.T) {
	body, err := encodeTask(42)
	require.NoError(t, err)
	assert.JSONEq(t, `{"document_id": 42}`, string(body))

	id, err := decodeTask(body)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestDecodeTaskRejectsGarbage(t *testing.T) {
	_, err := decodeTask([]byte("not json"))
	assert.Error(t, err)

	_, err = decodeTask([]byte(`{"document_id": 0}`))
	assert.Error(t, err)

	_, err = decodeTask([]byte(`{}`))
	assert.Error(t, err)
}

type stubDispatcher struct {
	err        error
	dispatched []int
}

func (s *stubDispatcher) Dispatch(_ context.Context, documentID int) error {
	if s.err != nil {
		return s.err
	}
	s.dispatched = append(s.dispatched, documentID)
	return nil
}

func (s *stubDispatcher) DispatchBatch(ctx context.Context, ids []int) error {
	for _, id := range ids {
		if err := s.Dispatch(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func TestFallbackDispatcherPrefersBroker(t *testing.T) {
	primary := &stubDispatcher{}
	var ran []int
	d := NewFallbackDispatcher(primary, func(_ context.Context, id int) error {
		ran = append(ran, id)
		return nil
	}, slog.Default())

	require.NoError(t, d.Dispatch(context.Background(), 5))
	assert.Equal(t, []int{5}, primary.dispatched)
	assert.Empty(t, ran, "inline run must not fire when publish succeeds")
}

func TestFallbackDispatcherRunsInlineOnPublishFailure(t *testing.T) {
	primary := &stubDispatcher{err: errors.New("broker down")}
	var ran []int
	d := NewFallbackDispatcher(primary, func(_ context.Context, id int) error {
		ran = append(ran, id)
		return nil
	}, slog.Default())

	require.NoError(t, d.Dispatch(context.Background(), 5))
	assert.Equal(t, []int{5}, ran)
}

func TestFallbackDispatcherWithoutBroker(t *testing.T) {
	var ran []int
	d := NewFallbackDispatcher(nil, func(_ context.Context, id int) error {
		ran = append(ran, id)
		return nil
	}, slog.Default())

	require.NoError(t, d.DispatchBatch(context.Background(), []int{3, 1, 2}))
	assert.Equal(t, []int{3, 1, 2}, ran, "batch keeps caller order")
}
