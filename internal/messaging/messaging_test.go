//go:build !integration

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"UnrulyHuman/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env, err := NewEnvelope("cs_1", "payment.event", map[string]string{"size": "L"})

	require.NoError(t, err)
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, "cs_1", env.Key)
	assert.Equal(t, "payment.event", env.Type)
	assert.JSONEq(t, `{"size":"L"}`, string(env.Payload))
	assert.WithinDuration(t, time.Now().UTC(), env.Timestamp, time.Second)

	_, err = NewEnvelope("k", "t", func() {})
	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestParseEnvelope(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		env, err := NewEnvelope("cs_1", "payment.event", map[string]string{"size": "L"})
		require.NoError(t, err)
		raw, err := json.Marshal(env)
		require.NoError(t, err)

		parsed, err := ParseEnvelope(raw)
		require.NoError(t, err)

		var payload map[string]string
		require.NoError(t, parsed.Decode(&payload))
		assert.Equal(t, env.EventID, parsed.EventID)
		assert.Equal(t, "L", payload["size"])
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseEnvelope([]byte("{"))

		assert.ErrorContains(t, err, "unmarshal envelope")
	})

	t.Run("payload of the wrong shape", func(t *testing.T) {
		env := Envelope{Type: "payment.event", Payload: json.RawMessage(`[1,2]`)}

		var payload map[string]string
		err := env.Decode(&payload)

		assert.ErrorContains(t, err, "unmarshal payment.event payload")
	})
}

func TestWithMetrics(t *testing.T) {
	handler := WithMetrics("topic-a", "group-a", func(ctx context.Context, key, value []byte) error {
		if string(value) == "bad" {
			return errors.New("boom")
		}
		return nil
	})
	okBefore := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("topic-a", "group-a", metrics.OutcomeSuccess))
	failBefore := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("topic-a", "group-a", metrics.OutcomeFailure))

	require.NoError(t, handler(context.Background(), nil, []byte("good")))
	require.Error(t, handler(context.Background(), nil, []byte("bad")))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("topic-a", "group-a", metrics.OutcomeSuccess)))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("topic-a", "group-a", metrics.OutcomeFailure)))
}

type fakeWorker struct {
	start  func(ctx context.Context, handler MessageHandler) error
	closed atomic.Bool
}

func (w *fakeWorker) Start(ctx context.Context, handler MessageHandler) error {
	return w.start(ctx, handler)
}

func (w *fakeWorker) Close() error {
	w.closed.Store(true)
	return nil
}

func TestRunner_Start(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("stops on context cancel and closes workers", func(t *testing.T) {
		w := &fakeWorker{start: func(ctx context.Context, _ MessageHandler) error {
			<-ctx.Done()
			return nil
		}}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() { done <- NewRunner(l, []Worker{w}, nil).Start(ctx) }()
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("runner did not stop")
		}
		assert.True(t, w.closed.Load())
	})

	t.Run("recovers worker panic", func(t *testing.T) {
		w := &fakeWorker{start: func(context.Context, MessageHandler) error {
			panic("kaboom")
		}}

		err := NewRunner(l, []Worker{w}, nil).Start(context.Background())

		assert.ErrorContains(t, err, "panicked")
		assert.True(t, w.closed.Load())
	})

	t.Run("passes handler to workers", func(t *testing.T) {
		var got string
		w := &fakeWorker{start: func(ctx context.Context, handler MessageHandler) error {
			return handler(ctx, []byte("k"), []byte("v"))
		}}
		handler := func(_ context.Context, _, value []byte) error {
			got = string(value)
			return nil
		}

		require.NoError(t, NewRunner(l, []Worker{w}, handler).Start(context.Background()))
		assert.Equal(t, "v", got)
	})
}
