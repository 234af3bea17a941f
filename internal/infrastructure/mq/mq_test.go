package mq

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"vidcall_server/internal/config"
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/model"
	"vidcall_server/pkg/errorx"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

// fakeReader serves queued messages, then blocks until ctx ends.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		m := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) committedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

type fakeSink struct {
	mu   sync.Mutex
	got  []request.CallRecordMessage
	fail error
}

func (s *fakeSink) Ingest(_ context.Context, msg request.CallRecordMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.got = append(s.got, msg)
	return nil
}

func TestPublishSessionEventRoutesByType(t *testing.T) {
	w := &fakeWriter{}
	client := &KafkaClient{
		Producer: w,
		cfg:      config.KafkaConfig{LoginTopic: "session_login", LogoutTopic: "session_logout"},
	}
	ctx := context.Background()

	require.NoError(t, client.PublishSessionEvent(ctx, model.SessionEvent{Type: model.SessionSignedIn, UserID: "u1"}))
	require.NoError(t, client.PublishSessionEvent(ctx, model.SessionEvent{Type: model.SessionSignedOut, UserID: "u1", Redirect: "/auth"}))
	assert.Error(t, client.PublishSessionEvent(ctx, model.SessionEvent{Type: "EXPIRED", UserID: "u1"}))

	require.Len(t, w.msgs, 2)
	assert.Equal(t, "session_login", w.msgs[0].Topic)
	assert.Equal(t, "session_logout", w.msgs[1].Topic)
	assert.Equal(t, []byte("u1"), w.msgs[1].Key)

	var decoded model.SessionEvent
	require.NoError(t, json.Unmarshal(w.msgs[1].Value, &decoded))
	assert.Equal(t, model.SessionSignedOut, decoded.Type)
	assert.Equal(t, "/auth", decoded.Redirect)
}

func TestConsumerIngestsAndSkipsBadRecords(t *testing.T) {
	good, err := json.Marshal(request.CallRecordMessage{
		CallType: "video", Status: "completed", Duration: 30,
		StartedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		CallerID:  "u1", ReceiverID: "u2",
	})
	require.NoError(t, err)

	reader := &fakeReader{queue: []kafka.Message{
		{Offset: 1, Value: []byte("{not json")},
		{Offset: 2, Value: good},
	}}
	sink := &fakeSink{}
	consumer := &CallRecordConsumer{reader: reader, sink: sink}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return reader.committedCount() == 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	require.Len(t, sink.got, 1)
	assert.Equal(t, "u1", sink.got[0].CallerID)
}

func TestConsumerCommitsRejectedRecords(t *testing.T) {
	reader := &fakeReader{queue: []kafka.Message{{Offset: 7, Value: []byte(`{"call_type":"fax"}`)}}}
	sink := &fakeSink{fail: errorx.New(errorx.CodeInvalidParam, "invalid call record")}
	consumer := &CallRecordConsumer{reader: reader, sink: sink}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go consumer.Run(ctx)

	assert.Eventually(t, func() bool { return reader.committedCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, sink.got)
}
