package mq

import (
	"context"
	"encoding/json"
	"errors"

	"vidcall_server/internal/dto/request"
	"vidcall_server/pkg/errorx"

	"go.uber.org/zap"
)

// CallRecordSink stores decoded call records.
type CallRecordSink interface {
	Ingest(ctx context.Context, msg request.CallRecordMessage) error
}

// CallRecordConsumer reads the call topic into the sink.
type CallRecordConsumer struct {
	reader messageReader
	sink   CallRecordSink
}

// NewCallRecordConsumer consumes with the client's reader.
func NewCallRecordConsumer(client *KafkaClient, sink CallRecordSink) *CallRecordConsumer {
	return &CallRecordConsumer{reader: client.Consumer, sink: sink}
}

// Run blocks until ctx is cancelled. Malformed or rejected records are
// logged and committed so they never block the partition.
func (c *CallRecordConsumer) Run(ctx context.Context) {
	zap.L().Info("call record consumer started")
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				zap.L().Info("call record consumer stopped")
				return
			}
			zap.L().Error("fetch call record failed", zap.Error(err))
			continue
		}

		c.handle(ctx, m.Value, m.Offset)

		if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
			zap.L().Error("commit call record failed", zap.Int64("offset", m.Offset), zap.Error(err))
		}
	}
}

func (c *CallRecordConsumer) handle(ctx context.Context, value []byte, offset int64) {
	var msg request.CallRecordMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		zap.L().Warn("skip undecodable call record", zap.Int64("offset", offset), zap.Error(err))
		return
	}
	if err := c.sink.Ingest(ctx, msg); err != nil {
		switch errorx.GetCode(err) {
		case errorx.CodeInvalidParam, errorx.CodeUserNotExist:
			zap.L().Warn("skip invalid call record", zap.Int64("offset", offset), zap.Error(err))
		default:
			zap.L().Error("store call record failed", zap.Int64("offset", offset), zap.Error(err))
		}
	}
}
