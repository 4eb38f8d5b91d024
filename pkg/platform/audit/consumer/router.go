package consumer

import (
	"context"
	"log/slog"

	"lscmis/internal/platform/kafka/consumer"
)

// TopicHandler handles audit messages from one topic.
type TopicHandler interface {
	Handle(ctx context.Context, msg *consumer.Message) error
}

// DropCounter records audit messages that no handler accepted.
type DropCounter interface {
	IncAuditDropped()
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithDropCounter counts messages skipped for lack of a handler.
func WithDropCounter(c DropCounter) RouterOption {
	return func(r *Router) { r.dropped = c }
}

// Router dispatches audit messages by topic. Messages on topics without a handler
// and without a fallback are logged, counted and committed.
type Router struct {
	handlers map[string]TopicHandler
	fallback TopicHandler
	dropped  DropCounter
	logger   *slog.Logger
}

func NewRouter(logger *slog.Logger, fallback TopicHandler, opts ...RouterOption) *Router {
	r := &Router{
		handlers: make(map[string]TopicHandler),
		fallback: fallback,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds handler to topic, replacing any earlier binding.
func (r *Router) Register(topic string, handler TopicHandler) *Router {
	r.handlers[topic] = handler
	return r
}

func (r *Router) Handle(ctx context.Context, msg *consumer.Message) error {
	if handler, ok := r.handlers[msg.Topic]; ok {
		return handler.Handle(ctx, msg)
	}
	if r.fallback != nil {
		return r.fallback.Handle(ctx, msg)
	}
	r.logger.WarnContext(ctx, "dropping audit message from unrouted topic",
		"topic", msg.Topic,
		"key", string(msg.Key),
		"partition", msg.Partition,
		"offset", msg.Offset,
	)
	if r.dropped != nil {
		r.dropped.IncAuditDropped()
	}
	return nil
}
