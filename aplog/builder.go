package aplog

import (
	"context"
	"log/slog"

	"github.com/frisklabs/frisk/util/pagination"
)

type Builder interface {
	WithService(serviceId string) Builder
	WithComponent(componentId string) Builder
	WithChainKey(key pagination.ChainKey) Builder
	WithCtx(ctx context.Context) Builder
	Build() *slog.Logger
}

type builder struct {
	l *slog.Logger
}

func (b *builder) WithService(serviceId string) Builder {
	return &builder{l: b.l.With("service", serviceId)}
}

func (b *builder) WithComponent(componentId string) Builder {
	return &builder{l: b.l.With("component", componentId)}
}

func (b *builder) WithChainKey(key pagination.ChainKey) Builder {
	return &builder{l: b.l.With("chain_key", string(key))}
}

func (b *builder) WithCtx(ctx context.Context) Builder {
	// Nothing for now
	return b
}

func (b *builder) Build() *slog.Logger {
	return b.l
}

func NewBuilder(l *slog.Logger) Builder {
	if l == nil {
		panic("cannot create log builder with nil log")
	}

	return &builder{l: l}
}

var _ Builder = &builder{}
