package log

import (
	"context"
	"sync"
)

type requestFieldsKey struct{}

// requestFields acumula campos durante a requisição para o log de
// conclusão. Camadas internas (auth, casos de uso) escrevem aqui sem
// conhecer o middleware de log.
type requestFields struct {
	mu     sync.Mutex
	fields Fields
}

// WithRequestFields prepara o contexto para receber campos da requisição
func WithRequestFields(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestFieldsKey{}, &requestFields{fields: Fields{}})
}

// AddRequestField anota um campo no log de conclusão da requisição.
// Sem WithRequestFields no contexto a chamada é ignorada.
func AddRequestField(ctx context.Context, key string, value interface{}) {
	rf, ok := ctx.Value(requestFieldsKey{}).(*requestFields)
	if !ok {
		return
	}
	rf.mu.Lock()
	rf.fields[key] = value
	rf.mu.Unlock()
}

// RequestFields retorna uma cópia dos campos anotados
func RequestFields(ctx context.Context) Fields {
	rf, ok := ctx.Value(requestFieldsKey{}).(*requestFields)
	if !ok {
		return Fields{}
	}
	rf.mu.Lock()
	defer rf.mu.Unlock()

	out := make(Fields, len(rf.fields))
	for k, v := range rf.fields {
		out[k] = v
	}
	return out
}
