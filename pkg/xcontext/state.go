package xcontext

import "context"

type stateKey struct{}

// requestState is a mutable carrier written by the router and read by After
// closers (e.g. the request logger). It must be installed with
// WithRequestState before SetError or SetResponse have any effect.
type requestState struct {
	response any
	err      error
}

func WithRequestState(ctx context.Context) context.Context {
	return context.WithValue(ctx, stateKey{}, &requestState{})
}

func SetError(ctx context.Context, err error) {
	if state, ok := ctx.Value(stateKey{}).(*requestState); ok {
		state.err = err
	}
}

func Error(ctx context.Context) error {
	if state, ok := ctx.Value(stateKey{}).(*requestState); ok {
		return state.err
	}

	return nil
}

func SetResponse(ctx context.Context, resp any) {
	if state, ok := ctx.Value(stateKey{}).(*requestState); ok {
		state.response = resp
	}
}

func Response(ctx context.Context) any {
	if state, ok := ctx.Value(stateKey{}).(*requestState); ok {
		return state.response
	}

	return nil
}
