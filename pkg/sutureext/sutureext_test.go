package sutureext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thejerf/suture/v4"
)

type funcService struct {
	fn func(ctx context.Context) error
}

func (s funcService) String() string { return "test" }

func (s funcService) Serve(ctx context.Context) error { return s.fn(ctx) }

func TestSanitizeError(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, SanitizeError(ctx, nil))

	plain := errors.New("boom")
	assert.Equal(t, plain, SanitizeError(ctx, plain))

	err := SanitizeError(ctx, errors.Join(context.Canceled, suture.ErrTerminateSupervisorTree))
	assert.False(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, suture.ErrTerminateSupervisorTree))
}

func TestSanitizeError_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, SanitizeError(ctx, errors.New("boom")), context.Canceled)
}

func TestRun_TerminateTreeIsCleanExit(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, "test", funcService{fn: func(ctx context.Context) error {
		return errors.Join(errors.New("closed"), suture.ErrTerminateSupervisorTree)
	}})

	assert.NoError(t, err)
	assert.NoError(t, ctx.Err())
}

func TestRun_CancelIsCleanExit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	errC := make(chan error, 1)
	go func() {
		errC <- Run(ctx, "test", funcService{fn: func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}})
	}()

	<-started
	cancel()

	select {
	case err := <-errC:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestTerminatedTree(t *testing.T) {
	tests := []struct {
		name string
		err  interface{}
		want bool
	}{
		{"joined terminate", errors.Join(errors.New("closed"), suture.ErrTerminateSupervisorTree), true},
		{"terminate", suture.ErrTerminateSupervisorTree, true},
		{"other error", errors.New("boom"), false},
		{"string", "boom", false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TerminatedTree(suture.EventServiceTerminate{Err: tt.err}))
		})
	}
}

func TestEventHook_ServiceTerminate(t *testing.T) {
	hook := EventHook()

	assert.NotPanics(t, func() {
		hook(suture.EventServiceTerminate{ServiceName: "test", Err: suture.ErrTerminateSupervisorTree})
		hook(suture.EventServiceTerminate{ServiceName: "test", Err: errors.New("boom")})
		hook(suture.EventServiceTerminate{ServiceName: "test", Err: "boom"})
	})
}
