package provisioning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPhase implements the Phase interface for testing.
type mockPhase struct {
	name string
	err  error
}

func (m *mockPhase) Name() string               { return m.name }
func (m *mockPhase) Provision(_ *Context) error { return m.err }

// phaseFunc creates a Phase from a function for testing.
type phaseFuncImpl struct {
	name string
	fn   func(*Context) error
}

func phaseFunc(name string, fn func(*Context) error) Phase {
	return &phaseFuncImpl{name: name, fn: fn}
}

func (p *phaseFuncImpl) Name() string                 { return p.name }
func (p *phaseFuncImpl) Provision(ctx *Context) error { return p.fn(ctx) }

func TestNewPipeline(t *testing.T) {
	t.Parallel()
	p1 := &mockPhase{name: "phase-1"}
	p2 := &mockPhase{name: "phase-2"}

	pipeline := NewPipeline(p1, p2)

	require.NotNil(t, pipeline)
	assert.Len(t, pipeline.Phases, 2)
	assert.Equal(t, "phase-1", pipeline.Phases[0].Name())
	assert.Equal(t, "phase-2", pipeline.Phases[1].Name())
}

func TestNewPipeline_Empty(t *testing.T) {
	t.Parallel()
	pipeline := NewPipeline()

	require.NotNil(t, pipeline)
	assert.Empty(t, pipeline.Phases)
}

func TestPipeline_Run_Success(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)

	observer := NewMockObserver()
	ctx := &Context{Observer: observer}

	pipeline := NewPipeline(
		phaseFunc("resource-group", func(_ *Context) error { executed = append(executed, "resource-group"); return nil }),
		phaseFunc("storage", func(_ *Context) error { executed = append(executed, "storage"); return nil }),
		phaseFunc("registry", func(_ *Context) error { executed = append(executed, "registry"); return nil }),
	)

	err := pipeline.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"resource-group", "storage", "registry"}, executed)
}

func TestPipeline_Run_StopsOnError(t *testing.T) {
	t.Parallel()
	executed := make([]string, 0)

	observer := NewMockObserver()
	ctx := &Context{Observer: observer}

	pipeline := NewPipeline(
		phaseFunc("resource-group", func(_ *Context) error { executed = append(executed, "resource-group"); return nil }),
		phaseFunc("storage", func(_ *Context) error { return fmt.Errorf("quota exceeded") }),
		phaseFunc("registry", func(_ *Context) error { executed = append(executed, "registry"); return nil }),
	)

	err := pipeline.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage phase failed")
	assert.Contains(t, err.Error(), "quota exceeded")
	// registry should NOT have executed
	assert.Equal(t, []string{"resource-group"}, executed)
}

func TestPipeline_Run_EmptyPipeline(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := &Context{Observer: observer}

	pipeline := NewPipeline()
	err := pipeline.Run(ctx)

	require.NoError(t, err)
}

func TestPipeline_Run_LogsPhaseEvents(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := &Context{Observer: observer}

	pipeline := NewPipeline(
		phaseFunc("test", func(_ *Context) error { return nil }),
	)

	err := pipeline.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, []EventType{EventPhaseStarted, EventPhaseCompleted}, observer.eventTypes())
}

func TestPipeline_Run_LogsFailure(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := &Context{Observer: observer}

	pipeline := NewPipeline(
		phaseFunc("failing", func(_ *Context) error { return fmt.Errorf("boom") }),
	)

	_ = pipeline.Run(ctx)

	assert.True(t, observer.hasEvent(EventPhaseFailed), "should log phase failed event")
	assert.False(t, observer.hasEvent(EventPhaseCompleted), "failed phase must not log completion")
}
