package surface_test

import (
	"errors"
	"testing"

	"surfview/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRequestsAntialiasing(t *testing.T) {
	d := surface.NewOffscreen("parametric-surface", 800, 600)

	h, err := surface.Acquire(d)
	require.NoError(t, err)

	ctx, ok := h.Context().(*surface.OffscreenContext)
	require.True(t, ok)
	assert.True(t, ctx.Attrs.Antialias)
	assert.Equal(t, "parametric-surface", h.ID())

	w, hgt := h.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, hgt)
}

func TestAcquireNoContext(t *testing.T) {
	d := surface.NewOffscreen("c", 1, 1)
	d.NoContext = true

	h, err := surface.Acquire(d)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, surface.ErrNoContext)

	var ce *surface.ContextError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "c", ce.ID)
}

func TestAcquirePlatformError(t *testing.T) {
	boom := errors.New("webgl disabled")
	d := surface.NewOffscreen("c", 1, 1)
	d.Fail = boom

	_, err := surface.Acquire(d)
	assert.ErrorIs(t, err, boom)
}

func TestAcquireTwiceFails(t *testing.T) {
	d := surface.NewOffscreen("c", 1, 1)
	_, err := surface.Acquire(d)
	require.NoError(t, err)

	_, err = surface.Acquire(d)
	assert.ErrorIs(t, err, surface.ErrAlreadyBound)
}

type panicky struct{ surface.Offscreen }

func (p *panicky) GetContext(surface.ContextAttributes) (surface.Context, error) {
	panic("driver crashed")
}

func TestAcquireRecoversPanics(t *testing.T) {
	p := &panicky{Offscreen: *surface.NewOffscreen("p", 1, 1)}
	_, err := surface.Acquire(p)
	assert.ErrorIs(t, err, surface.ErrNoContext)
	assert.Contains(t, err.Error(), "driver crashed")
}

func TestAcquireNil(t *testing.T) {
	_, err := surface.Acquire(nil)
	assert.ErrorIs(t, err, surface.ErrNoContext)
}

func TestReleaseUnbinds(t *testing.T) {
	d := surface.NewOffscreen("c", 1, 1)
	h, err := surface.Acquire(d)
	require.NoError(t, err)

	h.Invalidate()
	assert.Equal(t, 1, d.Invalidations)

	h.Release()
	h.Release()
	assert.False(t, d.IsBound())
}

func TestDocumentBoundContext(t *testing.T) {
	doc := surface.NewDocument()
	d := surface.NewOffscreen("parametric-surface", 1, 1)
	require.NoError(t, doc.Attach(d))
	assert.ErrorIs(t, doc.Attach(d), surface.ErrDuplicateID)

	_, _, err := doc.BoundContext("parametric-surface")
	assert.ErrorIs(t, err, surface.ErrNotBound)

	_, err = surface.Acquire(d)
	require.NoError(t, err)

	got, ctx, err := doc.BoundContext("parametric-surface")
	require.NoError(t, err)
	assert.Same(t, d, got)
	assert.NotNil(t, ctx)

	_, _, err = doc.BoundContext("missing")
	assert.ErrorIs(t, err, surface.ErrNoElement)

	doc.Detach("parametric-surface")
	_, ok := doc.Lookup("parametric-surface")
	assert.False(t, ok)
}
