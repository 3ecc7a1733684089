package refresh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/circlerefresh/internal/model"
)

func TestDriver_IdleStepKeepsLastFrame(t *testing.T) {
	h := newHarness(t)
	require.False(t, h.d.Active())

	last := h.d.Last()
	f, changed := h.d.Step(h.now.Add(time.Second))
	assert.False(t, changed)
	assert.Equal(t, last, f)
}

func TestDriver_DragRequestsOneFrame(t *testing.T) {
	h := newHarness(t)
	wakes := 0
	h.d.SetWake(func() { wakes++ })

	h.c.StartDrag(30)
	h.c.StartDrag(35)
	assert.Equal(t, 2, wakes)
	assert.True(t, h.d.Active())

	// Both requests are served by a single frame.
	f, changed := h.d.Step(h.now.Add(frameStep))
	assert.True(t, changed)
	assert.Equal(t, model.StatusPullDown, f.Status)
	assert.False(t, h.d.Active())
	_, changed = h.d.Step(h.now.Add(2 * frameStep))
	assert.False(t, changed)
}

func TestDriver_FreshDriverWakesOnFirstRequest(t *testing.T) {
	d := New(testMetrics(), testStyle(), fixedMeasurer{w: 60, h: 12})
	wakes := 0
	d.SetWake(func() { wakes++ })

	d.Controller().Layout(testWidth, testHeight)
	d.Controller().StartDrag(30)
	d.Controller().StartDrag(200)
	assert.Equal(t, 3, wakes)
	assert.True(t, d.Active())

	f, changed := d.Step(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, changed)
	assert.Equal(t, testWidth, f.Width)
}

func TestDriver_EscalationStartsSelfDrivenSpin(t *testing.T) {
	h := newHarness(t)

	h.c.StartDrag(80)
	f := h.step()
	assert.True(t, f.Escalate)
	assert.Equal(t, model.StatusRefreshing, h.c.State().Status)
	assert.Equal(t, 1, h.started)

	// No further input: the spin keeps producing frames.
	var angles []float64
	for i := 0; i < 5; i++ {
		f = h.step()
		assert.Equal(t, model.StatusRefreshing, f.Status)
		angles = append(angles, f.RotateAngle)
	}
	for i := 1; i < len(angles); i++ {
		assert.NotEqual(t, angles[i-1], angles[i])
	}
	assert.True(t, h.d.Active())
}

func TestDriver_RotationStaysWrapped(t *testing.T) {
	h := newHarness(t)
	h.refreshing()

	for i := 0; i < 500; i++ {
		f := h.step()
		require.GreaterOrEqual(t, f.RotateAngle, 0.0)
		require.Less(t, f.RotateAngle, 360.0)
	}
	st := h.c.State()
	assert.GreaterOrEqual(t, st.RotateAngle, 0.0)
	assert.Less(t, st.RotateAngle, 360.0)
}

func TestDriver_ReleaseWakesIdleHost(t *testing.T) {
	h := newHarness(t)
	h.c.StartDrag(50)
	h.step()
	require.False(t, h.d.Active())

	wakes := 0
	h.d.SetWake(func() { wakes++ })
	h.c.ReleaseDrag()

	assert.Equal(t, 1, wakes)
	assert.True(t, h.d.Active())
}

func TestDriver_UpdateBeforeRender(t *testing.T) {
	h := newHarness(t)
	h.c.StartDrag(50)
	h.step()
	h.c.ReleaseDrag()

	// The first tick of the release applies its first value before rendering.
	f := h.step()
	st := h.c.State()
	require.NotNil(t, f.Background)
	assert.Equal(t, st.DragDelta, f.Background.Curve.P1.Y)
}
