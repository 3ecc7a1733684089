package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/circlerefresh/internal/geom"
	"github.com/ytget/circlerefresh/internal/model"
)

func testRenderer() *Renderer {
	return NewRenderer(testStyle(), fixedMeasurer{w: 60, h: 12})
}

func testGeometry() model.ViewGeometry {
	return model.NewViewGeometry(testMetrics(), testWidth, testHeight)
}

func TestRenderers_CoverEveryStatus(t *testing.T) {
	for s := model.StatusNormal; s < model.StatusCount; s++ {
		assert.NotNil(t, renderers[s], "no renderer for %s", s)
	}
}

func TestRender_DegenerateGeometry(t *testing.T) {
	r := testRenderer()
	st := model.NewDragState()
	st.Status = model.StatusRefreshing

	f := r.Render(st, model.NewViewGeometry(testMetrics(), 0, 0))
	assert.True(t, f.Empty())
	assert.False(t, f.NeedsFrame)
}

func TestRender_InvalidStatus(t *testing.T) {
	st := model.NewDragState()
	st.Status = model.Status(42)

	f := testRenderer().Render(st, testGeometry())
	assert.True(t, f.Empty())
}

func TestRender_NormalUsesRestingBend(t *testing.T) {
	g := testGeometry()
	st := model.NewDragState()
	st.DragDelta = 999

	f := testRenderer().Render(st, g)
	require.NotNil(t, f.Background)
	assert.Equal(t, geom.Pt(0, 84), f.Background.Curve.P0)
	assert.Equal(t, geom.Pt(160, g.RestBend()), f.Background.Curve.P1)
	assert.Equal(t, geom.Pt(320, 84), f.Background.Curve.P2)
	assert.Nil(t, f.Label)
	assert.Nil(t, f.Spinner)
}

func TestRender_PullDownFollowsDrag(t *testing.T) {
	st := model.NewDragState()
	st.Status = model.StatusPullDown
	st.DragDelta = 90

	f := testRenderer().Render(st, testGeometry())
	require.NotNil(t, f.Background)
	assert.Equal(t, 90.0, f.Background.Curve.P1.Y)
	assert.Nil(t, f.Spinner)
	assert.False(t, f.NeedsFrame)
}

func TestRender_StoppedDrawsNothing(t *testing.T) {
	st := model.NewDragState()
	st.Status = model.StatusStopped

	f := testRenderer().Render(st, testGeometry())
	assert.True(t, f.Empty())
}

func TestRender_IndicatorPlacement(t *testing.T) {
	g := testGeometry()
	st := model.NewDragState()
	st.Status = model.StatusDrawRefresh
	st.DragDelta = 120
	st.LabelAlpha = 100

	f := testRenderer().Render(st, g)
	require.NotNil(t, f.Label)
	require.NotNil(t, f.Spinner)

	// Anchor is the midpoint of the fixed reference curve, y = 114.
	assert.InDelta(t, 130, f.Label.X, 1e-9)
	assert.InDelta(t, 104, f.Label.Baseline, 1e-6)
	assert.Equal(t, uint8(100), f.Label.Color.A)

	assert.InDelta(t, 155, f.Spinner.Left, 1e-9)
	assert.InDelta(t, 114-20-12-10, f.Spinner.Top, 1e-6)

	// The icon centre lands on the horizontal centre, one radius below Top.
	c := f.Spinner.Transform.Apply(geom.Pt(10, 10))
	assert.InDelta(t, 160, c.X, 1e-6)
	assert.InDelta(t, f.Spinner.Top+5, c.Y, 1e-6)
}

func TestRender_AnchorIgnoresLiveDrag(t *testing.T) {
	g := testGeometry()
	r := testRenderer()
	st := model.NewDragState()
	st.Status = model.StatusDrawRefresh

	st.DragDelta = 110
	a := r.Render(st, g)
	st.DragDelta = 140
	b := r.Render(st, g)

	assert.Equal(t, a.Label.Baseline, b.Label.Baseline)
	assert.Equal(t, a.Spinner.Top, b.Spinner.Top)
}

func TestRender_DrawRefreshRotatesOnDragOnly(t *testing.T) {
	g := testGeometry()
	r := testRenderer()
	st := model.NewDragState()
	st.Status = model.StatusDrawRefresh
	st.DragDelta = 120
	st.RotateAngle = 30

	f := r.Render(st, g)
	assert.Equal(t, 30.0, f.RotateAngle)
	assert.False(t, f.NeedsFrame)

	st.DragTick = true
	f = r.Render(st, g)
	assert.Equal(t, 45.0, f.RotateAngle)
	assert.Equal(t, 45.0, f.Spinner.Angle)
}

func TestRender_EscalatesAtFullBend(t *testing.T) {
	g := testGeometry()
	st := model.NewDragState()
	st.Status = model.StatusDrawRefresh
	st.DragDelta = g.FullBend()

	f := testRenderer().Render(st, g)
	assert.True(t, f.Escalate)
	assert.True(t, f.NeedsFrame)

	st.DragDelta = g.FullBend() - 0.001
	f = testRenderer().Render(st, g)
	assert.False(t, f.Escalate)
}

func TestRender_RefreshingSpinsEveryFrame(t *testing.T) {
	g := testGeometry()
	r := testRenderer()
	st := model.NewDragState()
	st.Status = model.StatusRefreshing
	st.DragDelta = g.FullBend()

	for i := 0; i < 100; i++ {
		f := r.Render(st, g)
		require.True(t, f.NeedsFrame)
		require.GreaterOrEqual(t, f.RotateAngle, 0.0)
		require.Less(t, f.RotateAngle, 360.0)
		assert.Equal(t, advance(st.RotateAngle, 15), f.RotateAngle)
		st.RotateAngle = f.RotateAngle
	}
	// 100 steps of 15 degrees is 1500, which wraps to 60.
	assert.Equal(t, 60.0, st.RotateAngle)
}

func TestAdvance(t *testing.T) {
	assert.Equal(t, 0.0, advance(345, 15))
	assert.Equal(t, 10.0, advance(355, 15))
	assert.Equal(t, 350.0, advance(5, -15))
}

func TestBackgroundOp_Outline(t *testing.T) {
	op := BackgroundOp{Curve: geom.Quad(geom.Pt(0, 84), geom.Pt(160, 24), geom.Pt(320, 84))}
	start, end := op.Outline()

	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 84}}, start)
	assert.Equal(t, []geom.Point{{X: 320, Y: 84}, {X: 320, Y: 0}}, end)
}
