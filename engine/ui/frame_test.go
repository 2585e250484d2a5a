package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/iui/engine/core"
	"github.com/hubastard/iui/engine/geom"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type canvas struct {
	buttons []ButtonVisual
	toggles []ToggleVisual
}

func drawButton(_ geom.ClipRect, v ButtonVisual, c *canvas) { c.buttons = append(c.buttons, v) }
func drawToggle(_ geom.ClipRect, v ToggleVisual, c *canvas) { c.toggles = append(c.toggles, v) }

var (
	move    = func(x, y float64) core.Event { return core.EventMouseMove{X: x, Y: y} }
	press   = core.EventMouseButton{Button: core.MouseLeft, Down: true}
	release = core.EventMouseButton{Button: core.MouseLeft, Down: false}
)

// step pushes evs, then runs one frame with body.
func step(ctx *Context, c *canvas, body func(f *Frame[*canvas]), evs ...core.Event) {
	for _, ev := range evs {
		ctx.Push(ev)
	}
	f := Begin(ctx, c)
	body(f)
	f.End()
}

func TestButtonClickScenario(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	var results []bool
	body := func(f *Frame[*canvas]) {
		results = append(results, Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton))
	}

	step(ctx, c, body, move(10, 10))
	step(ctx, c, body, press)
	step(ctx, c, body, release)
	step(ctx, c, body)

	want := []ButtonVisual{
		{Over: true},
		{Over: true, Down: true},
		{Over: true, Clicked: true},
		{Over: true},
	}
	if diff := cmp.Diff(want, c.buttons); diff != "" {
		t.Errorf("visual states mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []bool{false, false, true, false}, results)
}

func TestButtonHeldAcrossFrames(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	body := func(f *Frame[*canvas]) { Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton) }

	step(ctx, c, body, move(10, 10), press)
	step(ctx, c, body)
	step(ctx, c, body)
	step(ctx, c, body, release)

	want := []ButtonVisual{
		{Over: true, Down: true},
		{Over: true, Down: true},
		{Over: true, Down: true},
		{Over: true, Clicked: true},
	}
	if diff := cmp.Diff(want, c.buttons); diff != "" {
		t.Errorf("visual states mismatch (-want +got):\n%s", diff)
	}
}

func TestDragOffCancelsClick(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	var clicked []bool
	body := func(f *Frame[*canvas]) {
		clicked = append(clicked, Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton))
	}

	step(ctx, c, body, move(10, 10), press)
	step(ctx, c, body, move(80, 80), release)
	step(ctx, c, body, move(10, 10))

	assert.Equal(t, []bool{false, false, false}, clicked)
	assert.Equal(t, ButtonVisual{}, c.buttons[1])
	assert.Equal(t, ButtonVisual{Over: true}, c.buttons[2])
}

func TestClipBoxLimitsHits(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	clip := geom.Clipped(geom.Rect{X: 0, Y: 0, W: 50, H: 50}, geom.Rect{X: 0, Y: 0, W: 20, H: 20})
	step(ctx, c, func(f *Frame[*canvas]) { Invoke(f, Button("btn"), clip, drawButton) }, move(30, 30))

	assert.Equal(t, ButtonVisual{}, c.buttons[0])
	assert.Equal(t, NoID, ctx.Interaction().Hovered())
}

func TestOverlapLastInvokedWins(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	step(ctx, c, func(f *Frame[*canvas]) {
		Invoke(f, Button("w1"), geom.Raw(0, 0, 10, 10), drawButton)
		Invoke(f, Button("w2"), geom.Raw(0, 0, 20, 20), drawButton)
	}, move(5, 5), press)

	in := ctx.Interaction()
	assert.Equal(t, ID("w2"), in.Hovered())
	assert.Equal(t, ID("w2"), in.Pressed())
	assert.Equal(t, ID("w2"), in.WasPressed())
	assert.True(t, in.IsHovered("w2"))
	assert.False(t, in.IsHovered("w1"))
}

func TestNothingHovered(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	body := func(f *Frame[*canvas]) { Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton) }

	step(ctx, c, body, move(10, 10), press)
	step(ctx, c, body, move(100, 100))

	in := ctx.Interaction()
	assert.Equal(t, NoID, in.Hovered())
	assert.Equal(t, NoID, in.Pressed())
	assert.Equal(t, NoID, in.Released())
	assert.Equal(t, geom.Pt(100, 100), in.Pointer())
}

func TestNoPointerYet(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	step(ctx, c, func(f *Frame[*canvas]) { Invoke(f, Button("btn"), geom.Raw(-5, -5, 50, 50), drawButton) }, press)
	assert.Equal(t, ButtonVisual{}, c.buttons[0])
}

func TestReleasedSlot(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	body := func(f *Frame[*canvas]) { Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), nil) }

	step(ctx, c, body, move(1, 1), press)
	step(ctx, c, body, release)
	in := ctx.Interaction()
	assert.Equal(t, ID("btn"), in.Released())
	assert.Equal(t, NoID, in.Pressed())
	assert.Empty(t, c.buttons, "nil draw routine draws nothing")
}

func TestToggleScenario(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	var got []bool
	body := func(f *Frame[*canvas]) {
		got = append(got, InvokeStored(f, Toggle("t"), geom.Raw(0, 0, 50, 50), drawToggle))
	}

	step(ctx, c, body, move(10, 10))
	step(ctx, c, body, press)
	step(ctx, c, body, release)
	step(ctx, c, body)
	step(ctx, c, body)
	step(ctx, c, body, press)
	step(ctx, c, body, release)
	step(ctx, c, body)

	assert.Equal(t, []bool{false, false, true, true, true, true, false, false}, got)
	assert.Equal(t, ToggleVisual{Activated: true, Over: true, Clicked: true}, c.toggles[2])
	assert.Equal(t, ToggleVisual{Activated: true, Over: true, Down: true}, c.toggles[5])

	v, ok := Peek[bool](ctx, KindToggle, "t")
	require.True(t, ok)
	assert.False(t, v)
}

func TestForgetResetsToggle(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	var last bool
	body := func(f *Frame[*canvas]) {
		last = InvokeStored(f, Toggle("t"), geom.Raw(0, 0, 50, 50), drawToggle)
	}

	step(ctx, c, body, move(10, 10), press)
	step(ctx, c, body, release)
	require.True(t, last)

	step(ctx, c, func(f *Frame[*canvas]) {
		assert.True(t, f.Forget("t"))
		assert.False(t, f.Forget("t"), "second forget is a no-op")
	})
	_, ok := Peek[bool](ctx, KindToggle, "t")
	assert.False(t, ok)

	step(ctx, c, body)
	assert.False(t, last, "forgotten toggle starts from its default again")
}

func TestToggleInitialState(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	var last bool
	step(ctx, c, func(f *Frame[*canvas]) {
		last = InvokeStored(f, ToggleWith("t", true), geom.Raw(0, 0, 5, 5), nil)
	})
	assert.True(t, last)

	// The stored result wins over the state the widget is built with.
	step(ctx, c, func(f *Frame[*canvas]) {
		last = InvokeStored(f, ToggleWith("t", false), geom.Raw(0, 0, 5, 5), nil)
	})
	assert.True(t, last)
}

func TestStoreMismatchFallsBackToDefault(t *testing.T) {
	ctx := New(Options{})
	ctx.store.Commit(KindToggle, "t", "not a bool")
	c := &canvas{}
	var last bool
	step(ctx, c, func(f *Frame[*canvas]) {
		last = InvokeStored(f, ToggleWith("t", true), geom.Raw(0, 0, 5, 5), nil)
	})
	assert.False(t, last, "a mismatched value seeds the zero value, not the built-in state")
	v, ok := Peek[bool](ctx, KindToggle, "t")
	require.True(t, ok, "the entry is overwritten with a well-typed result")
	assert.False(t, v)
}

func TestInvokeAfterEndIsIgnored(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := New(Options{Log: logrus.NewEntry(logger)})
	c := &canvas{}

	ctx.Push(move(10, 10))
	f := Begin(ctx, c)
	assert.True(t, ctx.InFrame())
	f.End()
	assert.False(t, ctx.InFrame())

	assert.False(t, Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton))
	assert.False(t, InvokeStored(f, Toggle("t"), geom.Raw(0, 0, 50, 50), drawToggle))
	assert.False(t, f.Forget("t"))
	assert.Empty(t, c.buttons)
	assert.Empty(t, c.toggles)
	in := ctx.Interaction()
	assert.Equal(t, NoID, in.Hovered())
	assert.Equal(t, 0, ctx.StoredLen())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Len(t, hook.AllEntries(), 3)
}

func TestBeginClosesStaleFrame(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := New(Options{Log: logrus.NewEntry(logger)})
	c := &canvas{}

	stale := Begin(ctx, c)
	fresh := Begin(ctx, c)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	assert.False(t, Invoke(stale, Button("a"), geom.Raw(0, 0, 1, 1), drawButton))
	assert.Empty(t, c.buttons)

	Invoke(fresh, Button("a"), geom.Raw(0, 0, 1, 1), drawButton)
	assert.Len(t, c.buttons, 1)
	stale.End()
	assert.True(t, ctx.InFrame(), "ending the stale frame leaves the fresh one open")
	fresh.End()

	assert.Equal(t, uint64(2), ctx.Frames())
	assert.Equal(t, uint64(2), fresh.Seq())
	assert.Same(t, c, fresh.Target())
}

func TestEventsDuringFrameWaitForNext(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	ctx.Push(move(10, 10))

	f := Begin(ctx, c)
	ctx.Push(press)
	Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton)
	assert.Len(t, f.Interaction().Batch(), 1)
	f.End()
	assert.Equal(t, 1, ctx.Pending())

	step(ctx, c, func(f *Frame[*canvas]) { Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton) })
	assert.Equal(t, []ButtonVisual{{Over: true}, {Over: true, Down: true}}, c.buttons)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "button", KindButton.String())
	assert.Equal(t, "toggle", KindToggle.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestReleaseSurvivesFloodOfPresses(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	body := func(f *Frame[*canvas]) { Invoke(f, Button("btn"), geom.Raw(0, 0, 50, 50), drawButton) }

	step(ctx, c, body, move(10, 10), press)
	require.Equal(t, ID("btn"), ctx.Interaction().Pressed())

	ctx.Push(release)
	for i := 0; i < DefaultMaxPending; i++ {
		ctx.Push(core.EventMouseButton{Button: core.MouseRight, Down: true})
	}
	step(ctx, c, body)

	assert.Equal(t, ID("btn"), ctx.Interaction().Released())
	assert.Equal(t, NoID, ctx.Interaction().Pressed())
}

func TestForgetKindAndStored(t *testing.T) {
	ctx := New(Options{})
	c := &canvas{}
	step(ctx, c, func(f *Frame[*canvas]) {
		InvokeStored(f, ToggleWith("t", true), geom.Raw(0, 0, 5, 5), nil)
	})
	assert.True(t, ctx.Stored(KindToggle, "t"))
	assert.False(t, ctx.Stored(KindButton, "t"))

	var forgot, again bool
	step(ctx, c, func(f *Frame[*canvas]) {
		again = f.ForgetKind(KindButton, "t")
		forgot = f.ForgetKind(KindToggle, "t")
	})
	assert.False(t, again)
	assert.True(t, forgot)
	assert.False(t, ctx.Stored(KindToggle, "t"))

	f := Begin(ctx, c)
	f.End()
	assert.False(t, f.ForgetKind(KindToggle, "t"), "ended frames do not touch the store")
}
