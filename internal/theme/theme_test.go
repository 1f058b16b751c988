package theme

import (
	"image/color"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeText struct {
	style  Style
	styled int
}

func (f *fakeText) SetStyle(s Style) {
	f.style = s
	f.styled++
}

type fakeContainer struct {
	background color.NRGBA
	children   []Element
}

func (f *fakeContainer) SetStyle(s Style)      { f.background = s.Background }
func (f *fakeContainer) Children() []Element { return f.children }

type fakeGroup struct {
	children []Element
}

func (f *fakeGroup) Children() []Element { return f.children }

type fakeImage struct {
	pixels string
}

type fakeSurface struct {
	id      uuid.UUID
	content Element
	closed  bool
}

func newFakeSurface(content Element) *fakeSurface {
	return &fakeSurface{id: uuid.New(), content: content}
}

func (f *fakeSurface) ID() uuid.UUID    { return f.id }
func (f *fakeSurface) Content() Element { return f.content }
func (f *fakeSurface) Closed() bool     { return f.closed }

type tree struct {
	root   *fakeContainer
	texts  []*fakeText
	image  *fakeImage
	nested *fakeContainer
}

func newTree() *tree {
	t := &tree{
		texts: []*fakeText{{}, {}, {}},
		image: &fakeImage{pixels: "cat"},
	}
	t.nested = &fakeContainer{children: []Element{t.texts[2], t.image}}
	t.root = &fakeContainer{children: []Element{
		t.texts[0],
		&fakeGroup{children: []Element{t.texts[1], t.nested}},
	}}
	return t
}

func (tr *tree) assertStyled(t *testing.T, want Style) {
	t.Helper()
	assert.Equal(t, want.Background, tr.root.background)
	assert.Equal(t, want.Background, tr.nested.background)
	for _, txt := range tr.texts {
		assert.Equal(t, want, txt.style)
	}
	assert.Equal(t, "cat", tr.image.pixels)
}

func TestRuleTable(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}, StyleFor(Light).Background)
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, StyleFor(Light).Foreground)
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, StyleFor(Dark).Background)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, StyleFor(Dark).Foreground)
	assert.Equal(t, StyleFor(Light), StyleFor(Theme(42)))
}

func TestParseAndString(t *testing.T) {
	got, err := Parse(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
	assert.Equal(t, "dark", got.String())
	assert.Equal(t, Light, got.Toggled())

	_, err = Parse("sepia")
	assert.Error(t, err)
}

func TestWalkStylesEveryStylableDescendant(t *testing.T) {
	tr := newTree()
	Walk(tr.root, StyleFor(Dark))
	tr.assertStyled(t, StyleFor(Dark))

	Walk(nil, StyleFor(Dark))
}

func TestApplyIsIdempotent(t *testing.T) {
	m := NewManager(Light, nil)
	tr := newTree()
	s := newFakeSurface(tr.root)

	m.Apply(Dark, s)
	m.Apply(Dark, s)
	tr.assertStyled(t, StyleFor(Dark))
	assert.Equal(t, Light, m.Current(), "Apply does not change the current theme")
}

func TestApplyReachesNestedSurfaces(t *testing.T) {
	m := NewManager(Light, nil)
	parentTree, childTree := newTree(), newTree()
	parent := newFakeSurface(parentTree.root)
	child := newFakeSurface(childTree.root)

	m.Register(parent, nil)
	m.Register(child, parent)
	m.Apply(Dark, parent)

	parentTree.assertStyled(t, StyleFor(Dark))
	childTree.assertStyled(t, StyleFor(Dark))
}

func TestStampUsesCurrentTheme(t *testing.T) {
	m := NewManager(Dark, nil)
	tr := newTree()
	s := newFakeSurface(tr.root)

	got := m.Stamp(s, nil)
	assert.Equal(t, Dark, got)
	tr.assertStyled(t, StyleFor(Dark))
	assert.Equal(t, 1, m.Open())

	m.Stamp(s, nil)
	assert.Equal(t, 1, m.Open(), "stamping twice does not register twice")
}

func TestToggleIsInvolution(t *testing.T) {
	m := NewManager(Light, nil)
	trees := []*tree{newTree(), newTree(), newTree()}
	root := newFakeSurface(trees[0].root)
	members := newFakeSurface(trees[1].root)
	detail := newFakeSurface(trees[2].root)

	m.Stamp(root, nil)
	m.Stamp(members, root)
	m.Stamp(detail, members)

	assert.Equal(t, Dark, m.Toggle())
	for _, tr := range trees {
		tr.assertStyled(t, StyleFor(Dark))
	}

	assert.Equal(t, Light, m.Toggle())
	assert.Equal(t, Light, m.Current())
	for _, tr := range trees {
		tr.assertStyled(t, StyleFor(Light))
	}
}

func TestToggleSkipsClosedSurfaces(t *testing.T) {
	m := NewManager(Light, nil)
	open, stale := newTree(), newTree()
	openSurface := newFakeSurface(open.root)
	staleSurface := newFakeSurface(stale.root)

	m.Stamp(openSurface, nil)
	m.Stamp(staleSurface, openSurface)
	staleSurface.closed = true
	before := stale.texts[0].styled

	require.NotPanics(t, func() { m.Toggle() })
	open.assertStyled(t, StyleFor(Dark))
	assert.Equal(t, before, stale.texts[0].styled, "closed surface is not touched")
	assert.Equal(t, 1, m.Open())

	m.Apply(Light, staleSurface)
	assert.Equal(t, before, stale.texts[0].styled)
}

func TestUnregister(t *testing.T) {
	m := NewManager(Light, nil)
	tr := newTree()
	s := newFakeSurface(tr.root)

	m.Stamp(s, nil)
	m.Unregister(s.ID())
	m.Unregister(uuid.New())
	assert.Zero(t, m.Open())

	m.Toggle()
	tr.assertStyled(t, StyleFor(Light))
}
