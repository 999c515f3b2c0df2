package component

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver serves definitions from a fixed map.
type stubResolver struct {
	defs map[string]*Definition
}

func (s *stubResolver) Resolve(_ context.Context, name string) (*Definition, bool, error) {
	def, ok := s.defs[name]
	return def, ok, nil
}

type widget struct {
	Foo   int
	Label string `prop:"label"`
	Ratio float64
	args  []any
}

func newStub(defs ...*Definition) *stubResolver {
	s := &stubResolver{defs: make(map[string]*Definition)}
	for _, d := range defs {
		s.defs[d.Name] = d
	}
	return s
}

func widgetDef() *Definition {
	return &Definition{
		Name: "Widget",
		New: func(args ...any) any {
			return &widget{args: args}
		},
	}
}

func TestConstructBareString(t *testing.T) {
	f := NewFactory(newStub(widgetDef()))

	got, err := f.Construct(context.Background(), "Widget")
	require.NoError(t, err)
	w, ok := got.(*widget)
	require.True(t, ok)
	assert.Zero(t, w.Foo)
}

func TestConstructOverlay(t *testing.T) {
	f := NewFactory(newStub(widgetDef()))

	desc := &Descriptor{Type: "Widget"}
	desc.Set("foo", 1).Set("label", "hi")

	got, err := f.Construct(context.Background(), desc)
	require.NoError(t, err)
	w := got.(*widget)
	assert.Equal(t, 1, w.Foo)
	assert.Equal(t, "hi", w.Label)
}

func TestConstructOverlayOrder(t *testing.T) {
	f := NewFactory(newStub(widgetDef()))

	desc := &Descriptor{Type: "Widget"}
	desc.Set("foo", 1).Set("foo", 2)

	got, err := f.Construct(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, 2, got.(*widget).Foo, "later keys overwrite earlier ones")
}

func TestConstructDefaultsThenProperties(t *testing.T) {
	def := widgetDef()
	def.Defaults = []Property{{Name: "foo", Value: 7}, {Name: "label", Value: "default"}}
	f := NewFactory(newStub(def))

	desc := &Descriptor{Type: "Widget"}
	desc.Set("label", "explicit")

	got, err := f.Construct(context.Background(), desc)
	require.NoError(t, err)
	w := got.(*widget)
	assert.Equal(t, 7, w.Foo)
	assert.Equal(t, "explicit", w.Label)
}

func TestConstructNumericConversion(t *testing.T) {
	f := NewFactory(newStub(widgetDef()))

	// Declarative sources deliver numbers as float64.
	desc := &Descriptor{Type: "Widget"}
	desc.Set("foo", float64(3)).Set("ratio", float64(0.5))

	got, err := f.Construct(context.Background(), desc)
	require.NoError(t, err)
	w := got.(*widget)
	assert.Equal(t, 3, w.Foo)
	assert.Equal(t, 0.5, w.Ratio)
}

func TestConstructCtorArgs(t *testing.T) {
	f := NewFactory(newStub(widgetDef()))

	got, err := f.Construct(context.Background(), "Widget", "a", 2)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", 2}, got.(*widget).args)
}

func TestConstructMissingType(t *testing.T) {
	f := NewFactory(newStub(widgetDef()))

	_, err := f.Construct(context.Background(), &Descriptor{})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = f.Construct(context.Background(), 42)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = f.Construct(context.Background(), "")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestConstructUnresolvableType(t *testing.T) {
	f := NewFactory(newStub())

	_, err := f.Construct(context.Background(), "Ghost")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfiguration)
}

type settable struct {
	seen []Property
}

func (s *settable) SetProperty(name string, value any) error {
	s.seen = append(s.seen, Property{Name: name, Value: value})
	return nil
}

func TestConstructPropertySetter(t *testing.T) {
	def := &Definition{
		Name: "Settable",
		New:  func(...any) any { return &settable{} },
	}
	f := NewFactory(newStub(def))

	desc := &Descriptor{Type: "Settable"}
	desc.Set("anything", "goes")

	got, err := f.Construct(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, []Property{{Name: "anything", Value: "goes"}}, got.(*settable).seen)
}

func TestConstructUnknownProperty(t *testing.T) {
	f := NewFactory(newStub(widgetDef()))

	desc := &Descriptor{Type: "Widget"}
	desc.Set("ghost", 1)

	_, err := f.Construct(context.Background(), desc)
	assert.Error(t, err)
}
