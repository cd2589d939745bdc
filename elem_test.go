package elem

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWithMergesAttributes(t *testing.T) {
	tests := []struct {
		name     string
		shortcut string
		attrs    []Attr
		want     []Attr
	}{
		{
			name: "no attributes",
			want: []Attr{},
		},
		{
			name:  "explicit attribute",
			attrs: []Attr{{Key: "value", Value: "world"}},
			want:  []Attr{{Key: "value", Value: "world"}},
		},
		{
			name:  "underscores normalized to hyphens",
			attrs: []Attr{{Key: "data_trigger", Value: "666"}},
			want:  []Attr{{Key: "data-trigger", Value: "666"}},
		},
		{
			name:  "surrounding underscores trimmed",
			attrs: []Attr{{Key: "class_", Value: "hello"}},
			want:  []Attr{{Key: "class", Value: "hello"}},
		},
		{
			name:     "shorthand classes only",
			shortcut: ".hello.world",
			want:     []Attr{{Key: "class", Value: "hello world"}},
		},
		{
			name:     "shorthand classes come before explicit ones",
			shortcut: ".a.b",
			attrs:    []Attr{{Key: "class", Value: "c d"}},
			want:     []Attr{{Key: "class", Value: "a b c d"}},
		},
		{
			name:     "shorthand id",
			shortcut: "#main",
			want:     []Attr{{Key: "id", Value: "main"}},
		},
		{
			name:     "shorthand named attribute",
			shortcut: "[data-x=1]",
			want:     []Attr{{Key: "data-x", Value: "1"}},
		},
		{
			name:  "last explicit duplicate wins",
			attrs: []Attr{{Key: "data_x", Value: "1"}, {Key: "data-x", Value: "2"}},
			want:  []Attr{{Key: "data-x", Value: "2"}},
		},
		{
			name:  "empty string value dropped",
			attrs: []Attr{{Key: "disabled", Value: ""}},
			want:  []Attr{},
		},
		{
			name:  "false value dropped",
			attrs: []Attr{{Key: "disabled", Value: false}},
			want:  []Attr{},
		},
		{
			name:  "nil value dropped",
			attrs: []Attr{{Key: "disabled", Value: nil}},
			want:  []Attr{},
		},
		{
			name:  "true value kept",
			attrs: []Attr{{Key: "disabled", Value: true}},
			want:  []Attr{{Key: "disabled", Value: true}},
		},
		{
			name:  "raw value kept",
			attrs: []Attr{{Key: "onclick", Value: Raw("alert('hi')")}},
			want:  []Attr{{Key: "onclick", Value: Raw("alert('hi')")}},
		},
		{
			name:     "empty class tokens filtered",
			shortcut: "",
			attrs:    []Attr{{Key: "class", Value: "  a   b "}},
			want:     []Attr{{Key: "class", Value: "a b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New("div").With(tt.shortcut, tt.attrs...)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got.attrs); diff != "" {
				t.Errorf("attribute mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The overlay order between shorthand-parsed and explicit attributes is
// easy to get backwards: for every key other than class, the shorthand
// value overwrites the explicit one.
func TestWithShorthandPrecedence(t *testing.T) {
	n, err := New("div").With("#short[title=short]",
		Attr{Key: "id", Value: "explicit"},
		Attr{Key: "title", Value: "explicit"},
		Attr{Key: "lang", Value: "en"},
	)
	require.NoError(t, err)

	want := []Attr{
		{Key: "id", Value: "short"},
		{Key: "title", Value: "short"},
		{Key: "lang", Value: "en"},
	}
	if diff := cmp.Diff(want, n.attrs); diff != "" {
		t.Errorf("attribute mismatch (-want +got):\n%s", diff)
	}
}

func TestWithInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		shortcut string
		attrs    []Attr
		role     string
		value    string
	}{
		{
			name:  "empty key",
			attrs: []Attr{{Key: "", Value: "x"}},
			role:  "attribute name",
		},
		{
			name:  "key of underscores only",
			attrs: []Attr{{Key: "___", Value: "x"}},
			role:  "attribute name",
			value: "___",
		},
		{
			name:  "key with space",
			attrs: []Attr{{Key: "a b", Value: "x"}},
			role:  "attribute name",
			value: "a b",
		},
		{
			name:  "unsupported value type",
			attrs: []Attr{{Key: "data-id", Value: 123}},
			role:  "data-id",
			value: "123",
		},
		{
			name:  "class token with comma",
			attrs: []Attr{{Key: "class", Value: "foo,bar"}},
			role:  "class",
			value: "foo,bar",
		},
		{
			name:     "class token with period",
			shortcut: ".ok",
			attrs:    []Attr{{Key: "class", Value: "welcome-home.com"}},
			role:     "class",
			value:    "welcome-home.com",
		},
		{
			name:  "id with space",
			attrs: []Attr{{Key: "id", Value: "a b"}},
			role:  "id",
			value: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("div").With(tt.shortcut, tt.attrs...)
			var iae *InvalidAttributeError
			require.ErrorAs(t, err, &iae)
			require.Equal(t, tt.role, iae.Role)
			require.Equal(t, tt.value, iae.Value)
		})
	}
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := New("div")

	a, err := base.With(".a")
	require.NoError(t, err)
	b, err := base.With(".b")
	require.NoError(t, err)

	for node, want := range map[*Node]string{
		base: "<div></div>",
		a:    `<div class="a"></div>`,
		b:    `<div class="b"></div>`,
	} {
		got, err := RenderString(node)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWithResetsChildren(t *testing.T) {
	parent, err := New("div").Add(Text("hello"))
	require.NoError(t, err)

	// The derived node starts without children and can get its own.
	derived, err := parent.With(".x")
	require.NoError(t, err)
	_, err = derived.Add(Text("fresh"))
	require.NoError(t, err)

	got, err := RenderString(derived)
	require.NoError(t, err)
	require.Equal(t, `<div class="x">fresh</div>`, got)
}

func TestAddAssignsChildrenOnce(t *testing.T) {
	n, err := New("ul").Add(Must(New("li").Add(Text("One"))))
	require.NoError(t, err)

	_, err = n.Add(Must(New("li").Add(Text("Two"))))
	require.ErrorIs(t, err, ErrChildrenAssigned)

	// An empty assignment still counts as the one allowed assignment.
	m, err := New("div").Add()
	require.NoError(t, err)
	_, err = m.Add(Text("late"))
	require.ErrorIs(t, err, ErrChildrenAssigned)
}

func TestAddRejectsVoidElements(t *testing.T) {
	for _, tag := range []string{"br", "hr", "img", "input", "meta"} {
		_, err := New(tag).Add(Text("nope"))
		require.ErrorIs(t, err, ErrVoidElement, "tag %q", tag)
		require.ErrorContains(t, err, "<"+tag+">")
	}
}

func TestIsVoid(t *testing.T) {
	require.True(t, IsVoid("br"))
	require.True(t, IsVoid("img"))
	require.False(t, IsVoid("div"))
	require.False(t, IsVoid("button"))
}

func TestCollectMaterializesSequence(t *testing.T) {
	calls := 0
	seq := func(yield func(Child) bool) {
		calls++
		for _, s := range []string{"One", "Two"} {
			if !yield(Must(New("li").Add(Text(s)))) {
				return
			}
		}
	}

	list, err := New("ul").Add(Collect(seq))
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	first, err := RenderString(list)
	require.NoError(t, err)
	second, err := RenderString(list)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, "<ul><li>One</li><li>Two</li></ul>", first)
	require.Equal(t, 1, calls, "sequence must not be re-iterated at render time")
}

func TestMust(t *testing.T) {
	n := Must(New("p").Add(Text("ok")))
	require.Equal(t, "p", n.Tag())

	require.Panics(t, func() {
		Must(Must(New("p").Add()).Add())
	})
}
