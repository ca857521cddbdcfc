package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2/css"
)

func identityNamer(local, _, _ string) string { return local }

func TestScope(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want []string
	}{
		{
			name: "simple classes",
			css:  ".button { color: red; } .button-active { color: blue; }",
			want: []string{"button", "button-active"},
		},
		{
			name: "duplicates keep first position",
			css:  ".a { color: red; } .b { color: blue; } .a:hover { color: green; }",
			want: []string{"a", "b"},
		},
		{
			name: "compound and descendant selectors",
			css:  ".card .title, .card > .body { margin: 0; }",
			want: []string{"card", "title", "body"},
		},
		{
			name: "global function form",
			css:  ":global(.external) .local { color: red; }",
			want: []string{"local"},
		},
		{
			name: "global switch form lasts until comma",
			css:  ".before :global .g1 .g2, .after { color: red; }",
			want: []string{"before", "after"},
		},
		{
			name: "local switch inside global",
			css:  ":global .g :local .l { color: red; }",
			want: []string{"l"},
		},
		{
			name: "pseudo class functions inherit mode",
			css:  ".list li:not(.hidden) { display: block; }",
			want: []string{"list", "hidden"},
		},
		{
			name: "ids are local",
			css:  "#main .item { color: red; }",
			want: []string{"main", "item"},
		},
		{
			name: "media queries",
			css:  "@media (max-width: 600px) { .mobile { display: none; } }",
			want: []string{"mobile"},
		},
		{
			name: "keyframes names without frame selectors",
			css:  "@keyframes fade { from { opacity: 0; } to { opacity: 1; } } .box { animation: fade 1s; }",
			want: []string{"fade", "box"},
		},
		{
			name: "element selectors only",
			css:  "body { margin: 0; } a:hover { color: red; }",
			want: nil,
		},
		{
			name: "empty stylesheet",
			css:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locals, err := Scope(tt.css, "button.module.scss", identityNamer)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Equal(t, 0, locals.Len())
				return
			}
			assert.Equal(t, tt.want, locals.Names())
		})
	}
}

func TestScope_Export(t *testing.T) {
	locals, err := Scope(":export { primary: #ff0000; } .button { color: red; }", "theme.module.scss", identityNamer)
	require.NoError(t, err)

	assert.Equal(t, []string{"primary", "button"}, locals.Names())

	value, ok := locals.Lookup("primary")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", value)
}

func TestScope_UsesNamer(t *testing.T) {
	namer := func(local, filename, _ string) string { return filename + ":" + local }

	locals, err := Scope(".button { color: red; }", "x.module.scss", namer)
	require.NoError(t, err)

	scoped, ok := locals.Lookup("button")
	require.True(t, ok)
	assert.Equal(t, "x.module.scss:button", scoped)
}

func TestHandleSelector_Unbalanced(t *testing.T) {
	state := &scopeState{locals: NewLocals(), namer: identityNamer}

	err := state.handleSelector([]css.Token{
		{TokenType: css.DelimToken, Data: []byte(".")},
		{TokenType: css.IdentToken, Data: []byte("a")},
		{TokenType: css.RightParenthesisToken, Data: []byte(")")},
	})
	assert.Error(t, err)

	err = state.handleSelector([]css.Token{
		{TokenType: css.ColonToken, Data: []byte(":")},
		{TokenType: css.FunctionToken, Data: []byte("global(")},
		{TokenType: css.DelimToken, Data: []byte(".")},
		{TokenType: css.IdentToken, Data: []byte("a")},
	})
	assert.Error(t, err)
}

func TestUnescapeIdent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`sm\:flex`, "sm:flex"},
		{`w-1\/2`, "w-1/2"},
		{`\31 0`, "10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unescapeIdent(tt.in), tt.in)
	}
}

func TestLocals(t *testing.T) {
	l := NewLocals()
	l.Add("b", "x")
	l.Add("a", "y")
	l.Add("b", "z")

	assert.Equal(t, []string{"b", "a"}, l.Names())
	assert.Equal(t, 2, l.Len())

	v, ok := l.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	// Names returns a copy
	names := l.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, l.Names())
}
