package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/scsstypes/internal/config"
)

func localsOf(names ...string) *Locals {
	l := NewLocals()
	for _, n := range names {
		l.Add(n, "scoped-"+n)
	}
	return l
}

func TestApplyConvention(t *testing.T) {
	input := []string{"button", "button-active", "header_title", "btn--primary"}

	tests := []struct {
		convention config.LocalsConvention
		want       []string
	}{
		{config.ConventionAsIs, []string{"button", "button-active", "header_title", "btn--primary"}},
		{config.ConventionCamelCaseOnly, []string{"button", "buttonActive", "headerTitle", "btnPrimary"}},
		{config.ConventionCamelCase, []string{"button", "button-active", "buttonActive", "header_title", "headerTitle", "btn--primary", "btnPrimary"}},
		{config.ConventionDashesOnly, []string{"button", "buttonActive", "header_title", "btnPrimary"}},
		{config.ConventionDashes, []string{"button", "button-active", "buttonActive", "header_title", "btn--primary", "btnPrimary"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.convention), func(t *testing.T) {
			got := ApplyConvention(tt.convention, localsOf(input...))
			assert.Equal(t, tt.want, got.Names())
		})
	}
}

func TestApplyConvention_KeepsScopedValue(t *testing.T) {
	got := ApplyConvention(config.ConventionCamelCaseOnly, localsOf("button-active"))

	v, ok := got.Lookup("buttonActive")
	assert.True(t, ok)
	assert.Equal(t, "scoped-button-active", v)
}

func TestApplyConvention_CollisionKeepsFirst(t *testing.T) {
	got := ApplyConvention(config.ConventionCamelCaseOnly, localsOf("foo-bar", "foo_bar"))
	assert.Equal(t, []string{"fooBar"}, got.Names())
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x", "x"},
		{"_internal", "internal"},
		{"icon-large", "iconLarge"},
		{"btn--primary", "btnPrimary"},
		{"header_title", "headerTitle"},
		{"Button", "button"},
		{"myHTMLButton", "myHtmlButton"},
		{"XMLHttpRequest", "xmlHttpRequest"},
		{"HTML", "html"},
		{"icon-2x", "icon2X"},
		{"h1", "h1"},
		{"a1b", "a1B"},
		{"col-1st-place", "col1stPlace"},
		{"step-11th", "step11Th"},
		{"foo:bar", "fooBar"},
		{"w-1/2", "w12"},
		{"héllo", "hello"},
		{"déjà-vu", "dejaVu"},
		{"straße", "strasse"},
		{"привет-мир", "приветМир"},
		{"don't-stop", "dontStop"},
		{"--", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, camelCase(tt.in))
		})
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"my", "HTML", "Button"}, words("myHTMLButton"))
	assert.Equal(t, []string{"button", "active"}, words("button--active"))
	assert.Equal(t, []string{"1st", "place"}, words("1st place"))
	assert.Empty(t, words("-_-"))
}

func TestApplyConvention_EscapedSelector(t *testing.T) {
	state := &scopeState{locals: NewLocals(), namer: identityNamer}
	require.NoError(t, state.handleSelector([]css.Token{
		{TokenType: css.DelimToken, Data: []byte(".")},
		{TokenType: css.IdentToken, Data: []byte(`sm\:flex`)},
	}))

	got := ApplyConvention(config.ConventionCamelCaseOnly, state.locals)
	assert.Equal(t, []string{"smFlex"}, got.Names())

	scoped, ok := got.Lookup("smFlex")
	require.True(t, ok)
	assert.Equal(t, "sm:flex", scoped)
}
