package modules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yacobolo/scsstypes/internal/config"
)

func TestComponentName(t *testing.T) {
	tests := map[string]string{
		"src/button.module.scss":     "button",
		"src/_partial.module.scss":   "partial",
		"src/my_card_x.module.sass":  "mycard_x",
		"/abs/path/theme.module.css": "theme",
		"src/plain.scss":             "plain",
	}
	for in, want := range tests {
		assert.Equal(t, want, componentName(in), in)
	}
}

func TestDevelopmentNamer(t *testing.T) {
	got := DevelopmentNamer("primary", "src/button.module.scss", ".primary{}")
	assert.Regexp(t, regexp.MustCompile(`^button__primary--[0-9a-f]{5}$`), got)

	// Deterministic
	assert.Equal(t, got, DevelopmentNamer("primary", "src/button.module.scss", ".primary{}"))

	// Content sensitive
	assert.NotEqual(t, got, DevelopmentNamer("primary", "src/button.module.scss", ".primary{color:red}"))

	// No source, no hash
	assert.Equal(t, "button__primary", DevelopmentNamer("primary", "src/button.module.scss", ""))
}

func TestProductionNamer(t *testing.T) {
	namer := ProductionNamer(7)
	got := namer("primary", "src/button.module.scss", ".primary{}")

	assert.Len(t, got, 7)
	assert.Regexp(t, regexp.MustCompile(`^[a-f][0-9a-f]{6}$`), got)
	assert.Equal(t, got, namer("primary", "src/button.module.scss", ".primary{}"))
}

func TestNamerFor(t *testing.T) {
	dev := NamerFor(config.ScopedDevelopment, 5)("a", "x.module.scss", "")
	assert.Equal(t, "x__a", dev)

	prod := NamerFor(config.ScopedProduction, 5)("a", "x.module.scss", "")
	assert.Len(t, prod, 5)
}
