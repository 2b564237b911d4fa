package assets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/petspeak/internal/domain"
)

func TestResolve_Builtins(t *testing.T) {
	r := NewResolver()
	require.Equal(t, "🐕", r.Resolve("Dog"))
	require.Equal(t, "🐈", r.Resolve("  cat "))
	require.Equal(t, "🐦", r.Resolve("BIRD"))
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	require.Equal(t, DefaultGlyph, NewResolver().Resolve("Axolotl"))
	require.Equal(t, DefaultGlyph, NewResolver().Resolve(""))
}

func TestResolve_Overrides(t *testing.T) {
	r := NewResolver(
		WithFallback("?"),
		WithGlyphs(map[string]string{" Dog ": "D", "axolotl": "A", "": "x", "fish": "  "}),
	)
	require.Equal(t, "D", r.Resolve("dog"))
	require.Equal(t, "A", r.Resolve("Axolotl"))
	require.Equal(t, "?", r.Resolve("fish"))
	require.Equal(t, "🐈", r.Resolve("cat"))
}

func TestFromConfig_BlankFallbackKeepsDefault(t *testing.T) {
	r := FromConfig(domain.AssetsConfig{Default: " ", Species: map[string]string{"cat": "C"}})
	require.Equal(t, DefaultGlyph, r.Resolve("horse"))
	require.Equal(t, "C", r.Resolve("Cat"))
}
