package ports

// AssetResolver maps a species to the glyph shown next to it.
// Unknown species resolve to a default glyph, never to "".
type AssetResolver interface {
	Resolve(species string) string
}
