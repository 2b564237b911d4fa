package assets

import (
	"strings"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ports"
)

const DefaultGlyph = "🐾"

var builtin = map[string]string{
	"dog":  "🐕",
	"cat":  "🐈",
	"bird": "🐦",
}

// Resolver looks up a glyph by species, ignoring case and surrounding space.
type Resolver struct {
	fallback string
	glyphs   map[string]string
}

type Option func(*Resolver)

// WithFallback replaces the glyph used for unknown species.
func WithFallback(g string) Option {
	return func(r *Resolver) {
		if strings.TrimSpace(g) != "" {
			r.fallback = g
		}
	}
}

// WithGlyphs adds or overrides species glyphs.
func WithGlyphs(m map[string]string) Option {
	return func(r *Resolver) {
		for k, v := range m {
			k = normalize(k)
			if k == "" || strings.TrimSpace(v) == "" {
				continue
			}
			r.glyphs[k] = v
		}
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fallback: DefaultGlyph,
		glyphs:   make(map[string]string, len(builtin)),
	}
	for k, v := range builtin {
		r.glyphs[k] = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromConfig builds a resolver from the assets section of petspeak.yaml.
func FromConfig(cfg domain.AssetsConfig) *Resolver {
	return NewResolver(WithFallback(cfg.Default), WithGlyphs(cfg.Species))
}

var _ ports.AssetResolver = (*Resolver)(nil)

func (r *Resolver) Resolve(species string) string {
	if g, ok := r.glyphs[normalize(species)]; ok {
		return g
	}
	return r.fallback
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
