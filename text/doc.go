// Package text provides font loading, measurement, and glyph drawing for
// mockup rendering.
//
// A FontSource is a parsed font; a Face is a source at a specific size.
// Measure and Draw operate on faces and an RGBA destination. The Provider
// resolves (family, style, size) requests against registered font
// directories and falls back to the embedded Go fonts when a family is
// unavailable, so requesting a face never fails.
//
// Text layout is intentionally simple: single-line, left-to-right strings
// measured by advance summing. There is no shaping, wrapping, or bidi.
package text
