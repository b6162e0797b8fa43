package text

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects a weight/slant variant within a family.
type Style int

const (
	// Regular is the default upright weight.
	Regular Style = iota
	// Bold is the bold weight.
	Bold
	// Italic is the italic slant.
	Italic
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "regular"
	}
}

// ProviderOption configures a Provider during creation.
type ProviderOption func(*Provider)

// WithDir registers a directory to scan for font files. Directories are
// searched in registration order.
func WithDir(dir string) ProviderOption {
	return func(p *Provider) {
		p.dirs = append(p.dirs, dir)
	}
}

// WithLogger sets the logger used to report fallbacks and load failures.
func WithLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// Provider resolves (family, style, size) requests to renderable faces.
//
// Families are looked up as files named after the family in the registered
// directories ("inter-bold.ttf", "inter.otf", ...). When no file matches
// or parsing fails, the provider falls back to the embedded Go fonts, so a
// usable face is always returned: an unavailable font degrades the look,
// never the run.
type Provider struct {
	dirs      []string
	log       *slog.Logger
	sources   map[sourceKey]*FontSource
	fallbacks map[Style]*FontSource
}

type sourceKey struct {
	family string
	style  Style
}

// NewProvider creates a font provider.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		sources:   make(map[sourceKey]*FontSource),
		fallbacks: make(map[Style]*FontSource),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Face returns a face for the family, style, and size. It never fails;
// see Provider for the fallback behavior.
func (p *Provider) Face(family string, style Style, points float64) Face {
	return p.Source(family, style).Face(points)
}

// Source resolves the family and style to a font source, consulting the
// cache first.
func (p *Provider) Source(family string, style Style) *FontSource {
	key := sourceKey{family: strings.ToLower(family), style: style}
	if s, ok := p.sources[key]; ok {
		return s
	}
	s := p.lookup(key.family, style)
	if s == nil {
		p.log.Warn("font unavailable, using embedded fallback",
			"family", family, "style", style.String())
		s = p.fallback(style)
	}
	p.sources[key] = s
	return s
}

func (p *Provider) lookup(family string, style Style) *FontSource {
	base := strings.ReplaceAll(family, " ", "-")
	var names []string
	switch style {
	case Bold:
		names = []string{base + "-bold"}
	case Italic:
		names = []string{base + "-italic"}
	default:
		names = []string{base + "-regular", base}
	}
	for _, dir := range p.dirs {
		for _, name := range names {
			for _, ext := range []string{".ttf", ".otf"} {
				path := filepath.Join(dir, name+ext)
				src, err := NewFontSourceFromFile(path)
				if err == nil {
					return src
				}
				if !errors.Is(err, fs.ErrNotExist) {
					p.log.Warn("failed to load font file", "path", path, "error", err)
				}
			}
		}
	}
	return nil
}

func (p *Provider) fallback(style Style) *FontSource {
	if s, ok := p.fallbacks[style]; ok {
		return s
	}
	var data []byte
	switch style {
	case Bold:
		data = gobold.TTF
	case Italic:
		data = goitalic.TTF
	default:
		data = goregular.TTF
	}
	src, err := NewFontSource(data)
	if err != nil {
		// The embedded Go fonts always parse; reaching this means the
		// binary itself is corrupt.
		panic("text: embedded fallback font failed to parse: " + err.Error())
	}
	p.fallbacks[style] = src
	return src
}
