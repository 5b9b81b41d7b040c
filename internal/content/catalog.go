// Package content provides the window contents of the desktop: album
// windows with a media player, text pages and the placeholder fallback.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Length is a track length written as "m:ss" or a Go duration ("3m41s").
type Length time.Duration

// UnmarshalYAML parses "m:ss", "h:mm:ss" or a Go duration string.
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	d, err := parseLength(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = Length(d)
	return nil
}

// MarshalYAML writes the "m:ss" form.
func (l Length) MarshalYAML() (any, error) {
	return formatClock(time.Duration(l)), nil
}

// Duration returns l as a time.Duration.
func (l Length) Duration() time.Duration {
	return time.Duration(l)
}

func parseLength(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid length %q", s)
		}
		return d, nil
	}

	var total int
	for _, part := range strings.Split(s, ":") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid length %q", s)
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, nil
}

// formatClock renders d as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Track is one song of an album.
type Track struct {
	Title  string `yaml:"title"`
	Length Length `yaml:"length"`
}

// Album is a record promoted on the desktop. Each album gets a media window.
type Album struct {
	Title  string  `yaml:"title"`
	Artist string  `yaml:"artist"`
	Year   int     `yaml:"year"`
	Blurb  string  `yaml:"blurb"`
	Tracks []Track `yaml:"tracks"`
}

// Runtime returns the sum of the track lengths.
func (a Album) Runtime() time.Duration {
	var total time.Duration
	for _, t := range a.Tracks {
		total += t.Length.Duration()
	}
	return total
}

// Page is a text window. Width and Height, when set, override the preset.
type Page struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Catalog lists everything the desktop can open.
type Catalog struct {
	Albums []Album `yaml:"albums"`
	Pages  []Page  `yaml:"pages"`
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. An empty path returns the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	// #nosec G304 - the catalog path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that titles are unique and albums are playable.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	claim := func(kind, title string) {
		switch {
		case strings.TrimSpace(title) == "":
			errs = append(errs, fmt.Errorf("%s with an empty title", kind))
		case seen[title]:
			errs = append(errs, fmt.Errorf("duplicate title %q", title))
		}
		seen[title] = true
	}

	for _, a := range c.Albums {
		claim("album", a.Title)
		if len(a.Tracks) == 0 {
			errs = append(errs, fmt.Errorf("album %q has no tracks", a.Title))
		}
		for i, t := range a.Tracks {
			if t.Length <= 0 {
				errs = append(errs, fmt.Errorf("album %q track %d (%q) has no length", a.Title, i+1, t.Title))
			}
		}
	}
	for _, p := range c.Pages {
		claim("page", p.Title)
		if p.Width < 0 || p.Height < 0 {
			errs = append(errs, fmt.Errorf("page %q has a negative size", p.Title))
		}
	}
	if len(c.Albums)+len(c.Pages) == 0 {
		errs = append(errs, errors.New("catalog is empty"))
	}
	return errors.Join(errs...)
}

// Titles returns every title, albums first, in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.Albums)+len(c.Pages))
	for _, a := range c.Albums {
		titles = append(titles, a.Title)
	}
	for _, p := range c.Pages {
		titles = append(titles, p.Title)
	}
	return titles
}
