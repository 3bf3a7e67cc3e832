package body

import (
	"fmt"
	"io"
	"slices"
)

// Asterism is a named, ordered group of catalogue stars. Consecutive stars
// are joined when the asterism is drawn.
type Asterism struct {
	name  string
	stars []Star
}

// NewAsterism returns an asterism made of stars, in drawing order.
func NewAsterism(name string, stars ...Star) Asterism {
	return Asterism{name: name, stars: slices.Clone(stars)}
}

// Name returns the asterism's name.
func (a Asterism) Name() string { return a.name }

// Stars returns the asterism's stars in drawing order.
func (a Asterism) Stars() []Star { return slices.Clone(a.stars) }

// Catalogue is an immutable collection of stars and asterisms. A star's
// index in Stars is its identity within the catalogue.
type Catalogue struct {
	stars     []Star
	asterisms []Asterism
	index     map[Star]int
	members   [][]int
}

// Stars returns the catalogue's stars in index order.
func (c *Catalogue) Stars() []Star { return slices.Clone(c.stars) }

// Len returns the number of stars.
func (c *Catalogue) Len() int { return len(c.stars) }

// Star returns the star at index i.
func (c *Catalogue) Star(i int) Star { return c.stars[i] }

// Asterisms returns the catalogue's asterisms.
func (c *Catalogue) Asterisms() []Asterism { return slices.Clone(c.asterisms) }

// IndexOf returns the index of s in the catalogue.
func (c *Catalogue) IndexOf(s Star) (int, bool) {
	i, ok := c.index[s]
	return i, ok
}

// AsterismIndices returns the star indices of the asterism at position i of
// Asterisms.
func (c *Catalogue) AsterismIndices(i int) []int {
	return slices.Clone(c.members[i])
}

// CatalogueBuilder accumulates stars and asterisms. It is not safe for
// concurrent use; a Catalogue is shared only once Build returns.
type CatalogueBuilder struct {
	stars     []Star
	asterisms []Asterism
}

// NewCatalogueBuilder returns an empty builder.
func NewCatalogueBuilder() *CatalogueBuilder {
	return &CatalogueBuilder{}
}

// AddStar appends s to the catalogue.
func (b *CatalogueBuilder) AddStar(s Star) *CatalogueBuilder {
	b.stars = append(b.stars, s)
	return b
}

// AddAsterism appends a to the catalogue. Its stars must be added too
// before Build is called.
func (b *CatalogueBuilder) AddAsterism(a Asterism) *CatalogueBuilder {
	b.asterisms = append(b.asterisms, a)
	return b
}

// Stars returns the stars added so far.
func (b *CatalogueBuilder) Stars() []Star { return slices.Clone(b.stars) }

// Load reads r with l, adding what it finds to the builder.
func (b *CatalogueBuilder) Load(r io.Reader, l Loader) (*CatalogueBuilder, error) {
	if err := l.Load(r, b); err != nil {
		return b, err
	}
	return b, nil
}

// Build returns the catalogue. It fails with ErrUnknownStar when an
// asterism references a star that was not added.
func (b *CatalogueBuilder) Build() (*Catalogue, error) {
	c := &Catalogue{
		stars:     slices.Clone(b.stars),
		asterisms: slices.Clone(b.asterisms),
		index:     make(map[Star]int, len(b.stars)),
	}
	for i, s := range c.stars {
		if _, dup := c.index[s]; !dup {
			c.index[s] = i
		}
	}

	c.members = make([][]int, len(c.asterisms))
	for ai, a := range c.asterisms {
		idx := make([]int, len(a.stars))
		for j, s := range a.stars {
			i, ok := c.index[s]
			if !ok {
				return nil, fmt.Errorf("asterism %q, star %q: %w", a.name, s.Name(), ErrUnknownStar)
			}
			idx[j] = i
		}
		c.members[ai] = idx
	}
	return c, nil
}

// Loader fills a catalogue builder from a stream.
type Loader interface {
	Load(r io.Reader, b *CatalogueBuilder) error
}
