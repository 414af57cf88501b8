package catalogue

import (
	"fmt"

	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

// entry bundles a tile with its remaining availability. A nil Stock means
// unlimited (typically a pre-placed or off-board tile); a non-nil Stock
// counts down as players place copies.
type entry struct {
	tile    *tile.Tile
	stock   *int
	special bool
}

// Catalogue is an immutable, cheaply-cloneable registry of named tiles.
// Cloning shares the underlying entry map; callers that place or remove a
// tile get back a new Catalogue value with its own copy of the mutated
// entries, leaving every other clone untouched.
type Catalogue struct {
	entries map[string]entry
}

// UnknownTile is returned when a catalogue operation names a tile that
// does not exist.
type UnknownTile struct {
	Name string
}

func (e UnknownTile) Error() string {
	return fmt.Sprintf("unknown tile %q", e.Name)
}

// Builder accumulates tiles into a Catalogue across two buckets: tiles
// available to players (with a finite stock count) and unavailable /
// special tiles (pre-placed or off-board, with unlimited availability and
// never player-placeable).
type Builder struct {
	entries map[string]entry
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: map[string]entry{}}
}

// Available adds a tile to the player-placeable bucket with the given
// stock count.
func (b *Builder) Available(t *tile.Tile, stock int) *Builder {
	b.entries[t.Name] = entry{tile: t, stock: &stock}
	return b
}

// Special adds a tile to the unavailable/special bucket: unlimited
// availability, never player-placeable.
func (b *Builder) Special(t *tile.Tile) *Builder {
	b.entries[t.Name] = entry{tile: t, stock: nil, special: true}
	return b
}

// Build emits the accumulated Catalogue. It does not check for duplicate
// names: a tile added under a name already in use replaces the earlier
// entry, so the catalogue holds only the last tile added under each name.
func (b *Builder) Build() *Catalogue {
	out := make(map[string]entry, len(b.entries))
	for name, e := range b.entries {
		out[name] = e
	}
	return &Catalogue{entries: out}
}

// Lookup returns the tile registered under name, or UnknownTile if none.
func (c *Catalogue) Lookup(name string) (*tile.Tile, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, UnknownTile{Name: name}
	}
	return e.tile, nil
}

// Availability reports the remaining stock for name: a non-negative count,
// or -1 for unlimited availability. Returns UnknownTile if name is not
// registered.
func (c *Catalogue) Availability(name string) (int, error) {
	e, ok := c.entries[name]
	if !ok {
		return 0, UnknownTile{Name: name}
	}
	if e.stock == nil {
		return -1, nil
	}
	return *e.stock, nil
}

// IsSpecial reports whether name is flagged as not player-placeable.
func (c *Catalogue) IsSpecial(name string) (bool, error) {
	e, ok := c.entries[name]
	if !ok {
		return false, UnknownTile{Name: name}
	}
	return e.special, nil
}

// Decrement reduces name's availability by one (no-op if unlimited or
// already zero stock elsewhere prevented placement) and returns the new
// Catalogue value, leaving the receiver untouched.
func (c *Catalogue) Decrement(name string) (*Catalogue, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, UnknownTile{Name: name}
	}
	nc := c.clone()
	if e.stock != nil {
		n := *e.stock - 1
		e.stock = &n
		nc.entries[name] = e
	}
	return nc, nil
}

// Increment restores one unit of name's availability, returning the new
// Catalogue value.
func (c *Catalogue) Increment(name string) (*Catalogue, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, UnknownTile{Name: name}
	}
	nc := c.clone()
	if e.stock != nil {
		n := *e.stock + 1
		e.stock = &n
		nc.entries[name] = e
	}
	return nc, nil
}

// Names returns every registered tile name.
func (c *Catalogue) Names() []string {
	out := make([]string, 0, len(c.entries))
	for name := range c.entries {
		out = append(out, name)
	}
	return out
}

func (c *Catalogue) clone() *Catalogue {
	out := make(map[string]entry, len(c.entries))
	for name, e := range c.entries {
		out[name] = e
	}
	return &Catalogue{entries: out}
}
