package itertools

import (
	"iter"

	"github.com/tychoish/itertools/ers"
)

// ChunkByIter splits a sequence into groups of consecutive items that
// share a key. The groups are produced lazily and share a single pass
// over the input.
//
// Groups may be read in any order. Reading past the end of a group, or
// asking for the next group while the current one is unread, buffers
// the skipped items so the earlier group can still produce them. Call
// Close on a group that will not be read again to stop buffering its
// items: groups that are read in order, or closed as soon as they are
// done with, never buffer anything.
//
// ChunkByIter and its groups are not safe for concurrent use.
type ChunkByIter[K comparable, V any] struct {
	next func() (V, bool)
	stop func()
	key  func(V) K

	curKey K
	// first item of group top, pulled while looking for a key change
	lookahead V
	hasLook   bool
	started   bool
	done      bool

	// id of the group the input cursor is in
	top int
	// number of groups handed out
	issued int

	// buffered items of groups base .. base+len(buffer)-1
	buffer [][]V
	base   int
	// oldest group that may still have buffered items
	oldest int
	// groups closed before the cursor left them
	released set[int]

	current *Group[K, V]
}

// Group is one run of consecutive items with an equal key, produced by
// ChunkByIter.
type Group[K comparable, V any] struct {
	parent *ChunkByIter[K, V]
	id     int
	key    K
	value  V
	closed bool
}

// NewChunkBy returns the lazy grouping of the sequence by the key
// function. The input is not read until the first group is requested.
func NewChunkBy[K comparable, V any](seq iter.Seq[V], key func(V) K) *ChunkByIter[K, V] {
	next, stop := iter.Pull(seq)
	return &ChunkByIter[K, V]{next: next, stop: stop, key: key, released: set[int]{}}
}

func (c *ChunkByIter[K, V]) pull() (V, bool) {
	if c.done {
		return zero[V](), false
	}
	item, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
	}
	return item, ok
}

// Next advances to the next group, returning false when the input is
// exhausted.
func (c *ChunkByIter[K, V]) Next() bool {
	id := c.issued
	switch {
	case !c.started:
		c.started = true
		item, ok := c.pull()
		if !ok {
			return false
		}
		c.curKey, c.lookahead, c.hasLook = c.key(item), item, true
	case c.top < id:
		// the previous group has not been read to its end
		if !c.bufferCurrent() {
			return false
		}
	case !c.hasLook:
		return false
	}

	c.issued++
	c.current = &Group[K, V]{parent: c, id: id, key: c.curKey}
	return true
}

// Value returns the current group.
func (c *ChunkByIter[K, V]) Value() *Group[K, V] { return c.current }

// Close releases the input sequence. Groups that have already been
// produced can still read their buffered items.
func (c *ChunkByIter[K, V]) Close() error {
	c.done = true
	c.stop()
	return nil
}

// Seq returns a sequence of the remaining groups, closing the
// iterator when the sequence ends.
func (c *ChunkByIter[K, V]) Seq() iter.Seq[*Group[K, V]] {
	return func(yield func(*Group[K, V]) bool) {
		defer c.Close()
		for c.Next() && yield(c.current) {
			continue
		}
	}
}

// bufferCurrent reads the rest of group top into the buffer and moves
// the cursor to the start of the next group. It returns false if the
// input ends first.
func (c *ChunkByIter[K, V]) bufferCurrent() bool {
	keep := !c.released.pop(c.top)
	var items []V
	if c.hasLook {
		c.hasLook = false
		if keep {
			items = append(items, c.lookahead)
		}
	}

	advanced := false
	for item, ok := c.pull(); ok; item, ok = c.pull() {
		if key := c.key(item); key != c.curKey {
			c.curKey, c.lookahead, c.hasLook = key, item, true
			advanced = true
			break
		}
		if keep {
			items = append(items, item)
		}
	}

	if len(items) > 0 {
		c.store(c.top, items)
	}
	if advanced {
		c.top++
	}
	return advanced
}

// store places items in the arena slot for a group, padding the arena
// with empty slots for groups that never buffered anything.
func (c *ChunkByIter[K, V]) store(id int, items []V) {
	if len(c.buffer) == 0 {
		c.base, c.oldest = id, id
	}
	for c.base+len(c.buffer) < id {
		c.buffer = append(c.buffer, nil)
	}
	c.buffer = append(c.buffer, items)
}

// step returns the next item of a group. Groups behind the cursor
// read from the arena, as does the last group once the input ends
// while it is being buffered.
func (c *ChunkByIter[K, V]) step(id int) (V, bool) {
	if id < c.top || id-c.base < len(c.buffer) {
		return c.fromBuffer(id)
	}

	if c.hasLook {
		c.hasLook = false
		return c.lookahead, true
	}
	item, ok := c.pull()
	if !ok {
		return item, false
	}
	if key := c.key(item); key != c.curKey {
		c.curKey, c.lookahead, c.hasLook = key, item, true
		c.top++
		return zero[V](), false
	}
	return item, true
}

func (c *ChunkByIter[K, V]) fromBuffer(id int) (V, bool) {
	slot := id - c.base
	if slot < 0 || slot >= len(c.buffer) || len(c.buffer[slot]) == 0 {
		return zero[V](), false
	}

	item := c.buffer[slot][0]
	c.buffer[slot] = c.buffer[slot][1:]
	if len(c.buffer[slot]) == 0 {
		c.free(id)
	}
	return item, true
}

// free drops the buffered items of a group, then moves the watermark
// past every empty slot and compacts the arena once at least half of
// it is unused.
func (c *ChunkByIter[K, V]) free(id int) {
	if slot := id - c.base; slot >= 0 && slot < len(c.buffer) {
		c.buffer[slot] = nil
	}
	for c.oldest-c.base < len(c.buffer) && len(c.buffer[c.oldest-c.base]) == 0 {
		c.oldest++
	}

	if dead := c.oldest - c.base; dead > 0 && dead >= len(c.buffer)/2 {
		c.buffer = append([][]V(nil), c.buffer[dead:]...)
		c.base = c.oldest
	}
}

func (c *ChunkByIter[K, V]) release(id int) {
	if id == c.top {
		c.released.set(id)
	}
	c.free(id)
}

// Key returns the key shared by every item of the group.
func (g *Group[K, V]) Key() K { return g.key }

// Next advances to the next item of the group, returning false at the
// end of the group or once the group is closed.
func (g *Group[K, V]) Next() bool {
	if g.closed {
		return false
	}
	item, ok := g.parent.step(g.id)
	if !ok {
		g.closed = true
		return false
	}
	g.value = item
	return true
}

// Value returns the current item of the group.
func (g *Group[K, V]) Value() V { return g.value }

// Close marks the group as done: items of the group that have not been
// read are discarded rather than buffered.
func (g *Group[K, V]) Close() error {
	if !g.closed {
		g.closed = true
		g.parent.release(g.id)
	}
	return nil
}

// Seq returns a sequence of the remaining items of the group, closing
// the group when the sequence ends.
func (g *Group[K, V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		defer g.Close()
		for g.Next() && yield(g.value) {
			continue
		}
	}
}

// ChunkBy groups consecutive items of the sequence with an equal key.
// Each group is only valid during the loop body that receives it: it
// is closed, and anything left of it discarded, before the next group
// is produced.
func ChunkBy[K comparable, V any](seq iter.Seq[V], key func(V) K) iter.Seq2[K, iter.Seq[V]] {
	return func(yield func(K, iter.Seq[V]) bool) {
		groups := NewChunkBy(seq, key)
		defer groups.Close()

		for groups.Next() {
			group := groups.Value()
			ok := yield(group.Key(), group.Seq())
			_ = group.Close()
			if !ok {
				return
			}
		}
	}
}

// Chunks splits the sequence into lazily produced chunks of size
// items; the last chunk may be shorter. Like ChunkBy, each chunk is
// only valid during the loop body that receives it. Chunks panics if
// size is less than one.
func Chunks[V any](seq iter.Seq[V], size int) iter.Seq[iter.Seq[V]] {
	ers.Invariant(size > 0, ers.ErrInvalidArgument, "chunk size must be positive, not %d", size)

	return func(yield func(iter.Seq[V]) bool) {
		inc := counterFrom(-1)
		for _, chunk := range ChunkBy(seq, func(V) int { return inc() / size }) {
			if !yield(chunk) {
				return
			}
		}
	}
}
