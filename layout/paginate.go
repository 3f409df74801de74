package layout

import (
	"errors"
	"fmt"
)

// ErrLayoutInvariant signals an internal layout defect or an
// unsatisfiable configuration, e.g. a page capacity smaller than a
// single heading. It is fatal: no partial page sequence is returned.
var ErrLayoutInvariant = errors.New("layout invariant violated")

// Pagination is the result of packing one block stream: the finished
// pages and, per section key, the 1-based index of the page its
// heading landed on.
type Pagination struct {
	Pages  []Page
	Starts map[string]int
}

// Paginate packs blocks into pages of the given capacity.
//
// Blocks are appended to the current page while the cumulative cost
// stays within capacity. A non-heading block whose cost alone exceeds
// capacity is placed alone on its own page, never dropped. A forced
// PageBreak closes the current page immediately; the marker itself is
// not emitted. A heading is never left alone at the bottom of a page:
// the paginator peeks one block ahead and moves the heading to a fresh
// page when the page cannot also hold the first block below it. A
// heading that does not fit even on an empty page is an
// ErrLayoutInvariant.
func Paginate(blocks []Block, capacity int) (*Pagination, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: page capacity %d", ErrLayoutInvariant, capacity)
	}

	p := &Pagination{Starts: make(map[string]int)}
	var cur []Block
	used := 0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		p.Pages = append(p.Pages, Page{Blocks: cur})
		cur = nil
		used = 0
	}

	for i, b := range blocks {
		switch b := b.(type) {
		case PageBreak:
			flush()

		case Heading:
			if b.Cost() > capacity {
				return nil, fmt.Errorf("%w: heading %q cost %d exceeds page capacity %d",
					ErrLayoutInvariant, b.Section, b.Cost(), capacity)
			}
			// Keep at least the first following block with the heading.
			need := b.Cost()
			if next, ok := peekContent(blocks, i); ok {
				need += next.Cost()
			}
			if len(cur) > 0 && used+need > capacity {
				flush()
			}
			cur = append(cur, b)
			used += b.Cost()
			p.Starts[b.Section] = len(p.Pages) + 1

		default:
			if len(cur) > 0 && used+b.Cost() > capacity {
				flush()
			}
			cur = append(cur, b)
			used += b.Cost()
		}
	}
	flush()
	return p, nil
}

// peekContent returns the block immediately after index i when it is
// a content block. A forced break after a heading means the heading
// legitimately stands alone, so it does not count.
func peekContent(blocks []Block, i int) (Block, bool) {
	if i+1 >= len(blocks) {
		return nil, false
	}
	if _, isBreak := blocks[i+1].(PageBreak); isBreak {
		return nil, false
	}
	return blocks[i+1], true
}
