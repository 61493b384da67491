package eisner

import (
	"fmt"
	"iter"
	"math"
)

// direction selects which endpoint of a span [i, j] is the head.
type direction uint8

const (
	leftward  direction = iota // head j, far endpoint i
	rightward                  // head i, far endpoint j
)

// directions is the fill order within one span: leftward first.
var directions = [...]direction{leftward, rightward}

// ends returns the (head, far) endpoints of span [i, j] for d.
func (d direction) ends(i, j int) (head, far int) {
	if d == rightward {
		return i, j
	}

	return j, i
}

// chart is the Eisner state for one sentence. Every table is size×size and
// addressed by (head, far): cell h*size+e describes the span between h and e
// whose head is h.
//
//	complete[h,e]   best C(h→e): subtree of h covering [h..e], closed at e
//	incomplete[h,e] best I(h→e): arc h→e plus the material between them
//	cBack, iBack    split points r that achieved those maxima
//
// filled is the widest span width already finalized; fillWidth only accepts
// filled+1.
type chart struct {
	size   int         // sentence length + 1 (root at 0)
	length int         // real tokens
	rows   [][]float64 // rows[d][h]: score of h heading d

	complete   []float64
	incomplete []float64
	cBack      []int
	iBack      []int

	filled int
}

func newChart(rows [][]float64, length int) *chart {
	size := length + 1
	c := &chart{
		size:       size,
		length:     length,
		rows:       rows,
		complete:   make([]float64, size*size),
		incomplete: make([]float64, size*size),
		cBack:      make([]int, size*size),
		iBack:      make([]int, size*size),
	}
	negInf := math.Inf(-1)
	for k := range c.complete {
		c.complete[k] = negInf
		c.incomplete[k] = negInf
	}
	// Single tokens are complete spans of score 0.
	for i := 0; i < size; i++ {
		c.complete[c.at(i, i)] = 0
	}

	return c
}

func (c *chart) at(head, far int) int { return head*c.size + far }

// widths yields the span widths still to fill, in strictly increasing order.
func (c *chart) widths() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w := c.filled + 1; w < c.size; w++ {
			if !yield(w) {
				return
			}
		}
	}
}

// fillWidth finalizes every span of width w. Spans of width w read only
// complete spans narrower than w and incomplete spans no wider than w, so w
// must follow the last filled width.
func (c *chart) fillWidth(w int) {
	if w != c.filled+1 {
		panic(fmt.Sprintf("eisner: width %d filled after width %d", w, c.filled))
	}
	var i, j int
	var d direction
	for i = 0; i+w < c.size; i++ {
		j = i + w
		for _, d = range directions {
			c.attach(i, j, d)
		}
		for _, d = range directions {
			c.close(i, j, d)
		}
	}
	// Only the full-sentence root span may stay complete: the root takes
	// exactly one dependent, and that subtree covers every token.
	if w != c.length {
		c.complete[c.at(0, w)] = math.Inf(-1)
	}
	c.filled = w
}

// attach computes I(head→far) over [i, j]:
//
//	max over r in [i, j) of C(i→r) + C(j→r+1) + score(far, head)
//
// Ties keep the first r.
func (c *chart) attach(i, j int, d direction) {
	h, e := d.ends(i, j)
	arc := c.rows[e][h]
	best, arg := math.Inf(-1), i
	var v float64
	for r := i; r < j; r++ {
		v = c.complete[c.at(i, r)] + c.complete[c.at(j, r+1)] + arc
		if r == i || v > best {
			best, arg = v, r
		}
	}
	c.incomplete[c.at(h, e)] = best
	c.iBack[c.at(h, e)] = arg
}

// close computes C(head→far) over [i, j]:
//
//	max over r of I(head→r) + C(r→far)
//
// with r in (i, j] when the head is i and r in [i, j) when the head is j.
// Ties keep the first (smallest) r.
func (c *chart) close(i, j int, d direction) {
	h, e := d.ends(i, j)
	lo, hi := i, j-1
	if d == rightward {
		lo, hi = i+1, j
	}
	best, arg := math.Inf(-1), lo
	var v float64
	for r := lo; r <= hi; r++ {
		v = c.incomplete[c.at(h, r)] + c.complete[c.at(r, e)]
		if r == lo || v > best {
			best, arg = v, r
		}
	}
	c.complete[c.at(h, e)] = best
	c.cBack[c.at(h, e)] = arg
}

// score returns the best full-sentence tree score, C(0→length).
func (c *chart) score() float64 { return c.complete[c.at(0, c.length)] }

// backtrack expands the span (head, far) into heads. A complete span splits
// into I(head→r) and C(r→far); an incomplete span records head as the parent
// of far and splits into C(lo→r) and C(hi→r+1). Every expansion is strictly
// narrower, so each token is reached once.
func (c *chart) backtrack(heads []int, head, far int, complete bool) {
	if head == far {
		return
	}
	if complete {
		r := c.cBack[c.at(head, far)]
		c.backtrack(heads, head, r, false)
		c.backtrack(heads, r, far, true)

		return
	}
	r := c.iBack[c.at(head, far)]
	heads[far] = head
	lo, hi := min(head, far), max(head, far)
	c.backtrack(heads, lo, r, true)
	c.backtrack(heads, hi, r+1, true)
}
