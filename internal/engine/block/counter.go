package block

import "github.com/smolin/blockade/internal/core"

// CounterBlock is a multi-hit block variant that tracks its own
// hits-remaining counter and shows a numbered visual per remaining count.
// It breaks exactly when the counter reaches zero, awarding its configured
// points with no effect tag.
type CounterBlock struct {
	Block

	hitsRemaining int
	points        int
}

// NewCounter creates a counter block requiring hits hits to break.
func NewCounter(rect core.Rect, hits int) *CounterBlock {
	c := &CounterBlock{
		Block:         *New(KindCounter, rect),
		hitsRemaining: hits,
		points:        KindCounter.Points() * hits,
	}
	return c
}

// HitsRemaining returns the remaining hit count. The platform keys the
// block's numbered visual off this value.
func (c *CounterBlock) HitsRemaining() int {
	return c.hitsRemaining
}

// Hit decrements the hit counter instead of the generic health field. The
// same guards as Block.Hit apply.
func (c *CounterBlock) Hit() HitResult {
	if !c.beginHit() {
		return HitResult{}
	}

	c.hitsRemaining--
	if c.hitsRemaining > 0 {
		return HitResult{}
	}

	res := c.breakNow()
	res.Points = c.points
	return res
}
