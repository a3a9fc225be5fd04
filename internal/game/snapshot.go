package game

import "github.com/smolin/blockade/internal/engine/block"

// Snapshot contains the observable simulation state for determinism checks
// and save/replay. Uses primitive types only for stable serialization.
// Float fields are captured as milli-pixel ints so hashing is exact.
type Snapshot struct {
	Tick        uint64
	PaddleX     int
	PaddleWidth int
	Score       int
	Ammo        int
	Lives       int
	LevelIndex  int
	BonusTime   int
	State       string

	Mode  int // 0=Campaign, 1=Endless
	Cycle int

	Sticky  bool
	Reverse bool

	// Ball state (each ball is 7 ints: X, Y, VX, VY, GuidePos, Stuck, Active)
	BallCount int
	BallData  []int

	// Bullet state (each bullet is 3 ints: X, Y, Active)
	BulletCount int
	BulletData  []int

	// Block states (each block is 3 ints: Kind, Phase, Health-or-hits)
	BlockData []int

	// RNG state
	RNGState uint64
}

// milli captures a float as an integer with 1/1000 pixel resolution.
func milli(f float64) int {
	return int(f * 1000)
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	sess := g.sess

	balls := sess.Balls()
	ballData := make([]int, 0, len(balls)*7)
	for _, b := range balls {
		stuck, active := 0, 0
		if b.Stuck {
			stuck = 1
		}
		if b.Active {
			active = 1
		}
		ballData = append(ballData,
			milli(b.Pos.X), milli(b.Pos.Y),
			milli(b.Vel.X), milli(b.Vel.Y),
			b.GuidePos, stuck, active)
	}

	bullets := sess.Bullets()
	bulletData := make([]int, 0, len(bullets)*3)
	for _, b := range bullets {
		active := 0
		if b.Active {
			active = 1
		}
		bulletData = append(bulletData, milli(b.Pos.X), milli(b.Pos.Y), active)
	}

	blocks := sess.Blocks().Blocks()
	blockData := make([]int, 0, len(blocks)*3)
	for _, b := range blocks {
		third := 0
		switch blk := b.(type) {
		case *block.CounterBlock:
			third = blk.HitsRemaining()
		case *block.Block:
			third = blk.Health()
		}
		blockData = append(blockData, int(b.Kind()), int(b.Phase()), third)
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:     milli(sess.Paddle().X),
		PaddleWidth: milli(sess.Paddle().Width),
		Score:       g.ledger.Score(),
		Ammo:        g.ledger.Ammo(),
		Lives:       sess.State().Lives(),
		LevelIndex:  sess.LevelIndex(),
		BonusTime:   sess.State().BonusRemaining(),
		State:       g.state,

		Mode:  int(g.mode),
		Cycle: g.cycle,

		Sticky:  sess.PowerUps().Sticky(),
		Reverse: sess.PowerUps().Reverse(),

		BallCount:   len(balls),
		BallData:    ballData,
		BulletCount: len(bullets),
		BulletData:  bulletData,
		BlockData:   blockData,

		RNGState: g.rand.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleWidth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusTime)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cycle)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation

	for _, s := range snap.State {
		h = h*31 + uint64(s)
	}
	if snap.Sticky {
		h = h*31 + 1
	}
	if snap.Reverse {
		h = h*31 + 1
	}

	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
