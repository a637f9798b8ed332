package membrane

import (
	"lipidmc/internal/core"
	pcore "lipidmc/pkg/core"
)

// RoundStat records the outcome tallies for one completed round.
type RoundStat struct {
	Round    int
	Attempts int
	Accepted int
}

// World owns the membrane lattice state and drives the exchange process.
// The lattice, occupancy index and move counters are exclusively mutated by
// Step; nothing else touches them during a run.
type World struct {
	cfg Config

	w, h int

	lattice  *core.ByteGrid
	moves    *core.CountGrid
	occupied *coordSet
	aff      *Affinity

	lastField *Field
	visit     []int // reusable snapshot buffer

	stats []RoundStat
	round int

	rng *pcore.RNG
}

// New validates the configuration and constructs a fully packed membrane.
// A config is either accepted whole or rejected with one of the Err*
// sentinels before any state exists.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	raw := cfg.Params.RawAffinity
	if raw == nil {
		raw = DefaultRaw(cfg.Params.Types)
	}
	aff, err := NewAffinity(raw, cfg.Params.Types)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:      cfg,
		w:        cfg.Width,
		h:        cfg.Height,
		lattice:  core.NewByteGrid(cfg.Width, cfg.Height),
		moves:    core.NewCountGrid(cfg.Width, cfg.Height),
		occupied: newCoordSet(cfg.Width * cfg.Height),
		aff:      aff,
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "membrane" }

// Size reports the lattice dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the lattice values for rendering.
func (w *World) Cells() []uint8 { return w.lattice.Cells() }

// Lattice exposes the lipid-type grid. Every cell holds a value in [1, K].
func (w *World) Lattice() []uint8 { return w.lattice.Cells() }

// MoveCounts exposes the per-cell accepted-exchange counters. An accepted
// exchange increments the counter at both participating cells.
func (w *World) MoveCounts() []uint32 { return w.moves.Counts() }

// Affinity exposes the symmetrized interaction matrix.
func (w *World) Affinity() *Affinity { return w.aff }

// RoundStats returns the per-round attempt and acceptance tallies so far.
func (w *World) RoundStats() []RoundStat { return w.stats }

// Occupied returns the number of occupied cells. The lattice is fully
// packed, so this always equals Width×Height in the current model.
func (w *World) Occupied() int { return w.occupied.size() }

// Field returns the most recently derived switch-probability field,
// deriving one from the current lattice if no move decision has happened
// yet.
func (w *World) Field() *Field {
	if w.lastField == nil {
		w.lastField = DeriveField(w.lattice.Cells(), w.w, w.h, w.aff)
	}
	return w.lastField
}

// ProbabilityGrid exposes one directional grid of the current field for
// overlay rendering.
func (w *World) ProbabilityGrid(dir int) []float64 {
	return w.Field().Grid(Direction(dir))
}

// Reset repopulates the lattice deterministically from the seed: every cell
// is assigned a type drawn uniformly from [1, K]. Move counters, occupancy
// order and round statistics start over.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	pcore.FillTypes(w.rng.Source(), w.lattice.Cells(), w.cfg.Params.Types)
	w.moves.Clear()
	w.occupied = newCoordSet(w.w * w.h)
	w.lastField = nil
	w.stats = w.stats[:0]
	w.round = 0
}

// Step runs one diffusion round: every occupied cell, in snapshot order,
// gets one exchange attempt against a uniformly chosen cardinal neighbor.
func (w *World) Step() {
	lattice := w.lattice.Cells()
	w.visit = w.occupied.snapshot(w.visit)

	stat := RoundStat{Round: w.round + 1}
	for _, cell := range w.visit {
		x := cell % w.w
		y := cell / w.w

		dir := Direction(w.rng.IntN(NumDirections))

		// Re-derived from the live lattice before every decision, so
		// exchanges earlier in this round are already visible.
		w.lastField = DeriveField(lattice, w.w, w.h, w.aff)

		dx, dy := dir.Offset()
		nx, ny := x+dx, y+dy

		stat.Attempts++
		u := w.rng.Float64()
		if !w.lattice.InBounds(nx, ny) || u >= w.lastField.At(dir, x, y) {
			continue
		}

		nCell := ny*w.w + nx
		lattice[cell], lattice[nCell] = lattice[nCell], lattice[cell]
		w.moves.Inc(cell)
		w.moves.Inc(nCell)
		w.occupied.swap(cell, nCell)
		stat.Accepted++
	}

	w.round++
	w.stats = append(w.stats, stat)
}

// Run executes the configured number of rounds.
func (w *World) Run() {
	for i := 0; i < w.cfg.Params.Rounds; i++ {
		w.Step()
	}
}

func init() {
	core.Register("membrane", func(cfg map[string]string) core.Sim {
		// FromMap only produces configs that pass Validate.
		world, _ := New(FromMap(cfg))
		return world
	})
}
