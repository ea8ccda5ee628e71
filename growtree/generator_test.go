package growtree_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazegrow/gridgraph"
	"github.com/katalvlaran/mazegrow/growtree"
	"github.com/katalvlaran/mazegrow/observability"
)

var allStrategies = []growtree.Strategy{growtree.Newest, growtree.Random, growtree.NewestRandom}

// trace records every notification in order as a compact string.
type trace struct {
	log     []string
	visits  map[gridgraph.Coord]int
	dead    map[gridgraph.Coord]int
	carves  [][2]gridgraph.Coord
	visitAt map[gridgraph.Coord]int // position in log
}

func newTrace() *trace {
	return &trace{
		visits:  make(map[gridgraph.Coord]int),
		dead:    make(map[gridgraph.Coord]int),
		visitAt: make(map[gridgraph.Coord]int),
	}
}

func (tr *trace) options() []growtree.Option {
	return []growtree.Option{
		growtree.WithOnVisit(func(p gridgraph.Coord) {
			tr.visits[p]++
			tr.visitAt[p] = len(tr.log)
			tr.log = append(tr.log, "visit "+p.String())
		}),
		growtree.WithOnDeadEnd(func(p gridgraph.Coord) {
			tr.dead[p]++
			tr.log = append(tr.log, "dead "+p.String())
		}),
		growtree.WithOnCarve(func(src, dst gridgraph.Coord) {
			tr.carves = append(tr.carves, [2]gridgraph.Coord{src, dst})
			tr.log = append(tr.log, "carve "+src.String()+">"+dst.String())
		}),
	}
}

// runToEnd initializes g and steps it until Finished, returning the number of
// Step calls. It fails the test if the run does not terminate in 2·W·H calls.
func runToEnd(t *testing.T, g *growtree.Generator) int {
	t.Helper()
	g.Initialize()
	limit := 2*g.Size().Cells() + 1
	calls := 0
	for !g.Finished() {
		require.Less(t, calls, limit, "generator did not finish")
		require.NoError(t, g.Step())
		calls++
	}
	return calls
}

//----------------------------------------------------------------------------//
// Construction and lifecycle
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		size     gridgraph.Size
		start    gridgraph.Coord
		strategy growtree.Strategy
		opts     []growtree.Option
		err      error
	}{
		{"ZeroWidth", gridgraph.Size{Width: 0, Height: 3}, gridgraph.Coord{}, growtree.Newest, nil, growtree.ErrInvalidSize},
		{"NegativeHeight", gridgraph.Size{Width: 3, Height: -1}, gridgraph.Coord{}, growtree.Newest, nil, growtree.ErrInvalidSize},
		{"StartOutside", gridgraph.Size{Width: 3, Height: 3}, gridgraph.Coord{X: 3, Y: 0}, growtree.Newest, nil, growtree.ErrStartOutOfBounds},
		{"StartNegative", gridgraph.Size{Width: 3, Height: 3}, gridgraph.Coord{X: 0, Y: -1}, growtree.Random, nil, growtree.ErrStartOutOfBounds},
		{"BadStrategy", gridgraph.Size{Width: 3, Height: 3}, gridgraph.Coord{}, growtree.Strategy(9), nil, growtree.ErrUnknownStrategy},
		{"NilRand", gridgraph.Size{Width: 3, Height: 3}, gridgraph.Coord{}, growtree.Random, []growtree.Option{growtree.WithRand(nil)}, growtree.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := growtree.New(tc.size, tc.start, tc.strategy, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

func TestStep_BeforeInitialize(t *testing.T) {
	g, err := growtree.New(gridgraph.Size{Width: 2, Height: 2}, gridgraph.Coord{}, growtree.Newest)
	require.NoError(t, err)
	assert.Equal(t, growtree.Idle, g.State())
	assert.ErrorIs(t, g.Step(), growtree.ErrNotInitialized)
	assert.Nil(t, g.Maze())
	assert.Zero(t, g.FrontierLen())
	assert.Nil(t, g.Frontier())
	assert.Zero(t, g.VisitedCount())
}

// TestSingleCell walks the 1×1 scenario step by step.
func TestSingleCell(t *testing.T) {
	tr := newTrace()
	g, err := growtree.New(gridgraph.Size{Width: 1, Height: 1}, gridgraph.Coord{}, growtree.Random, tr.options()...)
	require.NoError(t, err)
	g.Initialize()
	assert.Equal(t, growtree.Running, g.State())
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}}, g.Frontier())

	require.NoError(t, g.Step())
	assert.False(t, g.Finished())
	assert.Equal(t, []string{"visit 0,0", "dead 0,0"}, tr.log)
	assert.Zero(t, g.FrontierLen())

	require.NoError(t, g.Step())
	assert.True(t, g.Finished())
	assert.Zero(t, g.Maze().EdgeCount())

	require.NoError(t, g.Step(), "steps after Finished are no-ops")
	assert.Len(t, tr.log, 2)
	assert.Equal(t, 1, g.Steps())
}

// TestTwoByTwoNewest covers the 2×2 Newest scenario: a Hamiltonian path.
func TestTwoByTwoNewest(t *testing.T) {
	tr := newTrace()
	g, err := growtree.New(gridgraph.Size{Width: 2, Height: 2}, gridgraph.Coord{}, growtree.Newest,
		append(tr.options(), growtree.WithSeed(3))...)
	require.NoError(t, err)

	calls := runToEnd(t, g)
	m := g.Maze()

	assert.Equal(t, 8, calls, "3 carves + 4 dead ends + 1 finishing step")
	assert.Equal(t, 7, g.Steps())
	assert.Equal(t, 3, m.EdgeCount())
	assert.True(t, m.IsPerfect())
	assert.Len(t, tr.visits, 4)
	for c, n := range tr.visits {
		assert.Equal(t, 1, n, "cell %s", c)
	}
	// Newest never branches on 2×2: every cell has degree ≤ 2.
	for idx := 0; idx < 4; idx++ {
		assert.LessOrEqual(t, m.Degree(gridgraph.Size{Width: 2, Height: 2}.Coordinate(idx)), 2)
	}
	// The first three steps extend the path from the start.
	assert.Equal(t, "visit 0,0", tr.log[0])
	assert.Equal(t, gridgraph.Coord{}, tr.carves[0][0])
	assert.Equal(t, tr.carves[0][1], tr.carves[1][0])
	assert.Equal(t, tr.carves[1][1], tr.carves[2][0])
}

func TestInitialize_Restarts(t *testing.T) {
	g, err := growtree.New(gridgraph.Size{Width: 3, Height: 3}, gridgraph.Coord{X: 1, Y: 1}, growtree.Random)
	require.NoError(t, err)
	runToEnd(t, g)
	first := g.Maze()
	firstRun := g.RunID()
	require.True(t, first.IsPerfect())

	g.Initialize()
	assert.Equal(t, growtree.Running, g.State())
	assert.NotSame(t, first, g.Maze())
	assert.NotEqual(t, firstRun, g.RunID())
	assert.Zero(t, g.Maze().EdgeCount())
	assert.Zero(t, g.VisitedCount())
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 1}}, g.Frontier())
	assert.Equal(t, 9, first.EdgeCount()+1, "previous maze is left intact")
}

//----------------------------------------------------------------------------//
// Invariants over full runs
//----------------------------------------------------------------------------//

// InvariantSuite runs every strategy over several grid shapes and seeds.
type InvariantSuite struct {
	suite.Suite
}

type runCase struct {
	strategy growtree.Strategy
	size     gridgraph.Size
	start    gridgraph.Coord
	seed     int64
}

func (s *InvariantSuite) cases() []runCase {
	sizes := []gridgraph.Size{{Width: 1, Height: 7}, {Width: 7, Height: 1}, {Width: 5, Height: 5}, {Width: 12, Height: 8}}
	var out []runCase
	for _, st := range allStrategies {
		for _, sz := range sizes {
			for seed := int64(1); seed <= 3; seed++ {
				start := gridgraph.Coord{X: sz.Width / 2, Y: sz.Height - 1}
				out = append(out, runCase{strategy: st, size: sz, start: start, seed: seed})
			}
		}
	}
	return out
}

func (c runCase) name() string {
	return fmt.Sprintf("%s/%s/seed%d", c.strategy, c.size, c.seed)
}

// TestSpanningTree checks edge count, connectivity and the step budget.
func (s *InvariantSuite) TestSpanningTree() {
	for _, c := range s.cases() {
		s.Run(c.name(), func() {
			g, err := growtree.New(c.size, c.start, c.strategy, growtree.WithSeed(c.seed))
			s.Require().NoError(err)
			calls := runToEnd(s.T(), g)

			m := g.Maze()
			cells := c.size.Cells()
			s.Equal(cells-1, m.EdgeCount())
			s.True(m.IsPerfect())
			s.Equal(2*cells, calls)
			s.Equal(cells, g.VisitedCount())
			s.Zero(g.FrontierLen())
		})
	}
}

// TestVisitOnceAndBounds checks notification counts and coordinate ranges.
func (s *InvariantSuite) TestVisitOnceAndBounds() {
	for _, c := range s.cases() {
		s.Run(c.name(), func() {
			tr := newTrace()
			g, err := growtree.New(c.size, c.start, c.strategy, append(tr.options(), growtree.WithSeed(c.seed))...)
			s.Require().NoError(err)
			runToEnd(s.T(), g)

			cells := c.size.Cells()
			s.Len(tr.visits, cells)
			s.Len(tr.dead, cells)
			s.Len(tr.carves, cells-1)
			for pos, n := range tr.visits {
				s.Equal(1, n, "visits of %s", pos)
				s.True(c.size.Contains(pos))
			}
			for pos, n := range tr.dead {
				s.Equal(1, n, "dead ends of %s", pos)
				s.True(c.size.Contains(pos))
			}
			for _, e := range tr.carves {
				s.True(c.size.Contains(e[0]) && c.size.Contains(e[1]))
				_, adjacent := gridgraph.DirectionBetween(e[0], e[1])
				s.True(adjacent)
			}
			s.Equal("visit "+c.start.String(), tr.log[0])
		})
	}
}

// TestFrontierMonotonicity checks the frontier moves by exactly one per step:
// +1 on carve, −1 on dead end, never duplicated.
func (s *InvariantSuite) TestFrontierMonotonicity() {
	for _, c := range s.cases() {
		s.Run(c.name(), func() {
			var carved, retired int
			g, err := growtree.New(c.size, c.start, c.strategy,
				growtree.WithSeed(c.seed),
				growtree.WithOnCarve(func(_, _ gridgraph.Coord) { carved++ }),
				growtree.WithOnDeadEnd(func(gridgraph.Coord) { retired++ }),
			)
			s.Require().NoError(err)
			g.Initialize()
			for !g.Finished() {
				before, c0, r0 := g.FrontierLen(), carved, retired
				s.Require().NoError(g.Step())
				after := g.FrontierLen()
				switch {
				case carved > c0:
					s.Equal(before+1, after)
				case retired > r0:
					s.Equal(before-1, after)
				default:
					s.Zero(before)
					s.True(g.Finished())
				}
				s.Equal(g.Finished(), before == 0)

				seen := make(map[gridgraph.Coord]bool, after)
				for _, p := range g.Frontier() {
					s.False(seen[p], "duplicate frontier entry %s", p)
					seen[p] = true
				}
			}
		})
	}
}

// TestCarveThenVisit checks each carve destination is visited exactly once, later.
func (s *InvariantSuite) TestCarveThenVisit() {
	for _, c := range s.cases() {
		if c.strategy != growtree.Random {
			continue
		}
		s.Run(c.name(), func() {
			tr := newTrace()
			g, err := growtree.New(c.size, c.start, c.strategy, append(tr.options(), growtree.WithSeed(c.seed))...)
			s.Require().NoError(err)
			runToEnd(s.T(), g)

			for i, line := range tr.log {
				for _, e := range tr.carves {
					if line == "carve "+e[0].String()+">"+e[1].String() {
						s.Greater(tr.visitAt[e[1]], i, "dst %s visited before its carve", e[1])
					}
				}
			}
		})
	}
}

func TestInvariantSuite(t *testing.T) {
	suite.Run(t, new(InvariantSuite))
}

//----------------------------------------------------------------------------//
// Determinism, listeners, observers, Run
//----------------------------------------------------------------------------//

// TestDeterminism checks equal seeds (and equal injected sources) replay the same events.
func TestDeterminism(t *testing.T) {
	for _, st := range allStrategies {
		t.Run(st.String(), func(t *testing.T) {
			size := gridgraph.Size{Width: 9, Height: 6}
			record := func(opt growtree.Option) []string {
				tr := newTrace()
				g, err := growtree.New(size, gridgraph.Coord{X: 4, Y: 2}, st, append(tr.options(), opt)...)
				require.NoError(t, err)
				runToEnd(t, g)
				return tr.log
			}
			a := record(growtree.WithSeed(99))
			b := record(growtree.WithSeed(99))
			c := record(growtree.WithRand(rand.New(rand.NewSource(99))))
			assert.Equal(t, a, b)
			assert.Equal(t, a, c)
		})
	}
}

func TestListeners_MulticastInOrder(t *testing.T) {
	var got []string
	g, err := growtree.New(gridgraph.Size{Width: 2, Height: 1}, gridgraph.Coord{}, growtree.Newest,
		growtree.WithOnVisit(func(p gridgraph.Coord) { got = append(got, "a:"+p.String()) }),
		growtree.WithOnVisit(func(p gridgraph.Coord) { got = append(got, "b:"+p.String()) }),
		growtree.WithOnVisit(nil),
	)
	require.NoError(t, err)
	g.Initialize()
	require.NoError(t, g.Step())
	assert.Equal(t, []string{"a:0,0", "b:0,0"}, got)
}

type recorder struct {
	events []observability.Event
}

func (r *recorder) OnEvent(_ context.Context, e observability.Event) {
	r.events = append(r.events, e)
}

// TestObserver_Events checks the event stream mirrors the listener stream.
func TestObserver_Events(t *testing.T) {
	rec, extra := &recorder{}, &recorder{}
	size := gridgraph.Size{Width: 3, Height: 2}
	g, err := growtree.New(size, gridgraph.Coord{}, growtree.NewestRandom,
		growtree.WithObserver(rec),
		growtree.WithObserver(extra),
		growtree.WithSeed(5),
	)
	require.NoError(t, err)
	runToEnd(t, g)

	require.NotEmpty(t, rec.events)
	assert.Equal(t, len(rec.events), len(extra.events))
	assert.Equal(t, observability.EventGenerationStart, rec.events[0].Type)
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, observability.EventGenerationComplete, last.Type)
	assert.Equal(t, size.Cells()-1, last.Data["edges"])

	counts := make(map[observability.EventType]int)
	for _, e := range rec.events {
		counts[e.Type]++
		assert.Equal(t, g.RunID(), e.Data["run_id"])
		assert.Equal(t, "growtree.Generator", e.Source)
	}
	assert.Equal(t, size.Cells(), counts[observability.EventCellVisit])
	assert.Equal(t, size.Cells(), counts[observability.EventCellDeadEnd])
	assert.Equal(t, size.Cells()-1, counts[observability.EventPassageCarve])
}

func TestRun_Cancelled(t *testing.T) {
	g, err := growtree.New(gridgraph.Size{Width: 4, Height: 4}, gridgraph.Coord{}, growtree.Random)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
	assert.Equal(t, growtree.Running, g.State(), "Run initializes before checking ctx")
	assert.Zero(t, g.Steps())
}

func TestGenerate(t *testing.T) {
	m, err := growtree.Generate(context.Background(), gridgraph.Size{Width: 10, Height: 4}, gridgraph.Coord{X: 9, Y: 3}, growtree.NewestRandom, growtree.WithSeed(8))
	require.NoError(t, err)
	assert.True(t, m.IsPerfect())

	_, err = growtree.Generate(context.Background(), gridgraph.Size{}, gridgraph.Coord{}, growtree.Newest)
	assert.ErrorIs(t, err, growtree.ErrInvalidSize)
}
