package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossing-sim/crossing-sim/sim/internal/testutil"
	"github.com/crossing-sim/crossing-sim/sim/trace"
)

func mustSimulator(t *testing.T, s *Scenario) *Simulator {
	t.Helper()
	sim, err := NewSimulator(s)
	require.NoError(t, err)
	return sim
}

func TestNewSimulator_InitialState(t *testing.T) {
	// GIVEN the reference scenario
	sim := mustSimulator(t, ReferenceScenario())

	// THEN everyone, cargo last, starts at origin and nothing else is occupied
	assert.Equal(t, []string{"Roman", "Verlyn", "Lloyd", "Robin", "Supplies"}, sim.Origin.Names())
	assert.Equal(t, 0, sim.Destination.Len())
	assert.Equal(t, 0, sim.Conveyance.Len())
	assert.Equal(t, 0, sim.Trace.Len())
	assert.True(t, sim.Cargo().IsCargo())
	assert.Equal(t, 20, sim.Cargo().Weight)
	assert.False(t, sim.Done())
}

func TestNewSimulator_RejectsInvalidScenario(t *testing.T) {
	_, err := NewSimulator(nil)
	assert.True(t, errors.Is(err, ErrConfiguration))

	s := ReferenceScenario()
	s.People[1].Weight = s.People[0].Weight
	_, err = NewSimulator(s)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestSimulator_Entity_Lookup(t *testing.T) {
	sim := mustSimulator(t, ReferenceScenario())

	e, ok := sim.Entity(3)
	require.True(t, ok)
	assert.Equal(t, "Robin", e.Name)

	_, ok = sim.Entity(99)
	assert.False(t, ok)
}

func TestRun_ReferenceScenario_CargoStays(t *testing.T) {
	// GIVEN the reference scenario with the default cargo policy
	sim := mustSimulator(t, ReferenceScenario())

	// WHEN the simulation runs to completion
	tr, err := sim.Run()

	// THEN the narration matches the expected trace and only the cargo is left behind
	require.NoError(t, err)
	testutil.AssertTraceMatchesGolden(t, "reference_stay", tr.Lines())
	assert.Equal(t, []string{CargoName}, sim.Origin.Names())
	assert.Equal(t, 5, sim.StepCount)
}

func TestRun_ReferenceScenario_CargoBoards(t *testing.T) {
	// GIVEN the reference scenario with the cargo allowed on board
	s := ReferenceScenario()
	s.CargoPolicy = CargoBoards
	sim := mustSimulator(t, s)

	// WHEN the simulation runs
	tr, err := sim.Run()

	// THEN the first crossing carries the cargo with the lightest person
	require.NoError(t, err)
	testutil.AssertTraceMatchesGolden(t, "reference_board", tr.Lines())
	assert.Equal(t, 0, sim.Origin.Len())
	assert.True(t, sim.Destination.Contains(sim.Cargo().ID))
}

func TestRun_CargoBoards_OriginRules(t *testing.T) {
	tests := []struct {
		name        string
		weights     []int
		names       []string
		cargo       int
		want        []string
		wantOrigin  []string
		wantCrosses int
	}{
		{
			// the cargo is too heavy to share, so a person comes back to fetch the other
			name:    "heavy cargo ferried alone",
			weights: []int{40, 60},
			names:   []string{"A", "B"},
			cargo:   95,
			want: []string{
				"Side A: A, B, Supplies, Side B: ",
				"Crossing: A, B cross to side B",
				"A returns to side A",
				"Side A: Supplies, A, Side B: B",
				"Side A: Supplies, A, Side B: B",
				"Crossing: Supplies cross to side B",
				"B returns to side A",
				"Side A: A, B, Side B: Supplies",
				"Side A: A, B, Side B: Supplies",
				"Crossing: A, B cross to side B",
				"Side A: , Side B: Supplies, A, B",
			},
			wantOrigin:  []string{},
			wantCrosses: 3,
		},
		{
			// nobody is across to bring the conveyance back, so the last person stays
			name:    "lone person stranded",
			weights: []int{10},
			names:   []string{"A"},
			cargo:   95,
			want: []string{
				"Side A: A, Supplies, Side B: ",
				"Crossing: Supplies cross to side B",
				"Side A: A, Side B: Supplies",
			},
			wantOrigin:  []string{"A"},
			wantCrosses: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN a scenario run with the cargo allowed on board
			s, err := NewScenario(tt.weights, tt.names, tt.cargo)
			require.NoError(t, err)
			s.CargoPolicy = CargoBoards
			sim := mustSimulator(t, s)

			// WHEN the simulation runs
			tr, err := sim.Run()

			// THEN origin is emptied down to at most one entity, returning while occupied
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Lines())
			assert.ElementsMatch(t, tt.wantOrigin, sim.Origin.Names())
			assert.Equal(t, tt.wantCrosses, trace.Summarize(tr).Crossings)
			assert.True(t, sim.Done())
		})
	}
}

func TestRun_NoPeople_EmptyTrace(t *testing.T) {
	s, err := NewScenario(nil, nil, 20)
	require.NoError(t, err)
	sim := mustSimulator(t, s)

	tr, err := sim.Run()

	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, []string{CargoName}, sim.Origin.Names())
}

func TestRun_SinglePersonOverCapacity_CrossesAlone(t *testing.T) {
	// GIVEN one person heavier than the threshold
	s, err := NewScenario([]int{150}, []string{"Big"}, 10)
	require.NoError(t, err)
	sim := mustSimulator(t, s)

	// WHEN run
	tr, err := sim.Run()

	// THEN the heaviest fallback carries them across with no return
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Side A: Big, Supplies, Side B: ",
		"Crossing: Big cross to side B",
		"Side A: Supplies, Side B: Big",
	}, tr.Lines())
}

func TestRun_NoProgress_Stalls(t *testing.T) {
	// GIVEN two people who can never share the conveyance: the heavier one crosses
	// alone and is immediately the only one who can come back
	s, err := NewScenario([]int{95, 90}, []string{"A", "B"}, 10)
	require.NoError(t, err)
	s.MaxSteps = 5
	sim := mustSimulator(t, s)

	// WHEN run
	tr, err := sim.Run()

	// THEN the step guard fires instead of looping forever
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSimulationStalled))
	var stalled *SimulationStalledError
	require.True(t, errors.As(err, &stalled))
	assert.Equal(t, 5, stalled.Steps)
	assert.Equal(t, 2, stalled.Remaining)

	// AND the partial trace is still returned
	require.NotNil(t, tr)
	assert.Equal(t, 5, trace.Summarize(tr).Crossings)
}

func TestRunContext_Cancelled(t *testing.T) {
	sim := mustSimulator(t, ReferenceScenario())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.RunContext(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, sim.StepCount)
}

func TestStep_WhenDone_IsNoOp(t *testing.T) {
	sim := mustSimulator(t, ReferenceScenario())
	_, err := sim.Run()
	require.NoError(t, err)
	before := sim.Trace.Len()

	require.NoError(t, sim.Step())

	assert.Equal(t, before, sim.Trace.Len())
}

func TestStep_ConveyanceEmptyAfterEveryStep(t *testing.T) {
	for _, policy := range []CargoPolicy{CargoStays, CargoBoards} {
		t.Run(string(policy), func(t *testing.T) {
			s := ReferenceScenario()
			s.CargoPolicy = policy
			sim := mustSimulator(t, s)

			for !sim.Done() {
				require.NoError(t, sim.Step())
				assert.Equal(t, 0, sim.Conveyance.Len(), "conveyance not drained after step %d", sim.StepCount)
			}
		})
	}
}

func TestRelocate_MissingEntity_LeavesStateUntouched(t *testing.T) {
	// GIVEN a fresh simulator and one entity that is at origin and one that is not
	sim := mustSimulator(t, ReferenceScenario())
	robin, _ := sim.Entity(3)
	ghost := NewPerson(42, "Ghost", 33)

	// WHEN both are moved together
	err := sim.relocate([]Entity{robin, ghost}, sim.Origin, sim.Destination)

	// THEN the move is rejected as a whole
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRelocation))
	var relErr *RelocationError
	require.True(t, errors.As(err, &relErr))
	assert.Equal(t, OriginName, relErr.From)
	assert.Equal(t, DestinationName, relErr.To)
	assert.True(t, sim.Origin.Contains(robin.ID))
	assert.Equal(t, 0, sim.Destination.Len())
}

func TestRun_Deterministic(t *testing.T) {
	// GIVEN two simulators with identical input
	first := mustSimulator(t, ReferenceScenario())
	second := mustSimulator(t, ReferenceScenario())

	// WHEN both run
	tr1, err1 := first.Run()
	tr2, err2 := second.Run()

	// THEN the traces are identical
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, tr1.Records, tr2.Records)
}
