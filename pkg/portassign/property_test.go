package portassign

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/copperline/meshroute/pkg/mesh"
)

var connectionPool = []string{"clk", "rst", "data0", "data1", "miso", "mosi", "vio"}

// randomSegments builds a reproducible segment set from a seed.
func randomSegments(seed int64, count int) ([]PortSegment, *mesh.Lookup) {
	rng := rand.New(rand.NewSource(seed))
	nodes := []mesh.Node{
		{ID: "n1", Center: mesh.Point{X: 0, Y: 0}, Width: 10, Height: 10},
		{ID: "n2", Center: mesh.Point{X: 20, Y: 0}, Width: 10, Height: 10},
		{ID: "n3", Center: mesh.Point{X: 0, Y: 20}, Width: 10, Height: 10},
	}
	lookup, _ := mesh.NewLookup(nodes)

	segments := make([]PortSegment, 0, count)
	for i := 0; i < count; i++ {
		nConns := 1 + rng.Intn(4)
		start := rng.Intn(len(connectionPool) - nConns + 1)
		conns := append([]string(nil), connectionPool[start:start+nConns]...)
		segments = append(segments, PortSegment{
			ID:          fmt.Sprintf("seg%d", i),
			NodeID:      nodes[rng.Intn(len(nodes))].ID,
			Start:       mesh.Point{X: float64(rng.Intn(40)), Y: float64(rng.Intn(40))},
			End:         mesh.Point{X: float64(rng.Intn(40)), Y: float64(rng.Intn(40))},
			AvailableZ:  []int{rng.Intn(3), 5},
			Connections: conns,
		})
	}
	return segments, lookup
}

func solveAll(e *Engine, budget int) (steps int, ok bool) {
	for steps = 0; !e.Solved(); steps++ {
		if steps > budget {
			return steps, false
		}
		e.Step()
	}
	return steps, true
}

// TestAssignmentInvariants verifies with property-based testing that
// the engine terminates within its step bound, assigns every
// connection exactly once per segment, and always picks the first
// available layer.
func TestAssignmentInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("solved within segment-count steps, z always first layer", prop.ForAll(
		func(seed int64, count int) bool {
			segments, lookup := randomSegments(seed, count)
			e, err := NewEngine(segments, lookup, EngineOptions{})
			if err != nil {
				return false
			}

			// Each step assigns at least one segment; +1 covers the
			// zero-segment case where the first step just flips solved.
			if _, ok := solveAll(e, len(segments)+1); !ok {
				return false
			}

			expected := make(map[string]int, len(segments))
			for _, seg := range segments {
				expected[seg.ID] = len(seg.Connections)
			}
			for _, s := range e.assigned {
				if len(s.points) != expected[s.seg.ID] {
					return false
				}
				for _, p := range s.points {
					if p.Z != s.seg.AvailableZ[0] {
						return false
					}
				}
			}
			return len(e.assigned) == len(segments)
		},
		gen.Int64(),
		gen.IntRange(0, 25),
	))

	properties.Property("repeated runs produce identical assignments", prop.ForAll(
		func(seed int64, count int) bool {
			segmentsA, lookupA := randomSegments(seed, count)
			segmentsB, lookupB := randomSegments(seed, count)

			a, err := NewEngine(segmentsA, lookupA, EngineOptions{})
			if err != nil {
				return false
			}
			b, err := NewEngine(segmentsB, lookupB, EngineOptions{})
			if err != nil {
				return false
			}

			if _, ok := solveAll(a, count+1); !ok {
				return false
			}
			if _, ok := solveAll(b, count+1); !ok {
				return false
			}

			portsA, errA := a.AssignedPortPoints()
			portsB, errB := b.AssignedPortPoints()
			if errA != nil || errB != nil {
				return false
			}
			if len(portsA) != len(portsB) {
				return false
			}
			for i := range portsA {
				if portsA[i].NodeID != portsB[i].NodeID {
					return false
				}
				if len(portsA[i].Points) != len(portsB[i].Points) {
					return false
				}
				for j := range portsA[i].Points {
					if portsA[i].Points[j] != portsB[i].Points[j] {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, 25),
	))

	properties.TestingRun(t)
}
