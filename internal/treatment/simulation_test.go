package treatment

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestNewSimulation_InvalidPlan(t *testing.T) {
	sim, err := NewSimulation(Plan(3))
	if err == nil {
		t.Fatal("NewSimulation(3) succeeded, expected error")
	}
	if !errors.Is(err, ErrInvalidPlan) {
		t.Errorf("expected ErrInvalidPlan, got %v", err)
	}
	if sim != nil {
		t.Errorf("expected nil simulation, got %v", sim)
	}
}

func TestRun_HistoryLength(t *testing.T) {
	tests := []struct {
		plan Plan
		want int
	}{
		{Plan1, 5}, // raw + 4 stages
		{Plan2, 7}, // raw + 6 stages
	}

	for _, tt := range tests {
		sim, err := NewSimulation(tt.plan)
		if err != nil {
			t.Fatalf("NewSimulation(%v) failed: %v", tt.plan, err)
		}

		history := sim.Run()
		if len(history) != tt.want {
			t.Errorf("%v: expected %d history entries, got %d", tt.plan, tt.want, len(history))
		}
		if history[0].Stage != StageRawWastewater {
			t.Errorf("%v: first entry is %q, want %q", tt.plan, history[0].Stage, StageRawWastewater)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	simA, err := NewSimulation(Plan2)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	simB, err := NewSimulation(Plan2)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	historyA := simA.Run()
	historyB := simB.Run()

	if len(historyA) != len(historyB) {
		t.Fatalf("history lengths differ: %d vs %d", len(historyA), len(historyB))
	}
	for i := range historyA {
		if historyA[i].Stage != historyB[i].Stage {
			t.Errorf("entry %d: stage %q vs %q", i, historyA[i].Stage, historyB[i].Stage)
		}
		if !reflect.DeepEqual(historyA[i].Values, historyB[i].Values) {
			t.Errorf("entry %d (%s): values differ", i, historyA[i].Stage)
		}
	}
}

func TestRun_RawInfluentSnapshotted(t *testing.T) {
	sim, err := NewSimulation(Plan1)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	history := sim.Run()
	if !reflect.DeepEqual(history[0].Values, RawInfluent(Plan1)) {
		t.Error("first history entry does not match the raw influent")
	}

	// Mutating a returned influent copy must not leak into the constants
	influent := RawInfluent(Plan1)
	influent[ParamBOD] = 0
	if RawInfluent(Plan1)[ParamBOD] != 1025 {
		t.Error("RawInfluent returned a shared map")
	}
}

func TestRun_Plan1BODSequence(t *testing.T) {
	sim, err := NewSimulation(Plan1)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	// fine screen, plain sedimentation, electrocoagulation, rapid sand filter
	want := 1025.0 * (1 - 0.025) * (1 - 0.325) * (1 - 0.725) * (1 - 0.20)

	final := sim.FinalEffluent()
	if math.Abs(final[ParamBOD]-want) > 1e-9 {
		t.Errorf("final BOD: expected %v, got %v", want, final[ParamBOD])
	}
}

func TestFinalEffluent_RunsLazily(t *testing.T) {
	sim, err := NewSimulation(Plan1)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	final := sim.FinalEffluent()
	if len(final) != len(Parameters) {
		t.Errorf("expected %d parameters in final effluent, got %d", len(Parameters), len(final))
	}
	if len(sim.History()) != 5 {
		t.Errorf("expected lazy run to record 5 entries, got %d", len(sim.History()))
	}
}

func TestHistory_MemoizedAcrossCalls(t *testing.T) {
	sim, err := NewSimulation(Plan2)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	first := sim.History()
	second := sim.History()

	if &first[0] != &second[0] {
		t.Error("History recomputed instead of returning the memoized run")
	}
}
