package treatment

import "github.com/google/uuid"

// HistoryEntry is the concentration snapshot recorded after one stage.
type HistoryEntry struct {
	Stage  string
	Values Vector
}

// Simulation threads a plan's fixed raw influent through its treatment
// pipeline. Each instance owns its raw vector, pipeline and history; two
// simulations never share state.
type Simulation struct {
	ID       string
	Plan     Plan
	raw      Vector
	pipeline []Stage
	history  []HistoryEntry
}

// NewSimulation builds a simulation for the chosen plan. The only failure
// mode is an unrecognized plan selector.
func NewSimulation(plan Plan) (*Simulation, error) {
	pipeline, err := BuildPipeline(plan)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		ID:       uuid.New().String(),
		Plan:     plan,
		raw:      RawInfluent(plan),
		pipeline: pipeline,
	}, nil
}

// Run executes every stage in pipeline order, recording one snapshot for the
// raw influent and one per stage. The history is rebuilt from the fixed raw
// vector on every call, so repeated runs produce identical results.
func (s *Simulation) Run() []HistoryEntry {
	current := s.raw.Clone()
	history := make([]HistoryEntry, 0, len(s.pipeline)+1)
	history = append(history, HistoryEntry{Stage: StageRawWastewater, Values: current})

	for _, stage := range s.pipeline {
		current = stage.Apply(current)
		history = append(history, HistoryEntry{Stage: stage.Name, Values: current})
	}

	s.history = history
	return history
}

// History returns the recorded stage history, running the simulation first
// if it has not run yet.
func (s *Simulation) History() []HistoryEntry {
	if len(s.history) == 0 {
		s.Run()
	}
	return s.history
}

// FinalEffluent returns the concentration vector after the last stage,
// running the simulation first if needed.
func (s *Simulation) FinalEffluent() Vector {
	history := s.History()
	return history[len(history)-1].Values
}

// StageCount returns the number of treatment units in the pipeline.
func (s *Simulation) StageCount() int {
	return len(s.pipeline)
}
