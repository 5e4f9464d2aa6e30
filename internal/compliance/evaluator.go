package compliance

import (
	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/internal/treatment"
)

// Record is the compliance outcome for a single parameter. HasLimit is false
// only for pH, which is reported without an enforced limit.
type Record struct {
	Parameter treatment.Parameter
	Value     float64
	Limit     Limit
	HasLimit  bool
	Pass      bool
}

// Evaluator checks final effluent against an effluent limit table.
type Evaluator struct {
	limits map[treatment.Parameter]Limit
}

// NewEvaluator returns an evaluator over the recommended effluent limits.
func NewEvaluator() *Evaluator {
	return &Evaluator{limits: RecommendedLimits}
}

// EvaluateSimulation evaluates a simulation's final effluent, triggering a
// run first if the simulation has no history yet. The simulation memoizes
// its history, so repeated evaluation returns identical records.
func (e *Evaluator) EvaluateSimulation(sim *treatment.Simulation) []Record {
	return e.Evaluate(sim.FinalEffluent())
}

// Evaluate checks a final effluent vector against the limit table and returns
// one record per parameter in canonical order. pH always passes; parameters
// without a limit entry are skipped.
func (e *Evaluator) Evaluate(final treatment.Vector) []Record {
	records := make([]Record, 0, len(treatment.Parameters))

	for _, p := range treatment.Parameters {
		value, ok := final[p]
		if !ok {
			continue
		}

		if p == treatment.ParamPH {
			records = append(records, Record{Parameter: p, Value: value, Pass: true})
			continue
		}

		limit, ok := e.limits[p]
		if !ok {
			continue
		}

		records = append(records, Record{
			Parameter: p,
			Value:     value,
			Limit:     limit,
			HasLimit:  true,
			Pass:      limit.Satisfied(value),
		})
	}

	return records
}
