package compliance

import (
	"fmt"

	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/internal/treatment"
)

// Limit is the effluent constraint for one parameter: a scalar ceiling
// (value <= Max) or, when Range is set, an inclusive [Min, Max] band.
type Limit struct {
	Min   float64
	Max   float64
	Range bool
}

// Ceiling builds a scalar ceiling limit.
func Ceiling(max float64) Limit {
	return Limit{Max: max}
}

// Band builds an inclusive range limit.
func Band(min, max float64) Limit {
	return Limit{Min: min, Max: max, Range: true}
}

// Satisfied reports whether a value meets the limit.
func (l Limit) Satisfied(v float64) bool {
	if l.Range {
		return l.Min <= v && v <= l.Max
	}
	return v <= l.Max
}

// String renders the limit the way the compliance report shows it.
func (l Limit) String() string {
	if l.Range {
		return fmt.Sprintf("%g-%g", l.Min, l.Max)
	}
	return fmt.Sprintf("≤%g", l.Max)
}

// RecommendedLimits is the regulatory effluent limit table. pH is reported
// but carries no enforced limit.
var RecommendedLimits = map[treatment.Parameter]Limit{
	treatment.ParamTSS:             Ceiling(20),
	treatment.ParamTDS:             Ceiling(500),
	treatment.ParamCOD:             Ceiling(150),
	treatment.ParamBOD:             Ceiling(30),
	treatment.ParamConductivity:    Ceiling(1000),
	treatment.ParamTurbidity:       Ceiling(5),
	treatment.ParamAlkalinity:      Band(50, 150),
	treatment.ParamTotalNitrates:   Ceiling(10),
	treatment.ParamTotalPhosphates: Ceiling(5),
	treatment.ParamTotalColor:      Ceiling(50),
	treatment.ParamTotalZinc:       Ceiling(2.0),
}
