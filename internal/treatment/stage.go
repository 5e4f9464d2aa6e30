package treatment

import "math"

// Stage is a single treatment unit: a name, its removal profile, and an
// optional post hook that runs after the multiplicative pass.
type Stage struct {
	Name    string
	Profile Profile
	Post    func(in, out Vector)
}

// Treatment unit display names.
const (
	StageRawWastewater       = "Raw Wastewater"
	StageFineScreen          = "Fine Screen"
	StagePlainSedimentation  = "Plain Sedimentation"
	StageCoagulationTank     = "Coagulation Tank"
	StageFlocculationChamber = "Flocculation Chamber"
	StageSedimentation       = "Sedimentation"
	StageElectrocoagulation  = "Electrocoagulation"
	StageRapidSandFilter     = "Rapid Sand Filter"
)

// Apply produces a fresh vector with the stage's removal fractions applied.
// The input vector is never modified and the output carries exactly the same
// parameter set.
func (s Stage) Apply(in Vector) Vector {
	out := make(Vector, len(in))
	for p, value := range in {
		out[p] = value * (1 - s.Profile[p])
	}
	if s.Post != nil {
		s.Post(in, out)
	}
	return out
}

// adjustPH models the mild neutralizing tendency of electrocoagulation:
// acidic influent is nudged up but never past 7.0, basic influent is nudged
// down but never below 7.5. Near-neutral values pass unchanged.
func adjustPH(v float64) float64 {
	switch {
	case v < 7:
		return math.Min(v*1.1, 7.0)
	case v > 8:
		return math.Max(v*0.95, 7.5)
	default:
		return v
	}
}

// electrocoagulationPost overrides pH with the adjustment rule. It reads
// the incoming pH, which the multiplicative pass left untouched.
func electrocoagulationPost(in, out Vector) {
	out[ParamPH] = adjustPH(in[ParamPH])
}
