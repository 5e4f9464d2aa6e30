package treatment

import "fmt"

// Plan selects one of the two plant configurations.
type Plan int

const (
	Plan1 Plan = 1
	Plan2 Plan = 2
)

// String returns the plan's display name.
func (p Plan) String() string {
	return fmt.Sprintf("Plan %d", int(p))
}

// Plant design constants for the paper mill facility.
const (
	DesignFlowM3PerDay = 200.0
	HoursPerDay        = 24.0
)

// DesignFlowM3PerHour returns the hourly design flow.
func DesignFlowM3PerHour() float64 {
	return DesignFlowM3PerDay / HoursPerDay
}

// Profile maps parameters to removal fractions in [0,1]. A parameter absent
// from a profile is unaffected by that stage (fraction 0).
type Profile map[Parameter]float64

// Raw influent characterization from the plant study. TSS, BOD, nitrates and
// color were sampled separately for the two plan campaigns.
var rawInfluentByPlan = map[Plan]Vector{
	Plan1: {
		ParamPH:              7.5,
		ParamTSS:             47.6,
		ParamTDS:             669,
		ParamCOD:             1552,
		ParamBOD:             1025,
		ParamConductivity:    1214.4,
		ParamTurbidity:       345,
		ParamAlkalinity:      151.3,
		ParamTotalNitrates:   28.2,
		ParamTotalPhosphates: 96.6,
		ParamTotalColor:      11423.3,
		ParamTotalZinc:       5.0,
	},
	Plan2: {
		ParamPH:              7.5,
		ParamTSS:             47.57,
		ParamTDS:             669,
		ParamCOD:             1552,
		ParamBOD:             536,
		ParamConductivity:    1214.4,
		ParamTurbidity:       345,
		ParamAlkalinity:      151.3,
		ParamTotalNitrates:   26.8,
		ParamTotalPhosphates: 96.6,
		ParamTotalColor:      10852.1,
		ParamTotalZinc:       5.0,
	},
}

// RawInfluent returns a fresh copy of the raw wastewater vector for the plan.
func RawInfluent(plan Plan) Vector {
	return rawInfluentByPlan[plan].Clone()
}

// Mid-point removal efficiencies per treatment unit. pH carries no removal
// fraction anywhere: only the electrocoagulation adjustment rule touches it.

var fineScreenProfile = Profile{
	ParamBOD:             0.025,
	ParamCOD:             0.0,
	ParamTSS:             0.10,
	ParamTDS:             0.0,
	ParamTotalColor:      0.0,
	ParamTurbidity:       0.025,
	ParamConductivity:    0.025,
	ParamAlkalinity:      0.025,
	ParamTotalNitrates:   0.025,
	ParamTotalPhosphates: 0.025,
	ParamTotalZinc:       0.05,
}

var plainSedimentationProfile = Profile{
	ParamBOD:             0.325,
	ParamCOD:             0.25,
	ParamTSS:             0.60,
	ParamTDS:             0.0,
	ParamTotalColor:      0.15,
	ParamTurbidity:       0.40,
	ParamConductivity:    0.025,
	ParamAlkalinity:      0.025,
	ParamTotalNitrates:   0.025,
	ParamTotalPhosphates: 0.15,
	ParamTotalZinc:       0.30,
}

var coagulationTankProfile = Profile{
	ParamBOD:             0.20,
	ParamCOD:             0.30,
	ParamTSS:             0.55,
	ParamTDS:             0.075,
	ParamTotalColor:      0.50,
	ParamTurbidity:       0.65,
	ParamConductivity:    0.10,
	ParamAlkalinity:      0.20,
	ParamTotalNitrates:   0.20,
	ParamTotalPhosphates: 0.80,
	ParamTotalZinc:       0.60,
}

var flocculationChamberProfile = Profile{
	ParamBOD:             0.075,
	ParamCOD:             0.15,
	ParamTSS:             0.30,
	ParamTDS:             0.025,
	ParamTotalColor:      0.20,
	ParamTurbidity:       0.45,
	ParamConductivity:    0.025,
	ParamAlkalinity:      0.025,
	ParamTotalNitrates:   0.025,
	ParamTotalPhosphates: 0.15,
	ParamTotalZinc:       0.20,
}

var sedimentationProfile = Profile{
	ParamBOD:             0.50,
	ParamCOD:             0.35,
	ParamTSS:             0.70,
	ParamTDS:             0.0,
	ParamTotalColor:      0.30,
	ParamTurbidity:       0.55,
	ParamConductivity:    0.025,
	ParamAlkalinity:      0.025,
	ParamTotalNitrates:   0.025,
	ParamTotalPhosphates: 0.875,
	ParamTotalZinc:       0.50,
}

// Electrocoagulation efficiencies differ slightly between the two campaigns.
var electrocoagulationByPlan = map[Plan]Profile{
	Plan1: {
		ParamBOD:             0.725,
		ParamCOD:             0.725,
		ParamTSS:             0.825,
		ParamTDS:             0.20,
		ParamTotalColor:      0.725,
		ParamTurbidity:       0.875,
		ParamConductivity:    0.20,
		ParamAlkalinity:      0.20,
		ParamTotalNitrates:   0.30,
		ParamTotalPhosphates: 0.80,
		ParamTotalZinc:       0.85,
	},
	Plan2: {
		ParamBOD:             0.75,
		ParamCOD:             0.725,
		ParamTSS:             0.825,
		ParamTDS:             0.20,
		ParamTotalColor:      0.73,
		ParamTurbidity:       0.825,
		ParamConductivity:    0.20,
		ParamAlkalinity:      0.20,
		ParamTotalNitrates:   0.30,
		ParamTotalPhosphates: 0.80,
		ParamTotalZinc:       0.85,
	},
}

var rapidSandFilterProfile = Profile{
	ParamBOD:             0.20,
	ParamCOD:             0.10,
	ParamTSS:             0.875,
	ParamTDS:             0.0,
	ParamTotalColor:      0.30,
	ParamTurbidity:       0.895,
	ParamConductivity:    0.025,
	ParamAlkalinity:      0.025,
	ParamTotalNitrates:   0.025,
	ParamTotalPhosphates: 0.30,
	ParamTotalZinc:       0.20,
}
