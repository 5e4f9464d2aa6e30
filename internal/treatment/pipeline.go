package treatment

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan reports a plan selector outside the two known configurations.
var ErrInvalidPlan = errors.New("invalid treatment plan")

// BuildPipeline returns the ordered stage list for the chosen plan, binding
// each stage to its plan-correct removal profile. Stage order is load-bearing:
// later fractions act on already-reduced concentrations.
func BuildPipeline(plan Plan) ([]Stage, error) {
	switch plan {
	case Plan1:
		return []Stage{
			{Name: StageFineScreen, Profile: fineScreenProfile},
			{Name: StagePlainSedimentation, Profile: plainSedimentationProfile},
			{Name: StageElectrocoagulation, Profile: electrocoagulationByPlan[Plan1], Post: electrocoagulationPost},
			{Name: StageRapidSandFilter, Profile: rapidSandFilterProfile},
		}, nil
	case Plan2:
		return []Stage{
			{Name: StageFineScreen, Profile: fineScreenProfile},
			{Name: StageCoagulationTank, Profile: coagulationTankProfile},
			{Name: StageFlocculationChamber, Profile: flocculationChamberProfile},
			{Name: StageSedimentation, Profile: sedimentationProfile},
			{Name: StageElectrocoagulation, Profile: electrocoagulationByPlan[Plan2], Post: electrocoagulationPost},
			{Name: StageRapidSandFilter, Profile: rapidSandFilterProfile},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d (want 1 or 2)", ErrInvalidPlan, int(plan))
	}
}
