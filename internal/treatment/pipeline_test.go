package treatment

import (
	"errors"
	"testing"
)

func TestBuildPipeline_Plan1Order(t *testing.T) {
	pipeline, err := BuildPipeline(Plan1)
	if err != nil {
		t.Fatalf("BuildPipeline failed: %v", err)
	}

	want := []string{
		StageFineScreen,
		StagePlainSedimentation,
		StageElectrocoagulation,
		StageRapidSandFilter,
	}
	if len(pipeline) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(pipeline))
	}
	for i, name := range want {
		if pipeline[i].Name != name {
			t.Errorf("stage %d: expected %q, got %q", i, name, pipeline[i].Name)
		}
	}
}

func TestBuildPipeline_Plan2Order(t *testing.T) {
	pipeline, err := BuildPipeline(Plan2)
	if err != nil {
		t.Fatalf("BuildPipeline failed: %v", err)
	}

	want := []string{
		StageFineScreen,
		StageCoagulationTank,
		StageFlocculationChamber,
		StageSedimentation,
		StageElectrocoagulation,
		StageRapidSandFilter,
	}
	if len(pipeline) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(pipeline))
	}
	for i, name := range want {
		if pipeline[i].Name != name {
			t.Errorf("stage %d: expected %q, got %q", i, name, pipeline[i].Name)
		}
	}
}

func TestBuildPipeline_InvalidPlan(t *testing.T) {
	for _, plan := range []Plan{0, 3, -1} {
		pipeline, err := BuildPipeline(plan)
		if err == nil {
			t.Fatalf("BuildPipeline(%v) succeeded, expected error", plan)
		}
		if !errors.Is(err, ErrInvalidPlan) {
			t.Errorf("BuildPipeline(%v): expected ErrInvalidPlan, got %v", plan, err)
		}
		if pipeline != nil {
			t.Errorf("BuildPipeline(%v): expected nil pipeline, got %v", plan, pipeline)
		}
	}
}

func TestBuildPipeline_PlanVariantElectrocoagulation(t *testing.T) {
	findStage := func(t *testing.T, plan Plan, name string) Stage {
		t.Helper()
		pipeline, err := BuildPipeline(plan)
		if err != nil {
			t.Fatalf("BuildPipeline failed: %v", err)
		}
		for _, stage := range pipeline {
			if stage.Name == name {
				return stage
			}
		}
		t.Fatalf("stage %q not found in %v pipeline", name, plan)
		return Stage{}
	}

	ec1 := findStage(t, Plan1, StageElectrocoagulation)
	ec2 := findStage(t, Plan2, StageElectrocoagulation)

	if ec1.Profile[ParamBOD] != 0.725 {
		t.Errorf("Plan 1 electrocoagulation BOD: expected 0.725, got %v", ec1.Profile[ParamBOD])
	}
	if ec2.Profile[ParamBOD] != 0.75 {
		t.Errorf("Plan 2 electrocoagulation BOD: expected 0.75, got %v", ec2.Profile[ParamBOD])
	}
	if ec1.Profile[ParamTurbidity] == ec2.Profile[ParamTurbidity] {
		t.Error("electrocoagulation turbidity fraction should differ between plans")
	}
}

func TestBuildPipeline_PHHandledOnlyByElectrocoagulation(t *testing.T) {
	for _, plan := range []Plan{Plan1, Plan2} {
		pipeline, err := BuildPipeline(plan)
		if err != nil {
			t.Fatalf("BuildPipeline failed: %v", err)
		}
		for _, stage := range pipeline {
			if _, ok := stage.Profile[ParamPH]; ok {
				t.Errorf("%v %s: pH must not appear in a removal profile", plan, stage.Name)
			}
			hasPost := stage.Post != nil
			wantPost := stage.Name == StageElectrocoagulation
			if hasPost != wantPost {
				t.Errorf("%v %s: post hook presence = %v, want %v", plan, stage.Name, hasPost, wantPost)
			}
		}
	}
}
