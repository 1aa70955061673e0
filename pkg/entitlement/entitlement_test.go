package entitlement

import (
	"testing"

	"cafehub/pkg/models"
)

func TestHasAccess(t *testing.T) {
	tests := []struct {
		name     string
		required models.Plan
		current  models.Plan
		want     bool
	}{
		{"basic feature on basic plan", models.PlanBasic, models.PlanBasic, true},
		{"basic feature on pro plan", models.PlanBasic, models.PlanPro, true},
		{"basic feature with missing plan", models.PlanBasic, "", true},
		{"pro feature on pro plan", models.PlanPro, models.PlanPro, true},
		{"pro feature on basic plan", models.PlanPro, models.PlanBasic, false},
		{"pro feature with missing plan", models.PlanPro, "", false},
		{"pro feature with garbage plan", models.PlanPro, "enterprise", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAccess(tt.required, tt.current); got != tt.want {
				t.Errorf("HasAccess(%q, %q) = %v, want %v", tt.required, tt.current, got, tt.want)
			}
		})
	}
}

func TestPlanUpgradeUnlocksProFeature(t *testing.T) {
	cafe := models.Cafe{Plan: models.PlanBasic}

	if HasAccess(models.PlanPro, cafe.Plan) {
		t.Fatal("basic cafe should not reach a pro feature")
	}

	// super admin flips the plan
	cafe.Plan = models.PlanPro

	if !HasAccess(models.PlanPro, cafe.Plan) {
		t.Fatal("pro cafe should reach a pro feature after upgrade")
	}
}

func TestDenyPayload(t *testing.T) {
	d := Deny("accounting", models.PlanPro, ModeBlur)
	if d.Feature != "accounting" || d.RequiredPlan != models.PlanPro || d.Mode != ModeBlur {
		t.Errorf("unexpected denial payload: %+v", d)
	}
	if d.Message == "" {
		t.Error("denial message should not be empty")
	}
}
