// Package entitlement maps a cafe's subscription plan to feature access.
package entitlement

import (
	"cafehub/pkg/models"
)

// Mode is how a denied feature is presented by the client.
type Mode string

const (
	// ModeBlock replaces the feature area with an upsell message.
	ModeBlock Mode = "block"
	// ModeBlur renders the content obscured and non-interactive.
	ModeBlur Mode = "blur"
)

// HasAccess reports whether a cafe on the current plan may use a feature
// requiring the given plan. A missing or unknown current plan is treated as
// basic, so pro features fail closed.
func HasAccess(required, current models.Plan) bool {
	if required == models.PlanBasic {
		return true
	}
	if required == models.PlanPro {
		return current == models.PlanPro
	}
	return false
}

// Denial is the upsell payload returned when access is denied.
type Denial struct {
	Feature      string      `json:"feature"`
	RequiredPlan models.Plan `json:"requiredPlan"`
	Mode         Mode        `json:"mode"`
	Message      string      `json:"message"`
}

// Deny builds the denial payload for a gated feature.
func Deny(feature string, required models.Plan, mode Mode) Denial {
	return Denial{
		Feature:      feature,
		RequiredPlan: required,
		Mode:         mode,
		Message:      "Upgrade to " + string(required) + " to use " + feature,
	}
}
