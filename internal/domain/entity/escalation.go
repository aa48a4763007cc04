package entity

// EscalationLevel is the urgency tier derived from the number of distinct witnesses.
type EscalationLevel string

const (
	EscalationNormal    EscalationLevel = "normal"
	EscalationUrgent    EscalationLevel = "urgent"
	EscalationEmergency EscalationLevel = "emergency"
)

// Witness-count thresholds shared by fanout policy and client display.
const (
	UrgentWitnessThreshold    = 3
	EmergencyWitnessThreshold = 10
)

// EscalationLevelFor maps a witness count to its tier.
func EscalationLevelFor(witnessCount int) EscalationLevel {
	switch {
	case witnessCount >= EmergencyWitnessThreshold:
		return EscalationEmergency
	case witnessCount >= UrgentWitnessThreshold:
		return EscalationUrgent
	default:
		return EscalationNormal
	}
}

// Rank orders levels so callers can detect an increase.
func (l EscalationLevel) Rank() int {
	switch l {
	case EscalationEmergency:
		return 2
	case EscalationUrgent:
		return 1
	default:
		return 0
	}
}

// RadiusMultiplier widens the fanout radius for escalated sightings.
func (l EscalationLevel) RadiusMultiplier() float64 {
	switch l {
	case EscalationEmergency:
		return 2.0
	case EscalationUrgent:
		return 1.5
	default:
		return 1.0
	}
}

// OverridesQuietHours reports whether the tier bypasses quiet hours. Opt-out is never bypassed.
func (l EscalationLevel) OverridesQuietHours() bool {
	return l == EscalationEmergency
}
