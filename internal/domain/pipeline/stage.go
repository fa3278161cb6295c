package pipeline

import (
	"fmt"
	"strings"
)

// Stage is a recruitment pipeline stage shown on the board.
type Stage string

const (
	StageSourced            Stage = "Sourced"
	StageApplied            Stage = "Applied"
	StagePhoneScreen        Stage = "Phone Screen"
	StageTechnicalInterview Stage = "Technical Interview"
	StageFinalInterview     Stage = "Final Interview"
	StageOfferExtended      Stage = "Offer Extended"
	StageHired              Stage = "Hired"
)

// Stages lists the board columns in pipeline order.
var Stages = []Stage{
	StageSourced,
	StageApplied,
	StagePhoneScreen,
	StageTechnicalInterview,
	StageFinalInterview,
	StageOfferExtended,
	StageHired,
}

// ParseStage validates a stage name.
func ParseStage(name string) (Stage, error) {
	for _, s := range Stages {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: unknown stage %q", ErrInvalidArgument, name)
}

// Slug is the element-id form of the stage, e.g. "phone-screen".
func (s Stage) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(string(s))), "-")
}

// StatusBadge returns the badge class for a stage.
func StatusBadge(s Stage) string {
	switch s {
	case StageSourced:
		return "bg-secondary"
	case StageApplied, StageFinalInterview:
		return "bg-primary"
	case StagePhoneScreen:
		return "bg-info"
	case StageTechnicalInterview:
		return "bg-warning"
	case StageOfferExtended, StageHired:
		return "bg-success"
	default:
		return "bg-secondary"
	}
}

// ScoreBadge returns the badge class for a candidate score.
func ScoreBadge(score int) string {
	switch {
	case score >= 80:
		return "bg-success"
	case score >= 60:
		return "bg-info"
	case score >= 40:
		return "bg-warning"
	default:
		return "bg-danger"
	}
}
