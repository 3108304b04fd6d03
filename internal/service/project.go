package service

import (
	"github.com/andyagdw/word-wizards/internal/model"
)

// Project reduces a raw provider result to the view the caller's tier may
// see. The frequency score is collapsed into a usage level and the sense
// list is truncated from the front to the tier's cap. A fully empty raw
// result projects to a fully absent view.
func Project(raw model.WordData, tier model.Tier) model.ProjectedWord {
	p := model.ProjectedWord{
		Word:       raw.Word,
		UsageLevel: model.ClassifyUsage(raw.Frequency),
	}

	if raw.SyllableCount != nil {
		p.SyllableCount = *raw.SyllableCount
	}

	if raw.Senses != nil {
		p.Senses = raw.Senses[:tier.VisibleSenses(len(raw.Senses))]
	}

	return p
}
