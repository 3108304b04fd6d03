package model

import (
	"errors"
	"fmt"
	"time"
)

// Tier is a user's subscription level. A user holds exactly one tier at a
// time; tiers control how much provider data is visible per lookup.
type Tier string

const (
	TierStarter Tier = "starter"
	TierPlus    Tier = "plus"
	TierPro     Tier = "pro"
)

var ErrUnknownTier = errors.New("unknown tier")

// tierLimits keeps the tier → visibility mapping in one place: how many
// senses a lookup shows and how many results a filtered search may request
// from the provider. senseCap < 0 means all available senses.
type tierLimits struct {
	senseCap    int
	searchLimit int
}

var limits = map[Tier]tierLimits{
	TierStarter: {senseCap: 1, searchLimit: 25},
	TierPlus:    {senseCap: 2, searchLimit: 50},
	TierPro:     {senseCap: -1, searchLimit: 100},
}

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := limits[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}

	return t, nil
}

// VisibleSenses returns how many of total senses the tier may see.
func (t Tier) VisibleSenses(total int) int {
	cap := limits[t].senseCap
	if cap < 0 || cap > total {
		return total
	}

	return cap
}

// SearchLimit is the result-count cap sent to the provider for filtered
// search queries.
func (t Tier) SearchLimit() int {
	return limits[t].searchLimit
}

// UsageLevel classifies how often a word occurs in everyday language,
// derived from the provider's frequency score.
type UsageLevel string

const (
	UsageUnknown UsageLevel = "unknown"
	RarelyUsed   UsageLevel = "rarely_used"
	CommonlyUsed UsageLevel = "commonly_used"
	WidelyUsed   UsageLevel = "widely_used"
)

// ClassifyUsage maps a frequency score to a usage level. A nil frequency
// means the provider did not report one. The boundaries are inclusive on
// both ends: exactly 3 is rarely used, exactly 5 is widely used.
func ClassifyUsage(frequency *float64) UsageLevel {
	if frequency == nil {
		return UsageUnknown
	}

	f := *frequency
	switch {
	case f <= 3:
		return RarelyUsed
	case f < 5:
		return CommonlyUsed
	default:
		return WidelyUsed
	}
}

// Sense is one definition group returned by the provider for a word.
type Sense struct {
	Definition   string
	PartOfSpeech string
	Synonyms     []string
	Antonyms     []string
	Examples     []string
}

// WordData is the provider's raw result. Any field may be absent; absence
// is kept distinct from a zero value. A nil Senses slice means the provider
// returned no sense list at all, while an empty slice means it returned an
// empty one.
type WordData struct {
	Word          string
	Frequency     *float64
	SyllableCount *int
	Senses        []Sense
}

// Empty reports whether the result carries no data at all, e.g. after a
// failed or timed-out provider call.
func (d WordData) Empty() bool {
	return d.Word == "" && d.Frequency == nil && d.SyllableCount == nil && d.Senses == nil
}

// ProjectedWord is the display-ready view of a word after tier gating.
// Senses is nil when the provider returned no sense list.
type ProjectedWord struct {
	Word          string
	UsageLevel    UsageLevel
	SyllableCount int
	Senses        []Sense
}

// FavouriteWord is a word marked favourite by at least one user. The record
// is shared across users and exists only while someone references it.
type FavouriteWord struct {
	Word      string
	DateAdded time.Time
}

// SearchResult is the provider's response to a filtered query.
type SearchResult struct {
	Total int
	Words []string
}
