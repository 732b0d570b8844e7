// Package confidence estimates how trustworthy the overall assessment is:
// a 0–100 score built from independent additive factors over input richness
// and model provenance, plus an auditable reason trail naming every applied
// factor with its delta.
package confidence

import (
	"fmt"
	"strings"

	"github.com/baauozar/cvmatch/internal/config"
	"github.com/baauozar/cvmatch/internal/language"
)

// Length tier thresholds, in characters.
const (
	cvVeryShortLen = 250
	cvShortLen     = 800
	cvVeryLongLen  = 3000

	jobVagueLen    = 200
	jobDetailedLen = 800
)

// Inputs are the facts the estimator weighs. Lengths are character counts,
// not bytes. Skill counts refer to required skills only; HasRequirements is
// false when extraction found nothing at all.
type Inputs struct {
	CVLength  int
	JobLength int

	RemoteUsed bool

	CVLang  language.Lang
	JobLang language.Lang

	MatchedRequired int
	TotalRequired   int
	HasRequirements bool

	CVYears  int
	MinYears int
}

// Estimator applies the configured factor deltas.
type Estimator struct {
	opts config.ConfidenceOptions
}

// NewEstimator builds an estimator over the given deltas.
func NewEstimator(opts config.ConfidenceOptions) *Estimator {
	return &Estimator{opts: opts}
}

// Estimate returns the clamped confidence score and the reason string. The
// reason lists every applied factor with its signed delta, in a fixed order,
// so identical inputs always reproduce the same trail.
func (e *Estimator) Estimate(in Inputs) (float64, string) {
	opts := e.opts
	score := opts.Base
	var trail []string

	apply := func(delta float64, label string) {
		score += delta
		trail = append(trail, fmt.Sprintf("%s %+.0f", label, delta))
	}

	// Model provenance.
	if in.RemoteUsed {
		apply(opts.RemoteUsed, "remote semantic model used")
	} else {
		apply(opts.LocalFallback, "local lexical fallback")
	}

	// CV richness tiers.
	switch {
	case in.CVLength < cvVeryShortLen:
		apply(opts.CVVeryShort, "very short CV")
	case in.CVLength < cvShortLen:
		apply(opts.CVShort, "short CV")
	case in.CVLength > cvVeryLongLen:
		apply(opts.CVVeryLong, "very detailed CV")
	default:
		apply(opts.CVAdequate, "adequate CV length")
	}

	// Job description richness tiers.
	switch {
	case in.JobLength < jobVagueLen:
		apply(opts.JobVague, "vague job description")
	case in.JobLength > jobDetailedLen:
		apply(opts.JobDetailed, "detailed job description")
	default:
		apply(opts.JobAdequate, "adequate job description")
	}

	// Language mismatch only counts when both sides were confidently
	// detected.
	if in.CVLang != language.Unknown && in.JobLang != language.Unknown && in.CVLang != in.JobLang {
		apply(opts.LangMismatch, "CV and job languages differ")
	}

	// Skill coverage: linear between -10 and +10 over matched/total, or a
	// flat penalty when nothing was extracted to match against.
	if in.HasRequirements && in.TotalRequired > 0 {
		coverage := float64(in.MatchedRequired) / float64(in.TotalRequired)
		apply(10*(2*coverage-1), fmt.Sprintf("required-skill coverage %d/%d", in.MatchedRequired, in.TotalRequired))
	} else if !in.HasRequirements {
		apply(opts.NoRequirements, "no requirements extracted")
	}

	// Experience alignment.
	if in.CVYears == 0 {
		apply(opts.ZeroYears, "experience years unclear")
	}
	if in.MinYears > 0 && in.CVYears < in.MinYears-2 {
		apply(opts.LargeGap, "well below required experience")
	}
	if in.MinYears > 0 && in.CVYears >= in.MinYears+3 {
		apply(opts.ExceedsMin, "well above required experience")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, strings.Join(trail, "; ")
}
