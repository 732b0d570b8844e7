// Package explain renders the scoring outcome into Turkish and English
// natural-language narratives. Rendering is pure: one formatter
// parameterized by a locale descriptor consumes an immutable snapshot of the
// scoring call.
package explain

import (
	"fmt"
	"strings"
)

// Context is the immutable snapshot the formatter consumes. Built once per
// scoring call, never mutated. MinYears 0 means the job stated no minimum.
type Context struct {
	Score      float64
	BaseScore  float64
	Adjustment int

	CVLang  string
	JobLang string

	Years    int
	MinYears int

	MatchedRequired    []string
	MissingRequired    []string
	Certifications     []string
	RequestedLanguages []string
}

// Formatter renders narratives. Zero value is usable.
type Formatter struct{}

// NewFormatter returns a Formatter.
func NewFormatter() *Formatter { return &Formatter{} }

// Build renders the narrative for ctx in the given locale: overall score
// summary, experience analysis, skills profile, reliability paragraph and a
// qualitative verdict. Clauses for empty sets are omitted.
func (f *Formatter) Build(ctx Context, conf float64, confReason string, loc Locale) string {
	p := loc.Phrases
	num := loc.FormatNumber

	parts := []string{
		fmt.Sprintf(p.Overall, num(ctx.Score), num(ctx.BaseScore), signed(ctx.Adjustment)),
		fmt.Sprintf(p.Languages, ctx.CVLang, ctx.JobLang),
	}

	if ctx.MinYears > 0 {
		clause := p.NotMetClause
		if ctx.Years >= ctx.MinYears {
			clause = p.MetClause
		}
		parts = append(parts, fmt.Sprintf(p.ExperienceMin, ctx.Years, ctx.MinYears, clause))
	} else {
		parts = append(parts, fmt.Sprintf(p.Experience, ctx.Years))
	}

	if len(ctx.MatchedRequired) > 0 {
		parts = append(parts, fmt.Sprintf(p.Matched, loc.joinList(ctx.MatchedRequired)))
	}
	if len(ctx.MissingRequired) > 0 {
		parts = append(parts, fmt.Sprintf(p.Missing, loc.joinList(ctx.MissingRequired)))
	}
	if len(ctx.Certifications) > 0 {
		parts = append(parts, fmt.Sprintf(p.Certifications, loc.joinList(ctx.Certifications)))
	}
	if len(ctx.RequestedLanguages) > 0 {
		parts = append(parts, fmt.Sprintf(p.RequestedLangs, loc.joinList(ctx.RequestedLanguages)))
	}

	parts = append(parts,
		fmt.Sprintf(p.Confidence, num(conf), confReason),
		fmt.Sprintf(p.Verdict, f.verdict(ctx, loc)),
	)

	return strings.Join(parts, " ")
}

// BuildTR renders the Turkish narrative.
func (f *Formatter) BuildTR(ctx Context, conf float64, confReason string) string {
	return f.Build(ctx, conf, confReason, TR)
}

// BuildEN renders the English narrative.
func (f *Formatter) BuildEN(ctx Context, conf float64, confReason string) string {
	return f.Build(ctx, conf, confReason, EN)
}

// verdict picks the qualitative label from five score bands; wording within
// a band depends on whether required skills are missing.
func (f *Formatter) verdict(ctx Context, loc Locale) string {
	b := loc.Phrases.Bands
	missing := len(ctx.MissingRequired) > 0

	switch {
	case ctx.Score >= 90:
		return pick(missing, b.ExcellentMiss, b.Excellent)
	case ctx.Score >= 75:
		return pick(missing, b.StrongMiss, b.Strong)
	case ctx.Score >= 55:
		return pick(missing, b.ModerateMiss, b.Moderate)
	case ctx.Score >= 40:
		return pick(missing, b.LimitedMiss, b.Limited)
	default:
		return pick(missing, b.LowMiss, b.Low)
	}
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
