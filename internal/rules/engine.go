// Package rules computes the bounded integer score adjustment from CV
// content versus extracted job requirements. Components are additive and
// independently computed; every applied component records one bilingual
// reason line. The total is clamped to the configured range.
package rules

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/baauozar/cvmatch/internal/config"
	"github.com/baauozar/cvmatch/internal/language"
	"github.com/baauozar/cvmatch/internal/requirements"
)

// Engine applies the rule set with a fixed options bundle. The clock is
// injectable for the recency rule.
type Engine struct {
	opts config.RuleOptions
	now  func() time.Time
}

// NewEngine builds an engine over the given options, using the system clock
// for the recency rule.
func NewEngine(opts config.RuleOptions) *Engine {
	return &Engine{opts: opts, now: time.Now}
}

// NewEngineWithClock is NewEngine with an explicit clock, for tests.
func NewEngineWithClock(opts config.RuleOptions, now func() time.Time) *Engine {
	return &Engine{opts: opts, now: now}
}

// Result carries the clamped adjustment plus the skill match breakdown the
// orchestrator reuses for the explanation context.
type Result struct {
	Adjustment       int
	Reasons          []string
	MatchedRequired  []string
	MissingRequired  []string
	MatchedPreferred []string
	MatchedCerts     []string
	Years            int
}

// Adjust evaluates every rule component against the CV and the extracted
// requirements, in fixed order. The order affects only the reasons list,
// not the sum.
func (e *Engine) Adjust(cvText string, jr *requirements.JobRequirements) Result {
	opts := e.opts
	cv := language.Lower(cvText)

	total := 0
	var reasons []string

	// 1. Experience tier bonus: only the highest matching tier applies.
	years := ExtractYears(cv)
	switch {
	case years >= 12:
		total += opts.Exp12
		reasons = append(reasons, fmt.Sprintf("Tecrübe: 12+ yıl +%d / Experience: 12+ years +%d", opts.Exp12, opts.Exp12))
	case years >= 8:
		total += opts.Exp8
		reasons = append(reasons, fmt.Sprintf("Tecrübe: 8+ yıl +%d / Experience: 8+ years +%d", opts.Exp8, opts.Exp8))
	case years >= 5:
		total += opts.Exp5
		reasons = append(reasons, fmt.Sprintf("Tecrübe: 5+ yıl +%d / Experience: 5+ years +%d", opts.Exp5, opts.Exp5))
	}

	// 2. Minimum-years-not-met penalty.
	if jr.MinYears > 0 && years < jr.MinYears {
		total += opts.SeniorUnder
		reasons = append(reasons, fmt.Sprintf("Min yıl şartı sağlanmadı %d / Min years not met %d", opts.SeniorUnder, opts.SeniorUnder))
	}

	// 3. Skill bonus, capped.
	matchedReq := containedIn(cv, jr.Required())
	matchedPref := containedIn(cv, jr.Preferred())
	missingReq := difference(jr.Required(), matchedReq)

	skillBonus := len(matchedReq)*opts.PerReq + len(matchedPref)*opts.PerPref
	if skillBonus > 0 {
		if skillBonus > opts.SkillBonusCap {
			skillBonus = opts.SkillBonusCap
		}
		total += skillBonus
		var parts []string
		if len(matchedReq) > 0 {
			parts = append(parts, strings.Join(matchedReq, ", "))
		}
		if len(matchedPref) > 0 {
			parts = append(parts, strings.Join(matchedPref, ", "))
		}
		reasons = append(reasons, fmt.Sprintf("Beceri eşleşmesi: %s +%d / Skill match +%d", strings.Join(parts, ", "), skillBonus, skillBonus))
	}

	// 4. Missing-required penalty: grows linearly, floored at MissCap.
	if len(missingReq) > 0 {
		penalty := opts.ReqPenalty * len(missingReq)
		if penalty < opts.MissCap {
			penalty = opts.MissCap
		}
		total += penalty
		reasons = append(reasons, fmt.Sprintf("Eksik zorunlu: %s %d / Missing required %d", strings.Join(missingReq, ", "), penalty, penalty))
	}

	// 5. Education bonus: highest qualification wins.
	if pts, msg := e.educationPoints(cv); pts != 0 {
		total += pts
		reasons = append(reasons, msg)
	}

	// 6. Certification bonus, capped at 5.
	matchedCerts := containedIn(cv, jr.CertificationList())
	if len(matchedCerts) > 0 {
		bonus := len(matchedCerts)
		if bonus > 5 {
			bonus = 5
		}
		total += bonus
		reasons = append(reasons, fmt.Sprintf("Sertifikalar: %s +%d / Certifications +%d", strings.Join(matchedCerts, ", "), bonus, bonus))
	}

	// 7. Recency bonus: current year or either of the two preceding years
	// as a literal substring.
	if e.recentActivity(cv) {
		total += opts.Recent
		reasons = append(reasons, fmt.Sprintf("Son 2 yıl aktivite +%d / Recent activity +%d", opts.Recent, opts.Recent))
	}

	// 8. Language bonuses, each applied at most once.
	if jr.RequestsLanguage("english") && MentionsEnglish(cv) {
		total += opts.LangEn
		reasons = append(reasons, fmt.Sprintf("İngilizce yeterlilik +%d / English +%d", opts.LangEn, opts.LangEn))
	}
	if jr.RequestsLanguage("turkish") && MentionsTurkish(cv) {
		total += opts.LangTr
		reasons = append(reasons, fmt.Sprintf("Türkçe yeterlilik +%d / Turkish +%d", opts.LangTr, opts.LangTr))
	}

	// 9. Thin-CV penalty. Length is counted in characters, not bytes.
	distinctSkills := len(matchedReq) + len(matchedPref)
	cvLen := utf8.RuneCountInString(cvText)
	if cvLen < 250 || distinctSkills < 2 {
		total += opts.Thin
		reasons = append(reasons, fmt.Sprintf("Zayıf içerik %d / Thin CV %d (len=%d, skills=%d)", opts.Thin, opts.Thin, cvLen, distinctSkills))
	}

	if total > opts.MaxAdjustment {
		total = opts.MaxAdjustment
	}
	if total < opts.MinAdjustment {
		total = opts.MinAdjustment
	}

	return Result{
		Adjustment:       total,
		Reasons:          reasons,
		MatchedRequired:  matchedReq,
		MissingRequired:  missingReq,
		MatchedPreferred: matchedPref,
		MatchedCerts:     matchedCerts,
		Years:            years,
	}
}

func (e *Engine) educationPoints(cv string) (int, string) {
	opts := e.opts
	switch {
	case strings.Contains(cv, "phd") || strings.Contains(cv, "doktora"):
		return opts.EduPhd, fmt.Sprintf("Eğitim: Doktora +%d / Education: PhD +%d", opts.EduPhd, opts.EduPhd)
	case strings.Contains(cv, "yüksek lisans") || strings.Contains(cv, "yuksek lisans") ||
		strings.Contains(cv, "master") || strings.Contains(cv, "msc"):
		return opts.EduMsc, fmt.Sprintf("Eğitim: Yüksek lisans +%d / Education: Master +%d", opts.EduMsc, opts.EduMsc)
	case strings.Contains(cv, "lisans") || strings.Contains(cv, "bsc") || strings.Contains(cv, "bachelor"):
		return opts.EduBsc, fmt.Sprintf("Eğitim: Lisans +%d / Education: Bachelor +%d", opts.EduBsc, opts.EduBsc)
	}
	return 0, ""
}

func (e *Engine) recentActivity(cv string) bool {
	year := e.now().UTC().Year()
	for y := year - 2; y <= year; y++ {
		if strings.Contains(cv, fmt.Sprintf("%d", y)) {
			return true
		}
	}
	return false
}
