// Package scoring composes the pipeline: language detection, the remote
// semantic attempt with local TF-IDF fallback, requirement extraction, the
// rule adjustment, confidence estimation and explanation synthesis. A
// scoring call is a pure function of its two input texts and the immutable
// configuration; concurrent calls share nothing mutable.
package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/baauozar/cvmatch/internal/confidence"
	"github.com/baauozar/cvmatch/internal/config"
	"github.com/baauozar/cvmatch/internal/explain"
	"github.com/baauozar/cvmatch/internal/language"
	"github.com/baauozar/cvmatch/internal/requirements"
	"github.com/baauozar/cvmatch/internal/rules"
	"github.com/baauozar/cvmatch/internal/semantic"
	"github.com/baauozar/cvmatch/internal/textproc"
)

// uiLocale is the fixed locale tag reported to clients.
const uiLocale = "tr-TR"

// topOverlapTerms caps the shared-term list in the explanation.
const topOverlapTerms = 10

// RemoteScorer is the remote semantic scoring capability; satisfied by
// *semantic.Client. A nil *Score with false means "unavailable", which is
// never an error.
type RemoteScorer interface {
	TryScore(ctx context.Context, cvText, jobText string) (*semantic.Score, bool)
}

// Deps are the orchestrator's collaborators. Each capability is a separate
// unit so it can be tested in isolation.
type Deps struct {
	Remote     RemoteScorer
	Detector   *language.Detector
	Tokenizer  *textproc.Tokenizer
	Extractor  *requirements.Extractor
	Rules      *rules.Engine
	Confidence *confidence.Estimator
	Formatter  *explain.Formatter
	Log        *zap.Logger
}

// Orchestrator runs scoring calls.
type Orchestrator struct {
	deps Deps
}

// New builds an orchestrator from explicit dependencies.
func New(deps Deps) *Orchestrator {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return &Orchestrator{deps: deps}
}

// NewDefault wires an orchestrator from configuration: the standard
// detector, tokenizer, extractors and engines plus the semantic sidecar
// client.
func NewDefault(cfg *config.Config, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return New(Deps{
		Remote:     semantic.NewClient(cfg.Semantic.BaseURL, cfg.Semantic.Timeout, log),
		Detector:   language.NewDetector(cfg.Lexicons.TurkishHints, cfg.Lexicons.EnglishHints),
		Tokenizer:  textproc.NewTokenizer(cfg.Lexicons.StopwordsTR, cfg.Lexicons.StopwordsEN),
		Extractor:  requirements.NewExtractor(cfg.Lexicons.Skills, cfg.Lexicons.Certifications),
		Rules:      rules.NewEngine(cfg.Rules),
		Confidence: confidence.NewEstimator(cfg.Confidence),
		Formatter:  explain.NewFormatter(),
		Log:        log,
	})
}

// Score runs the full pipeline. It never returns an error: every failure
// mode inside the pipeline has a defined numeric fallback, so the response
// is always complete and well formed.
func (o *Orchestrator) Score(ctx context.Context, req Request) Response {
	d := o.deps
	cvText := req.CVText
	jobText := req.JobText

	cvLang := d.Detector.Detect(cvText)
	jobLang := d.Detector.Detect(jobText)

	var lines []string

	// Base score: one remote attempt, then the deterministic local
	// fallback. On remote success local TF-IDF is skipped entirely; the
	// sidecar folds its own adjustment into the score it reports.
	var baseScore float64
	remote, remoteUsed := d.Remote.TryScore(ctx, cvText, jobText)
	if remoteUsed {
		baseScore = round2(remote.Score)
		lines = append(lines, "Uzak anlamsal model kullanıldı / Remote semantic model used")
		lines = append(lines, remote.Explanation...)
	} else {
		cvTokens := d.Tokenizer.Tokenize(cvText, cvLang)
		jobTokens := d.Tokenizer.Tokenize(jobText, jobLang)
		cvVec, jobVec := textproc.Vectorize(cvTokens, jobTokens)
		baseScore = round2(textproc.Cosine(cvVec, jobVec) * 100.0)

		if overlaps := textproc.TopOverlap(cvVec, jobVec, topOverlapTerms); len(overlaps) > 0 {
			lines = append(lines, "Ortak terimler / Overlaps: "+strings.Join(overlaps, ", "))
		}
	}

	jr := d.Extractor.Extract(jobText)
	ruleResult := d.Rules.Adjust(cvText, jr)
	lines = append(lines, ruleResult.Reasons...)

	finalScore := clamp(baseScore+float64(ruleResult.Adjustment), 0, 100)

	lines = append(lines,
		fmt.Sprintf("Temel skor / Base score: %s", formatScore(baseScore)),
		fmt.Sprintf("Kural ayarlaması / Rule adjustment: %+d", ruleResult.Adjustment),
	)

	conf, confReason := d.Confidence.Estimate(confidence.Inputs{
		CVLength:        utf8.RuneCountInString(cvText),
		JobLength:       utf8.RuneCountInString(jobText),
		RemoteUsed:      remoteUsed,
		CVLang:          cvLang,
		JobLang:         jobLang,
		MatchedRequired: len(ruleResult.MatchedRequired),
		TotalRequired:   len(jr.RequiredSkills),
		HasRequirements: len(jr.RequiredSkills) > 0 || len(jr.PreferredSkills) > 0,
		CVYears:         ruleResult.Years,
		MinYears:        jr.MinYears,
	})

	expCtx := explain.Context{
		Score:              finalScore,
		BaseScore:          baseScore,
		Adjustment:         ruleResult.Adjustment,
		CVLang:             string(cvLang),
		JobLang:            string(jobLang),
		Years:              ruleResult.Years,
		MinYears:           jr.MinYears,
		MatchedRequired:    ruleResult.MatchedRequired,
		MissingRequired:    ruleResult.MissingRequired,
		Certifications:     ruleResult.MatchedCerts,
		RequestedLanguages: jr.LanguageList(),
	}

	return Response{
		Score:            round2(finalScore),
		BaseScore:        baseScore,
		Adjustment:       ruleResult.Adjustment,
		CVLang:           string(cvLang),
		JobLang:          string(jobLang),
		UILocale:         uiLocale,
		ExplanationLines: lines,
		ExplanationTR:    d.Formatter.BuildTR(expCtx, conf, confReason),
		ExplanationEN:    d.Formatter.BuildEN(expCtx, conf, confReason),
		Confidence:       round2(conf),
		ConfidenceReason: confReason,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func formatScore(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
