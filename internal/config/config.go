// Package config provides configuration loading for the scoring service:
// server settings, the semantic sidecar endpoint, rule weights, confidence
// weights and the lexicons the extractors match against. Configuration is
// loaded once at startup and treated as immutable afterwards.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full process configuration.
type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Semantic   SemanticConfig    `mapstructure:"semantic"`
	Rules      RuleOptions       `mapstructure:"rules"`
	Confidence ConfidenceOptions `mapstructure:"confidence"`
	Lexicons   Lexicons          `mapstructure:"lexicons"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Address returns the host:port pair the server binds to.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SemanticConfig points at the optional remote semantic scorer sidecar.
type SemanticConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RuleOptions are the named weights and caps of the rule engine. Every field
// has a contractual default; scores produced with the defaults are the
// reference behavior.
type RuleOptions struct {
	// Experience tier bonuses. Only the highest matching tier applies.
	Exp5  int `mapstructure:"exp5"`
	Exp8  int `mapstructure:"exp8"`
	Exp12 int `mapstructure:"exp12"`

	// Skill scoring.
	PerReq        int `mapstructure:"per_req"`
	PerPref       int `mapstructure:"per_pref"`
	ReqPenalty    int `mapstructure:"req_penalty"`
	SkillBonusCap int `mapstructure:"skill_bonus_cap"`
	MissCap       int `mapstructure:"miss_cap"`

	// Education bonuses. Highest qualification wins.
	EduBsc int `mapstructure:"edu_bsc"`
	EduMsc int `mapstructure:"edu_msc"`
	EduPhd int `mapstructure:"edu_phd"`

	// Language bonuses.
	LangEn int `mapstructure:"lang_en"`
	LangTr int `mapstructure:"lang_tr"`

	// Other components.
	SeniorUnder int `mapstructure:"senior_under"`
	Thin        int `mapstructure:"thin"`
	Recent      int `mapstructure:"recent"`

	// Final clamp on the total adjustment.
	MaxAdjustment int `mapstructure:"max_adjustment"`
	MinAdjustment int `mapstructure:"min_adjustment"`
}

// ConfidenceOptions are the factor deltas of the confidence estimator.
// Length-tier thresholds live in the confidence package; the deltas are data
// so deployments can tune them.
type ConfidenceOptions struct {
	Base float64 `mapstructure:"base"`

	RemoteUsed    float64 `mapstructure:"remote_used"`
	LocalFallback float64 `mapstructure:"local_fallback"`

	CVVeryShort float64 `mapstructure:"cv_very_short"`
	CVShort     float64 `mapstructure:"cv_short"`
	CVAdequate  float64 `mapstructure:"cv_adequate"`
	CVVeryLong  float64 `mapstructure:"cv_very_long"`

	JobVague    float64 `mapstructure:"job_vague"`
	JobAdequate float64 `mapstructure:"job_adequate"`
	JobDetailed float64 `mapstructure:"job_detailed"`

	LangMismatch   float64 `mapstructure:"lang_mismatch"`
	NoRequirements float64 `mapstructure:"no_requirements"`

	ZeroYears  float64 `mapstructure:"zero_years"`
	LargeGap   float64 `mapstructure:"large_gap"`
	ExceedsMin float64 `mapstructure:"exceeds_min"`
}

// Lexicons are the data-driven keyword lists. Matching is case insensitive;
// entries should be lowercase.
type Lexicons struct {
	Skills         []string `mapstructure:"skills"`
	Certifications []string `mapstructure:"certifications"`
	StopwordsTR    []string `mapstructure:"stopwords_tr"`
	StopwordsEN    []string `mapstructure:"stopwords_en"`
	TurkishHints   []string `mapstructure:"turkish_hints"`
	EnglishHints   []string `mapstructure:"english_hints"`
}

const envPrefix = "CVMATCH"

// Load reads the configuration from an optional YAML file plus CVMATCH_*
// environment variables. An empty path skips the file: the coded defaults
// reproduce the reference behavior on their own.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every value at its coded default.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults always unmarshal; a failure here is a programming error.
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Rules.MinAdjustment > c.Rules.MaxAdjustment {
		return fmt.Errorf("config error: rules.min_adjustment %d exceeds rules.max_adjustment %d",
			c.Rules.MinAdjustment, c.Rules.MaxAdjustment)
	}
	if c.Semantic.Timeout <= 0 {
		return fmt.Errorf("config error: semantic.timeout must be positive, got %s", c.Semantic.Timeout)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: invalid server.port %d", c.Server.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("semantic.base_url", "http://127.0.0.1:8001")
	v.SetDefault("semantic.timeout", 20*time.Second)

	v.SetDefault("rules.exp5", 5)
	v.SetDefault("rules.exp8", 7)
	v.SetDefault("rules.exp12", 10)
	v.SetDefault("rules.per_req", 3)
	v.SetDefault("rules.per_pref", 1)
	v.SetDefault("rules.req_penalty", -3)
	v.SetDefault("rules.skill_bonus_cap", 12)
	v.SetDefault("rules.miss_cap", -18)
	v.SetDefault("rules.edu_bsc", 2)
	v.SetDefault("rules.edu_msc", 4)
	v.SetDefault("rules.edu_phd", 6)
	v.SetDefault("rules.lang_en", 2)
	v.SetDefault("rules.lang_tr", 2)
	v.SetDefault("rules.senior_under", -4)
	v.SetDefault("rules.thin", -5)
	v.SetDefault("rules.recent", 2)
	v.SetDefault("rules.max_adjustment", 25)
	v.SetDefault("rules.min_adjustment", -25)

	v.SetDefault("confidence.base", 80.0)
	v.SetDefault("confidence.remote_used", 5.0)
	v.SetDefault("confidence.local_fallback", -5.0)
	v.SetDefault("confidence.cv_very_short", -15.0)
	v.SetDefault("confidence.cv_short", -5.0)
	v.SetDefault("confidence.cv_adequate", 3.0)
	v.SetDefault("confidence.cv_very_long", 5.0)
	v.SetDefault("confidence.job_vague", -10.0)
	v.SetDefault("confidence.job_adequate", 3.0)
	v.SetDefault("confidence.job_detailed", 5.0)
	v.SetDefault("confidence.lang_mismatch", -8.0)
	v.SetDefault("confidence.no_requirements", -5.0)
	v.SetDefault("confidence.zero_years", -5.0)
	v.SetDefault("confidence.large_gap", -7.0)
	v.SetDefault("confidence.exceeds_min", 5.0)

	v.SetDefault("lexicons.skills", defaultSkills())
	v.SetDefault("lexicons.certifications", defaultCertifications())
	v.SetDefault("lexicons.stopwords_tr", defaultStopwordsTR())
	v.SetDefault("lexicons.stopwords_en", defaultStopwordsEN())
	v.SetDefault("lexicons.turkish_hints", defaultTurkishHints())
	v.SetDefault("lexicons.english_hints", defaultEnglishHints())
}
