package scoring

// Request is a scoring request. Both fields are optional: absent text is
// treated as empty throughout and scores accordingly, it never errors. The
// max tags bound pathological payloads at the binding layer.
type Request struct {
	CVText  string `json:"cv_text" form:"cv_text" binding:"omitempty,max=200000,plaintext"`
	JobText string `json:"job_text" form:"job_text" binding:"omitempty,max=200000,plaintext"`
}

// Response is the full scoring outcome. Constructed fresh per request; no
// shared state.
type Response struct {
	Score      float64 `json:"score"`
	BaseScore  float64 `json:"base_score"`
	Adjustment int     `json:"adjustment"`

	CVLang   string `json:"cv_lang"`
	JobLang  string `json:"job_lang"`
	UILocale string `json:"ui_locale"`

	ExplanationLines []string `json:"explanation_lines"`
	ExplanationTR    string   `json:"explanation_text_tr"`
	ExplanationEN    string   `json:"explanation_text_en"`

	Confidence       float64 `json:"confidence"`
	ConfidenceReason string  `json:"confidence_reason"`
}
