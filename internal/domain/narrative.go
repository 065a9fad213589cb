package domain

type ExecutiveNarrative struct {
	Headline           string   `json:"headline"`
	ExecutiveSummary   string   `json:"executive_summary"`
	KeyRisks           string   `json:"key_risks"`
	RecommendedActions string   `json:"recommended_actions"`
	Risks              []string `json:"risks"`
	Actions            []string `json:"actions"`
	Raw                string   `json:"raw"`
	Fallback           bool     `json:"fallback"`
}

type AnalystAnswer struct {
	Question        string   `json:"question"`
	Answer          string   `json:"answer"`
	Evidence        []string `json:"evidence"`
	NextChecks      []string `json:"next_checks"`
	ConfidenceLevel string   `json:"confidence_level"`
	Raw             string   `json:"raw"`
	Fallback        bool     `json:"fallback"`
}

type AgentRun struct {
	Goal            string   `json:"goal"`
	Plan            []string `json:"plan"`
	ReasoningChain  []string `json:"reasoning_chain"`
	Answer          string   `json:"answer"`
	Evidence        []string `json:"evidence"`
	ConfidenceLevel string   `json:"confidence_level"`
	Raw             string   `json:"raw"`
	Fallback        bool     `json:"fallback"`
}
