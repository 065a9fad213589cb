package narrating

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

const defaultRetentionNote = "Retention interpretability not provided; treat as NOT fully loaded."

const executiveTemplate = `You are a Chief Revenue Officer writing a board-level executive update.

IMPORTANT:
- Do NOT use markdown symbols like ### or ##
- Do NOT include quotation marks
- Do NOT repeat the prompt
- Write in clean executive prose
- Be concise, structured, and confident

STRICT DATA INTERPRETATION RULES (NON-NEGOTIABLE):
- Retention interpretability flag: %s
- Retention note: %s

- If retention_interpretable is FALSE:
  You MUST NOT interpret NRR/GRR as churn or deterioration.
  You MUST say retention is not fully loaded/complete for the selected period.

- If NRR or GRR equals 0.00%% AND retention_interpretable is FALSE:
  DO NOT interpret this as churn. Call it a data completeness/boundary issue.

- Only discuss churn if explicitly supported by confirmed retention data (retention_interpretable = TRUE).

Time Window:
%s

Key Metrics:
ARR: %s
NRR: %s
GRR: %s
Win Rate: %s
Pipeline Coverage: %s

Structure your response EXACTLY as:

Headline:
<1 strong executive sentence>

Executive Summary:
<3–5 sentences explaining overall performance>

Key Risks:
1. ...
2. ...
3. ...

Recommended Actions:
1. ...
2. ...
3. ...

JSON PACK:
%s
`

const analystTemplate = `You are a senior GTM analytics leader answering board-level questions.

You MUST use ONLY the JSON pack provided.
You MUST NOT invent numbers.
You MUST NOT assume trends not explicitly supported by the pack.
You MUST NOT interpret missing/boundary data as business deterioration.

STRICT DATA INTERPRETATION RULES (NON-NEGOTIABLE)

1) Retention:
- If data_quality.retention_interpretable is FALSE:
  You MUST NOT interpret NRR/GRR as churn or retention deterioration.
  You MUST say retention is not fully loaded/complete for the selected period.
- If NRR or GRR equals 0.00%% AND retention_interpretable is FALSE:
  DO NOT interpret as churn. Call it data completeness/boundary-period.

2) Pipeline:
- Pipeline coverage is an X multiple (metrics.pipeline_coverage_ratio_x).
- Compare vs benchmarks.pipeline_coverage_target_x.
- Do NOT label coverage weak unless it is below the benchmark.

3) Precision:
- Evidence bullets must use exact numbers from JSON (and include the time_window when relevant).
- If a required field is missing, say Data not available for the selected period and list what is missing.

RESPONSE FORMAT (EXACTLY)

Answer:
<2–4 precise sentences grounded in the pack>

Evidence:
- <bullet with exact numbers from JSON>
- <bullet with exact numbers from JSON>
- <bullet with exact numbers from JSON>

What I would check next:
- <analytical next step>
- <analytical next step>
- <analytical next step>

Confidence Level:
<High | Medium | Low> — <one short reason grounded in availability/completeness>

JSON PACK:
%s

Question:
%s
`

const agentTemplate = `You are a GTM Analytics Agent. You will solve the user's goal using ONLY the JSON pack.

Hard rules:
- Use ONLY JSON fields. Do not invent numbers.
- Follow the SAME retention strictness:
  If data_quality.retention_interpretable is false, do NOT infer churn.
- Pipeline coverage is an X multiple; compare vs benchmarks.pipeline_coverage_target_x.
- Keep the reasoning chain short, explicit, and checkable.

OUTPUT FORMAT (EXACTLY)

Plan:
1. ...
2. ...
3. ...

Reasoning Chain:
Step 1: <what you checked in JSON + what you found>
Step 2: <what you checked in JSON + what you found>
Step 3: <what you checked in JSON + what you found>

Answer:
<2–4 sentences>

Evidence:
- <exact numbers from JSON>
- <exact numbers from JSON>
- <exact numbers from JSON>

Confidence Level:
<High | Medium | Low> — <one short reason tied to data availability / interpretability>

JSON PACK:
%s

User goal:
%s
`

// ExecutivePrompt usa os KPIs do pacote já formatados; valores ausentes viram uma frase
// explícita em vez de número
func ExecutivePrompt(pack *domain.EvidencePack, packJSON []byte) string {
	note := pack.DataQuality.RetentionNote
	if note == "" {
		note = defaultRetentionNote
	}

	m := pack.Metrics
	return fmt.Sprintf(executiveTemplate,
		strconv.FormatBool(pack.DataQuality.RetentionInterpretable),
		note,
		pack.TimeWindow,
		utils.MetricForLLM(m.ARRLatest, "ARR", utils.KindCurrency),
		utils.MetricForLLM(m.NRRPct, "NRR", utils.KindPct),
		utils.MetricForLLM(m.GRRPct, "GRR", utils.KindPct),
		utils.MetricForLLM(m.WinRatePct, "Win Rate", utils.KindPct),
		utils.MetricForLLM(m.PipelineCoverageRatioX, "Pipeline Coverage", utils.KindX),
		packJSON,
	)
}

func AnalystPrompt(packJSON []byte, question string) string {
	return fmt.Sprintf(analystTemplate, packJSON, question)
}

func AgentPrompt(packJSON []byte, goal string) string {
	return fmt.Sprintf(agentTemplate, packJSON, goal)
}
