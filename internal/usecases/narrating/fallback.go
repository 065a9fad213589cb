package narrating

import "fmt"

const notAvailableList = "1. Not available\n2. Not available\n3. Not available"

func executiveFallback(err error) string {
	summary := "No response returned."
	if err != nil && err != ErrEmptyResponse {
		summary = "Error generating narrative: " + err.Error()
	}

	return "Headline:\nExecutive narrative unavailable for selected period.\n\n" +
		"Executive Summary:\n" + summary + "\n\n" +
		"Key Risks:\n" + notAvailableList + "\n\n" +
		"Recommended Actions:\n" + notAvailableList
}

func analystFallback(err error) string {
	if err == nil || err == ErrEmptyResponse {
		return "Answer:\nData not available for the selected period.\n\n" +
			"Evidence:\n- No response returned.\n- —\n- —\n\n" +
			"What I would check next:\n- Confirm the completion service is configured and returns output\n" +
			"- Validate the data pack is non-empty\n- Retry with a narrower question\n\n" +
			"Confidence Level:\nLow — no response returned."
	}

	return "Answer:\nExecutive Q&A response unavailable.\n\n" +
		fmt.Sprintf("Evidence:\n- Error: %s\n- —\n- —\n\n", err.Error()) +
		"What I would check next:\n- Validate data pack integrity\n" +
		"- Confirm retention data-quality query executes\n- Retry the completion call\n\n" +
		"Confidence Level:\nLow — execution error."
}

func agentFallback(err error) string {
	answer := "Data not available for the selected period."
	evidence := "- —\n- —\n- —"
	confidence := "Low — no response returned."
	if err != nil && err != ErrEmptyResponse {
		answer = "Agent output unavailable."
		evidence = "- Error: " + err.Error() + "\n- —\n- —"
		confidence = "Low — execution error."
	}

	return "Plan:\n1. —\n2. —\n3. —\n\n" +
		"Reasoning Chain:\nStep 1: —\nStep 2: —\nStep 3: —\n\n" +
		"Answer:\n" + answer + "\n\n" +
		"Evidence:\n" + evidence + "\n\n" +
		"Confidence Level:\n" + confidence
}
