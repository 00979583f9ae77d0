package agent

// Context keys shared by the agents and the pipeline tasks.
const (
	KeyTranscript    = "transcript"
	KeySummary       = "summary"
	KeyActionItems   = "action_items"
	KeyEmailDraft    = "email_draft"
	KeyEmailDelivery = "email_delivery"
)

var inputLabels = map[string]string{
	KeyTranscript:  "Meeting transcript",
	KeySummary:     "Meeting summary",
	KeyActionItems: "Action items",
	KeyEmailDraft:  "Follow-up email draft",
}

func label(key string) string {
	if l, ok := inputLabels[key]; ok {
		return l
	}
	return key
}
