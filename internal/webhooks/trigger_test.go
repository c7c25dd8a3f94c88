package webhooks

import "testing"

func TestTriggerShouldAct(t *testing.T) {
	testCases := []struct {
		name      string
		trigger   Trigger
		comment   string
		shouldAct bool
	}{
		{"Exact Match", Trigger{Phrase: "/jira"}, "/jira", true},
		{"Different Case", Trigger{Phrase: "/jira"}, "/JIRA", false},
		{"Trailing Newline Without Trim", Trigger{Phrase: "/jira"}, "/jira\n", false},
		{"Phrase Inside Sentence", Trigger{Phrase: "/jira"}, "please /jira this", false},
		{"Empty Comment", Trigger{Phrase: "/jira"}, "", false},
		{"Trailing Newline With Trim", Trigger{Phrase: "/jira", TrimSpace: true}, "  /jira\n", true},
		{"Custom Phrase", Trigger{Phrase: "/ticket"}, "/ticket", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.trigger.ShouldAct(tc.comment); got != tc.shouldAct {
				t.Errorf("ShouldAct(%q) = %v, want %v", tc.comment, got, tc.shouldAct)
			}
		})
	}
}
