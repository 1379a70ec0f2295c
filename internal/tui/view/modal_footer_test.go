package view

import (
	"strings"
	"testing"
)

func keysText(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

func TestCandidatesKeysFollowState(t *testing.T) {
	tests := []struct {
		name    string
		model   CandidatesModel
		want    string
		notWant string
	}{
		{"loading", CandidatesModel{Loading: true}, "[Esc] Cancel", "[Enter] Choose"},
		{"failed", CandidatesModel{Failed: true}, "[r] Retry", "[Enter] Choose"},
		{"empty", CandidatesModel{}, "[Esc] Close", "[Enter] Choose"},
		{"items", CandidatesModel{Items: []CandidateItem{{Title: "X"}}}, "[Enter] Choose", "[r] Retry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keysText(CandidatesKeys(tt.model))
			if !strings.Contains(got, tt.want) {
				t.Fatalf("keys %q missing %q", got, tt.want)
			}
			if strings.Contains(got, tt.notWant) {
				t.Fatalf("keys %q should not contain %q", got, tt.notWant)
			}
		})
	}
}

func TestSummaryKeysHideInsightOnceLoaded(t *testing.T) {
	if got := keysText(SummaryKeys(false)); !strings.Contains(got, "[i] Insight") {
		t.Fatalf("expected insight key, got %q", got)
	}
	if got := keysText(SummaryKeys(true)); strings.Contains(got, "[i] Insight") {
		t.Fatalf("expected no insight key, got %q", got)
	}
}
