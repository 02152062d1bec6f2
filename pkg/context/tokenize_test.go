package context_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pctx "github.com/easyops/portfolio-context-go/pkg/context"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", []string{}},
		{"only short words", "is a to", []string{}},
		{"lowercases", "TouchDesigner MIDI", []string{"touchdesigner", "midi"}},
		{"drops short words", "what is your RAG", []string{"what", "your", "rag"}},
		{"dedupes in order", "midi MIDI light midi", []string{"midi", "light"}},
		{"trims punctuation", "projects? (touchdesigner), \"eno\"!", []string{"projects", "touchdesigner", "eno"}},
		{"keeps inner punctuation", "next.js three.js", []string{"next.js", "three.js"}},
		{"whitespace only", " \t\n ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pctx.Tokenize(tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}
