package knowledge_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/easyops/portfolio-context-go/pkg/knowledge"
)

func TestDefault_LoadsEveryCategory(t *testing.T) {
	kb := knowledge.Default()

	if kb.Bio == "" {
		t.Fatal("expected bio to be set")
	}
	for _, c := range knowledge.Categories {
		if n := len(kb.Entities(c)); n == 0 {
			t.Errorf("category %s is empty", c)
		}
	}
	if len(kb.TechStack.All()) == 0 {
		t.Error("expected tech stack entries")
	}
	if len(kb.Philosophy.Principles) == 0 {
		t.Error("expected philosophy principles")
	}
}

func TestDefault_HasTouchDesignerProject(t *testing.T) {
	kb := knowledge.Default()

	found := false
	for _, p := range kb.Projects {
		if strings.Contains(strings.ToLower(p.Title), "touchdesigner") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a project titled with TouchDesigner")
	}
}

func TestCategory_Priority(t *testing.T) {
	tests := []struct {
		category knowledge.Category
		expected int
	}{
		{knowledge.CategoryProjects, 0},
		{knowledge.CategoryExpertise, 1},
		{knowledge.CategoryMusicInspirations, 2},
		{knowledge.CategoryTheorists, 3},
		{knowledge.CategoryEmergenceConcepts, 4},
		{knowledge.Category("unknown"), 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Priority(); got != tt.expected {
				t.Errorf("Priority() = %d, want %d", got, tt.expected)
			}
			if tt.category.IsValid() != (tt.expected < 5) {
				t.Errorf("IsValid() = %v", tt.category.IsValid())
			}
		})
	}
}

func TestEntity_SearchText(t *testing.T) {
	tests := []struct {
		name     string
		entity   knowledge.Entity
		expected string
	}{
		{
			name: "project",
			entity: knowledge.Project{
				Title:        "Light Rig",
				Description:  "DMX show",
				Technologies: []string{"TouchDesigner"},
				Keywords:     []string{"Lighting"},
			},
			expected: "light rig dmx show touchdesigner lighting",
		},
		{
			name:     "music inspiration includes genre",
			entity:   knowledge.MusicInspiration{Artist: "Brian Eno", Genre: "Ambient", Influence: "Long forms"},
			expected: "brian eno long forms ambient",
		},
		{
			name:     "theorist includes field and works",
			entity:   knowledge.Theorist{Name: "Holland", Field: "CAS", Contribution: "GA", Works: []string{"Hidden Order"}},
			expected: "holland ga cas hidden order",
		},
		{
			name:     "blank parts skipped",
			entity:   knowledge.EmergenceConcept{Concept: "Stigmergy", Description: "  ", Examples: []string{""}},
			expected: "stigmergy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.SearchText(); got != tt.expected {
				t.Errorf("SearchText() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidate_EmptySearchText(t *testing.T) {
	kb := &knowledge.KnowledgeBase{
		Expertise: []knowledge.Expertise{{Area: "ok"}, {}},
	}

	err := kb.Validate()
	if !errors.Is(err, knowledge.ErrEmptySearchText) {
		t.Fatalf("expected ErrEmptySearchText, got %v", err)
	}
	if !strings.Contains(err.Error(), "expertise[1]") {
		t.Errorf("error should name the entity, got %q", err)
	}

	var nilKB *knowledge.KnowledgeBase
	if !errors.Is(nilKB.Validate(), knowledge.ErrNilKnowledgeBase) {
		t.Error("expected ErrNilKnowledgeBase for nil receiver")
	}
}

func TestVocabulary(t *testing.T) {
	kb := &knowledge.KnowledgeBase{
		TechStack: knowledge.TechStack{Specialties: []string{"MIDI", "Go"}},
		Projects: []knowledge.Project{
			{Title: "A", Technologies: []string{"TouchDesigner"}, Keywords: []string{"Generative Art", "midi"}},
		},
	}

	vocab := kb.Vocabulary(3)
	expected := []string{"generative art", "midi", "touchdesigner"}
	if len(vocab) != len(expected) {
		t.Fatalf("Vocabulary() = %v, want %v", vocab, expected)
	}
	for i := range expected {
		if vocab[i] != expected[i] {
			t.Errorf("vocab[%d] = %q, want %q", i, vocab[i], expected[i])
		}
	}
}

func TestStats(t *testing.T) {
	kb := knowledge.Default()
	stats := kb.Stats()

	if stats[knowledge.CategoryProjects] != len(kb.Projects) {
		t.Errorf("projects = %d, want %d", stats[knowledge.CategoryProjects], len(kb.Projects))
	}

	total := 0
	for _, n := range stats {
		total += n
	}
	if kb.EntityCount() != total {
		t.Errorf("EntityCount() = %d, want %d", kb.EntityCount(), total)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "valid",
			input: "bio: hi\nprojects:\n  - title: Synth\n    description: box\n",
		},
		{
			name:  "empty document",
			input: "",
		},
		{
			name:    "unknown field",
			input:   "bio: hi\nhobbies: [chess]\n",
			wantErr: knowledge.ErrInvalidKnowledge,
		},
		{
			name:    "entity without text",
			input:   "projects:\n  - year: 2020\n",
			wantErr: knowledge.ErrEmptySearchText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb, err := knowledge.Decode(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kb == nil {
				t.Fatal("expected knowledge base")
			}
		})
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.yaml")
	content := "bio: test\nexpertise:\n  - area: Sound\n    description: mixing\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	kb, err := knowledge.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if len(kb.Expertise) != 1 || kb.Expertise[0].Area != "Sound" {
		t.Errorf("unexpected expertise: %+v", kb.Expertise)
	}

	if _, err := knowledge.Open(context.Background(), filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := knowledge.NewReaderLoader("test", strings.NewReader("bio: x")).Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpen_EmbeddedWhenPathEmpty(t *testing.T) {
	kb, err := knowledge.Open(context.Background(), "")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if kb.EntityCount() != knowledge.Default().EntityCount() {
		t.Error("expected embedded snapshot")
	}
}
