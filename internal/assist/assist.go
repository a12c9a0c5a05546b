// Package assist defines the contracts Muninn's core exposes to the
// external SaaS collaborators (an LLM completion provider and a task
// manager), and assembles vault context for them from search results.
//
// The core never implements these interfaces; the host wires in concrete
// HTTP clients. Only the context assembly below has any bearing on core
// correctness.
package assist

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aidanlsb/muninn/internal/search"
)

// Completer sends a prompt with supporting context and returns text.
type Completer interface {
	Complete(ctx context.Context, prompt, noteContext string) (string, error)
}

// Task is the minimal task-manager record the core exchanges.
type Task struct {
	ID      string
	Content string
	Due     string
	Done    bool
}

// TaskClient is the CRUD surface of the external task manager.
type TaskClient interface {
	CreateTask(ctx context.Context, t Task) (Task, error)
	ListTasks(ctx context.Context) ([]Task, error)
	UpdateTask(ctx context.Context, t Task) (Task, error)
	CloseTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}

// DefaultContextNotes is how many notes a context pack includes.
const DefaultContextNotes = 5

// ContextBuilder turns search results into a prompt-ready context block.
// It consumes the same index/query pair the interactive search uses, so
// any downstream retrieval feature shares one code path.
type ContextBuilder struct {
	Cache    *search.Cache
	MaxNotes int
}

// NewContextBuilder creates a builder over a shared index cache.
func NewContextBuilder(cache *search.Cache) *ContextBuilder {
	return &ContextBuilder{Cache: cache, MaxNotes: DefaultContextNotes}
}

// Build queries the vault for text relevant to question and renders the
// top hits as a single context string, one note per block.
func (b *ContextBuilder) Build(vaultRoot, question string) (string, error) {
	index, err := b.Cache.GetOrBuild(vaultRoot)
	if err != nil {
		return "", fmt.Errorf("build context: %w", err)
	}

	results := search.Query(index, question)
	max := b.MaxNotes
	if max <= 0 {
		max = DefaultContextNotes
	}
	if len(results) > max {
		results = results[:max]
	}

	var blocks []string
	for _, r := range results {
		body := strings.TrimSpace(noteBody(r))
		if body == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("## %s\n\n%s", r.Name, body))
	}
	return strings.Join(blocks, "\n\n"), nil
}

// maxNoteBody bounds how much of each note a context pack carries.
const maxNoteBody = 2000

// noteBody prefers the note's current on-disk content over the indexed
// preview, since the index may be minutes old.
func noteBody(r search.Result) string {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return r.Preview
	}
	body := string(data)
	if len(body) > maxNoteBody {
		if runes := []rune(body); len(runes) > maxNoteBody {
			body = string(runes[:maxNoteBody])
		}
	}
	return body
}
