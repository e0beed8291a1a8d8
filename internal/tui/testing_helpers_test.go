package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeFetcher returns canned results and records requested URLs
type fakeFetcher struct {
	mu   sync.Mutex
	body string
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return f.body, f.err
}

func (f *fakeFetcher) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

// CreateTestModel creates a sized Model backed by fetcher
func CreateTestModel(t *testing.T, fetcher *fakeFetcher) *Model {
	t.Helper()

	m := New(Options{Client: fetcher})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return &m
}

// typeText sends each rune of s as a key press
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// press sends a special key
func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
