package models

import "strings"

// KnowledgeEntry is one unit of grounding text. Keywords are descriptive only.
type KnowledgeEntry struct {
	ID       string   `json:"id" yaml:"id"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Content  string   `json:"content" yaml:"content"`
}

// KnowledgeBase is an insertion-ordered, read-only set of entries.
type KnowledgeBase struct {
	entries []KnowledgeEntry
	index   map[string]int
}

// NewKnowledgeBase copies entries in order. A repeated id keeps its first
// position and takes the later content.
func NewKnowledgeBase(entries []KnowledgeEntry) *KnowledgeBase {
	kb := &KnowledgeBase{
		entries: make([]KnowledgeEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.Keywords = append([]string(nil), e.Keywords...)
		if i, ok := kb.index[e.ID]; ok {
			kb.entries[i] = e
			continue
		}
		kb.index[e.ID] = len(kb.entries)
		kb.entries = append(kb.entries, e)
	}
	return kb
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

func (kb *KnowledgeBase) Get(id string) (KnowledgeEntry, bool) {
	i, ok := kb.index[id]
	if !ok {
		return KnowledgeEntry{}, false
	}
	return kb.entries[i], true
}

// Entries returns a copy in insertion order.
func (kb *KnowledgeBase) Entries() []KnowledgeEntry {
	out := make([]KnowledgeEntry, len(kb.entries))
	copy(out, kb.entries)
	return out
}

// FullText joins every entry's content with a blank line.
func (kb *KnowledgeBase) FullText() string {
	parts := make([]string, len(kb.entries))
	for i, e := range kb.entries {
		parts[i] = e.Content
	}
	return strings.Join(parts, "\n\n")
}
