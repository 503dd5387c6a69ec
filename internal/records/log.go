package records

import "github.com/zjrosen/twig/internal/git"

// SectionGraph holds every row of the commit graph.
const SectionGraph = "graph"

// FromLog turns graph rows into a single section. Rows that only continue
// the graph are kept so the drawing stays intact.
func FromLog(entries []git.LogEntry) View {
	b := newBuilder()
	for _, e := range entries {
		b.add(Record{
			Section: SectionGraph,
			Name:    e.Graph,
			Commit:  e.Hash,
			Label:   e.Message,
			Ref:     e.ShortHash,
		})
	}
	return b.view()
}
