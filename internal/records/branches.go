package records

import (
	"strings"

	"github.com/zjrosen/twig/internal/git"
)

const remotePrefix = "remotes/"

// FromBranches groups branches into "local" followed by one section per
// remote in the order remotes are first seen. Ids follow the input order.
// Remote display names drop the "remotes/<remote>/" prefix.
func FromBranches(snap *git.BranchSnapshot) View {
	if snap == nil {
		return NewView(nil)
	}

	b := newBuilder(SectionLocal)
	for _, name := range snap.All {
		info, ok := snap.Branches[name]
		if !ok {
			continue
		}
		r := Record{
			Name:    name,
			Ref:     name,
			Section: SectionLocal,
			Current: info.Current,
			Commit:  info.Commit,
			Label:   info.Label,
		}
		if rest, ok := strings.CutPrefix(name, remotePrefix); ok {
			remote, branch, _ := strings.Cut(rest, "/")
			r.Section = remote
			r.Remote = remote
			r.Name = branch
		}
		b.add(r)
	}
	return b.view()
}
