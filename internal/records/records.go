// Package records turns git snapshots into the sectioned lists the views
// navigate. Every build assigns fresh ids from 0 in the order records are
// added. Selection and navigation work on ids, so the cursor moves in id
// order, which differs from display order when a transform regroups its
// input (a remote branch listed before a local one keeps the lower id).
package records

// Section keys used by the transforms. Remote sections use the remote name.
const (
	SectionLocal     = "local"
	SectionUnstaged  = "unstaged"
	SectionUntracked = "untracked"
	SectionStaged    = "staged"
	SectionConflicts = "merge conflicts"
)

// Record is one selectable entry: a branch, a changed file, a commit or a
// registered repository.
type Record struct {
	ID      int
	Section string
	Name    string
	Current bool

	Commit string // tip or commit hash
	Label  string // branch subject, commit message or repository path
	Status string // porcelain status code of a file
	Remote string // remote name of a remote-tracking branch
	Ref    string // name git knows the record by, when it differs from Name
}

// Section is a named group of records.
type Section struct {
	Key     string
	Records []Record
}

// View is an immutable list of non-empty sections plus an id index.
type View struct {
	sections []Section
	byID     map[int]Record
	total    int
}

// NewView builds a view, dropping empty sections.
func NewView(sections []Section) View {
	v := View{byID: make(map[int]Record)}
	for _, s := range sections {
		if len(s.Records) == 0 {
			continue
		}
		v.sections = append(v.sections, s)
		for _, r := range s.Records {
			v.byID[r.ID] = r
		}
		v.total += len(s.Records)
	}
	return v
}

// Sections returns the sections in display order.
func (v View) Sections() []Section { return v.sections }

// Len is the number of records across all sections.
func (v View) Len() int { return v.total }

// Empty reports whether there is nothing to show.
func (v View) Empty() bool { return v.total == 0 }

// Lookup returns the record with id. A miss returns false.
func (v View) Lookup(id int) (Record, bool) {
	r, ok := v.byID[id]
	return r, ok
}

// Section returns the section with key.
func (v View) Section(key string) (Section, bool) {
	for _, s := range v.sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// Flatten returns every record in display order.
func (v View) Flatten() []Record {
	out := make([]Record, 0, v.total)
	for _, s := range v.sections {
		out = append(out, s.Records...)
	}
	return out
}

// builder keeps sections in first-seen key order while records are added.
type builder struct {
	keys   []string
	groups map[string][]Record
	nextID int
}

func newBuilder(keys ...string) *builder {
	b := &builder{groups: make(map[string][]Record)}
	for _, k := range keys {
		b.ensure(k)
	}
	return b
}

func (b *builder) ensure(key string) {
	if _, ok := b.groups[key]; !ok {
		b.keys = append(b.keys, key)
		b.groups[key] = nil
	}
}

func (b *builder) add(r Record) {
	r.ID = b.nextID
	b.nextID++
	b.ensure(r.Section)
	b.groups[r.Section] = append(b.groups[r.Section], r)
}

func (b *builder) view() View {
	sections := make([]Section, 0, len(b.keys))
	for _, k := range b.keys {
		sections = append(sections, Section{Key: k, Records: b.groups[k]})
	}
	return NewView(sections)
}

// List builds a single section view from recs, numbering them from 0.
func List(key string, recs []Record) View {
	b := newBuilder(key)
	for _, r := range recs {
		r.Section = key
		b.add(r)
	}
	return b.view()
}
