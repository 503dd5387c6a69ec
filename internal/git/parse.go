package git

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var trackingCounts = regexp.MustCompile(`(ahead|behind) (\d+)`)

// parseStatus reads `git status --porcelain=v1 --branch -z` output.
func parseStatus(out string) *StatusSnapshot {
	snap := &StatusSnapshot{}
	fields := strings.Split(out, "\x00")

	for i := 0; i < len(fields); i++ {
		entry := fields[i]
		if entry == "" {
			continue
		}
		if strings.HasPrefix(entry, "## ") {
			parseBranchHeader(snap, entry[3:])
			continue
		}
		if len(entry) < 4 {
			continue
		}

		f := FileStatus{Index: entry[0], WorkingDir: entry[1], Path: entry[3:]}
		if f.Index == 'R' || f.Index == 'C' {
			if i+1 < len(fields) {
				f.From = fields[i+1]
				i++
			}
		}
		if f.Index == '!' {
			continue
		}
		snap.Files = append(snap.Files, f)
		classifyFile(snap, f)
	}
	return snap
}

func classifyFile(snap *StatusSnapshot, f FileStatus) {
	x, y := f.Index, f.WorkingDir
	if x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D') {
		snap.Conflicted = append(snap.Conflicted, f.Path)
		return
	}
	if x == '?' {
		snap.NotAdded = append(snap.NotAdded, f.Path)
		return
	}
	if x == 'M' || y == 'M' || y == 'T' {
		snap.Modified = append(snap.Modified, f.Path)
	}
	if x == 'D' || y == 'D' {
		snap.Deleted = append(snap.Deleted, f.Path)
	}
	if strings.IndexByte("MADRCT", x) >= 0 {
		snap.Staged = append(snap.Staged, f.Path)
	}
}

// parseBranchHeader reads the text after "## ", for example
// "main...origin/main [ahead 1, behind 2]".
func parseBranchHeader(snap *StatusSnapshot, header string) {
	if rest, ok := strings.CutPrefix(header, "No commits yet on "); ok {
		snap.Current = rest
		return
	}
	if rest, ok := strings.CutPrefix(header, "Initial commit on "); ok {
		snap.Current = rest
		return
	}
	if strings.HasPrefix(header, "HEAD (no branch)") {
		snap.Current = "HEAD"
		snap.Detached = true
		return
	}

	refs, counts, _ := strings.Cut(header, " [")
	local, remote, _ := strings.Cut(refs, "...")
	snap.Current = local
	snap.Tracking = remote

	for _, m := range trackingCounts.FindAllStringSubmatch(counts, -1) {
		n, _ := strconv.Atoi(m[2])
		if m[1] == "ahead" {
			snap.Ahead = n
		} else {
			snap.Behind = n
		}
	}
}

const branchFormat = "%(HEAD)%00%(refname)%00%(objectname:short)%00%(contents:subject)"

// parseBranches reads `git for-each-ref --format=<branchFormat>` output over
// refs/heads and refs/remotes.
func parseBranches(out string) *BranchSnapshot {
	snap := &BranchSnapshot{Branches: make(map[string]BranchInfo)}
	for line := range strings.SplitSeq(out, "\n") {
		parts := strings.SplitN(line, "\x00", 4)
		if len(parts) != 4 {
			continue
		}
		name, ok := branchName(parts[1])
		if !ok {
			continue
		}
		info := BranchInfo{
			Name:    name,
			Current: parts[0] == "*",
			Commit:  parts[2],
			Label:   parts[3],
		}
		if info.Current {
			snap.Current = name
		}
		snap.All = append(snap.All, name)
		snap.Branches[name] = info
	}
	return snap
}

// branchName turns a full ref into the name twig lists: "main" for
// refs/heads/main and "remotes/origin/main" for refs/remotes/origin/main.
// Symbolic remote HEADs are skipped.
func branchName(ref string) (string, bool) {
	if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
		return name, name != ""
	}
	if name, ok := strings.CutPrefix(ref, "refs/remotes/"); ok {
		if strings.HasSuffix(name, "/HEAD") || !strings.Contains(name, "/") {
			return "", false
		}
		return "remotes/" + name, true
	}
	return "", false
}

const logFormat = "%x00%H%x00%h%x00%s%x00%an%x00%at"

// parseLog reads `git log --graph --format=<logFormat>` output.
func parseLog(out string) []LogEntry {
	var entries []LogEntry
	for line := range strings.SplitSeq(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\x00")
		if len(parts) != 6 {
			entries = append(entries, LogEntry{Graph: strings.TrimRight(line, " ")})
			continue
		}
		e := LogEntry{
			Graph:     parts[0],
			Hash:      parts[1],
			ShortHash: parts[2],
			Message:   parts[3],
			Author:    parts[4],
		}
		if secs, err := strconv.ParseInt(parts[5], 10, 64); err == nil {
			e.Time = time.Unix(secs, 0)
		}
		entries = append(entries, e)
	}
	return entries
}

func parseLines(out string) []string {
	var lines []string
	for line := range strings.SplitSeq(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
