// Package highlight tokenizes source lines with chroma so diff hunks can be
// colored per token.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Token is a run of text sharing one style.
type Token struct {
	Text       string
	Foreground string // hex color, empty for the terminal default
	Bold       bool
}

// Render paints the token's text.
func (t Token) Render(base lipgloss.Style) string {
	s := base
	if t.Foreground != "" {
		s = s.Foreground(lipgloss.Color(t.Foreground))
	}
	if t.Bold {
		s = s.Bold(true)
	}
	return s.Render(t.Text)
}

// Lexer picks a lexer by file name, or nil when chroma has none.
func Lexer(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}

// Lines tokenizes lines as one block so multi-line constructs such as block
// comments color correctly, then splits the tokens back into lines. The
// result always has len(lines) entries. Unknown file types yield one plain
// token per line.
func Lines(filename string, lines []string) [][]Token {
	out := make([][]Token, len(lines))
	lexer := Lexer(filename)
	if lexer == nil {
		for i, l := range lines {
			out[i] = plain(l)
		}
		return out
	}

	iter, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		for i, l := range lines {
			out[i] = plain(l)
		}
		return out
	}

	row := 0
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		st := tokenStyle(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				row++
			}
			if row >= len(out) {
				break
			}
			if part == "" {
				continue
			}
			st.Text = part
			out[row] = append(out[row], st)
		}
	}
	return out
}

func plain(line string) []Token {
	if line == "" {
		return nil
	}
	return []Token{{Text: line}}
}

// tokenStyle maps a chroma token type onto a One Dark flavored color.
func tokenStyle(tt chroma.TokenType) Token {
	switch {
	case tt.InCategory(chroma.Keyword):
		return Token{Foreground: "#C678DD", Bold: true}
	case tt.InCategory(chroma.Comment):
		return Token{Foreground: "#5C6370"}
	case tt.InSubCategory(chroma.String):
		return Token{Foreground: "#98C379"}
	case tt.InSubCategory(chroma.Number):
		return Token{Foreground: "#D19A66"}
	case tt.InCategory(chroma.Operator):
		return Token{Foreground: "#56B6C2"}
	}

	switch tt {
	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return Token{Foreground: "#E5C07B"}
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return Token{Foreground: "#61AFEF"}
	case chroma.NameClass, chroma.NameTag, chroma.NameAttribute, chroma.NameDecorator:
		return Token{Foreground: "#E06C75"}
	}
	return Token{}
}

// ExpandTabs replaces tabs with spaces up to the next multiple of width,
// measuring columns in grapheme clusters.
func ExpandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") || width <= 0 {
		return s
	}

	var b strings.Builder
	col := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteString(cluster)
		col += w
	}
	return b.String()
}
