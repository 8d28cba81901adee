package ofx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rfmachado/backoffice/internal/encoding"
	"github.com/rfmachado/backoffice/internal/transaction"
)

// statement transaction list location inside the OFX tree
var tranListPath = []string{"OFX", "BANKMSGSRSV1", "STMTTRNRS", "STMTRS", "BANKTRANLIST"}

// Parse decodes an OFX statement into entries. The reader may be in any
// encoding a bank exports; it is normalized to UTF-8 before parsing.
//
// Records without a parseable amount, or carrying a date that does not parse,
// are skipped rather than failing the whole import. A record with no date at
// all is kept with a zero date.
func Parse(r io.Reader) ([]Entry, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("normalizing statement encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	content := string(raw)

	// The body starts at the root marker; anything before it (the OFX
	// colon-separated header block) is ignored.
	start := markerIndex(content)
	if start < 0 {
		return nil, ErrMalformedStatement
	}

	root := parseTree(tokenize(content[start:]))

	list := root.walk(tranListPath)
	if list == nil {
		return []Entry{}, nil
	}

	var entries []Entry

	for _, record := range list.all("STMTTRN") {
		entry, ok := entryFrom(record)
		if !ok {
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// markerIndex finds the <OFX> root tag, case-insensitively, by byte offset.
func markerIndex(s string) int {
	for i := 0; i+5 <= len(s); i++ {
		if strings.EqualFold(s[i:i+5], "<OFX>") {
			return i
		}
	}

	return -1
}

func entryFrom(record *node) (Entry, bool) {
	var date time.Time

	if raw := record.value("DTPOSTED"); raw != "" {
		parsed, ok := parseDate(raw)
		if !ok {
			return Entry{}, false
		}

		date = parsed
	}

	cents, ok := parseAmount(record.value("TRNAMT"))
	if !ok {
		return Entry{}, false
	}

	desc := record.value("MEMO")
	if desc == "" {
		desc = record.value("NAME")
	}

	kind := transaction.TypeExpense
	if cents > 0 {
		kind = transaction.TypeIncome
	}

	return Entry{
		ExternalID:  record.value("FITID"),
		Date:        date,
		AmountCents: cents,
		Description: desc,
		Type:        kind,
	}, true
}

// parseDate reads the calendar date from an OFX timestamp such as
// 20260315120000[-3:BRT]. Time of day and timezone suffix are discarded.
func parseDate(s string) (time.Time, bool) {
	digits := s

	for i, r := range s {
		if r < '0' || r > '9' {
			digits = s[:i]
			break
		}
	}

	if len(digits) < 8 {
		return time.Time{}, false
	}

	t, err := time.Parse("20060102", digits[:8])
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseAmount converts an OFX amount to signed cents. Both decimal point and
// decimal comma occur in the wild.
func parseAmount(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}

	return d.Shift(2).Round(0).IntPart(), true
}

type token struct {
	name    string // tag name, empty for text tokens
	closing bool
	text    string
}

// tokenize splits the OFX body into tag and text tokens. Bare & characters,
// which banks emit without escaping, survive as literal text.
func tokenize(s string) []token {
	var tokens []token

	for len(s) > 0 {
		open := strings.IndexByte(s, '<')
		if open < 0 {
			if text := strings.TrimSpace(s); text != "" {
				tokens = append(tokens, token{text: unescape(text)})
			}

			break
		}

		if text := strings.TrimSpace(s[:open]); text != "" {
			tokens = append(tokens, token{text: unescape(text)})
		}

		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			break
		}

		name := s[open+1 : open+end]

		closing := strings.HasPrefix(name, "/")
		if closing {
			name = name[1:]
		}

		tokens = append(tokens, token{name: strings.ToUpper(strings.TrimSpace(name)), closing: closing})
		s = s[open+end+1:]
	}

	return tokens
}

var entityReplacer = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&apos;", "'", "&quot;", `"`)

func unescape(s string) string {
	return entityReplacer.Replace(s)
}

type node struct {
	name     string
	text     string
	children []*node
}

// parseTree builds the statement tree. A tag immediately followed by text is
// a leaf and is never pushed on the open stack, so the omitted closing tags
// of the SGML flavor resolve naturally. Explicit closing tags pop back to
// their matching open, tolerating unbalanced input.
func parseTree(tokens []token) *node {
	root := &node{}
	stack := []*node{root}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case tok.closing:
			for j := len(stack) - 1; j > 0; j-- {
				if stack[j].name == tok.name {
					stack = stack[:j]
					break
				}
			}

		case tok.name != "":
			child := &node{name: tok.name}

			top := stack[len(stack)-1]
			top.children = append(top.children, child)

			if i+1 < len(tokens) && tokens[i+1].name == "" {
				child.text = tokens[i+1].text
				i++
			} else {
				stack = append(stack, child)
			}

		default:
			// Stray text between aggregates carries no field. Drop it.
		}
	}

	return root
}

// walk descends the tree through the named aggregates, taking the first
// child at each level.
func (n *node) walk(path []string) *node {
	current := n

	for _, name := range path {
		next := current.first(name)
		if next == nil {
			return nil
		}

		current = next
	}

	return current
}

func (n *node) first(name string) *node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}

	return nil
}

// all returns every direct child with the given name, so a single record and
// a sequence of records read the same way.
func (n *node) all(name string) []*node {
	var out []*node

	for _, child := range n.children {
		if child.name == name {
			out = append(out, child)
		}
	}

	return out
}

func (n *node) value(name string) string {
	if child := n.first(name); child != nil {
		return child.text
	}

	return ""
}
