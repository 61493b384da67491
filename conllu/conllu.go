// Package conllu reads dependency-annotated corpora in CoNLL-U (and
// CoNLL-X) format into head arrays.
//
// Only the ID, FORM and HEAD columns are used. Comment lines (#...),
// multiword token ranges (1-2) and empty nodes (1.1) are skipped; a blank
// line ends a sentence.
package conllu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// RootHead is stored in Heads[0] of every sentence.
const RootHead = -1

const (
	colID   = 0
	colForm = 1
	colHead = 6
	minCols = colHead + 1
)

// ErrMalformed indicates a token line that cannot be read. It is wrapped
// with the line number.
var ErrMalformed = errors.New("conllu: malformed line")

// Sentence is one annotated sentence. Tokens[0] and Heads[0] describe the
// synthetic root; Heads[i] is the parent of token i exactly as annotated
// (it is not range-checked here).
type Sentence struct {
	Tokens []string
	Heads  []int
}

// Len returns the number of real tokens.
func (s Sentence) Len() int { return len(s.Heads) - 1 }

const rootForm = "<root>"

func newSentence() Sentence {
	return Sentence{Tokens: []string{rootForm}, Heads: []int{RootHead}}
}

// Read parses every sentence in r.
//
// Errors:
//   - ErrMalformed for lines with fewer than 7 columns or a non-integer HEAD.
//   - any error from r.
func Read(r io.Reader) ([]Sentence, error) {
	var (
		out  []Sentence
		cur  = newSentence()
		line string
		no   int
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur)
		}
		cur = newSentence()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		no++
		line = strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < minCols {
			return nil, fmt.Errorf("line %d: %d columns: %w", no, len(fields), ErrMalformed)
		}
		if strings.ContainsAny(fields[colID], "-.") {
			continue
		}
		head, err := strconv.Atoi(fields[colHead])
		if err != nil {
			return nil, fmt.Errorf("line %d: head %q: %w", no, fields[colHead], ErrMalformed)
		}
		cur.Tokens = append(cur.Tokens, fields[colForm])
		cur.Heads = append(cur.Heads, head)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("conllu: read: %w", err)
	}
	flush()

	return out, nil
}

// Lengths returns the real-token count of every sentence.
func Lengths(sents []Sentence) []int {
	out := make([]int, len(sents))
	for i, s := range sents {
		out[i] = s.Len()
	}

	return out
}

// IsPunct reports whether every rune of token is Unicode punctuation.
// The empty token is vacuously punctuation.
func IsPunct(token string) bool {
	for _, r := range token {
		if !unicode.IsPunct(r) {
			return false
		}
	}

	return true
}
