// Package kfile implements the two bundled-data loaders spec.md §4.4 and
// §4.5 describe: one-per-line/space-separated list files, and tab-
// separated column files with a header row. Structure follows the
// teacher's dictionary.go load-once-at-startup shape (sync.Once-guarded
// package state) generalized into an explicit LoaderContext per spec.md
// §9's design note ("pass a mutable LoaderContext through the loading
// pipeline; drop it after loading completes") instead of package globals.
package kfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anzumura/kanji-tools-sub002/internal/kerr"
	"github.com/anzumura/kanji-tools-sub002/internal/ktutf8"
)

// FileType selects how a list file's lines are tokenized.
type FileType int

const (
	OnePerLine FileType = iota
	MultiplePerLine
)

// MaxListEntries is the maximum number of entries a single list file may
// contain (spec.md §4.4).
const MaxListEntries = 65534

// UniqueSet tracks which file first claimed a token, so later insertions
// of the same token from a different file or a different typed sublist
// can be reported as a duplicate.
type UniqueSet map[string]string

// LoaderContext threads the per-type and global uniqueness sets through
// list-file loading. Callers create one per aggregator run and discard it
// once loading completes — the in-source analogue of the teardown hook
// spec.md §5 calls "clearUniqueCheckData".
type LoaderContext struct {
	perType map[string]UniqueSet
	global  UniqueSet
}

// NewLoaderContext creates an empty context.
func NewLoaderContext() *LoaderContext {
	return &LoaderContext{perType: map[string]UniqueSet{}, global: UniqueSet{}}
}

func (c *LoaderContext) typeSet(typeKey string) UniqueSet {
	s, ok := c.perType[typeKey]
	if !ok {
		s = UniqueSet{}
		c.perType[typeKey] = s
	}
	return s
}

// List is an indexed, 1-based collection of tokens loaded from a list file.
type List struct {
	Name    string
	TypeKey string // JlptLevel / KenteiKyu identifier, "" for untyped lists
	tokens  []string
	index   map[string]int
}

// Len returns the number of tokens loaded.
func (l *List) Len() int { return len(l.tokens) }

// Get returns the 1-based i'th token.
func (l *List) Get(i int) string { return l.tokens[i-1] }

// IndexOf returns the 1-based index of token, or 0 if absent.
func (l *List) IndexOf(token string) int { return l.index[token] }

// Tokens returns every token in load order.
func (l *List) Tokens() []string { return l.tokens }

// Exists reports whether token was loaded by this list.
func (l *List) Exists(token string) bool { return l.index[token] > 0 }

// LoadList loads path as a FileType-shaped list file. typeKey, if
// non-empty, is the JLPT level or Kentei kyū this file belongs to; all
// files sharing a typeKey share one uniqueness set, while untyped lists
// (typeKey == "") share the context's single global uniqueness set (used
// only by the frequency list, per spec.md §4.4).
func LoadList(path string, ftype FileType, ctx *LoaderContext, typeKey string) (*List, error) {
	if filepath.Ext(path) == "" {
		path += ".txt"
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &kerr.IOError{Path: path, Err: err}
	}
	defer f.Close()

	name := filepath.Base(path)
	l := &List{Name: name, TypeKey: typeKey, index: map[string]int{}}
	fileLocal := map[string]bool{}

	unique := ctx.global
	if typeKey != "" {
		unique = ctx.typeSet(typeKey)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		var tokens []string
		if ftype == OnePerLine {
			tokens = []string{line}
		} else {
			tokens = strings.Fields(line)
		}
		for _, tok := range tokens {
			if v, _ := ktutf8.ValidateMBUtf8([]byte(tok), true); v != ktutf8.Valid {
				return nil, &kerr.FormatError{File: name, Line: lineNo,
					Msg: fmt.Sprintf("'%s' is not a single multi-byte character", tok)}
			}
			if fileLocal[tok] {
				return nil, &kerr.DomainError{File: name, Line: lineNo, Value: tok,
					Msg: "duplicate entry in file"}
			}
			fileLocal[tok] = true
			if owner, exists := unique[tok]; exists && owner != name {
				return nil, &kerr.DomainError{File: name, Line: lineNo, Value: tok,
					Msg: fmt.Sprintf("already in %s", owner)}
			}
			unique[tok] = name
			l.tokens = append(l.tokens, tok)
			l.index[tok] = len(l.tokens)
			if len(l.tokens) > MaxListEntries {
				return nil, &kerr.RangeError{File: name, Line: lineNo, Field: "entries",
					Value: len(l.tokens), Min: 0, Max: MaxListEntries}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &kerr.IOError{Path: path, Err: err}
	}
	return l, nil
}
