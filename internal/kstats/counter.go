// Package kstats implements the UTF-8 token counter: it scans files or
// directories, segments each line into logical characters, and tallies
// occurrences per token and per tag (usually a file name), with optional
// regex-based furigana stripping that can span a line break. Grounded on
// the teacher's tokenize.go line-scanning loop, replacing its channel-fed
// pipeline with a direct synchronous walk per spec.md §5's single-
// threaded mandate, and implementing the furigana join as the explicit
// state machine spec.md §9 calls for instead of a multi-line regex.
package kstats

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/anzumura/kanji-tools-sub002/internal/kerr"
	"github.com/anzumura/kanji-tools-sub002/internal/ksegment"
)

// Filter decides whether a logical character counts as a token.
type Filter func(s string) bool

// Counter accumulates token counts across one or more add/addFile calls.
type Counter struct {
	filter   Filter
	furigana *regexp.Regexp
	onlyMB   bool

	Counts    map[string]int
	ByTag     map[string]map[string]int
	Errors    int
	Variants  int
	Combining int

	Replacements int
	LastTag      string
}

// New creates a Counter. filter selects which segmented tokens count
// (e.g. kblocks.IsKanji); furigana, if non-nil, is applied to each
// (possibly joined) line before segmentation, per spec.md §4.10's
// "([Kanji|WideLetter])（[Kana]+）" → "$1" stripping rule.
func New(filter Filter, furigana *regexp.Regexp) *Counter {
	return &Counter{
		filter: filter, furigana: furigana, onlyMB: true,
		Counts: map[string]int{}, ByTag: map[string]map[string]int{},
	}
}

// Add segments s (after furigana replacement, if configured) and
// increments the global and, if tag is non-empty, per-tag counts for
// every token the filter accepts.
func (c *Counter) Add(s, tag string) {
	if c.furigana != nil {
		replaced := c.furigana.ReplaceAllString(s, "$1")
		if replaced != s {
			c.Replacements++
			if tag != "" {
				c.LastTag = tag
			}
		}
		s = replaced
	}

	seg := ksegment.New(s, c.onlyMB)
	for _, tok := range seg.All() {
		if !c.filter(tok) {
			continue
		}
		c.Counts[tok]++
		if tag != "" {
			m, ok := c.ByTag[tag]
			if !ok {
				m = map[string]int{}
				c.ByTag[tag] = m
			}
			m[tok]++
		}
	}
	c.Errors += seg.Errors
	c.Variants += seg.Variants
	c.Combining += seg.CombiningMarks
}

// AddFile processes path: a regular file is scanned line by line (with
// the furigana line-join below); a directory is iterated, recursing when
// recurse is true and skipping symlinks. The path's final path component
// is used as the tag, recorded per-token only when addTag is true. If
// fileNames is true, that component is itself added as an extra token.
func (c *Counter) AddFile(path string, addTag, fileNames, recurse bool) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &kerr.IOError{Path: path, Err: err}
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil
	}
	tag := ""
	if addTag {
		tag = filepath.Base(path)
	}
	if fileNames {
		c.Add(filepath.Base(path), tag)
	}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return &kerr.IOError{Path: path, Err: err}
		}
		for _, e := range entries {
			child := filepath.Join(path, e.Name())
			if e.IsDir() && !recurse {
				continue
			}
			if err := c.AddFile(child, addTag, fileNames, recurse); err != nil {
				return err
			}
		}
		return nil
	}
	return c.addRegularFile(path, tag)
}

// addRegularFile scans path line by line. When furigana stripping is
// configured, it applies the one-line look-ahead state machine spec.md
// §4.10 describes: an unclosed opening wide bracket "（" on a line is
// held and joined with the next line up through its closing "）" before
// the combined text is handed to the furigana regex.
func (c *Counter) addRegularFile(path, tag string) error {
	f, err := os.Open(path)
	if err != nil {
		return &kerr.IOError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var pending string
	havePending := false

	for scanner.Scan() {
		line := scanner.Text()
		if c.furigana == nil {
			c.Add(line, tag)
			continue
		}
		if havePending {
			line = pending + "\n" + line
			havePending = false
			pending = ""
		}
		if unclosedOpenBracket(line) {
			pending = line
			havePending = true
			continue
		}
		c.Add(line, tag)
	}
	if havePending {
		c.Add(pending, tag)
	}
	if err := scanner.Err(); err != nil {
		return &kerr.IOError{Path: path, Err: err}
	}
	return nil
}

// unclosedOpenBracket reports whether line's last wide opening bracket
// "（" has no matching closing "）" after it.
func unclosedOpenBracket(line string) bool {
	open := strings.LastIndex(line, "（")
	if open < 0 {
		return false
	}
	closeIdx := strings.LastIndex(line, "）")
	return closeIdx < open
}
