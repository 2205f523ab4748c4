// Command kanjistats is a thin CLI shell over internal/kstats: it walks
// the files or directories given as arguments, counts Kanji tokens, and
// prints the results. Flag surface mirrors cmd/kanjiconvert and the
// teacher's main.go exit-on-error shape, without the teacher's
// dictionary/tokenizer pipeline.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/anzumura/kanji-tools-sub002/internal/kblocks"
	"github.com/anzumura/kanji-tools-sub002/internal/klog"
	"github.com/anzumura/kanji-tools-sub002/internal/kstats"
)

// Options is the flat, struct-driven CLI surface spec.md §6.2 and
// SPEC_FULL.md §4.13 describe.
type Options struct {
	DataDir  string
	Debug    bool
	Info     bool
	Count    bool
	Tag      bool
	Names    bool
	Recurse  bool
	Furigana bool
}

// furiganaPattern matches a single wide Kanji or letter immediately
// followed by a parenthesized run of Kana, per spec.md §4.10's
// "([Kanji|WideLetter])（[Kana]+）" rule.
var furiganaPattern = regexp.MustCompile(`([\p{Han}\x{FF21}-\x{FF3A}\x{FF41}-\x{FF5A}])（[\x{3041}-\x{30FF}ー\n]+）`)

func parseOptions(args []string) (*Options, []string) {
	fs := flag.NewFlagSet("kanjistats", flag.ExitOnError)
	o := &Options{}
	fs.StringVar(&o.DataDir, "data", "", "path to the bundled Kanji data directory")
	fs.BoolVar(&o.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&o.Info, "info", false, "accepted but currently has no effect")
	fs.BoolVar(&o.Count, "c", true, "count tokens")
	fs.BoolVar(&o.Tag, "tag", false, "attribute counts per source file")
	fs.BoolVar(&o.Names, "names", false, "also count each file name as a token")
	fs.BoolVar(&o.Recurse, "r", false, "recurse into subdirectories")
	fs.BoolVar(&o.Furigana, "furigana", true, "strip parenthesized furigana before counting")
	fs.Parse(args)
	return o, fs.Args()
}

func main() {
	opts, rest := parseOptions(os.Args[1:])
	klog.SetLevel(opts.Debug)

	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: kanjistats [-r] [-tag] [-names] <path>...")
		os.Exit(1)
	}

	var furigana *regexp.Regexp
	if opts.Furigana {
		furigana = furiganaPattern
	}
	filter := func(s string) bool { return kblocks.IsKanji(s, true) }
	counter := kstats.New(filter, furigana)

	for _, path := range rest {
		if err := counter.AddFile(path, opts.Tag, opts.Names, opts.Recurse); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	printCounts(counter)
}

func printCounts(c *kstats.Counter) {
	type row struct {
		token string
		count int
	}
	rows := make([]row, 0, len(c.Counts))
	for tok, n := range c.Counts {
		rows = append(rows, row{tok, n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].token < rows[j].token
	})
	for _, r := range rows {
		fmt.Printf("%s\t%d\n", r.token, r.count)
	}
	fmt.Fprintf(os.Stderr, "total unique: %d, errors: %d, variants: %d, combining: %d\n",
		len(rows), c.Errors, c.Variants, c.Combining)
}
