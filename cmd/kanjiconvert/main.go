// Command kanjiconvert is a thin CLI shell over internal/kana's
// converter: it converts each argument from Rōmaji to Hiragana and prints
// the result, one line per argument. Flag surface follows spec.md §6.2 and the
// teacher's main.go exit-on-error shape, without the teacher's
// dictionary/tokenizer pipeline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anzumura/kanji-tools-sub002/internal/kana"
	"github.com/anzumura/kanji-tools-sub002/internal/klog"
)

// Options is the flat, struct-driven CLI surface spec.md §6.2 and
// SPEC_FULL.md §4.13 describe.
type Options struct {
	DataDir string
	Debug   bool
	Info    bool
	Count   bool
}

func parseOptions(args []string) (*Options, []string) {
	fs := flag.NewFlagSet("kanjiconvert", flag.ExitOnError)
	o := &Options{}
	fs.StringVar(&o.DataDir, "data", "", "path to the bundled Kanji data directory")
	fs.BoolVar(&o.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&o.Info, "info", false, "accepted but currently has no effect")
	fs.BoolVar(&o.Count, "c", false, "accepted but currently has no effect")
	fs.Parse(args)
	return o, fs.Args()
}

func main() {
	opts, rest := parseOptions(os.Args[1:])
	klog.SetLevel(opts.Debug)

	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: kanjiconvert [-debug] <romaji>...")
		os.Exit(1)
	}

	for _, arg := range rest {
		out := kana.Convert(arg, kana.Romaji, kana.Hiragana, kana.None)
		fmt.Println(out)
	}
}
