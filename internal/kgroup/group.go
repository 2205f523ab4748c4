// Package kgroup loads the two group-data column files: meaning groups
// (a Kanji may belong to several) and pattern groups (a Kanji belongs to
// at most one, globally). Grounded on internal/kanji's aggregator
// loading shape, reusing internal/kfile's ColumnFile the same way.
package kgroup

import (
	"strings"

	"github.com/anzumura/kanji-tools-sub002/internal/kanji"
	"github.com/anzumura/kanji-tools-sub002/internal/kerr"
	"github.com/anzumura/kanji-tools-sub002/internal/kfile"
	"github.com/anzumura/kanji-tools-sub002/internal/klog"
)

// PatternType distinguishes the three ways a PatternGroup's name prefix
// can be read.
type PatternType int

const (
	Family PatternType = iota
	Peer
	Reading
)

// Group is the shared shape of both Meaning and Pattern groups: a
// number, a name, and 2..58 Kanji members. The loaders check the member
// count; they do not reject a Kanji listed twice within one group.
type Group struct {
	Number  int
	Name    string
	Members []kanji.Kanji
}

// MeaningGroup groups Kanji by shared meaning; a Kanji may appear in
// more than one.
type MeaningGroup struct {
	Group
}

// PatternGroup groups Kanji by a shared reading/visual pattern; a Kanji
// may appear in at most one PatternGroup, globally.
type PatternGroup struct {
	Group
	Type PatternType
}

const (
	minMembers = 2
	maxMembers = 58
)

var (
	colNumber  = kfile.NewColumn("Number")
	colName    = kfile.NewColumn("Name")
	colMembers = kfile.NewColumn("Members")
)

// MeaningData is the loaded set of meaning groups.
type MeaningData struct {
	Groups  []*MeaningGroup
	byKanji map[kanji.Kanji][]*MeaningGroup
}

// PatternData is the loaded set of pattern groups.
type PatternData struct {
	Groups  []*PatternGroup
	byKanji map[kanji.Kanji]*PatternGroup
}

// LoadMeaning reads path (meaning-groups.txt) against an already-built
// Kanji aggregator, resolving each member name and dropping unknown
// members with a logged warning.
func LoadMeaning(path string, kd *kanji.Data) (*MeaningData, error) {
	cf, err := kfile.Open(path, []*kfile.Column{colNumber, colName, colMembers}, "\t")
	if err != nil {
		return nil, err
	}
	defer cf.Close()

	d := &MeaningData{byKanji: map[kanji.Kanji][]*MeaningGroup{}}
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		number, name, members, err := readGroupRow(cf, kd)
		if err != nil {
			return nil, err
		}
		if len(members) < minMembers || len(members) > maxMembers {
			return nil, &kerr.RangeError{File: cf.Name(), Line: cf.RowNum(), Field: "Members",
				Value: len(members), Min: minMembers, Max: maxMembers}
		}
		mg := &MeaningGroup{Group: Group{Number: number, Name: name, Members: members}}
		d.Groups = append(d.Groups, mg)
		for _, m := range members {
			d.byKanji[m] = append(d.byKanji[m], mg)
		}
	}
	klog.Info("kgroup", "loaded meaning groups", map[string]any{"count": len(d.Groups)})
	return d, nil
}

// LoadPattern reads path (pattern-groups.txt), deriving each group's
// PatternType from its name prefix and enforcing the one-pattern-group-
// per-Kanji invariant (a repeat is logged, not fatal).
func LoadPattern(path string, kd *kanji.Data) (*PatternData, error) {
	cf, err := kfile.Open(path, []*kfile.Column{colNumber, colName, colMembers}, "\t")
	if err != nil {
		return nil, err
	}
	defer cf.Close()

	d := &PatternData{byKanji: map[kanji.Kanji]*PatternGroup{}}
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		number, err := cf.GetSize(colNumber)
		if err != nil {
			return nil, err
		}
		name, err := cf.Get(colName)
		if err != nil {
			return nil, err
		}
		membersRaw, err := cf.Get(colMembers)
		if err != nil {
			return nil, err
		}

		ptype, family, name := parsePatternName(name)
		tokens := strings.Fields(membersRaw)
		if family != "" {
			tokens = append([]string{family}, tokens...)
		}

		var members []kanji.Kanji
		for _, tok := range tokens {
			k, err := kd.FindByName(tok)
			if err != nil {
				klog.Warn("kgroup", "dropping unknown pattern group member",
					map[string]any{"file": cf.Name(), "line": cf.RowNum(), "member": tok})
				continue
			}
			members = append(members, k)
		}
		if len(members) < minMembers || len(members) > maxMembers {
			return nil, &kerr.RangeError{File: cf.Name(), Line: cf.RowNum(), Field: "Members",
				Value: len(members), Min: minMembers, Max: maxMembers}
		}

		pg := &PatternGroup{Group: Group{Number: number, Name: name, Members: members}, Type: ptype}
		for _, m := range members {
			if _, exists := d.byKanji[m]; exists {
				klog.Warn("kgroup", "Kanji already belongs to a pattern group",
					map[string]any{"file": cf.Name(), "line": cf.RowNum(), "member": m.Name()})
				continue
			}
			d.byKanji[m] = pg
		}
		d.Groups = append(d.Groups, pg)
	}
	klog.Info("kgroup", "loaded pattern groups", map[string]any{"count": len(d.Groups)})
	return d, nil
}

func readGroupRow(cf *kfile.ColumnFile, kd *kanji.Data) (int, string, []kanji.Kanji, error) {
	number, err := cf.GetSize(colNumber)
	if err != nil {
		return 0, "", nil, err
	}
	name, err := cf.Get(colName)
	if err != nil {
		return 0, "", nil, err
	}
	membersRaw, err := cf.Get(colMembers)
	if err != nil {
		return 0, "", nil, err
	}
	var members []kanji.Kanji
	for _, tok := range strings.Fields(membersRaw) {
		k, err := kd.FindByName(tok)
		if err != nil {
			klog.Warn("kgroup", "dropping unknown meaning group member",
				map[string]any{"file": cf.Name(), "line": cf.RowNum(), "member": tok})
			continue
		}
		members = append(members, k)
	}
	return number, name, members, nil
}

// parsePatternName reads spec.md §4.9's name-prefix grammar: a leading
// "：" means Peer; "X：Y" where X is a single Kanji means Family (X is
// returned to be prepended to the member list); anything else is
// Reading.
func parsePatternName(name string) (PatternType, string, string) {
	const sep = "："
	if strings.HasPrefix(name, sep) {
		return Peer, "", strings.TrimPrefix(name, sep)
	}
	if idx := strings.Index(name, sep); idx > 0 {
		before := name[:idx]
		if len([]rune(before)) == 1 {
			return Family, before, name[idx+len(sep):]
		}
	}
	return Reading, "", name
}
