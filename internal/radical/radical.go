// Package radical loads the 214 official Kanji radicals. Aggregation
// shape (a column-file loader feeding a numbered, ordered index) follows
// the teacher's dictionary.go load-once-at-startup pattern, generalized
// onto internal/kfile's ColumnFile and keyed through
// github.com/emirpasic/gods/v2's treemap so the ascending/no-gap
// invariant spec.md §4.6 demands is a natural iteration order instead of
// a hand-sorted slice (grounded on npillmayer-tyse's dependency on
// gods/v2).
package radical

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"

	"github.com/anzumura/kanji-tools-sub002/internal/kerr"
	"github.com/anzumura/kanji-tools-sub002/internal/kfile"
	"github.com/anzumura/kanji-tools-sub002/internal/klog"
)

// Radical is one of the 214 classical Kanji radicals.
type Radical struct {
	Number    int
	Name      string // primary display name, a single Kanji character
	AltForms  []string
	LongName  string
	Readings  string // space-separated
}

// Less orders Radicals by Number, matching spec.md §3's "equality and
// order by number".
func (r *Radical) Less(other *Radical) bool { return r.Number < other.Number }

var (
	colNumber   = kfile.NewColumn("Number")
	colName     = kfile.NewColumn("Name")
	colLongName = kfile.NewColumn("LongName")
	colReading  = kfile.NewColumn("Reading")
)

// Data is the loaded, indexed radical set.
type Data struct {
	byNumber *treemap.Map[int, *Radical]
	byName   map[string]*Radical
}

// Load reads path (a tab-separated column file with columns
// Number/Name/LongName/Reading) and builds the number and name indexes.
// Rows must be in ascending, gap-free number order: the 1-based row
// count must equal the declared number.
func Load(path string) (*Data, error) {
	cf, err := kfile.Open(path, []*kfile.Column{colNumber, colName, colLongName, colReading}, "\t")
	if err != nil {
		return nil, err
	}
	defer cf.Close()

	d := &Data{byNumber: treemap.New[int, *Radical](), byName: map[string]*Radical{}}
	row := 0
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		row++

		number, err := cf.GetSize(colNumber)
		if err != nil {
			return nil, err
		}
		if number != row {
			return nil, &kerr.DomainError{File: cf.Name(), Line: cf.RowNum(), Column: "Number",
				Value: strconv.Itoa(number), Msg: "radicals must be ordered by 'number'"}
		}

		name, err := cf.Get(colName)
		if err != nil {
			return nil, err
		}
		forms := strings.Fields(name)
		if len(forms) == 0 {
			return nil, &kerr.DomainError{File: cf.Name(), Line: cf.RowNum(), Column: "Name",
				Msg: "radical name must not be empty"}
		}

		longName, err := cf.Get(colLongName)
		if err != nil {
			return nil, err
		}
		reading, err := cf.Get(colReading)
		if err != nil {
			return nil, err
		}

		r := &Radical{Number: number, Name: forms[0], AltForms: forms[1:], LongName: longName, Readings: reading}
		d.byNumber.Put(number, r)
		d.byName[r.Name] = r
	}

	klog.Info("radical", "loaded radicals", map[string]any{"count": d.byNumber.Size(), "file": cf.Name()})
	return d, nil
}

// ByNumber returns the radical with the given number.
func (d *Data) ByNumber(number int) (*Radical, error) {
	if d == nil {
		return nil, &kerr.LookupError{Kind: "Radical", Key: ""}
	}
	r, ok := d.byNumber.Get(number)
	if !ok {
		return nil, &kerr.LookupError{Kind: "Radical number", Key: strconv.Itoa(number)}
	}
	return r, nil
}

// ByName returns the radical whose primary display name is name.
func (d *Data) ByName(name string) (*Radical, error) {
	if d == nil {
		return nil, &kerr.LookupError{Kind: "Radical", Key: ""}
	}
	r, ok := d.byName[name]
	if !ok {
		return nil, &kerr.LookupError{Kind: "Radical name", Key: name}
	}
	return r, nil
}

// Len returns the number of loaded radicals.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return d.byNumber.Size()
}

// All returns every radical in ascending number order.
func (d *Data) All() []*Radical {
	if d == nil {
		return nil
	}
	return d.byNumber.Values()
}
