package ifc

import (
	"fmt"
	"slices"
	"strings"
)

type KindStats struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Records int    `json:"records" yaml:"records"`
	Size    int    `json:"size" yaml:"size"`
}

type Stats struct {
	Records int         `json:"records" yaml:"records"`
	Size    int         `json:"size" yaml:"size"`
	MaxID   ID          `json:"max_id" yaml:"max_id"`
	Kinds   []KindStats `json:"kinds" yaml:"kinds"`
}

// Stats counts records and rendered attribute bytes per keyword. Kinds are
// sorted by descending record count, then by keyword.
func (doc *Document) Stats() Stats {
	byKeyword := make(map[string]*KindStats)
	var result Stats
	buf := renderBufPool.Get().([]byte)
	for _, rec := range doc.store.All() {
		buf = rec.AppendAttrs(buf[:0])
		kw := rec.Keyword()
		ks := byKeyword[kw]
		if ks == nil {
			ks = &KindStats{Keyword: kw}
			byKeyword[kw] = ks
		}
		ks.Records++
		ks.Size += len(buf)
		result.Records++
		result.Size += len(buf)
	}
	releaseRenderBuf(buf)
	result.MaxID = doc.store.Max()

	result.Kinds = make([]KindStats, 0, len(byKeyword))
	for _, ks := range byKeyword {
		result.Kinds = append(result.Kinds, *ks)
	}
	slices.SortFunc(result.Kinds, func(a, b KindStats) int {
		if a.Records != b.Records {
			return b.Records - a.Records
		}
		return strings.Compare(a.Keyword, b.Keyword)
	})
	return result
}

type DumpFlags uint64

const (
	DumpHeader = DumpFlags(1 << iota)
	DumpStats
	DumpRecords

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)
)

var (
	dumpSep1 = strings.Repeat("=", 80)
	dumpSep2 = strings.Repeat("-", 60)
)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

// Dump returns a human-readable listing for debugging and tests.
func (doc *Document) Dump(f DumpFlags) string {
	var w strings.Builder
	if f.Contains(DumpHeader) {
		fmt.Fprintln(&w, dumpSep1)
		fmt.Fprintf(&w, "%s %q (%d records)\n", strings.Join(doc.Header.Schemas, ","), doc.Header.Name, doc.store.Len())
	}
	if f.Contains(DumpStats) {
		s := doc.Stats()
		fmt.Fprintln(&w, dumpSep2)
		for _, ks := range s.Kinds {
			fmt.Fprintf(&w, "%s %6d records %9d bytes\n", rpad(ks.Keyword, 40, ' '), ks.Records, ks.Size)
		}
		fmt.Fprintf(&w, "%s %6d records %9d bytes, max %v\n", rpad("total", 40, ' '), s.Records, s.Size, s.MaxID)
	}
	if f.Contains(DumpRecords) {
		fmt.Fprintln(&w, dumpSep2)
		for id, rec := range doc.store.All() {
			fmt.Fprintln(&w, RenderRecord(id, rec))
		}
	}
	return w.String()
}
