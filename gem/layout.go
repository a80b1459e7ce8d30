// Package gem builds a combined gene expression matrix (genes x samples) from
// per-sample quantification files.
package gem

import (
	"fmt"
	"sort"
	"strings"
)

// Layout describes the fixed shape of a per-sample quantification file: how
// many header lines to discard and which 0-based tab-delimited columns hold
// the gene identifier and the expression value.
type Layout struct {
	SkipRows      int
	ColGene       int
	ColExpression int
}

// MinFields is the smallest field count a data line must have to be usable
// under this layout.
func (l Layout) MinFields() int {
	if l.ColGene > l.ColExpression {
		return l.ColGene + 1
	}

	return l.ColExpression + 1
}

// Layouts names the file shapes we know. GDC STAR counts files carry 6
// header/comment lines; column 1 is gene_name, columns 3-5 are the raw
// counts, and column 6 is tpm_unstranded.
var Layouts = map[string]Layout{
	"gdc-star":     {SkipRows: 6, ColGene: 1, ColExpression: 5},
	"gdc-star-tpm": {SkipRows: 6, ColGene: 1, ColExpression: 6},
}

// NamedLayout looks up a layout by name.
func NamedLayout(name string) (Layout, error) {
	l, exists := Layouts[name]
	if !exists {
		names := make([]string, 0, len(Layouts))
		for m := range Layouts {
			names = append(names, m)
		}
		sort.Strings(names)
		return l, fmt.Errorf("layout %s is not found. Valid layout names include: %s", name, strings.Join(names, ", "))
	}

	return l, nil
}
