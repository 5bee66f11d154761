package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/maxpoletaev/dupskip/skiplist"
)

// renderList prints every level of the list with its entries. Entries that
// are not the first of their key are marked with an asterisk.
func renderList(out io.Writer, list *skiplist.Skiplist[int, int]) {
	fmt.Fprintf(out, "Skiplist has %d nodes.\n", list.Size())

	levels := list.Dump()
	if len(levels) == 0 {
		return
	}

	rows := make([][]string, 0, len(levels))

	for _, level := range levels {
		entries := make([]string, len(level.Entries))

		for i, e := range level.Entries {
			mark := ""
			if e.Duplicate {
				mark = "*"
			}

			entries[i] = fmt.Sprintf("(%d, %d)%s", e.Key, e.Value, mark)
		}

		rows = append(rows, []string{
			strconv.Itoa(level.Level),
			strconv.Itoa(len(level.Entries)),
			strings.Join(entries, "->"),
		})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Level", "Count", "Entries"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// renderLevelCounts prints the population of every level, along with its
// ratio to the population of the level above.
func renderLevelCounts(out io.Writer, list *skiplist.Skiplist[int, int]) {
	levels := list.Dump()
	rows := make([][]string, 0, len(levels))

	for i, level := range levels {
		ratio := "-"
		if i > 0 && len(levels[i-1].Entries) > 0 {
			ratio = fmt.Sprintf("%.2f", float64(len(level.Entries))/float64(len(levels[i-1].Entries)))
		}

		rows = append(rows, []string{
			strconv.Itoa(level.Level),
			strconv.Itoa(len(level.Entries)),
			ratio,
		})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Level", "Nodes", "Ratio"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
