package listview

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/countdown/internal/events"
	"github.com/dmitrijs2005/countdown/internal/timex"
	"github.com/olekukonko/tablewriter"
)

// TextRenderer prints views as plain-text tables.
type TextRenderer struct {
	Loc *time.Location
}

func (r TextRenderer) Render(w io.Writer, v View) {
	if v.Empty {
		if v.Query != "" {
			fmt.Fprintf(w, "No events match %q.\n", v.Query)
			return
		}
		fmt.Fprintln(w, "No events yet. Use \"add\" to create one.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Remaining"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, row := range v.Rows {
		table.Append([]string{row.ID, row.Title, row.Remaining.String()})
		if row.Expanded {
			table.Append([]string{"", "at " + timex.Display(row.TargetTime, r.Loc), events.Link(row.ID)})
		}
	}
	table.Render()

	if v.Query != "" {
		fmt.Fprintf(w, "filter: %q  ", v.Query)
	}
	fmt.Fprintf(w, "sort: %s\n", v.Sort)
}
