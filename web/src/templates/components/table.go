package components

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Table renders a data table from a header row and pre-built body rows.
func Table(headers []string, rows []cmp.Node) cmp.Node {
	return g.Table(
		g.Class("data-table"),
		g.THead(g.Tr(
			cmp.Map(headers, func(h string) cmp.Node {
				return g.Th(cmp.Text(h))
			}),
		)),
		g.TBody(cmp.Group(rows)),
	)
}

// EmptyRow renders the placeholder shown when a listing has no entries.
func EmptyRow(span int, message string) cmp.Node {
	return g.Tr(g.Td(
		cmp.Attr("colspan", strconv.Itoa(span)),
		g.Class("empty"),
		cmp.Text(message),
	))
}
