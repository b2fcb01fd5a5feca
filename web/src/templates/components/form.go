package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Field renders a labelled text-like input.
func Field(label, name, typ, value string) cmp.Node {
	return g.Div(
		g.Class("field"),
		g.Label(g.For(name), cmp.Text(label)),
		g.Input(g.Type(typ), g.Name(name), g.ID(name), g.Value(value)),
	)
}

// SelectField renders a labelled select. Options map value to display text;
// order follows the values slice.
func SelectField(label, name, selected string, values []string, display func(string) string) cmp.Node {
	return g.Div(
		g.Class("field"),
		g.Label(g.For(name), cmp.Text(label)),
		g.Select(
			g.Name(name), g.ID(name),
			cmp.Map(values, func(v string) cmp.Node {
				return g.Option(
					g.Value(v),
					cmp.If(v == selected, g.Selected()),
					cmp.Text(display(v)),
				)
			}),
		),
	)
}

// SubmitButton renders the primary form action.
func SubmitButton(label string) cmp.Node {
	return g.Button(g.Type("submit"), g.Class("btn btn-primary"), cmp.Text(label))
}
