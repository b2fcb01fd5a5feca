package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
	hx "maragu.dev/gomponents-htmx"
)

// navLink renders one top navigation entry.
func navLink(href, label string) cmp.Node {
	return g.A(g.Class("nav-link"), g.Href(href), cmp.Text(label))
}

// Nav renders the top navigation bar. The oob flag marks the fragment for
// an htmx out-of-band swap, used when the hub pushes a refreshed bar to
// already-open pages after the auth session changes.
func Nav(authenticated, oob bool) cmp.Node {
	var attrs []cmp.Node
	attrs = append(attrs, g.ID("main-nav"), g.Class("main-nav"))
	if oob {
		attrs = append(attrs, hx.SwapOOB("outerHTML"))
	}

	if !authenticated {
		return g.Nav(
			cmp.Group(attrs),
			g.A(g.Class("brand"), g.Href("/auth/login"), cmp.Text("Driv'n Cook")),
			navLink("/auth/login", "Sign in"),
		)
	}

	return g.Nav(
		cmp.Group(attrs),
		g.A(g.Class("brand"), g.Href("/"), cmp.Text("Driv'n Cook")),
		navLink("/", "Dashboard"),
		navLink("/franchisees", "Franchisees"),
		navLink("/franchise-applications", "Applications"),
		navLink("/warehouses", "Warehouses"),
		navLink("/supply-orders", "Supply orders"),
		navLink("/appointments", "Appointments"),
		navLink("/trucks", "Trucks"),
		navLink("/incidents", "Incidents"),
		navLink("/reports", "Reports"),
		navLink("/profile", "Profile"),
		g.A(g.Class("nav-link logout"), g.Href("/auth/logout"), cmp.Text("Log out")),
	)
}
