package applications

import (
	"fmt"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/web/src/templates/components"
	"github.com/drivncook/backoffice/web/src/templates/layouts"
)

var statusFilters = []api.FranchiseApplicationStatus{
	api.ApplicationPending,
	api.ApplicationApproved,
	api.ApplicationRejected,
}

// ListPage renders the application review queue.
func ListPage(c echo.Context, accent string, active api.FranchiseApplicationStatus, list []api.FranchiseApplication, terms *api.FranchiseTerms) cmp.Node {
	data := layouts.NewPageData(c, "Applications", true, accent)

	rows := make([]cmp.Node, 0, len(list))
	for _, app := range list {
		rows = append(rows, applicationRow(app))
	}
	if len(rows) == 0 {
		rows = append(rows, components.EmptyRow(6, "No applications in this state."))
	}

	return layouts.Base(data,
		g.H1(cmp.Text("Franchise applications")),
		termsCard(terms),
		filterBar(active),
		components.Table([]string{"Applicant", "Note", "Paid", "Submitted", "Status", "Actions"}, rows),
	)
}

// termsCard summarizes the contract applicants signed up under.
func termsCard(terms *api.FranchiseTerms) cmp.Node {
	if terms == nil {
		return nil
	}
	return g.Div(
		g.Class("card"),
		g.H2(cmp.Text("Current terms (v"+terms.Version+")")),
		g.P(g.Strong(cmp.Text("Entry fee: ")), cmp.Text(terms.EntryFeeText)),
		g.P(g.Strong(cmp.Text("Royalty: ")), cmp.Text(terms.RoyaltyText)),
		g.P(g.Strong(cmp.Text("Supply rule: ")), cmp.Text(terms.SupplyRuleText)),
	)
}

func filterBar(active api.FranchiseApplicationStatus) cmp.Node {
	return g.Div(
		g.Class("card"),
		cmp.Map(statusFilters, func(s api.FranchiseApplicationStatus) cmp.Node {
			label := string(s)
			cls := "btn btn-secondary"
			if s == active {
				cls = "btn btn-primary"
			}
			return g.A(
				g.Class(cls),
				g.Href("/franchise-applications?status="+string(s)),
				cmp.Text(label),
			)
		}),
	)
}

func applicationRow(app api.FranchiseApplication) cmp.Node {
	applicant := "—"
	if app.Franchisee != nil {
		applicant = app.Franchisee.FirstName + " " + app.Franchisee.LastName
	}

	paid := "No"
	if app.Paid {
		paid = "Yes"
	}

	return g.Tr(
		g.Td(cmp.Text(applicant)),
		g.Td(cmp.Text(app.Note)),
		g.Td(cmp.Text(paid)),
		g.Td(cmp.Text(app.CreatedAt)),
		g.Td(cmp.Text(string(app.Status))),
		g.Td(actions(app)),
	)
}

func actions(app api.FranchiseApplication) cmp.Node {
	if app.Status != api.ApplicationPending {
		return nil
	}
	return g.Div(
		decisionForm(app.ID, api.ApplicationApproved, "Approve"),
		decisionForm(app.ID, api.ApplicationRejected, "Reject"),
		cmp.If(!app.Paid, entryFeeForm(app.ID)),
	)
}

func decisionForm(id int64, status api.FranchiseApplicationStatus, label string) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action(fmt.Sprintf("/franchise-applications/%d/status", id)),
		g.Input(g.Type("hidden"), g.Name("status"), g.Value(string(status))),
		g.Button(g.Type("submit"), g.Class("btn btn-secondary"), cmp.Text(label)),
	)
}

func entryFeeForm(id int64) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action(fmt.Sprintf("/franchise-applications/%d/payment", id)),
		components.SelectField("Method", "paymentMethod", string(api.PaymentCard),
			[]string{string(api.PaymentCash), string(api.PaymentCard), string(api.PaymentBankTransfer)},
			func(v string) string { return v },
		),
		components.Field("Reference", "paymentRef", "text", ""),
		components.SubmitButton("Mark paid"),
	)
}
