package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/a-h/templ"

	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
	"github.com/MrJamesThe3rd/invoicedash/internal/format"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"currency": format.Currency,
	"date":     format.Date,
	"fieldErrors": func(errs map[string][]string, field string) []string {
		return errs[field]
	},
	"selected": func(a, b string) bool { return a == b },
	"pageURL":  pageURL,
	"inc":      func(n int) int { return n + 1 },
	"dec":      func(n int) int { return n - 1 },
}

var pages = map[string]*template.Template{
	"login":     parse("login.html"),
	"overview":  parse("overview.html"),
	"invoices":  parse("invoices.html"),
	"form":      parse("invoice_form.html"),
	"customers": parse("customers.html"),
	"error":     parse("error.html"),
}

func parse(page string) *template.Template {
	return template.Must(template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+page))
}

// Layout carries what every page's chrome needs.
type Layout struct {
	AppName  string
	Title    string
	UserName string
	Flash    string
}

type LoginPage struct {
	Layout
	Email        string
	ErrorMessage string
}

type OverviewPage struct {
	Layout
	Cards  *dashboard.Cards
	Chart  RevenueChart
	Latest []invoice.LatestInvoice
}

type InvoicesPage struct {
	Layout
	Query       string
	CurrentPage int
	TotalPages  int
	Invoices    []invoice.ListedInvoice
	Pages       []PageLink
}

type FormPage struct {
	Layout
	Action    string
	Submit    string
	Customers []customer.Option
	Values    invoice.FormInput
	State     invoice.State
}

type CustomersPage struct {
	Layout
	Query     string
	Customers []customer.Row
}

type ErrorPage struct {
	Layout
	Message string
}

func Login(data LoginPage) templ.Component {
	return templ.FromGoHTML(pages["login"], data)
}

func Overview(data OverviewPage) templ.Component {
	return templ.FromGoHTML(pages["overview"], data)
}

func Invoices(data InvoicesPage) templ.Component {
	return templ.FromGoHTML(pages["invoices"], data)
}

func InvoiceForm(data FormPage) templ.Component {
	return templ.FromGoHTML(pages["form"], data)
}

func Customers(data CustomersPage) templ.Component {
	return templ.FromGoHTML(pages["customers"], data)
}

func Error(data ErrorPage) templ.Component {
	return templ.FromGoHTML(pages["error"], data)
}

func pageURL(query string, page int) string {
	v := url.Values{}
	if query != "" {
		v.Set("query", query)
	}

	v.Set("page", fmt.Sprint(page))

	return "?" + v.Encode()
}
