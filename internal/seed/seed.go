// Package seed loads the initial users, customers, invoices and revenue from
// CSV files into the database.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

const (
	UsersFile     = "users.csv"
	CustomersFile = "customers.csv"
	InvoicesFile  = "invoices.csv"
	RevenueFile   = "revenue.csv"
)

// invoiceNamespace derives stable ids for invoices listed without one, so
// running the seed twice does not duplicate them.
var invoiceNamespace = uuid.MustParse("6f1c2a8e-4a43-4bcb-9a53-2f7c1f0d3e11")

type User struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

type Customer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

type Invoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64 // Amount in cents
	Status     invoice.Status
	Date       time.Time
}

type Revenue struct {
	Month   string
	Revenue int64
}

type Data struct {
	Users     []User
	Customers []Customer
	Invoices  []Invoice
	Revenue   []Revenue
}

// Load reads the four seed files from fsys. A missing file yields no rows of
// that kind.
func Load(fsys fs.FS) (*Data, error) {
	var (
		data Data
		err  error
	)

	if data.Users, err = loadFile(fsys, UsersFile, []string{"name", "email", "password"}, parseUser); err != nil {
		return nil, err
	}

	if data.Customers, err = loadFile(fsys, CustomersFile, []string{"id", "name", "email", "image_url"}, parseCustomer); err != nil {
		return nil, err
	}

	if data.Invoices, err = loadFile(fsys, InvoicesFile, []string{"customer_id", "amount", "status", "date"}, parseInvoice); err != nil {
		return nil, err
	}

	if data.Revenue, err = loadFile(fsys, RevenueFile, []string{"month", "revenue"}, parseRevenue); err != nil {
		return nil, err
	}

	return &data, nil
}

// record gives access to a CSV row by header name.
type record struct {
	cols map[string]int
	row  []string
}

func (r record) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.row) {
		return ""
	}

	return strings.TrimSpace(r.row[i])
}

func loadFile[T any](fsys fs.FS, name string, required []string, parse func(record) (T, error)) ([]T, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	return parseCSV(name, f, required, parse)
}

func parseCSV[T any](name string, r io.Reader, required []string, parse func(record) (T, error)) ([]T, error) {
	utf8r, err := utf8Reader(name, r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, cell := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(cell))] = i
	}

	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", name, col)
		}
	}

	out := make([]T, 0, len(rows)-1)

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		v, err := parse(record{cols: cols, row: row})
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, i+2, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func optionalID(r record) (uuid.UUID, error) {
	s := r.get("id")
	if s == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}

	return id, nil
}

func parseUser(r record) (User, error) {
	id, err := optionalID(r)
	if err != nil {
		return User{}, err
	}

	u := User{ID: id, Name: r.get("name"), Email: r.get("email"), Password: r.get("password")}
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return User{}, errors.New("name, email and password are required")
	}

	return u, nil
}

func parseCustomer(r record) (Customer, error) {
	id, err := uuid.Parse(r.get("id"))
	if err != nil {
		return Customer{}, fmt.Errorf("invalid id %q: %w", r.get("id"), err)
	}

	c := Customer{ID: id, Name: r.get("name"), Email: r.get("email"), ImageURL: r.get("image_url")}
	if c.Name == "" || c.Email == "" {
		return Customer{}, errors.New("name and email are required")
	}

	return c, nil
}

func parseInvoice(r record) (Invoice, error) {
	id, err := optionalID(r)
	if err != nil {
		return Invoice{}, err
	}

	customerID, err := uuid.Parse(r.get("customer_id"))
	if err != nil {
		return Invoice{}, fmt.Errorf("invalid customer_id %q: %w", r.get("customer_id"), err)
	}

	amount, err := strconv.ParseInt(r.get("amount"), 10, 32)
	if err != nil {
		return Invoice{}, fmt.Errorf("invalid amount %q: %w", r.get("amount"), err)
	}

	status := invoice.Status(strings.ToLower(r.get("status")))
	if !status.Valid() {
		return Invoice{}, fmt.Errorf("invalid status %q", r.get("status"))
	}

	date, err := time.Parse(time.DateOnly, r.get("date"))
	if err != nil {
		return Invoice{}, fmt.Errorf("invalid date %q: %w", r.get("date"), err)
	}

	inv := Invoice{ID: id, CustomerID: customerID, Amount: amount, Status: status, Date: date}

	if inv.ID == uuid.Nil {
		key := fmt.Sprintf("%s|%d|%s|%s", customerID, amount, status, date.Format(time.DateOnly))
		inv.ID = uuid.NewSHA1(invoiceNamespace, []byte(key))
	}

	return inv, nil
}

func parseRevenue(r record) (Revenue, error) {
	month := r.get("month")
	if month == "" || len(month) > 4 {
		return Revenue{}, fmt.Errorf("invalid month %q", month)
	}

	amount, err := strconv.ParseInt(r.get("revenue"), 10, 32)
	if err != nil {
		return Revenue{}, fmt.Errorf("invalid revenue %q: %w", r.get("revenue"), err)
	}

	return Revenue{Month: month, Revenue: amount}, nil
}
