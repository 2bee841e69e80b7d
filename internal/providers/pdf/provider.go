// Package pdf renders printable quote documents with maroto.
package pdf

import (
	"context"
	"io"
)

type Provider interface {
	GenerateQuote(ctx context.Context, data QuoteDocument) (io.Reader, error)
}

type QuoteDocument struct {
	ShopName  string
	Reference string
	IssueDate string
	Status    string

	CustomerName  string
	CustomerEmail string
	CompanyName   string

	Note string

	Items []QuoteLine

	Subtotal        string
	DiscountPercent string
	Total           string
}

type QuoteLine struct {
	Description string
	Qty         int
	UnitPrice   string
	Amount      string
}
