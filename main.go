package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alapierre/go-invoicegen-client/invoicegen"
	"github.com/alapierre/go-invoicegen-client/invoicegen/batch"
	"github.com/alapierre/go-invoicegen-client/invoicegen/util"
	"github.com/alapierre/go-invoicegen-client/png"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Generates a sample invoice, or one invoice per JSON file given as argument.
func main() {

	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := invoicegen.LoadConfig()
	if err != nil {
		panic(err)
	}
	cfg.APIKey = util.GetEnvOrFailed("INVOICEGEN_API_KEY")

	client, err := invoicegen.NewClient(cfg,
		invoicegen.WithPreflightValidation(),
		invoicegen.WithCircuitBreaker(invoicegen.NewCircuitBreaker("invoicegen")),
	)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if len(os.Args) > 1 {
		runBatch(ctx, client, os.Args[1:])
		return
	}

	resp, err := client.Generate(ctx, sampleInvoice())
	if err != nil {
		panic(err)
	}

	fmt.Println(resp.Data.PdfName)
	fmt.Println(resp.Data.DownloadURL)
	fmt.Println("expires:", resp.ExpiresAt())

	qr, err := png.DownloadQR(resp)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile("invoice-qr.png", qr, 0o644); err != nil {
		panic(err)
	}
}

func runBatch(ctx context.Context, client *invoicegen.Client, files []string) {
	res, err := batch.Run(ctx, client, batch.NewFileSource(files), batch.Config{Workers: 4})
	if err != nil {
		panic(err)
	}

	for _, o := range res.Outcomes {
		if o.Err != nil {
			fmt.Printf("%s: %v\n", o.Job.ID, o.Err)
			continue
		}
		fmt.Printf("%s: %s\n", o.Job.ID, o.Response.Data.DownloadURL)
	}
}

func sampleInvoice() *invoicegen.QueryOptions {
	q := invoicegen.NewQueryOptions()
	q.InvoiceNumber.SetTo("INV-1001")
	q.Date.SetTo(time.Now().Format("2006-01-02"))
	q.DueDate.SetTo(time.Now().AddDate(0, 0, 30).Format("2006-01-02"))
	q.PaymentTerms.SetTo("Net 30")

	q.FromName.SetTo("Acme Co")
	q.FromStreet.SetTo("1 Main St")
	q.FromCity.SetTo("Boston")
	q.FromState.SetTo("MA")
	q.FromZip.SetTo("02110")

	q.ToName.SetTo("Contoso")
	q.ToStreet.SetTo("500 Pine St")
	q.ToCity.SetTo("Seattle")
	q.ToState.SetTo("WA")
	q.ToZip.SetTo("98101")

	q.Job.SetTo("Website redesign")
	q.Currency.SetTo("USD")
	q.SalesTax.SetTo("8.25")
	q.SetItemList([]invoicegen.Item{
		{Qty: 10, Description: "Design hours", UnitPrice: decimal.RequireFromString("120.00")},
		{Qty: 1, Description: "Hosting setup", UnitPrice: decimal.RequireFromString("49.99")},
	})
	return q
}
