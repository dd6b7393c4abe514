package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

const (
	salaryDay        = 5
	invoiceDueDay    = 10
	maxDailyPurchase = 3
)

// Merchant is a sample counterparty and the amount range it charges
type Merchant struct {
	Name string
	Min  float64
	Max  float64
}

// InstallmentPlan is a purchase paid over several monthly statements
type InstallmentPlan struct {
	Description string
	Amount      decimal.Decimal
	Total       int
}

// Generator writes synthetic statements in either supported schema.
// The same seed always yields the same file.
type Generator struct {
	merchants []Merchant
	plans     []InstallmentPlan
	rng       *rand.Rand
}

// NewGenerator creates a generator seeded with seed
func NewGenerator(seed int64) *Generator {
	return &Generator{
		merchants: defaultMerchants(),
		plans: []InstallmentPlan{
			{Description: "Notebook purchase", Amount: decimal.RequireFromString("450.00"), Total: 6},
			{Description: "Sofa", Amount: decimal.RequireFromString("320.50"), Total: 4},
		},
		rng: rand.New(rand.NewSource(seed)),
	}
}

func defaultMerchants() []Merchant {
	return []Merchant{
		{"Uber *Trip", 12, 60},
		{"99 Taxi", 10, 45},
		{"iFood *Restaurante", 25, 110},
		{"Padaria Estrela", 8, 40},
		{"Supermercado Pão de Açúcar", 60, 420},
		{"Drogaria São Paulo", 15, 150},
		{"Netflix.com", 39.9, 55.9},
		{"Spotify", 21.9, 34.9},
		{"Amazon Marketplace", 30, 380},
		{"Shell Select", 80, 250},
		{"Starbucks", 14, 45},
		{"Cinemark", 28, 90},
	}
}

// Merchants returns the merchant pool
func (g *Generator) Merchants() []Merchant {
	return g.merchants
}

type sampleRow struct {
	date        time.Time
	description string
	// amount is signed from the account holder's view: negative leaves the account
	amount decimal.Decimal
}

// Generate writes months of activity starting at start and returns the number of data rows.
// Card statements get purchases, installments and the invoice payment credit. Checking
// statements get salary, transfers and the invoice debit.
func (g *Generator) Generate(w io.Writer, schema string, start time.Time, months int) (int, error) {
	if months < 1 {
		months = 1
	}

	var rows []sampleRow
	switch schema {
	case SchemaTitleAmount:
		rows = g.cardRows(start, months)
	case SchemaDescriptionValue:
		rows = g.checkingRows(start, months)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, schema)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(sampleHeader(schema)); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		if err := cw.Write(g.record(schema, row)); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush statement: %w", err)
	}
	return len(rows), nil
}

func (g *Generator) cardRows(start time.Time, months int) []sampleRow {
	rows := make([]sampleRow, 0)
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	for m := 0; m < months; m++ {
		month := first.AddDate(0, m, 0)
		days := daysIn(month.Year(), month.Month(), time.UTC)

		for day := 1; day <= days; day += 1 + g.rng.Intn(3) {
			for i := 0; i < 1+g.rng.Intn(maxDailyPurchase); i++ {
				merchant := g.merchants[g.rng.Intn(len(g.merchants))]
				rows = append(rows, sampleRow{
					date:        month.AddDate(0, 0, day-1),
					description: merchant.Name,
					amount:      g.amount(merchant).Neg(),
				})
			}
		}

		for _, plan := range g.plans {
			if m >= plan.Total {
				continue
			}
			rows = append(rows, sampleRow{
				date:        month.AddDate(0, 0, 14),
				description: fmt.Sprintf("%s %d/%d", plan.Description, m+1, plan.Total),
				amount:      plan.Amount.Neg(),
			})
		}

		if m > 0 {
			rows = append(rows, sampleRow{
				date:        month.AddDate(0, 0, invoiceDueDay-1),
				description: "Payment received",
				amount:      decimal.RequireFromString("1500.00"),
			})
		}
	}

	return rows
}

func (g *Generator) checkingRows(start time.Time, months int) []sampleRow {
	rows := make([]sampleRow, 0)
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	for m := 0; m < months; m++ {
		month := first.AddDate(0, m, 0)

		rows = append(rows,
			sampleRow{
				date:        month.AddDate(0, 0, salaryDay-1),
				description: "Salário ACME Ltda",
				amount:      decimal.NewFromInt(int64(4000 + 500*g.rng.Intn(4))),
			},
			sampleRow{
				date:        month.AddDate(0, 0, invoiceDueDay-1),
				description: "Pagamento de fatura",
				amount:      decimal.RequireFromString("-1500.00"),
			},
			sampleRow{
				date:        month.AddDate(0, 0, 11+g.rng.Intn(10)),
				description: "Transferência enviada pelo Pix - " + g.merchants[g.rng.Intn(len(g.merchants))].Name,
				amount:      decimal.NewFromFloat(50 + g.rng.Float64()*200).Round(2).Neg(),
			},
			sampleRow{
				date:        month.AddDate(0, 0, 27),
				description: "Rendimento Poupança",
				amount:      decimal.NewFromFloat(5 + g.rng.Float64()*20).Round(2),
			},
		)
	}

	return rows
}

func (g *Generator) amount(m Merchant) decimal.Decimal {
	return decimal.NewFromFloat(m.Min + g.rng.Float64()*(m.Max-m.Min)).Round(2)
}

func sampleHeader(schema string) []string {
	if schema == SchemaDescriptionValue {
		return []string{"data", "valor", "identificador", "descrição"}
	}
	return []string{"date", "title", "amount"}
}

// record applies each schema's sign convention: card files show spending as positive
func (g *Generator) record(schema string, row sampleRow) []string {
	if schema == SchemaDescriptionValue {
		return []string{
			row.date.Format("02/01/2006"),
			row.amount.StringFixed(2),
			fmt.Sprintf("%016x", g.rng.Uint64()),
			row.description,
		}
	}
	return []string{
		row.date.Format("2006-01-02"),
		row.description,
		row.amount.Neg().StringFixed(2),
	}
}
