// Package pdf implementa la generación del recibo de compra en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Trendify  │  N° Recibo + Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRADOR: Nombre + contacto                               │
//	│  ENVÍO: dirección completa                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Item | Cantidad | Precio unit. | Total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO + método de pago                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/trendify-api/internal/application/store"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ store.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa store.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	purchase *entity.Purchase,
	item *entity.Item,
	user *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de compra", true).
		WithAuthor("Trendify", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(purchase, user))
	m.AddRows(shippingRow(purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(purchase, item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(purchase))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar recibo PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(p *entity.Purchase) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Trendify", props.Text{Size: 16, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New("Recibo de compra", props.Text{Top: 8, Size: 9, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Recibo N° "+p.ID, props.Text{Size: 9, Align: align.Right}),
			text.New(p.CreatedAt.Format("2006-01-02 15:04"), props.Text{Top: 5, Size: 9, Align: align.Right, Color: colorGray}),
		),
	)
}

func buyerRow(p *entity.Purchase, u *entity.User) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Comprador: "+u.Name+" "+u.LastName, props.Text{Size: 9}),
			text.New(p.Email+"  ·  "+p.Phone, props.Text{Top: 4, Size: 8, Color: colorGray}),
		),
	)
}

func shippingRow(p *entity.Purchase) core.Row {
	address := fmt.Sprintf("%s %s, %s, %s", p.StreetAddress, p.HouseNumber, p.City, p.Country)
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Envío a: "+p.FirstName+" "+p.LastName, props.Text{Size: 9}),
			text.New(address, props.Text{Top: 4, Size: 8, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New("Item", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(2).Add(text.New("Cantidad", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Precio unit.", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
	)
}

func detailRow(p *entity.Purchase, item *entity.Item) core.Row {
	name := p.ItemID
	unit := ""
	if item != nil {
		name = item.Name
		unit = item.Price.StringFixed(2)
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 9})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New(unit, props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New(p.TotalPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(p *entity.Purchase) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Método de pago: "+p.PaymentMethod, props.Text{Top: 3, Size: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("TOTAL PAGADO: "+p.TotalPrice.StringFixed(2), props.Text{Top: 2, Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary}),
		),
	)
}
