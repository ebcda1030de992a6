// Package pdf genera el albarán (nota de entrega) de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  ALBARÁN + N° pedido          │  Fecha + Estado              │
//	│  CLIENTE: nombre + email                                      │
//	│  TABLA: Cant | Producto | Distribuidor | P.Unit | Subtotal    │
//	│  TOTAL                                                        │
//	│  QR con el id del pedido                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

var _ ports.AlbaranGenerator = (*AlbaranGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 128, Green: 32, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var statusLabel = map[entity.PedidoStatus]string{
	entity.PedidoPending:   "Pendiente",
	entity.PedidoDelivered: "Entregado",
	entity.PedidoCancelled: "Cancelado",
}

// AlbaranGenerator implementa ports.AlbaranGenerator con Maroto v2.
type AlbaranGenerator struct {
	business string
}

// NewAlbaranGenerator construye el generador; business aparece como emisor en la cabecera.
func NewAlbaranGenerator(business string) *AlbaranGenerator {
	return &AlbaranGenerator{business: business}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *AlbaranGenerator) Generate(data ports.AlbaranData) ([]byte, error) {
	if data.Pedido == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Albarán "+data.Pedido.ID, true).
		WithAuthor(g.business, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data.Pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(ownerRow(data.Owner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(lineRows(data.Pedido, data.Products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data.Pedido.Total))
	m.AddRows(row.New(4))
	m.AddRows(row.New(40).Add(
		col.New(3).Add(code.NewQr(data.Pedido.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(text.New("Referencia del pedido: "+data.Pedido.ID, props.Text{
			Size: 8, Top: 4, Left: 3, Color: colorGray,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar albarán: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *AlbaranGenerator) headerRow(p *entity.Pedido) core.Row {
	status := statusLabel[p.Status]
	if status == "" {
		status = string(p.Status)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ALBARÁN", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(g.business, "—"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Pedido "+shortID(p.ID), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New("Fecha: "+p.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
			text.New("Estado: "+status, props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

func ownerRow(u *entity.User) core.Row {
	name, email := "—", "—"
	if u != nil {
		name, email = nonEmpty(u.Name, "—"), nonEmpty(u.Email, "—")
	}
	return row.New(12).Add(col.New(12).Add(
		text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(name+"   |   "+email, props.Text{Size: 9, Top: 6}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Distribuidor", 3, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// lineRows una fila por línea con el precio bloqueado del pedido, no el vigente.
func lineRows(p *entity.Pedido, products []*entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(p.Products))
	for i, it := range p.Products {
		name, distributor := "Producto no disponible", "—"
		if i < len(products) && products[i] != nil {
			name, distributor = products[i].Name, products[i].Distributor
		}
		subtotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(distributor, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatEuro(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatEuro(subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2})),
		col.New(2).Add(text.New(formatEuro(total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

// formatEuro formatea un importe con separador de miles "." y decimal ",".
// Ej: 1234.5 → "1.234,50 €"
func formatEuro(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac + " €"
	if neg {
		out = "-" + out
	}
	return out
}
