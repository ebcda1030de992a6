package postgres

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/mocks"
)

const (
	ownerID = "6f1c2a0e-8d5b-4c1e-9a57-2b8f3d4e5a61"
	cocaID  = "0a8f5c3e-1111-4c1e-9a57-2b8f3d4e5a61"
	aguaID  = "0a8f5c3e-2222-4c1e-9a57-2b8f3d4e5a61"
)

// stubRow devuelve los valores en el mismo orden que pedidoColumns.
type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return errors.New("stubRow: número de columnas distinto")
	}
	for i, v := range r.vals {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type stubRows struct {
	rows []stubRow
	pos  int
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return r.rows[r.pos-1].vals, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) Scan(dest ...any) error { return r.rows[r.pos-1].Scan(dest...) }

// fakeQuerier guarda los argumentos del último Exec y sirve filas preparadas.
type fakeQuerier struct {
	execArgs []any
	lastSQL  string
	row      stubRow
	rows     []stubRow
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL, q.execArgs = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.lastSQL = sql
	return &stubRows{rows: q.rows}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.lastSQL = sql
	return q.row
}

func pedidoRow(id string, created time.Time, lines []byte) stubRow {
	return stubRow{vals: []any{id, ownerID, lines, decimal.RequireFromString("4.70"), "pending", created, created}}
}

func TestPedidoRepo_GuardarYLeer_ConservaPrecioYCantidad(t *testing.T) {
	q := &fakeQuerier{}
	repo := NewPedidoRepository(q, mocks.NewProductRepo())
	repo.now = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }
	p := &entity.Pedido{
		UserID: ownerID,
		Products: []entity.LineaPedido{
			{ProductID: cocaID, Quantity: 3, Price: decimal.RequireFromString("1.15")},
			{ProductID: aguaID, Quantity: 1, Price: decimal.RequireFromString("0.99")},
		},
	}

	require.NoError(t, repo.Save(context.Background(), p))
	require.Len(t, q.execArgs, 7)
	items, ok := q.execArgs[2].([]byte)
	require.True(t, ok, "las líneas se envían como JSON")
	assert.Contains(t, string(items), `"price":"1.15"`, "el precio viaja como texto, sin pérdida")
	assert.Contains(t, string(items), `"quantity":3`)

	// La fila leída es exactamente lo que se insertó.
	q.row = stubRow{vals: q.execArgs}
	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, got.Products, 2)
	assert.Equal(t, cocaID, got.Products[0].ProductID)
	assert.Equal(t, 3, got.Products[0].Quantity)
	assert.True(t, decimal.RequireFromString("1.15").Equal(got.Products[0].Price), got.Products[0].Price.String())
	assert.True(t, decimal.RequireFromString("0.99").Equal(got.Products[1].Price))
	assert.True(t, decimal.RequireFromString("4.44").Equal(got.Total), got.Total.String())
	assert.Equal(t, entity.PedidoPending, got.Status)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
}

func TestScanPedido_LineasCorruptas(t *testing.T) {
	_, err := scanPedido(pedidoRow(ownerID, time.Now(), []byte(`{"no":"es un array"}`)))
	assert.ErrorContains(t, err, "unmarshal lineas pedido")
}

func TestPedidoRepo_GetByID_SinFila(t *testing.T) {
	repo := NewPedidoRepository(&fakeQuerier{row: stubRow{err: pgx.ErrNoRows}}, mocks.NewProductRepo())

	got, err := repo.GetByID(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPedidoRepo_ListByOwner_RespetaOrdenYExpandeProductos(t *testing.T) {
	coca := &entity.Product{ID: cocaID, Name: "Coca Cola", Price: decimal.RequireFromString("1.30")}
	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	q := &fakeQuerier{rows: []stubRow{
		pedidoRow("bbbbbbbb-0000-4000-8000-000000000002", t0.Add(time.Hour),
			[]byte(`[{"product":"`+cocaID+`","quantity":2,"price":"1.15"}]`)),
		pedidoRow("aaaaaaaa-0000-4000-8000-000000000001", t0,
			[]byte(`[{"product":"`+aguaID+`","quantity":1,"price":"0.99"},{"product":"`+cocaID+`","quantity":1,"price":"1.10"}]`)),
	}}
	repo := NewPedidoRepository(q, mocks.NewProductRepo(coca))

	out, err := repo.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "ORDER BY created_at DESC, id DESC")
	require.Len(t, out, 2)
	assert.Equal(t, "bbbbbbbb-0000-4000-8000-000000000002", out[0].Pedido.ID, "más reciente primero")
	assert.Equal(t, "aaaaaaaa-0000-4000-8000-000000000001", out[1].Pedido.ID)

	require.Len(t, out[1].Products, 2)
	assert.Nil(t, out[1].Products[0], "producto borrado deja snapshot nil")
	assert.Equal(t, "Coca Cola", out[1].Products[1].Name)
	// El precio de la línea es el capturado, no el actual del catálogo.
	assert.True(t, decimal.RequireFromString("1.10").Equal(out[1].Pedido.Products[1].Price))
}

func TestPedidoRepo_ListByOwner_IDInvalido(t *testing.T) {
	q := &fakeQuerier{}
	out, err := NewPedidoRepository(q, mocks.NewProductRepo()).ListByOwner(context.Background(), "no-uuid")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, q.lastSQL, "no se consulta la base")
}
