package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// decodeText devuelve el contenido como UTF-8. Las hojas exportadas desde Excel suelen venir
// en ISO-8859-1; si los bytes no son UTF-8 válido se decodifican como Latin-1.
func decodeText(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

// readRecords lee un CSV con cabecera y devuelve cada fila como mapa columna -> valor.
func readRecords(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var out []map[string]string
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// parseProducts convierte las filas de Productos.csv (nombre, distribuidor, img, precio, categoria).
func parseProducts(records []map[string]string, now time.Time) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(records))
	for i, rec := range records {
		price, err := decimal.NewFromString(strings.ReplaceAll(rec["precio"], ",", "."))
		if err != nil {
			return nil, fmt.Errorf("producto %d: precio %q inválido", i+1, rec["precio"])
		}
		p := &entity.Product{
			ID:          uuid.NewString(),
			Name:        rec["nombre"],
			Distributor: rec["distribuidor"],
			Image:       rec["img"],
			Price:       price,
			Category:    rec["categoria"],
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		p.Normalize()
		if field, ok := p.Validate(); !ok {
			return nil, fmt.Errorf("producto %d (%s): campo %s inválido", i+1, p.Name, field)
		}
		products = append(products, p)
	}
	return products, nil
}

// parseUsers convierte las filas de Usuarios.csv (nombre, email, password, role, img).
// La contraseña queda en texto plano en PasswordHash; el llamador la cifra antes de guardar.
func parseUsers(records []map[string]string, now time.Time) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(records))
	for i, rec := range records {
		u := &entity.User{
			ID:           uuid.NewString(),
			Name:         rec["nombre"],
			Email:        rec["email"],
			PasswordHash: rec["password"],
			Role:         rec["role"],
			Image:        rec["img"],
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		u.Normalize()
		if u.Email == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("usuario %d: email y password son obligatorios", i+1)
		}
		if !entity.ValidRole(u.Role) {
			return nil, fmt.Errorf("usuario %d (%s): rol %q inválido", i+1, u.Email, u.Role)
		}
		users = append(users, u)
	}
	return users, nil
}
