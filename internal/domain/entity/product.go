package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProductImage imagen genérica cuando un producto no tiene imagen propia.
const DefaultProductImage = "https://cdn-icons-png.flaticon.com/512/2927/2927347.png"

// Distribuidores conocidos.
const (
	DistributorMakro        = "Makro"
	DistributorComcarcia    = "Comcarcia"
	DistributorCocaCola     = "Coca cola"
	DistributorFruteriaPepe = "Fruteria Pepe"
)

// Categorías de producto.
const (
	CategoryBebidas  = "Bebidas"
	CategoryComida   = "Comida"
	CategoryLimpieza = "Limpieza"
)

// Distributors enumeración cerrada de distribuidores.
var Distributors = []string{DistributorMakro, DistributorComcarcia, DistributorCocaCola, DistributorFruteriaPepe}

// Categories enumeración cerrada de categorías.
var Categories = []string{CategoryBebidas, CategoryComida, CategoryLimpieza}

// Product representa un artículo del catálogo de hostelería.
type Product struct {
	ID          string
	Name        string
	Distributor string
	Image       string
	Price       decimal.Decimal // precio unitario vigente, >= 0
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize recorta los campos de texto y sustituye la imagen por defecto si falta.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Distributor = strings.TrimSpace(p.Distributor)
	p.Category = strings.TrimSpace(p.Category)
	if strings.TrimSpace(p.Image) == "" {
		p.Image = DefaultProductImage
	}
}

// Validate comprueba las invariantes del producto. Devuelve el nombre del campo inválido.
func (p *Product) Validate() (field string, ok bool) {
	switch {
	case p.Name == "":
		return "nombre", false
	case !contains(Distributors, p.Distributor):
		return "distribuidor", false
	case !contains(Categories, p.Category):
		return "categoria", false
	case p.Price.IsNegative():
		return "precio", false
	}
	return "", true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
