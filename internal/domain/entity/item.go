package entity

import "time"

// Category clasifica un artículo del catálogo.
type Category string

// Categorías válidas para Item.
const (
	CategoryChemical  Category = "CHEMICAL"  // químico de limpieza (consumible)
	CategoryEquipment Category = "EQUIPMENT" // utensilio menor (consumible)
	CategoryMachine   Category = "MACHINE"   // maquinaria serializada (por Asset)
)

// Kind agrupa las categorías según cómo se contabiliza el movimiento:
// por stock agregado (consumible) o por unidad serializada (máquina).
type Kind int

const (
	KindConsumable Kind = iota
	KindMachine
)

// Valid reporta si la categoría es una de las conocidas.
func (c Category) Valid() bool {
	switch c {
	case CategoryChemical, CategoryEquipment, CategoryMachine:
		return true
	}
	return false
}

// Kind devuelve la variante de contabilidad de la categoría.
// El motor de transacciones hace switch exhaustivo sobre este valor.
func (c Category) Kind() Kind {
	if c == CategoryMachine {
		return KindMachine
	}
	return KindConsumable
}

// Item representa una entrada del catálogo: un bien almacenable (químico o
// utensilio, con stock agregado) o un tipo de máquina (sus unidades físicas
// viven en Asset y Stock no interviene en los movimientos).
type Item struct {
	ID        string
	Code      string // kode_barang, único e inmutable tras la creación
	Name      string
	Category  Category
	Stock     int // siempre >= 0; solo significativo para consumibles
	Unit      string
	MinStock  int // umbral de stock crítico
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCritical reporta si un consumible cayó a o bajo su umbral mínimo.
// Las máquinas nunca son críticas por stock.
func (i *Item) IsCritical() bool {
	return i.Category.Kind() == KindConsumable && i.Stock <= i.MinStock
}
