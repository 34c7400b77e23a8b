package entity

import "github.com/shopspring/decimal"

// StockRow giacenza derivada para una variante (opcionalmente × magazzino).
// units_on_hand es la suma con signo de quantity_units; liters_on_hand se
// deriva como units * ml / 1000. No se almacena: es una proyección del libro.
type StockRow struct {
	VariantID    string
	LotID        string
	LotCode      string
	Vintage      int
	SizeID       string
	SizeLabel    string
	ML           int
	UnitsOnHand  int
	LitersOnHand decimal.Decimal
	// Presentes solo en modo por-magazzino.
	WarehouseID   string
	WarehouseName string
}

// StockTotals agregados mostrados sobre las giacenze filtradas.
type StockTotals struct {
	Liters   decimal.Decimal
	Units    int
	Variants int
}
