package entity

// Variant es la unidad de stock direccionable: annata × lote × formato.
// Invariante: la tupla (vintage, lot_code, size) mapea a lo sumo a un variant_id.
// Las variantes se definen externamente; este núcleo solo las lee (v_stock_units).
type Variant struct {
	VariantID   string
	LotID       string
	LotCode     string // enumeración pequeña fija: A, B, C
	Vintage     int    // año de cosecha
	SizeID      string
	SizeLabel   string // etiqueta visible del formato (ej. "0,5 L")
	ML          int    // volumen en mililitros; clave canónica de orden por formato
	UnitsOnHand int    // unidades actuales según la vista materializada
}

// VariantOptions opciones en cascada para el formulario de registro:
// annate disponibles, lotes de la annata elegida y formatos de annata+lote.
// Una cascada vacía es un estado sin opciones, no un error.
type VariantOptions struct {
	Vintages []int
	Lots     []string
	Sizes    []string
}
