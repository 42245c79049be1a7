package entity

// DefaultCategory is stored when a submission carries no category.
const DefaultCategory = "general"

// FallbackLabel is used in status texts for categories outside the catalog.
const FallbackLabel = "Alerta"

const fallbackColorKey = "otro"

// Category describes one incident tag: how it reads in a status text, how it
// reads in the form, and the pin colour on the map.
type Category struct {
	Key          string `json:"value"`
	Label        string `json:"-"`
	DisplayLabel string `json:"label"`
	Color        string `json:"hex"`
	Description  string `json:"description"`
}

//nolint:gochecknoglobals
var categories = []Category{
	{Key: "robo", Label: "Robo/Atraco", DisplayLabel: "Robo/Atraco", Color: "#ef4444", Description: "Robo con violencia, arrebato, amenaza"},
	{Key: "narcos", Label: "Venta de drogas", DisplayLabel: "Venta de drogas", Color: "#f97316", Description: "Pasta base, marihuana, vigilancia Abitab"},
	{Key: "sospechoso", Label: "Actividad sospechosa", DisplayLabel: "Actividad sospechosa", Color: "#eab308", Description: "Personas merodeando, comportamiento raro"},
	{Key: "cuidacoches", Label: "Cuidacoches agresivos", DisplayLabel: "Cuidacoches agresivos", Color: "#d97706", Description: "Amenazas, grupos organizados"},
	{Key: "cajero", Label: "Problemas en cajero/banco", DisplayLabel: "Problemas en cajero/banco", Color: "#3b82f6", Description: "Vigilancia cajeros, Redpagos"},
	{Key: "abitab", Label: "Vigilancia Abitab/Brooker", DisplayLabel: "Vigilancia Abitab/Brooker", Color: "#8b5cf6", Description: "Personas esperando retiros/pagos"},
	{Key: "calle", Label: "Ocupación de vereda/calle", DisplayLabel: "Ocupación de vereda/calle", Color: "#22c55e", Description: "Bloqueo peatonal, comercio ambulante agresivo"},
	{Key: "otro", Label: "Otro", DisplayLabel: "Otro (especificá)", Color: "#6b7280", Description: "Situaciones no contempladas"},
}

// Categories returns the catalog in form order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)

	return out
}

// LookupCategory finds a catalog entry by key.
func LookupCategory(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}

	return Category{}, false
}

// CategoryLabel returns the status-text label for key, or FallbackLabel.
func CategoryLabel(key string) string {
	if c, ok := LookupCategory(key); ok {
		return c.Label
	}

	return FallbackLabel
}

// CategoryColor returns the pin colour for key. Unknown keys use the "otro" colour.
func CategoryColor(key string) string {
	if c, ok := LookupCategory(key); ok {
		return c.Color
	}
	c, _ := LookupCategory(fallbackColorKey)

	return c.Color
}
