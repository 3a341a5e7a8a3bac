package unsafeitems

// Category clasifica el tipo de elemento peligroso.
// @Enum food, plant, object
type Category string

const (
	CategoryFood   Category = "food"
	CategoryPlant  Category = "plant"
	CategoryObject Category = "object"
)

// Risk es el nivel de riesgo.
// @Enum caution, medium-high, high
type Risk string

const (
	RiskCaution    Risk = "caution"
	RiskMediumHigh Risk = "medium-high"
	RiskHigh       Risk = "high"
)

// Item es una entrada de la tabla de referencia de sustancias y objetos
// peligrosos. Datos estáticos, no asociados a ninguna mascota.
type Item struct {
	ID       string
	Category Category
	Name     string
	Risk     Risk
	Why      string
}

// Defaults son las entradas con las que se siembra la tabla, las mismas
// dos del original.
func Defaults() []Item {
	return []Item{
		{
			ID:       "unsafe-chocolate",
			Category: CategoryFood,
			Name:     "초콜릿",
			Risk:     RiskHigh,
			Why:      "카카오의 메틸잔틴(테오브로민) 독성",
		},
		{
			ID:       "unsafe-grapes",
			Category: CategoryFood,
			Name:     "포도/건포도",
			Risk:     RiskHigh,
			Why:      "급성 신장손상 보고",
		},
	}
}
