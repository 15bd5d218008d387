package entities

// MonthlyRevenue is the confirmed-order income of one month.
type MonthlyRevenue struct {
	Month     string
	Total     float64
	Orders    int
	LineItems int
}

// MonthlyExpense is the expense total of one month for a type and raw brand tag.
type MonthlyExpense struct {
	Month string
	Tipo  SalidaTipo
	Marca string
	Total float64
}

type MonthlyBalance struct {
	Month     string
	Revenue   float64
	Orders    int
	LineItems int

	OrdinaryBarfer         float64
	OrdinaryRawAndFun      float64
	ExtraordinaryBarfer    float64
	ExtraordinaryRawAndFun float64

	OrdinaryTotal      float64
	ExtraordinaryTotal float64
	ExpensesTotal      float64

	ResultWithoutExtraordinary  float64
	ResultWithExtraordinary     float64
	PercentWithoutExtraordinary float64
	PercentWithExtraordinary    float64

	EstimatedWeightKg float64
	PricePerKg        float64
}
