package news

// Conditions is a parsed snapshot of the scraped forecast page.
type Conditions struct {
	Temperature int    `json:"temp"`
	Description string `json:"condition"`
	Forecast    []int  `json:"forecast"`
}

// FallbackConditions are shown when the forecast page cannot be fetched or
// parsed. The values match the original widget's defaults.
func FallbackConditions() *Conditions {
	return &Conditions{
		Temperature: 26,
		Description: "Parcialmente nublado",
		Forecast:    []int{26, 28, 30},
	}
}
