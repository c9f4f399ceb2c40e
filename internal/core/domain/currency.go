package domain

// Currency is the currency a rate slab is denominated in.
// It is embedded by value and never shared between slabs.
type Currency struct {
	Code          string `json:"code"`          // e.g. "USD"
	Name          string `json:"name"`          // e.g. "US Dollar"
	NameCode      string `json:"nameCode"`      // i18n key, e.g. "currency.USD"
	DisplaySymbol string `json:"displaySymbol"` // e.g. "$"
	DecimalPlaces *int32 `json:"decimalPlaces,omitempty"`
	InMultiplesOf *int32 `json:"inMultiplesOf,omitempty"`
}
