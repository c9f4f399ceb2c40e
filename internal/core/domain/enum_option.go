package domain

// EnumOption is the decoded form of a small integer-coded field.
// It has no identity beyond its ID.
type EnumOption struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

// CodeValue is one entry of a configurable code list (e.g. the "Gender" code).
type CodeValue struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Position    int32   `json:"position"`
	Active      bool    `json:"active"`
}
