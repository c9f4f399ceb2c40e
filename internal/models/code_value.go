package models

// CodeValue represents a row of m_code_value.
type CodeValue struct {
	ID          int64   `db:"id"`
	CodeID      int64   `db:"code_id"`
	Value       string  `db:"code_value"`
	Description *string `db:"code_description"`
	Position    int32   `db:"order_position"`
	IsActive    bool    `db:"is_active"`
}
