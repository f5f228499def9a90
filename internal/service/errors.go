package service

import "fmt"

// UnknownProductError means a requested code matched nothing in the product
// master. Inside a purchase it aborts the whole call.
type UnknownProductError struct {
	Code string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("商品が見つかりません: %s", e.Code)
}

// ValidationError wraps the first failed field of a malformed request.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", e.Field, e.Tag)
}
