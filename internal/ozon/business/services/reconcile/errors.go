package reconcile

import "fmt"

// MalformedQuantityError -- количество в строке фида не число и не
// известный маркер.
type MalformedQuantityError struct {
	Code     string
	Quantity string
}

func (e *MalformedQuantityError) Error() string {
	return fmt.Sprintf("malformed quantity %q for code %q", e.Quantity, e.Code)
}

// MalformedPriceError -- после отбрасывания дробной части и нецифровых
// символов от цены ничего не осталось.
type MalformedPriceError struct {
	Code  string
	Price string
}

func (e *MalformedPriceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("malformed price %q for code %q", e.Price, e.Code)
	}
	return fmt.Sprintf("malformed price %q", e.Price)
}
