package checkout

import (
	"fmt"
	"slices"
	"strings"
)

type Size string

const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"

	DefaultSize = SizeM
)

var AvailableSizes = []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// NewSize normalizes raw input. Blank input means DefaultSize.
func NewSize(raw string) (Size, error) {
	normalized := Size(strings.ToUpper(strings.TrimSpace(raw)))
	if normalized == "" {
		return DefaultSize, nil
	}
	if slices.Contains(AvailableSizes, normalized) {
		return normalized, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSize, raw)
}

// Product constants for the single item on sale.
const (
	ProductName  = "Alloy 000 Bomber Jacket"
	ProductImage = "https://unrulyhuman.com/images/DSC01001.jpg"
	UnitAmount   = 30000 // minor units, $300.00
	Currency     = "usd"
	Quantity     = 1
)

// OrderIntent is the per-request description of what the customer wants to buy. It is never stored.
type OrderIntent struct {
	Size       Size
	UnitAmount int64
	Currency   string
	Quantity   int64
}

func NewOrderIntent(rawSize string) (OrderIntent, error) {
	size, err := NewSize(rawSize)
	if err != nil {
		return OrderIntent{}, err
	}

	return OrderIntent{
		Size:       size,
		UnitAmount: UnitAmount,
		Currency:   Currency,
		Quantity:   Quantity,
	}, nil
}

func (o OrderIntent) Description() string {
	return fmt.Sprintf("Size: %s — Limited Edition Biomechanical Art", o.Size)
}

func (o OrderIntent) Total() int64 {
	return o.UnitAmount * o.Quantity
}
