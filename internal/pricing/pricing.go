package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/labkit/internal/console"
	"github.com/danmuck/labkit/internal/observability"
)

// MinDiscountPercent is the smallest percentage that is honored.
const MinDiscountPercent = 20.0

const InvalidInputMessage = "Invalid input. Please enter numeric values for price and discount."

var ErrInvalidNumber = errors.New("invalid number")

// Calculate returns price reduced by percent, or price unchanged when percent is below the minimum.
func Calculate(price, percent float64) float64 {
	if percent >= MinDiscountPercent {
		return price * (1 - percent/100)
	}
	return price
}

// ParseAmount parses a finite decimal number.
func ParseAmount(raw string) (float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, v)
	}
	return f, nil
}

type Quote struct {
	Original float64 `json:"original" yaml:"original"`
	Percent  float64 `json:"percent" yaml:"percent"`
	Final    float64 `json:"final" yaml:"final"`
	Applied  bool    `json:"applied" yaml:"applied"`
}

func NewQuote(price, percent float64) Quote {
	final := Calculate(price, percent)
	q := Quote{
		Original: price,
		Percent:  percent,
		Final:    final,
		Applied:  final != price,
	}
	observability.RecordQuote(q.Applied)
	return q
}

// ParseQuote parses both raw inputs; either failing yields ErrInvalidNumber and no quote.
func ParseQuote(rawPrice, rawPercent string) (Quote, error) {
	price, err := ParseAmount(rawPrice)
	if err != nil {
		return Quote{}, err
	}
	percent, err := ParseAmount(rawPercent)
	if err != nil {
		return Quote{}, err
	}
	return NewQuote(price, percent), nil
}

func (q Quote) Message() string {
	if q.Applied {
		return fmt.Sprintf("Discount applied! The final price is: $%.2f", q.Final)
	}
	return fmt.Sprintf("No discount applied. The final price is: $%.2f", q.Final)
}

// RunPrompt asks for a price and a percentage and prints the quote.
func RunPrompt(p *console.Prompter) (Quote, error) {
	rawPrice, err := p.Line("Enter the original price of the item: ")
	if err != nil {
		return Quote{}, err
	}
	if _, err := ParseAmount(rawPrice); err != nil {
		p.Println(InvalidInputMessage)
		return Quote{}, err
	}
	rawPercent, err := p.Line("Enter the discount percentage: ")
	if err != nil {
		return Quote{}, err
	}
	q, err := ParseQuote(rawPrice, rawPercent)
	if err != nil {
		p.Println(InvalidInputMessage)
		return Quote{}, err
	}
	p.Println(q.Message())
	return q, nil
}
