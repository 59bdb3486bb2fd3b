package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a raw spreadsheet cell into an exact decimal amount.
//
// Values that are already numeric are used verbatim, without a string
// round-trip, to avoid precision loss from display formatting. Strings go
// through ParseString. Anything unparseable yields zero; this function never
// fails — silently coercing bad cells to zero is deliberate behavior carried
// over from the export formats this feeds on.
func Parse(v any) decimal.Decimal {
	return ParseWith(v, nil)
}

// ParseWith is Parse with an optional diagnostics sink. When diag is non-nil,
// inputs that fall back to zero are recorded there; defaults are unchanged.
func ParseWith(v any, diag *Diagnostics) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		return parseString(n, diag)
	default:
		diag.record(v)
		return decimal.Zero
	}
}

// ParseString parses a decimal-formatted string, auto-detecting Brazilian
// ("1.234,56") versus plain ("1234.56") notation.
func ParseString(s string) decimal.Decimal {
	return parseString(s, nil)
}

func parseString(s string, diag *Diagnostics) decimal.Decimal {
	clean := stripNonNumeric(s)
	if clean == "" {
		if strings.TrimSpace(s) != "" {
			diag.record(s)
		}

		return decimal.Zero
	}

	hasComma := strings.Contains(clean, ",")
	hasDot := strings.Contains(clean, ".")

	switch {
	case hasComma && hasDot:
		// Brazilian notation: "." thousands, "," decimal.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasComma:
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	// A bare "." with no comma is taken as a decimal point, never as a
	// thousands separator. Keep it that way.

	d, err := decimal.NewFromString(clean)
	if err != nil {
		diag.record(s)
		return decimal.Zero
	}

	return d
}

// ParseCount coerces a cell to an integer count. Non-numeric input yields 0.
func ParseCount(v any) int {
	return int(Parse(v).IntPart())
}

// ParseText coerces a cell to a string. Missing values yield "".
func ParseText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return decimal.NewFromFloat(s).String()
	case int:
		return decimal.NewFromInt(int64(s)).String()
	case int64:
		return decimal.NewFromInt(s).String()
	default:
		return ""
	}
}

// stripNonNumeric keeps only digits, ",", "." and "-".
func stripNonNumeric(s string) string {
	var b strings.Builder

	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FormatBR renders an amount in Brazilian notation ("1.234,56"), the
// convention used by transfer period displays and by round-trip tests.
func FormatBR(d decimal.Decimal) string {
	plain := d.StringFixed(2)

	neg := strings.HasPrefix(plain, "-")
	plain = strings.TrimPrefix(plain, "-")

	intPart, fracPart, _ := strings.Cut(plain, ".")

	var b strings.Builder

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}

		b.WriteRune(r)
	}

	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}

	return out
}
