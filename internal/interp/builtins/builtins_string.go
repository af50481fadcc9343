package builtins

import (
	"fmt"
	"strings"

	"github.com/ReleasedGroup/go-basic/internal/values"
)

func registerStringFunctions(r *Registry) {
	r.Register("LEN", biLen, 1, 1, CategoryString, "Returns the length of a string")
	r.Register("LEFT$", biLeftDollar, 2, 2, CategoryString, "Returns the leftmost n characters of a string")
	r.Register("RIGHT$", biRightDollar, 2, 2, CategoryString, "Returns the rightmost n characters of a string")
	r.Register("MID$", biMidDollar, 2, 3, CategoryString, "Returns a substring starting at a 1-based position")
	r.Register("CHR$", biChrDollar, 1, 1, CategoryString, "Returns the single character for an ASCII code")
	r.Register("ASC", biAsc, 1, 1, CategoryString, "Returns the ASCII code of a string's first character")
	r.Register("STR$", biStrDollar, 1, 1, CategoryString, "Returns the string representation of a number")
	r.Register("VAL", biVal, 1, 1, CategoryString, "Parses the leading numeric portion of a string")
	r.Register("TAB", biTab, 1, 1, CategoryString, "Returns n spaces, for column alignment in PRINT")
	r.Register("SPC", biTab, 1, 1, CategoryString, "Returns n spaces (identical to TAB for this interpreter)")
}

func biLen(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	return values.Number(len(values.AsString(args[0]))), nil
}

func biLeftDollar(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	s := values.AsString(args[0])
	n := clampCount(values.AsInt32(args[1]), len(s))
	return values.Text(s[:n]), nil
}

func biRightDollar(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	s := values.AsString(args[0])
	n := clampCount(values.AsInt32(args[1]), len(s))
	return values.Text(s[len(s)-n:]), nil
}

// biMidDollar implements MID$(s, start[, length]) with 1-based, clamped
// bounds: start beyond the string yields "", and an omitted or
// out-of-range length is clamped to what remains.
func biMidDollar(_ Context, args []values.Value) (values.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("expected 2 or 3 arguments, got %d", len(args))
	}
	s := values.AsString(args[0])
	start := int(values.AsInt32(args[1]))
	if start < 1 {
		start = 1
	}
	if start > len(s) {
		return values.Text(""), nil
	}
	start--
	length := len(s) - start
	if len(args) == 3 {
		if n := int(values.AsInt32(args[2])); n < length {
			length = n
		}
	}
	if length < 0 {
		length = 0
	}
	return values.Text(s[start : start+length]), nil
}

func biChrDollar(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	code := values.AsInt32(args[0])
	if code < 0 || code > 255 {
		return nil, fmt.Errorf("illegal character code %d", code)
	}
	return values.Text(string(rune(code))), nil
}

func biAsc(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	s := values.AsString(args[0])
	if s == "" {
		return nil, fmt.Errorf("ASC called on an empty string")
	}
	return values.Number(s[0]), nil
}

func biStrDollar(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	n := values.AsNumber(args[0])
	s := values.FormatNumber(n)
	if n >= 0 {
		s = " " + s
	}
	return values.Text(s), nil
}

func biVal(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	return values.Number(values.AsNumber(values.Text(values.AsString(args[0])))), nil
}

func biTab(_ Context, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	n := int(values.AsInt32(args[0]))
	if n < 0 {
		n = 0
	}
	return values.Text(strings.Repeat(" ", n)), nil
}

func clampCount(n int32, max int) int {
	if n < 0 {
		return 0
	}
	if int(n) > max {
		return max
	}
	return int(n)
}
