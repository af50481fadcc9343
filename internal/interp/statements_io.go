package interp

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

// ToPrintString renders v the way PRINT does: strings verbatim, numbers
// as an invariant decimal with up to 12 fractional digits, switching to
// scientific notation once the magnitude reaches 1E10 or drops below
// 1E-3 (spec.md section 4.4). This is deliberately distinct from STR$'s
// 15-digit, always-decimal rendering.
func ToPrintString(v values.Value) string {
	if values.IsString(v) {
		return values.AsString(v)
	}
	n := values.AsNumber(v)
	if n == 0 {
		return "0"
	}
	mag := math.Abs(n)
	if mag >= 1e10 || mag < 1e-3 {
		return formatScientific(n)
	}
	s := strconv.FormatFloat(n, 'f', 12, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

func formatScientific(n float64) string {
	raw := strconv.FormatFloat(n, 'E', 11, 64) // e.g. "1.23400000000E+10"
	parts := strings.SplitN(raw, "E", 2)
	mantissa := strings.TrimRight(parts[0], "0")
	mantissa = strings.TrimRight(mantissa, ".")
	exp := parts[1]
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "E" + sign + digits
}

// execPrint writes a PRINT statement's items, separating at each comma
// (a tab on the console, a literal "," to a file channel) and running
// items together at each semicolon. A trailing comma or semicolon
// suppresses the statement's closing newline; anything else ends the
// line.
func (rt *Runtime) execPrint(s *ast.PrintStatement) error {
	write, err := rt.printWriter(s.Channel)
	if err != nil {
		return err
	}
	// A comma tabs on the console but is written out literally to a file
	// channel (spec.md section 4.4 PRINT and Channel I/O bullets).
	commaSep := "\t"
	if s.Channel != nil {
		commaSep = ","
	}
	for i, item := range s.Items {
		if item.Expr != nil {
			v, err := rt.Eval(item.Expr)
			if err != nil {
				return err
			}
			if err := write(ToPrintString(v)); err != nil {
				return err
			}
		}
		if i < len(s.Items)-1 && item.Sep == "," {
			if err := write(commaSep); err != nil {
				return err
			}
		}
	}
	suppress := len(s.Items) > 0 && s.Items[len(s.Items)-1].Sep != ""
	if !suppress {
		if err := write("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (rt *Runtime) printWriter(channelExpr ast.Expression) (func(string) error, error) {
	if channelExpr == nil {
		return func(s string) error { rt.console.Write(s); return nil }, nil
	}
	n, err := rt.evalChannel(channelExpr)
	if err != nil {
		return nil, err
	}
	ch, ok := rt.channels[n]
	if !ok || ch.writer == nil {
		return nil, berrors.NewRuntimeError(0, "%s", berrors.ChannelNotOpenForOutput(n))
	}
	return ch.writer.WriteString, nil
}

func (rt *Runtime) execInput(s *ast.InputStatement) error {
	if s.Channel != nil {
		return rt.execInputChannel(s)
	}
	return rt.execInputConsole(s)
}

func (rt *Runtime) execInputConsole(s *ast.InputStatement) error {
	prompt := "? "
	if s.HasPrompt {
		prompt = s.Prompt + "? "
	}
	for {
		rt.console.Write(prompt)
		line, err := rt.console.ReadLine()
		if err != nil {
			if err == io.EOF {
				return berrors.NewRuntimeError(0, "%s", berrors.MsgEndOfStream)
			}
			return err
		}
		fields := splitFields(line)
		if len(fields) != len(s.Targets) {
			rt.console.WriteLine("?Redo from start")
			continue
		}
		parsed := make([]values.Value, len(s.Targets))
		ok := true
		for i, target := range s.Targets {
			if target.IsString() {
				parsed[i] = values.Text(fields[i])
				continue
			}
			n, valid := strictParseNumber(fields[i])
			if !valid {
				ok = false
				break
			}
			parsed[i] = values.Number(n)
		}
		if !ok {
			rt.console.WriteLine("?Redo from start")
			continue
		}
		for i, target := range s.Targets {
			if err := rt.assign(target, parsed[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

// strictParseNumber requires the whole trimmed field to be a valid
// number, unlike VAL's lenient leading-prefix scan: INPUT rejects
// garbage with "?Redo from start" rather than silently reading it as 0.
func strictParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("D", "E", "d", "e").Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
