package unified

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/ochrefield/exactreal"
	"github.com/ochrefield/exactreal/pkg/constructive"
	"github.com/ochrefield/exactreal/pkg/rational"
)

var displayValidate = validator.New()

// DisplayOptions controls ToDisplayString's output. Radix is validated
// at [2, 16] (the same range CR.FromString accepts) before any display
// path runs.
type DisplayOptions struct {
	Digits  int `validate:"min=0"`
	Radix   int `validate:"min=2,max=16"`
	Unicode bool
	Mixed   bool
}

// DefaultDisplayOptions returns the display options used by String() and
// the default Format verb: 20 decimal digits, base 10, unicode fraction
// slash, mixed-number form.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{Digits: 20, Radix: 10, Unicode: true, Mixed: true}
}

// symbolicFactorName returns the printable name of u's factor (pi,
// e^(q), ln(q), sqrt q, ...) and whether one exists; KindOne and
// KindOther/KindIrrational have none.
func (u *Real) symbolicFactorName() (string, bool) {
	switch u.kind {
	case KindPi:
		return "π", true
	case KindExp:
		return fmt.Sprintf("e^(%s)", u.q.String()), true
	case KindLn:
		return fmt.Sprintf("ln(%s)", u.q.String()), true
	case KindSqrt:
		return fmt.Sprintf("√%s", u.q.String()), true
	case KindSinPi:
		return fmt.Sprintf("sin(π·%s)", u.q.String()), true
	case KindTanPi:
		return fmt.Sprintf("tan(π·%s)", u.q.String()), true
	case KindLog:
		return fmt.Sprintf("log(%s)", u.q.String()), true
	default:
		return "", false
	}
}

// ToDisplayString renders u in order of preference: "0" for zero,
// plain/mixed rational form for KindOne, "k·factor" for a recognized
// symbolic factor with a non-unit coefficient (bare "factor"/"-factor"
// for coefficient +-1), or a "~"-prefixed decimal approximation to
// opts.Digits digits as a last resort.
func (u *Real) ToDisplayString(opts DisplayOptions) (string, error) {
	if err := displayValidate.Struct(&opts); err != nil {
		return "", exactreal.NewFormatError("ToDisplayString", "invalid display options")
	}

	if u.IsZero() {
		return "0", nil
	}

	if u.kind == KindOne {
		return u.br.ToDisplayString(opts.Unicode, opts.Mixed), nil
	}

	if name, ok := u.symbolicFactorName(); ok {
		switch {
		case u.br.Equal(rational.One()):
			return name, nil
		case u.br.Equal(rational.MinusOne()):
			return "-" + name, nil
		default:
			return u.br.ToDisplayString(opts.Unicode, opts.Mixed) + "·" + name, nil
		}
	}

	dec, err := constructive.ToString(u.cr, opts.Digits)
	if err != nil {
		return "", err
	}
	return "~" + dec, nil
}

// String renders u with DefaultDisplayOptions, ignoring any
// exactreal.FormatError (which DisplayOptions' fixed constants never
// trigger).
func (u *Real) String() string {
	s, _ := u.ToDisplayString(DefaultDisplayOptions())
	return s
}

var _ fmt.Formatter = (*Real)(nil)

// Format implements fmt.Formatter: %.Nf renders a fixed-decimal
// expansion to N digits, %s/%q render the rational shorthand when u is
// exactly rational, and every other verb falls back to
// ToDisplayString(DefaultDisplayOptions()).
func (u *Real) Format(f fmt.State, verb rune) {
	switch verb {
	case 'f':
		digits := 6
		if p, ok := f.Precision(); ok {
			digits = p
		}
		s, err := constructive.ToString(u.cr, digits)
		if err != nil {
			fmt.Fprintf(f, "%%!f(error=%v)", err)
			return
		}
		io.WriteString(f, s)
	case 's', 'q':
		if u.kind == KindOne {
			io.WriteString(f, u.br.String())
			return
		}
		io.WriteString(f, u.String())
	default:
		io.WriteString(f, u.String())
	}
}
