// Package calc is the four-function calculator shown over the board.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Op is a binary operator. The zero value means no operator is pending.
type Op byte

const (
	OpNone Op = 0
	OpAdd  Op = '+'
	OpSub  Op = '-'
	OpMul  Op = '*'
	OpDiv  Op = '/'
)

// ErrorDisplay is shown after an invalid operation such as division by zero.
const ErrorDisplay = "Error"

// maxDigits bounds what can be typed into the display.
const maxDigits = 16

// Calculator holds one stored value and at most one pending operator.
type Calculator struct {
	display string
	stored  float64
	pending Op
	fresh   bool // the next digit starts a new number
	failed  bool
}

func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

func (c *Calculator) Display() string { return c.display }

// Pending returns the operator waiting for its right-hand operand.
func (c *Calculator) Pending() Op { return c.pending }

func (c *Calculator) Failed() bool { return c.failed }

// Clear resets everything.
func (c *Calculator) Clear() {
	*c = Calculator{display: "0", fresh: true}
}

// Digit appends d (0-9) to the number being typed.
func (c *Calculator) Digit(d int) {
	if d < 0 || d > 9 {
		return
	}
	if c.failed {
		c.Clear()
	}
	s := strconv.Itoa(d)
	switch {
	case c.fresh:
		c.display = s
		c.fresh = false
	case c.display == "0":
		c.display = s
	case len(strings.TrimPrefix(c.display, "-")) < maxDigits:
		c.display += s
	}
}

// Decimal adds a decimal point unless the number already has one.
func (c *Calculator) Decimal() {
	if c.failed {
		c.Clear()
	}
	if c.fresh {
		c.display = "0."
		c.fresh = false
		return
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

// Backspace removes the last typed character. Results cannot be edited.
func (c *Calculator) Backspace() {
	if c.failed || c.fresh {
		return
	}
	c.display = c.display[:len(c.display)-1]
	if c.display == "" || c.display == "-" {
		c.display = "0"
	}
}

// Operator sets the pending operator. If one is already pending and a
// second operand has been typed, it is resolved first.
func (c *Calculator) Operator(op Op) {
	if c.failed || !op.valid() {
		return
	}
	if c.pending != OpNone && !c.fresh {
		if !c.resolve() {
			return
		}
	} else if c.pending == OpNone {
		c.stored = c.value()
	}
	c.pending = op
	c.fresh = true
}

// Equals resolves the pending operator, if any.
func (c *Calculator) Equals() {
	if c.failed || c.pending == OpNone {
		return
	}
	if c.resolve() {
		c.pending = OpNone
		c.fresh = true
	}
}

// Press dispatches a key label as shown on the calculator buttons. It
// reports whether the key was recognized.
func (c *Calculator) Press(key string) bool {
	switch key {
	case "C", "c", "Escape":
		c.Clear()
	case "=", "Enter", "Return":
		c.Equals()
	case ".", ",":
		c.Decimal()
	case "⌫", "BackSpace":
		c.Backspace()
	case "+", "-", "*", "/", "×", "÷":
		c.Operator(parseOp(key))
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			c.Digit(int(key[0] - '0'))
			return true
		}
		return false
	}
	return true
}

func parseOp(key string) Op {
	switch key {
	case "×":
		return OpMul
	case "÷":
		return OpDiv
	}
	return Op(key[0])
}

func (op Op) valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

func (op Op) String() string {
	if op == OpNone {
		return ""
	}
	return string(rune(op))
}

func (c *Calculator) value() float64 {
	v, err := strconv.ParseFloat(c.display, 64)
	if err != nil {
		return 0
	}
	return v
}

// resolve applies stored <pending> display, leaving the result in both.
func (c *Calculator) resolve() bool {
	rhs := c.value()
	var r float64
	switch c.pending {
	case OpAdd:
		r = c.stored + rhs
	case OpSub:
		r = c.stored - rhs
	case OpMul:
		r = c.stored * rhs
	case OpDiv:
		if rhs == 0 {
			c.fail()
			return false
		}
		r = c.stored / rhs
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		c.fail()
		return false
	}
	c.stored = r
	c.display = Format(r)
	return true
}

func (c *Calculator) fail() {
	c.display = ErrorDisplay
	c.stored = 0
	c.pending = OpNone
	c.fresh = true
	c.failed = true
}

// Format renders a result with up to 12 significant digits.
func Format(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 12, 64)
}
