package customer

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const cpfLength = 11

var ErrCpfIsNotConstructed = errs.NewValueIsRequiredError("Cpf must be created via NewCpf")

// Cpf is an individual taxpayer number. Formatting characters ('.' and '-')
// are accepted on input and dropped; the stored form is the 11 digits.
type Cpf struct {
	digits string
	guard  guard.ConstructorGuard
}

// NewCpf validates the length, the repeated-digit blacklist and both check digits.
func NewCpf(value string) (Cpf, error) {
	digits := strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(value))
	if digits == "" {
		return Cpf{}, errs.NewValueIsRequiredError("cpf")
	}

	if len(digits) != cpfLength || !onlyDigits(digits) {
		return Cpf{}, errs.NewValueIsInvalidErrorWithCause(
			"cpf",
			fmt.Errorf("%q must have exactly %d digits", value, cpfLength),
		)
	}

	if strings.Count(digits, digits[:1]) == cpfLength {
		return Cpf{}, errs.NewValueIsInvalidErrorWithCause(
			"cpf",
			fmt.Errorf("%q has all digits equal", value),
		)
	}

	if checkDigit(digits[:9]) != digits[9] || checkDigit(digits[:10]) != digits[10] {
		return Cpf{}, errs.NewValueIsInvalidErrorWithCause("cpf", errors.New("check digits do not match"))
	}

	return Cpf{digits: digits, guard: guard.NewConstructorGuard()}, nil
}

// checkDigit computes the modulo 11 digit that follows prefix.
func checkDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := range len(prefix) {
		sum += int(prefix[i]-'0') * (weight - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String returns the 11 digits without formatting.
func (c Cpf) String() string {
	return c.digits
}

func (c Cpf) IsEqual(other Cpf) bool {
	return c.digits == other.digits
}

func (c Cpf) Validate() error {
	return c.guard.Validate(ErrCpfIsNotConstructed)
}
