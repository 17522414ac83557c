package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const creditCardNumberLength = 16

var (
	nonAlphaRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	nonDigitRegexp = regexp.MustCompile(`\D`)
)

type alphaRule struct {
	rejectCardNumbers bool
}

// HasAlphabetic checks that a string contains at least one alphabetic
// character. Blank strings pass.
func HasAlphabetic() Rule {
	return alphaRule{}
}

// NonCreditCardNumber rejects strings that look like credit card numbers.
// Useful on free-text fields where users paste things they shouldn't.
func NonCreditCardNumber() Rule {
	return alphaRule{rejectCardNumbers: true}
}

func (r alphaRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Description += "Must contain at least one alphabetic character. "
	return nil
}

func (r alphaRule) Validate(value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if nonAlphaRegexp.ReplaceAllString(v, "") != "" {
		return nil
	}

	// No letters at all.
	if r.rejectCardNumbers {
		digits := nonDigitRegexp.ReplaceAllString(v, "")
		if len(digits) != creditCardNumberLength {
			return nil
		}
		return fmt.Errorf("must not be a credit card number")
	}
	return fmt.Errorf("must contain at least one alphabetic character")
}
