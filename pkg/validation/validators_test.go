package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestEmailShape(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	accepted := []string{
		"ada@x.co",
		"a@b.c", // shaped but undeliverable: accepted on purpose
		"first.last+tag@sub.domain.io",
		"1234@99.88",
	}
	for _, email := range accepted {
		assert.NoError(t, v.Var(email, "email_shape"), "should accept %q", email)
	}

	rejected := []string{
		"",
		"plain",
		"no-dot@domain",
		"@missing-local.com",
		"missing-domain@",
		"two@@ats.com",
		"white space@domain.com",
		"trailing@domain.com ",
	}
	for _, email := range rejected {
		assert.Error(t, v.Var(email, "email_shape"), "should reject %q", email)
	}
}
