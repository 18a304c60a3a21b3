package customer_test

import (
	"strings"
	"testing"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCpf(t *testing.T) {
	t.Run("should accept valid cpfs with or without formatting", func(t *testing.T) {
		for input, expected := range map[string]string{
			"529.982.247-25": "52998224725",
			"52998224725":    "52998224725",
			"00000000191":    "00000000191",
			" 111.444.777-35 ": "11144477735",
		} {
			cpf, err := customer.NewCpf(input)

			require.NoError(t, err, input)
			assert.Equal(t, expected, cpf.String())
			assert.NoError(t, cpf.Validate())
		}
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := customer.NewCpf("")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid cpfs", func(t *testing.T) {
		cases := map[string]string{
			"123":            "exactly 11 digits",
			"5299822472a":    "exactly 11 digits",
			"111.111.111-11": "all digits equal",
			"529.982.247-26": "check digits do not match",
			"52998224715":    "check digits do not match",
		}

		for input, msg := range cases {
			_, err := customer.NewCpf(input)

			require.Error(t, err, input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), msg)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cpf customer.Cpf

		assert.Equal(t, customer.ErrCpfIsNotConstructed, cpf.Validate())
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("should accept a bare address", func(t *testing.T) {
		email, err := customer.NewEmail(" ana@mail.com ")

		require.NoError(t, err)
		assert.Equal(t, "ana@mail.com", email.String())
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, input := range []string{"ana", "ana@", "Ana <ana@mail.com>"} {
			_, err := customer.NewEmail(input)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})

	t.Run("should reject overlong addresses", func(t *testing.T) {
		_, err := customer.NewEmail(strings.Repeat("a", 250) + "@mail.com")

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := customer.NewEmail("")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewName(t *testing.T) {
	name, err := customer.NewName("  Ana Souza ")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", name.String())

	_, err = customer.NewName("   ")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = customer.NewName(strings.Repeat("ã", 256))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create a valid customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "Ana", "ana@mail.com", "529.982.247-25")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Ana", c.Name().String())
		assert.Equal(t, "ana@mail.com", c.Email().String())
		assert.Equal(t, "52998224725", c.Cpf().String())
		assert.False(t, c.IsDefault())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.UUID{}, "", "bad", "123")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "value is invalid: email")
		assert.Contains(t, err.Error(), "value is invalid: cpf")
	})

	t.Run("nil customer is not constructed", func(t *testing.T) {
		var c *customer.Customer

		assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
	})
}

func TestNewDefaultCustomer(t *testing.T) {
	c := customer.NewDefaultCustomer()

	assert.True(t, c.IsDefault())
	assert.Equal(t, customer.DefaultID, c.ID().String())
	assert.Equal(t, customer.DefaultEmail, c.Email().String())
	assert.Equal(t, customer.DefaultName, c.Name().String())
}
