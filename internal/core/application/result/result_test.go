package result_test

import (
	"errors"
	"strconv"
	"testing"

	"orders/internal/core/application/result"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultVariants(t *testing.T) {
	t.Run("success carries data", func(t *testing.T) {
		r := result.Success("created")

		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsLogicalFailure())
		assert.False(t, r.IsInternalFailure())
		assert.Equal(t, "created", r.Data())
		assert.Empty(t, r.Message())
		assert.NoError(t, r.Fault())
	})

	t.Run("logical failure with a string payload is not a success", func(t *testing.T) {
		r := result.LogicalFailure[string]("order not found")

		assert.True(t, r.IsLogicalFailure())
		assert.False(t, r.IsSuccess())
		assert.Empty(t, r.Data())
		assert.Equal(t, "order not found", r.Message())
		assert.Equal(t, result.KindLogicalFailure, r.Kind())
	})

	t.Run("internal failure keeps the fault", func(t *testing.T) {
		fault := errors.New("connection refused")

		r := result.InternalFailure[int](fault)

		assert.True(t, r.IsInternalFailure())
		assert.Same(t, fault, r.Fault())
		assert.Equal(t, "connection refused", r.Message())
	})

	t.Run("internal failure never has a nil fault", func(t *testing.T) {
		assert.Error(t, result.InternalFailure[int](nil).Fault())
	})

	t.Run("zero result is an internal failure", func(t *testing.T) {
		var r result.Result[int]

		assert.True(t, r.IsInternalFailure())
		assert.Error(t, r.Fault())
	})

	t.Run("done is an empty success", func(t *testing.T) {
		r := result.Done()

		assert.True(t, r.IsSuccess())
		assert.Equal(t, result.Empty{}, r.Data())
	})

	t.Run("formatted logical failure", func(t *testing.T) {
		assert.Equal(t, "order 7 not found", result.LogicalFailuref[int]("order %d not found", 7).Message())
	})
}

func TestMap(t *testing.T) {
	mapped := result.Map(result.Success(42), strconv.Itoa)
	require.True(t, mapped.IsSuccess())
	assert.Equal(t, "42", mapped.Data())

	logical := result.Map(result.LogicalFailure[int]("nope"), strconv.Itoa)
	assert.True(t, logical.IsLogicalFailure())
	assert.Equal(t, "nope", logical.Message())

	fault := errors.New("boom")
	internal := result.Map(result.InternalFailure[int](fault), strconv.Itoa)
	assert.Same(t, fault, internal.Fault())
}

func TestRecast(t *testing.T) {
	assert.True(t, result.Recast[int, string](result.LogicalFailure[int]("x")).IsLogicalFailure())
	assert.True(t, result.Recast[int, string](result.Success(1)).IsInternalFailure())
	assert.Equal(t, "Success", result.KindSuccess.String())
}

func TestFromError(t *testing.T) {
	validation := result.FromError[int](errs.NewValueIsInvalidErrorWithCause("status is invalid", errors.New("order must be Received")))
	assert.True(t, validation.IsLogicalFailure())
	assert.Contains(t, validation.Message(), "order must be Received")

	joined := result.FromError[int](errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("cpf")))
	assert.True(t, joined.IsLogicalFailure())

	notFound := result.FromError[int](errs.NewObjectNotFoundError("order", "42"))
	assert.True(t, notFound.IsLogicalFailure())
	assert.Equal(t, "order 42 not found", notFound.Message())

	conflict := errs.NewConflictError("customer", "duplicated")
	internal := result.FromError[int](conflict)
	assert.True(t, internal.IsInternalFailure())
	assert.Same(t, conflict, internal.Fault())
}
