package gqlerrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/gqlerrors"
)

func TestAccumulator_ResultNilOnNoErrors(t *testing.T) {
	var acc gqlerrors.Accumulator
	doc := &ast.Document{}
	out, errs := acc.Result(doc)
	assert.Same(t, doc, out)
	assert.Nil(t, errs)
}

func TestAccumulator_ResultCombinesAddAndAddAll(t *testing.T) {
	var acc gqlerrors.Accumulator
	acc.Add(gqlerrors.New(gqlerrors.NameNotUnique, "dup", "a"))
	acc.AddAll(gqlerrors.Errors{
		gqlerrors.New(gqlerrors.UnusedDefinition, "unused", "b"),
	})

	doc := &ast.Document{}
	out, errs := acc.Result(doc)
	assert.Nil(t, out)
	require.Len(t, errs, 2)
	assert.Equal(t, gqlerrors.NameNotUnique, errs[0].Kind)
	assert.Equal(t, gqlerrors.UnusedDefinition, errs[1].Kind)
}

func TestAccumulator_AddNilIsNoop(t *testing.T) {
	var acc gqlerrors.Accumulator
	acc.Add(nil)
	assert.True(t, acc.Ok())
}

func TestError_FormatsKindNamesAndHint(t *testing.T) {
	err := gqlerrors.New(gqlerrors.MissingField, "did you mean 'name'?", "nme")
	assert.Contains(t, err.Error(), "MissingField")
	assert.Contains(t, err.Error(), "nme")
	assert.Contains(t, err.Error(), "did you mean")
}
