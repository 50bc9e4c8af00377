package validate_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/gqlerrors"
	"github.com/shyptr/gqlvalidate/internal/testfixture"
	"github.com/shyptr/gqlvalidate/validate"
)

func kinds(errs gqlerrors.Errors) []gqlerrors.Kind {
	ks := make([]gqlerrors.Kind, len(errs))
	for i, e := range errs {
		ks[i] = e.Kind
	}
	return ks
}

func validateSrc(t *testing.T, src string) (ok bool, errs gqlerrors.Errors) {
	t.Helper()
	sc := testfixture.MustLoad()
	doc, err := testfixture.LoadQuery(src)
	require.NoError(t, err)
	_, errs = validate.Validate(doc, sc)
	return errs == nil, errs
}

func TestS1_DuplicateOperationName(t *testing.T) {
	ok, errs := validateSrc(t, `query a{dog{name}} query a{dog{name}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.NameNotUnique)
}

func TestS2_AnonymousNotAlone(t *testing.T) {
	ok, errs := validateSrc(t, `{dog{name}} query b{dog{name}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.AnonymousQueryNotAlone)
}

func TestS3_SubscriptionMultipleRoots(t *testing.T) {
	ok, errs := validateSrc(t, `subscription s{newMessage{name} disallowedSecondRootField{name}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.SubscriptionHasMultipleRoots)
}

func TestS4_SubscriptionMultipleRootsViaFragment(t *testing.T) {
	ok, errs := validateSrc(t, `subscription s{...F} fragment F on Subscription{newMessage{name} disallowedSecondRootField{name}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.SubscriptionHasMultipleRoots)
}

func TestS5_ValidLeafSelection(t *testing.T) {
	ok, errs := validateSrc(t, `query{dog{nickname}}`)
	assert.True(t, ok, "%v", errs)
}

func TestS6_InvalidSelectionOnLeaf(t *testing.T) {
	ok, errs := validateSrc(t, `fragment X on Dog{barkVolume{sinceWhen}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.InvalidSelection)
}

func TestS7_FragmentCycle(t *testing.T) {
	ok, errs := validateSrc(t, `fragment A on Dog{...B} fragment B on Dog{...A}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.CyclesDetected)
	for _, e := range errs {
		if e.Kind == gqlerrors.CyclesDetected {
			assert.ElementsMatch(t, []string{"A", "B"}, namesOf(e.Names))
		}
	}
}

func TestS8_VariableTypeMismatch(t *testing.T) {
	ok, errs := validateSrc(t, `query q($x:Int){dog(id:$x){name}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.TypeMismatch)
}

func TestS9_UnusedVariable(t *testing.T) {
	ok, errs := validateSrc(t, `query q($x:Int){dog{name}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.UnusedDefinition)
}

func TestS10_IncompatibleInlineFragmentType(t *testing.T) {
	ok, errs := validateSrc(t, `query{dog{owner{...on Cat{name}}}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.InvalidFragment)
}

func namesOf(ns []ast.Name) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.String()
	}
	return out
}

func TestPurity_DeterministicAcrossInvocations(t *testing.T) {
	src := `query a{dog{name}} query a{dog{name}}`
	_, errs1 := validateSrc(t, src)
	_, errs2 := validateSrc(t, src)

	sortedKinds := func(errs gqlerrors.Errors) []string {
		ks := make([]string, len(errs))
		for i, e := range errs {
			ks[i] = string(e.Kind)
		}
		sort.Strings(ks)
		return ks
	}

	if diff := cmp.Diff(sortedKinds(errs1), sortedKinds(errs2)); diff != "" {
		t.Errorf("two validations of the same document disagreed (-first +second):\n%s", diff)
	}
}

func TestComposition_IndependentViolationsBothReported(t *testing.T) {
	ok, errs := validateSrc(t, `query a{dog{name}} query a{dog{name}} query q($x:Int){dog{name}}`)
	assert.False(t, ok)
	ks := kinds(errs)
	assert.Contains(t, ks, gqlerrors.NameNotUnique)
	assert.Contains(t, ks, gqlerrors.UnusedDefinition)
}

func TestRoundTrip_SuccessReturnsSameDocument(t *testing.T) {
	sc := testfixture.MustLoad()
	doc, err := testfixture.LoadQuery(`query{dog{nickname}}`)
	require.NoError(t, err)
	out, errs := validate.Validate(doc, sc)
	require.Nil(t, errs)
	assert.Same(t, doc, out)
}

func TestMissingField(t *testing.T) {
	ok, errs := validateSrc(t, `query{dog{nonexistentField}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.MissingField)
}

func TestMissingSelectionOnComposite(t *testing.T) {
	ok, errs := validateSrc(t, `query{dog}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.MissingSelection)
}

func TestUnknownFragmentSpread(t *testing.T) {
	ok, errs := validateSrc(t, `query{dog{...Unknown}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.MissingDefinition)
}

func TestFragmentOnNonCompositeType(t *testing.T) {
	ok, errs := validateSrc(t, `fragment X on Int{foo}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.InvalidFragment)
}

func TestDuplicateArgumentName(t *testing.T) {
	ok, errs := validateSrc(t, `query{booleanArgField(booleanArg: true, booleanArg: false)}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.NameNotUnique)
}

func TestValidArgument(t *testing.T) {
	ok, errs := validateSrc(t, `query{booleanArgField(booleanArg: true)}`)
	assert.True(t, ok, "%v", errs)
}

func TestVariableUsedThroughFragmentSpreadIsAccepted(t *testing.T) {
	ok, errs := validateSrc(t, `
		query q($cmd: DogCommand!) { dog { ...A } }
		fragment A on Dog { doesKnowCommand(dogCommand: $cmd) }
	`)
	assert.True(t, ok, "%v", errs)
}

func TestVariableUsedThroughFragmentSpreadWrongTypeIsRejected(t *testing.T) {
	ok, errs := validateSrc(t, `
		query q($cmd: Int) { dog { ...A } }
		fragment A on Dog { doesKnowCommand(dogCommand: $cmd) }
	`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.TypeMismatch)
}

func TestUnknownDirective(t *testing.T) {
	ok, errs := validateSrc(t, `query{dog @bogus{name}}`)
	assert.False(t, ok)
	assert.Contains(t, kinds(errs), gqlerrors.MissingDefinition)
}
