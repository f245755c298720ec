// Extensions to the go-check unittest framework.
//
// NOTE: see https://github.com/go-check/check/pull/6 for reasons why these
// checkers live here.
package gocheck2

import (
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	. "gopkg.in/check.v1"
)

// -----------------------------------------------------------------------
// IsTrue / IsFalse checker.

type isBoolValueChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolValueChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(bool)
	if !ok {
		return false, "Argument to " + checker.Name + " must be bool"
	}

	return obtained == checker.expected, ""
}

// The IsTrue checker verifies that the obtained value is true.
//
// For example:
//
//     c.Assert(value, IsTrue)
//
var IsTrue Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"obtained"}},
	true,
}

// The IsFalse checker verifies that the obtained value is false.
//
// For example:
//
//     c.Assert(value, IsFalse)
//
var IsFalse Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// IsOK / HasError checker.

type classified interface {
	IsOK() bool
}

type isOKChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isOKChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(classified)
	if !ok {
		return false, "Argument to " + checker.Name + " must implement IsOK() bool"
	}

	return obtained.IsOK() == checker.expected, ""
}

// The IsOK checker verifies that the obtained sentinel-classified value
// reports success.
//
// For example:
//
//     c.Assert(convention.Wrap(rc), IsOK)
//
var IsOK Checker = &isOKChecker{
	&CheckerInfo{Name: "IsOK", Params: []string{"obtained"}},
	true,
}

// The HasError checker verifies that the obtained sentinel-classified value
// reports failure.
//
// For example:
//
//     c.Assert(convention.Wrap(rc), HasError)
//
var HasError Checker = &isOKChecker{
	&CheckerInfo{Name: "HasError", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// DeepEqualsPretty checker.

type deepEqualsPrettyChecker struct {
	*CheckerInfo
}

func (checker *deepEqualsPrettyChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	if reflect.DeepEqual(params[0], params[1]) {
		return true, ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(spew.Sdump(params[1])),
		B:        difflib.SplitLines(spew.Sdump(params[0])),
		FromFile: "expected",
		ToFile:   "obtained",
		Context:  3,
	})
	if err != nil {
		return false, "Failed to compute diff: " + err.Error()
	}
	return false, "Difference:\n" + diff
}

// The DeepEqualsPretty checker verifies deep equality like the stock
// DeepEquals checker, but renders a unified diff of the two values' dumps
// on failure, which reads far better for nested structures.
//
// For example:
//
//     c.Assert(obtained, DeepEqualsPretty, expected)
//
var DeepEqualsPretty Checker = &deepEqualsPrettyChecker{
	&CheckerInfo{Name: "DeepEqualsPretty", Params: []string{"obtained", "expected"}},
}
