package hclmanifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/buildplan/internal/manifest"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalStatic evaluates expr without variables or functions. Omitted optional
// attributes come back from gohcl as a synthetic null expression, so a null
// result means "not set".
func evalStatic(expr hcl.Expression, field string) (cty.Value, error) {
	if expr == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diagError(diags, field)
	}
	return val, nil
}

// intAttr reads a whole-number attribute. Strings are rejected even when
// they look numeric.
func intAttr(expr hcl.Expression, field string) (int, bool, error) {
	val, err := evalStatic(expr, field)
	if err != nil || val.IsNull() {
		return 0, false, err
	}
	if !val.Type().Equals(cty.Number) {
		return 0, false, manifest.Malformedf(posOf(expr.Range()), field, "must be a number, got %s", val.Type().FriendlyName())
	}
	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, false, manifest.Malformedf(posOf(expr.Range()), field, "must be a whole number: %s", err)
	}
	return n, true, nil
}

func requiredInt(expr hcl.Expression, field string) (int, error) {
	n, ok, err := intAttr(expr, field)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, manifest.Malformedf(posOf(rangeOf(expr)), field, "required field is missing")
	}
	return n, nil
}

// stringAttr reads a string attribute. Only string values are accepted.
func stringAttr(expr hcl.Expression, field string) (string, bool, error) {
	val, err := evalStatic(expr, field)
	if err != nil || val.IsNull() {
		return "", false, err
	}
	if !val.Type().Equals(cty.String) {
		return "", false, manifest.Malformedf(posOf(expr.Range()), field, "must be a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), true, nil
}

func requiredString(expr hcl.Expression, field string) (string, error) {
	s, ok, err := stringAttr(expr, field)
	if err != nil {
		return "", err
	}
	if !ok || s == "" {
		return "", manifest.Malformedf(posOf(rangeOf(expr)), field, "required field is missing")
	}
	return s, nil
}

// lenientStringAttr accepts a string or an unquoted number literal, so that
// `jvm_target = 17` and `jvm_target = "17"` are equivalent. Numbers keep their
// source spelling: `version_name = 1.10` reads as "1.10".
func lenientStringAttr(src []byte, expr hcl.Expression, field string) (string, bool, error) {
	if lit, ok := expr.(*hclsyntax.LiteralValueExpr); ok && lit.Val.Type().Equals(cty.Number) {
		return string(lit.SrcRange.SliceBytes(src)), true, nil
	}
	return stringAttr(expr, field)
}

func rangeOf(expr hcl.Expression) hcl.Range {
	if expr == nil {
		return hcl.Range{}
	}
	return expr.Range()
}
