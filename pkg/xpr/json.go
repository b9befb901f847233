package xpr

import (
	"github.com/cwbudde/go-xpr/internal/ast"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ExportJSON renders a Serialized tree as the {n,t,c} JSON wire format
// (spec §4.3, §6 "serialize"/"toJSON"), pretty-printed when pretty is
// true. Unlike encoding/json, sjson builds the document field-by-field in
// the n/t/c key order the spec's examples use, and tidwall/pretty does
// the indentation afterward.
func ExportJSON(s ast.Serialized, prettyPrint bool) (string, error) {
	raw, err := buildJSON(s)
	if err != nil {
		return "", err
	}
	if prettyPrint {
		return string(pretty.Pretty([]byte(raw))), nil
	}
	return raw, nil
}

func buildJSON(s ast.Serialized) (string, error) {
	doc, err := sjson.Set("{}", "n", s.N)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "t", s.T)
	if err != nil {
		return "", err
	}
	for _, child := range s.C {
		childJSON, err := buildJSON(child)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, "c.-1", childJSON)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// ImportJSON parses the {n,t,c} wire format back into a Serialized tree
// (spec §4.3, §6 "deserialize"/"fromJSON"). gjson decodes every JSON
// number as float64; ast.Deserialize already normalizes that back to
// int64 where the value has no fractional part, so ImportJSON hands those
// numbers through unchanged.
func ImportJSON(jsonText string) (ast.Serialized, error) {
	if !gjson.Valid(jsonText) {
		return ast.Serialized{}, errInvalidJSON(jsonText)
	}
	return parseResult(gjson.Parse(jsonText)), nil
}

func parseResult(r gjson.Result) ast.Serialized {
	children := r.Get("c").Array()
	out := make([]ast.Serialized, 0, len(children))
	for _, c := range children {
		out = append(out, parseResult(c))
	}
	return ast.Serialized{N: r.Get("n").Value(), T: r.Get("t").String(), C: out}
}
