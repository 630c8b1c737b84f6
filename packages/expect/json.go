package expect

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/restspec/rest/packages/core/sentence"
)

func (e *Expectation) jsonDocument() (string, bool) {
	switch doc := e.subject.(type) {
	case string:
		return doc, true
	case []byte:
		return string(doc), true
	default:
		return "", false
	}
}

// ToHaveJSONPath asserts a JSON string or []byte subject has a value at
// the given gjson path.
func (e *Expectation) ToHaveJSONPath(path string) *Expectation {
	s := sentence.New("have", fmt.Sprintf("JSON path %q", path)).WithActual(e.subject)
	doc, ok := e.jsonDocument()
	return e.addStep(s, ok && gjson.Get(doc, path).Exists())
}

// ToMatchJSONPath asserts the value at the gjson path loosely equals
// expected.
func (e *Expectation) ToMatchJSONPath(path string, expected any) *Expectation {
	s := sentence.New("have", fmt.Sprintf("%s at JSON path %q", formatValue(expected), path))
	doc, ok := e.jsonDocument()
	if !ok {
		return e.addStep(s.WithActual(e.subject), false)
	}
	result := gjson.Get(doc, path)
	s = s.WithActual(result.Raw)
	return e.addStep(s, result.Exists() && equalValues(result.Value(), expected))
}

// ToMatchJSONSchema asserts a JSON subject validates against the given
// JSON schema document.
func (e *Expectation) ToMatchJSONSchema(schema []byte) *Expectation {
	s := sentence.New("match", "the JSON schema")
	doc, ok := e.jsonDocument()
	if !ok {
		return e.addStep(s.WithActual(e.subject), false)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		return e.addStep(s.WithActual(fmt.Sprintf("validation error: %v", err)), false)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return e.addStep(s.WithActual(strings.Join(problems, "; ")), false)
	}
	return e.addStep(s, true)
}
