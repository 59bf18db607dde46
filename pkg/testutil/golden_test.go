package testutil_test

import (
	"testing"

	"github.com/rebuy-de/ctxstore/pkg/testutil"
)

type exampleData struct {
	Foo     string `json:"foo" yaml:"foo"`
	Blubber int    `json:"blubber" yaml:"blubber"`
}

func TestAssertGoldenJSON(t *testing.T) {
	data := exampleData{
		Foo:     "bar",
		Blubber: 42,
	}

	testutil.AssertGoldenJSON(t, "test-fixtures/example-golden.json", data)
}

func TestAssertGoldenYAML(t *testing.T) {
	data := exampleData{
		Foo:     "bar",
		Blubber: 42,
	}

	testutil.AssertGoldenYAML(t, "test-fixtures/example-golden.yaml", data)
}
