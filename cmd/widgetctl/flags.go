package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/joshuapare/widgetkit/pkg/ast"
)

// attrFlag collects repeated --attr key=value flags in order.
type attrFlag []ast.Attr

var _ pflag.Value = (*attrFlag)(nil)

func (f *attrFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, a := range *f {
		parts = append(parts, a.Name+"="+a.Value)
	}
	return strings.Join(parts, ",")
}

func (f *attrFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	*f = append(*f, ast.A(name, value))
	return nil
}

func (f *attrFlag) Type() string { return "key=value" }
