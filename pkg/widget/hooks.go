package widget

import (
	"slices"

	"github.com/joshuapare/widgetkit/pkg/ast"
	"github.com/joshuapare/widgetkit/pkg/types"
)

// hookTypes is the fixed set of build lifecycle events a hook can target.
var hookTypes = []string{
	"after_build",
	"after_compile",
	"after_clean",
	"after_docs",
	"after_emulate",
	"after_platform_add",
	"after_platform_rm",
	"after_platform_ls",
	"after_plugin_add",
	"after_plugin_ls",
	"after_plugin_rm",
	"after_plugin_search",
	"after_plugin_install",
	"after_prepare",
	"after_run",
	"after_serve",
	"before_build",
	"before_clean",
	"before_compile",
	"before_docs",
	"before_emulate",
	"before_platform_add",
	"before_platform_rm",
	"before_platform_ls",
	"before_plugin_add",
	"before_plugin_ls",
	"before_plugin_rm",
	"before_plugin_search",
	"before_plugin_install",
	"before_plugin_uninstall",
	"before_prepare",
	"before_run",
	"before_serve",
	"pre_package",
}

const msgInvalidHook = "Please provide a valid hook target"

// Hook is a script bound to a lifecycle event.
type Hook struct {
	Type string `json:"type" yaml:"type"`
	Src  string `json:"src" yaml:"src"`
}

// HookTypes returns the accepted hook types in their canonical order.
func HookTypes() []string { return slices.Clone(hookTypes) }

// IsHookType reports whether typ is an accepted hook type.
func IsHookType(typ string) bool { return slices.Contains(hookTypes, typ) }

// AddHook appends <hook type="typ" src="src" />. Duplicates are allowed.
func (d *Document) AddHook(typ, src string) error {
	if !IsHookType(typ) {
		return types.ValidationError(msgInvalidHook)
	}
	d.root.AddChild(TagHook, ast.A(AttrType, typ), ast.A(AttrSrc, src))
	d.log.Debug().Str("type", typ).Str("src", src).Msg("add hook")
	return nil
}

// Hooks lists hooks in document order.
func (d *Document) Hooks() []Hook {
	var out []Hook
	for _, el := range d.root.FindAll(ast.ByTag(TagHook)) {
		out = append(out, Hook{Type: el.Get(AttrType), Src: el.Get(AttrSrc)})
	}
	return out
}
