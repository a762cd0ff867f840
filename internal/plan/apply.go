package plan

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/widgetkit/internal/writer"
	"github.com/joshuapare/widgetkit/pkg/ast"
	"github.com/joshuapare/widgetkit/pkg/widget"
)

type step struct {
	name string
	run  func(*widget.Document) error
}

// steps lists the edits in application order: root fields, named elements,
// preferences, access removals then additions, plugins, hooks, raw XML.
func (p *Plan) steps() []step {
	var out []step
	add := func(name string, run func(*widget.Document) error) {
		out = append(out, step{name: name, run: run})
	}
	field := func(name, value string, set func(*widget.Document, string) error) {
		if value != "" {
			add(name, func(d *widget.Document) error { return set(d, value) })
		}
	}

	field("id", p.ID, (*widget.Document).SetID)
	field("version", p.Version, (*widget.Document).SetVersion)
	if p.AndroidVersionCode != nil {
		add("android-version-code", func(d *widget.Document) error {
			return d.SetAndroidVersionCode(p.AndroidVersionCode)
		})
	}
	field("android-package-name", p.AndroidPackageName, (*widget.Document).SetAndroidPackageName)
	field("ios-bundle-version", p.IOSBundleVersion, (*widget.Document).SetIOSBundleVersion)
	field("ios-bundle-identifier", p.IOSBundleIdentifier, (*widget.Document).SetIOSBundleIdentifier)

	if p.Name != "" {
		add("name", func(d *widget.Document) error { d.SetName(p.Name); return nil })
	}
	if p.Description != "" {
		add("description", func(d *widget.Document) error { d.SetDescription(p.Description); return nil })
	}
	if p.Content != "" {
		add("content", func(d *widget.Document) error { d.SetContent(p.Content); return nil })
	}
	if p.Author != nil {
		add("author", func(d *widget.Document) error {
			d.SetAuthor(p.Author.Name, p.Author.Email, p.Author.Href)
			return nil
		})
	}

	for _, pref := range p.Preferences {
		add("preference "+pref.Name, func(d *widget.Document) error {
			d.SetPreference(pref.Name, pref.Value)
			return nil
		})
	}

	if p.RemoveAccessOrigins {
		add("remove-access-origins", func(d *widget.Document) error { d.RemoveAccessOrigins(); return nil })
	}
	for _, origin := range p.RemoveAccess {
		add("remove-access "+origin, func(d *widget.Document) error { d.RemoveAccessOrigin(origin); return nil })
	}
	for _, a := range p.Access {
		add("access "+a.Origin, func(d *widget.Document) error {
			d.SetAccessOrigin(a.Origin, a.options()...)
			return nil
		})
	}

	for _, pl := range p.Plugins {
		add("plugin "+pl.Name, func(d *widget.Document) error {
			d.AddPluginVariable(pl.Name)
			for _, v := range pl.Variables {
				d.AddPluginVariable(pl.Name, v.Name, v.Value)
			}
			return nil
		})
	}

	for _, h := range p.Hooks {
		add("hook "+h.Type, func(d *widget.Document) error { return d.AddHook(h.Type, h.Src) })
	}

	for i, raw := range p.Raw {
		add(fmt.Sprintf("raw[%d]", i), func(d *widget.Document) error {
			_, err := d.AddRawXML(raw)
			return err
		})
	}
	return out
}

func (a Access) options() []ast.Attr {
	keys := make([]string, 0, len(a.Attrs))
	for k := range a.Attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	opts := make([]ast.Attr, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, ast.A(k, a.Attrs[k]))
	}
	return opts
}

// Apply runs every edit against doc in order and stops at the first failure.
// Edits made before the failure stay applied; nothing is written.
func (p *Plan) Apply(doc *widget.Document) error {
	for _, s := range p.steps() {
		if err := s.run(doc); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// Len returns the number of edits Apply would make.
func (p *Plan) Len() int { return len(p.steps()) }

// Batch configures ApplyFiles.
type Batch struct {
	Concurrency int             // documents in flight; values below 1 mean 1
	Backup      bool            // copy each file to <path>.bak before writing
	Options     []widget.Option // passed to widget.Open
	Logger      zerolog.Logger
}

// ApplyFiles opens each path, applies p and writes the result back. Documents
// are independent, so up to b.Concurrency of them are processed at once. The
// first failure cancels the files that have not started yet; files already
// written stay written.
func ApplyFiles(ctx context.Context, p *Plan, paths []string, b Batch) error {
	limit := b.Concurrency
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := applyFile(ctx, p, path, b); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			b.Logger.Info().Str("path", path).Msg("applied plan")
			return nil
		})
	}
	return g.Wait()
}

func applyFile(ctx context.Context, p *Plan, path string, b Batch) error {
	doc, err := widget.Open(path, b.Options...)
	if err != nil {
		return err
	}
	if err := p.Apply(doc); err != nil {
		return err
	}
	if b.Backup {
		if err := writer.Backup(path, path+".bak"); err != nil {
			return err
		}
	}
	return doc.Write(ctx)
}
