package ast

import (
	"testing"
)

func TestNewElement(t *testing.T) {
	el := NewElement("widget", A("id", "com.example"))
	if el.Tag != "widget" {
		t.Errorf("Tag should be 'widget', got %q", el.Tag)
	}
	if el.Get("id") != "com.example" {
		t.Errorf("id should be 'com.example', got %q", el.Get("id"))
	}
	if len(el.Children) != 0 {
		t.Errorf("New element should have no children, got %d", len(el.Children))
	}
}

func TestElementAppend(t *testing.T) {
	root := NewElement("widget")
	child := root.AddChild("name")

	if child.Parent != root {
		t.Error("Child parent should be root")
	}
	if len(root.Children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(root.Children))
	}
	if root.Children[0] != child {
		t.Error("Appended child should be last")
	}
}

func TestElementAppend_Reparents(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	child := a.AddChild("c")

	b.Append(child)

	if len(a.Children) != 0 {
		t.Errorf("Old parent should have no children, got %d", len(a.Children))
	}
	if child.Parent != b {
		t.Error("Child should be attached to new parent")
	}
}

func TestElementRemove(t *testing.T) {
	root := NewElement("widget")
	first := root.AddChild("access", A("origin", "*"))
	root.AddChild("access", A("origin", "http://example.com"))

	if !root.Remove(first) {
		t.Fatal("Remove should return true")
	}
	if len(root.Children) != 1 {
		t.Fatalf("Expected 1 child after removal, got %d", len(root.Children))
	}
	if first.Parent != nil {
		t.Error("Removed child should be detached")
	}
	if root.Remove(first) {
		t.Error("Removing a detached element should return false")
	}
}

func TestElementRemoveAll(t *testing.T) {
	root := NewElement("widget")
	root.AddChild("access", A("origin", "*"))
	root.AddChild("name")
	root.AddChild("access", A("origin", "http://example.com"))

	n := root.RemoveAll(ByTag("access"))
	if n != 2 {
		t.Errorf("Expected 2 removals, got %d", n)
	}
	if len(root.Children) != 1 || root.Children[0].Tag != "name" {
		t.Errorf("Only <name> should remain, got %v", tags(root.Children))
	}
}

func TestElementFind(t *testing.T) {
	root := NewElement("widget")
	root.AddChild("preference", A("name", "A"), A("value", "1"))
	want := root.AddChild("preference", A("name", "B"), A("value", "2"))
	root.AddChild("preference", A("name", "B"), A("value", "3"))

	got := root.Find(ByAttr("preference", "name", "B"))
	if got != want {
		t.Error("Find should return the first match")
	}
	if root.Find(ByAttr("preference", "name", "C")) != nil {
		t.Error("Find should return nil when nothing matches")
	}
	if n := len(root.FindAll(ByTag("preference"))); n != 3 {
		t.Errorf("Expected 3 preferences, got %d", n)
	}
}

func TestElementFind_DirectChildrenOnly(t *testing.T) {
	root := NewElement("widget")
	platform := root.AddChild("platform", A("name", "android"))
	platform.AddChild("icon")

	if root.Find(ByTag("icon")) != nil {
		t.Error("Find must not descend into grandchildren")
	}
}

func TestFindOrAppend(t *testing.T) {
	root := NewElement("widget")

	el, created := root.FindOrAppend(ByTag("content"), func() *Element {
		return NewElement("content")
	})
	if !created {
		t.Error("First call should create the element")
	}

	again, created := root.FindOrAppend(ByTag("content"), func() *Element {
		t.Fatal("create should not be called when a match exists")
		return nil
	})
	if created || again != el {
		t.Error("Second call should return the existing element")
	}
}

func TestElementPath(t *testing.T) {
	root := NewElement("widget")
	icon := root.AddChild("platform").AddChild("icon")

	if got := icon.Path(); got != "widget/platform/icon" {
		t.Errorf("Path should be 'widget/platform/icon', got %q", got)
	}
}

func TestElementClone(t *testing.T) {
	root := NewElement("widget", A("id", "x"))
	root.AddChild("name").Text = "App"

	cp := root.Clone()
	cp.Set("id", "y")
	cp.Children[0].Text = "Other"

	if root.Get("id") != "x" || root.Children[0].Text != "App" {
		t.Error("Clone should not share state with the original")
	}
	if cp.Children[0].Parent != cp {
		t.Error("Cloned children should point at the cloned parent")
	}
}

func TestElementWalk(t *testing.T) {
	root := NewElement("widget")
	p := root.AddChild("platform")
	p.AddChild("icon")
	root.AddChild("name")

	var visited []string
	root.Walk(func(el *Element, depth int) bool {
		visited = append(visited, el.Tag)
		return el.Tag != "platform"
	})

	want := []string{"widget", "platform", "name"}
	if len(visited) != len(want) {
		t.Fatalf("Expected %v, got %v", want, visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Visit %d: expected %q, got %q", i, want[i], visited[i])
		}
	}
}

func tags(els []*Element) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.Tag
	}
	return out
}
