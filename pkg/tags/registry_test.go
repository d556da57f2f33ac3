package tags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRegistryVocabulary(t *testing.T) {
	registry := NewDefaultRegistry()

	want := []string{
		"database",
		"database:ca_provinces",
		"database:checkbox",
		"database:countries",
		"database:file",
		"database:form",
		"database:hidden",
		"database:option",
		"database:password",
		"database:radio",
		"database:radiogroup",
		"database:reset",
		"database:select",
		"database:submit",
		"database:text",
		"database:textarea",
		"database:us_states",
	}
	if diff := cmp.Diff(want, registry.Names()); diff != "" {
		t.Fatalf("registered tags mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryResolveWalksEnclosingPrefixes(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.MustRegister("database:form:text", Descriptor{Handler: namespaceHandler})

	tests := []struct {
		name      string
		enclosing []string
		want      string
		ok        bool
	}{
		{name: "text", enclosing: []string{"database", "database:form"}, want: "database:form:text", ok: true},
		{name: "option", enclosing: []string{"database:form", "database:select"}, want: "database:option", ok: true},
		{name: "database:text", want: "database:text", ok: true},
		{name: "text", ok: false},
		{name: " Database:Select ", want: "database:select", ok: true},
	}

	for _, tt := range tests {
		descriptor, ok := registry.Resolve(tt.name, tt.enclosing)
		if ok != tt.ok {
			t.Fatalf("Resolve(%q, %v) ok = %v, want %v", tt.name, tt.enclosing, ok, tt.ok)
		}
		if ok && descriptor.Name != tt.want {
			t.Fatalf("Resolve(%q, %v) = %q, want %q", tt.name, tt.enclosing, descriptor.Name, tt.want)
		}
	}
}

func TestRegistryCloneIsIsolated(t *testing.T) {
	base := NewDefaultRegistry()
	clone := base.Clone()
	clone.MustRegister("database:extra", Descriptor{Handler: namespaceHandler})

	if _, ok := base.Descriptor("database:extra"); ok {
		t.Fatalf("clone registration leaked into base registry")
	}
	if err := clone.Register("", Descriptor{Handler: namespaceHandler}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := clone.Register("x", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil handler")
	}
}

func TestContextWithScopeDoesNotMutateParent(t *testing.T) {
	ctx := NewContext(Page{URL: "/"})
	child := ctx.WithScope(func(scope *Scope) {
		scope.ParentName = "color"
		scope.ParentKind = ParentRadioGroup
	})

	if ctx.Scope.ParentKind != ParentNone {
		t.Fatalf("parent scope mutated: %#v", ctx.Scope)
	}
	if child.NextOptionID() != 1 || ctx.NextOptionID() != 2 {
		t.Fatalf("derived contexts must share the option counter")
	}
}

func TestTruthy(t *testing.T) {
	for value, want := range map[string]bool{"": false, "false": false, "0": false, "Off": false, "no": false, "true": true, "yes": true, "1": true} {
		if got := truthy(value); got != want {
			t.Fatalf("truthy(%q) = %v, want %v", value, got, want)
		}
	}
}
