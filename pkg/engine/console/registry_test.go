package console

import "testing"

func TestRegistryLowercasesNames(t *testing.T) {
	r := NewRegistry()
	r.Register("NoClip", func(args []string) {}, "toggles clipping", 0)
	if _, ok := r.Lookup("noclip"); !ok {
		t.Error("Lookup(\"noclip\") failed after registering \"NoClip\"")
	}
	if _, ok := r.Lookup("NOCLIP"); !ok {
		t.Error("Lookup is not case-insensitive")
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	if !r.Register("fly", func(args []string) {}, "first", 0) {
		t.Fatal("first Register returned false")
	}
	if r.Register("Fly", func(args []string) {}, "second", 0) {
		t.Error("duplicate Register returned true, want false")
	}
	cmd, _ := r.Lookup("fly")
	if cmd.Description != "first" {
		t.Errorf("Description = %q, want the original %q", cmd.Description, "first")
	}
}

func TestRegistryUnregisterAbsentIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Unregister("ghost")
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryUnregisterByTag(t *testing.T) {
	r := NewRegistry()
	r.Register("a", func(args []string) {}, "", 1)
	r.Register("b", func(args []string) {}, "", 2)
	r.Register("c", func(args []string) {}, "", 1)
	r.Register("d", func(args []string) {}, "", 0)

	r.UnregisterByTag(1)
	if r.Len() != 2 {
		t.Fatalf("Len() after UnregisterByTag(1) = %d, want 2", r.Len())
	}
	for _, name := range []string{"a", "c"} {
		if _, ok := r.Lookup(name); ok {
			t.Errorf("%q still registered after UnregisterByTag(1)", name)
		}
	}
	for _, name := range []string{"b", "d"} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("%q removed by UnregisterByTag(1), want kept", name)
		}
	}

	// Removing a tag with no matches is a no-op.
	r.UnregisterByTag(7)
	if r.Len() != 2 {
		t.Errorf("Len() after UnregisterByTag(7) = %d, want 2", r.Len())
	}
}

func TestRegistryAllRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		r.Register(name, func(args []string) {}, "", 0)
	}

	var got []string
	for cmd := range r.All() {
		got = append(got, cmd.Name)
	}
	if len(got) != len(names) {
		t.Fatalf("All yielded %d commands, want %d", len(got), len(names))
	}
	for i, name := range names {
		if got[i] != name {
			t.Errorf("All[%d] = %q, want %q (registration order)", i, got[i], name)
		}
	}

	// The sequence is restartable: a second range yields the same walk.
	var again []string
	for cmd := range r.All() {
		again = append(again, cmd.Name)
	}
	if len(again) != len(got) {
		t.Errorf("second range yielded %d commands, want %d", len(again), len(got))
	}
}

func TestRegistryAllEarlyStop(t *testing.T) {
	r := NewRegistry()
	r.Register("one", func(args []string) {}, "", 0)
	r.Register("two", func(args []string) {}, "", 0)

	count := 0
	for range r.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("ranged %d commands after break, want 1", count)
	}
}
