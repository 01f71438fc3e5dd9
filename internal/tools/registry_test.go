package tools

import (
	"sync"
	"testing"
)

func TestBuiltinSortedAndComplete(t *testing.T) {
	all := Builtin().All()
	want := []string{"discount", "heroes", "iris", "transform"}
	if len(all) != len(want) {
		t.Fatalf("unexpected tool count: %d", len(all))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Fatalf("tool %d = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestRegisterReplacesAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(Tool{Name: "x", Summary: "old"})
	r.Register(Tool{Name: "x", Summary: "new"})
	got, ok := r.Get("x")
	if !ok || got.Summary != "new" {
		t.Fatalf("unexpected tool: %+v ok=%v", got, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatalf("expected missing tool")
	}
}

func TestConcurrentRegister(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register(Tool{Name: string(rune('a' + i))})
			_ = r.All()
		}(i)
	}
	wg.Wait()
	if n := len(r.All()); n != 16 {
		t.Fatalf("expected 16 tools, got %d", n)
	}
}
