package ecs

import (
	"testing"

	"github.com/milk9111/cubefield/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second DestroyEntity should return false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if !old.Valid() {
		t.Fatalf("first entity should be valid, got %v", old)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("reused slot must carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
}

func intPtr(i int) *int {
	return &i
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		run   func() error
		check func(t *testing.T)
	}{
		{
			name: "add_and_get",
			run:  func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get[int](w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "pointer_is_shared",
			run: func() error {
				v, _ := Get[int](w, e1, hInt.Kind())
				*v = 42
				return nil
			},
			check: func(t *testing.T) {
				v, _ := Get[int](w, e1, hInt.Kind())
				if *v != 42 {
					t.Fatalf("expected mutation through pointer, got %d", *v)
				}
			},
		},
		{
			name: "nil_value_rejected",
			run: func() error {
				if err := Add[string](w, e2, hStr.Kind(), nil); err != component.ErrNilComponent {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
				return nil
			},
			check: func(t *testing.T) {
				if Has(w, e2, hStr.Kind()) {
					t.Fatalf("nil add must not store anything")
				}
			},
		},
		{
			name: "invalid_kind_rejected",
			run: func() error {
				var zero component.ComponentKind[int]
				if err := Add(w, e2, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
					t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
				}
				return nil
			},
			check: func(t *testing.T) {},
		},
		{
			name: "remove",
			run: func() error {
				if !Remove(w, e1, hInt.Kind()) {
					t.Fatalf("expected Remove to report true")
				}
				return nil
			},
			check: func(t *testing.T) {
				if Has(w, e1, hInt.Kind()) {
					t.Fatalf("component should be gone")
				}
				if Remove(w, e1, hInt.Kind()) {
					t.Fatalf("second Remove should report false")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestAddToDeadEntity(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	if err := Add(w, e, h.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestDestroyClearsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(3)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)

	fresh := CreateEntity(w)
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity must not inherit components")
	}
}

func TestForEachAndQuery(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}

	sum := 0
	ForEach(w, h.Kind(), func(_ Entity, v *int) { sum += *v })
	if sum != 4 {
		t.Fatalf("expected sum 4, got %d", sum)
	}

	got := Query(w, h.Kind())
	if len(got) != 2 || got[0] != e1 || got[1] != e3 {
		t.Fatalf("expected [e1 e3] in slot order, got %v", got)
	}

	first, ok := First(w, h.Kind())
	if !ok || first == e2 {
		t.Fatalf("First returned %v ok=%v", first, ok)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []struct {
					e Entity
					k component.ComponentKind[int]
				}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}} {
					if err := Add(w, add.e, add.k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type countingSystem struct {
	calls int
	push  bool
}

func (c *countingSystem) Update(w *World) {
	c.calls++
	if c.push {
		w.Events().Push(Event{Kind: EventSelection})
	}
}

func TestSchedulerRunsInOrderAndDrainsEvents(t *testing.T) {
	w := NewWorld()
	producer := &countingSystem{push: true}
	var seen int
	consumer := systemFunc(func(w *World) { seen += len(w.Events().Peek()) })

	s := NewScheduler(producer, nil, consumer)
	if got := s.Update(w); len(got) != 1 || got[0].Kind != EventSelection {
		t.Fatalf("expected the pass to return one selection event, got %v", got)
	}
	s.Update(w)

	if producer.calls != 2 {
		t.Fatalf("expected 2 producer calls, got %d", producer.calls)
	}
	if seen != 2 {
		t.Fatalf("consumer should see exactly one event per pass, saw %d", seen)
	}
	if len(w.Events().Drain()) != 0 {
		t.Fatalf("events should be drained after each pass")
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems must be skipped, got %d", len(s.Systems()))
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
