package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/boxcontroller/component"
)

func intPtr(i int) *int {
	return &i
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
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
			dead := ents[c.destroyIndex]
			if !DestroyEntity(w, dead) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, dead) || DestroyEntity(w, dead) {
				t.Fatalf("entity should be dead after destruction")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}

			reused := CreateEntity(w)
			if reused.id() != dead.id() || reused == dead {
				t.Fatalf("reused = %s, dead = %s: want same id with a new generation", reused, dead)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.New[int]("int")
	strs := component.New[string]("string")

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	if err := Add(w, e1, ints, intPtr(10)); err != nil {
		t.Fatal(err)
	}
	s := "b"
	if err := Add(w, e2, strs, &s); err != nil {
		t.Fatal(err)
	}

	if v, ok := Get(w, e1, ints); !ok || *v != 10 {
		t.Fatalf("Get = %v, %v", v, ok)
	}
	if Has(w, e2, ints) || !Has(w, e2, strs) {
		t.Fatal("unexpected component membership")
	}

	// Pointers stay valid while other entities are added and removed.
	v, _ := Get(w, e1, ints)
	for i := 0; i < 20; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, ints, intPtr(i)); err != nil {
			t.Fatal(err)
		}
		if i%2 == 0 {
			DestroyEntity(w, e)
		}
	}
	*v = 11
	if got, _ := Get(w, e1, ints); *got != 11 {
		t.Fatalf("Get after churn = %d", *got)
	}

	if !Remove(w, e1, ints) || Remove(w, e1, ints) {
		t.Fatal("Remove should succeed exactly once")
	}
	if Count(w, ints) != 10 {
		t.Fatalf("Count = %d, want 10", Count(w, ints))
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	ints := component.New[int]("int")
	e := CreateEntity(w)

	tests := []struct {
		name  string
		e     Entity
		kind  component.Kind[int]
		value *int
		want  error
	}{
		{name: "nil value", e: e, kind: ints, want: component.ErrNilComponent},
		{name: "zero kind", e: e, value: intPtr(1), want: component.ErrInvalidKind},
		{name: "dead entity", e: makeEntity(9, 0), kind: ints, value: intPtr(1), want: component.ErrEntityNotAlive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Add(w, tt.e, tt.kind, tt.value); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	ints := component.New[int]("int")
	e := CreateEntity(w)
	if err := Add(w, e, ints, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)
	reused := CreateEntity(w)
	if Has(w, reused, ints) {
		t.Fatal("reused entity inherited a component")
	}
	if Count(w, ints) != 0 {
		t.Fatalf("Count = %d", Count(w, ints))
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	ka := component.New[int]("a")
	kb := component.New[int]("b")
	kc := component.New[int]("c")

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	e4 := CreateEntity(w)

	add := func(e Entity, k component.Kind[int], v int) {
		t.Helper()
		if err := Add(w, e, k, intPtr(v)); err != nil {
			t.Fatal(err)
		}
	}
	add(e1, ka, 1)
	add(e2, ka, 2)
	add(e2, kb, 3)
	add(e2, kc, 5)
	add(e3, kb, 4)
	add(e3, ka, 7)
	add(e4, kc, 6)

	tests := []struct {
		name string
		run  func() []Entity
		want []Entity
	}{
		{
			name: "one",
			run: func() (res []Entity) {
				ForEach(w, ka, func(e Entity, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{e1, e2, e3},
		},
		{
			name: "two",
			run: func() (res []Entity) {
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{e2, e3},
		},
		{
			name: "three",
			run: func() (res []Entity) {
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{e2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toSet(tt.run())
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for _, e := range tt.want {
				if _, ok := got[e]; !ok {
					t.Fatalf("missing %s in %v", e, got)
				}
			}
		})
	}
}

func TestForEachAllowsRemoval(t *testing.T) {
	w := NewWorld()
	k := component.New[int]("k")
	for i := 0; i < 5; i++ {
		if err := Add(w, CreateEntity(w), k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}
	visited := 0
	ForEach(w, k, func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 || Count(w, k) != 0 {
		t.Fatalf("visited = %d, remaining = %d", visited, Count(w, k))
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
	w.Events().PushContact(ContactEvent{})
}

func TestSchedulerOrderAndEvents(t *testing.T) {
	var calls []string
	s := NewScheduler(countingSystem{&calls, "a"}, nil, countingSystem{&calls, "b"})
	w := NewWorld()
	s.Update(w)
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("calls = %v", calls)
	}
	if n := len(w.Events().Contacts()); n != 0 {
		t.Fatalf("events not flushed: %d", n)
	}
}
