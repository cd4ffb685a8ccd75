package huffman

import (
	"math/rand"
	"sort"
	"testing"
)

func TestSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	type testRow struct {
		name string
		list []int
	}

	sorted := make([]int, 100)
	reversed := make([]int, 100)
	for i := range sorted {
		sorted[i] = i
		reversed[i] = 100 - i
	}
	random := make([]int, 1000)
	for i := range random {
		random[i] = rng.Intn(1000)
	}
	dupes := make([]int, 1000)
	for i := range dupes {
		dupes[i] = rng.Intn(3)
	}

	testData := [...]testRow{
		{name: "nil", list: nil},
		{name: "one", list: []int{7}},
		{name: "two", list: []int{7, 3}},
		{name: "sorted", list: sorted},
		{name: "reversed", list: reversed},
		{name: "random", list: random},
		{name: "dupes", list: dupes},
		{name: "equal", list: []int{5, 5, 5, 5, 5}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			expect := append([]int(nil), row.list...)
			sort.Ints(expect)

			actual := append([]int(nil), row.list...)
			Sort(actual, func(a, b int) bool { return a < b })

			for i := range expect {
				if expect[i] != actual[i] {
					t.Fatalf("wrong order at index %d:\n\texpect: %v\n\tactual: %v", i, expect, actual)
				}
			}
		})
	}
}

func TestMinQueues(t *testing.T) {
	type item struct {
		name   string
		weight int
	}

	q := minQueues[item]{
		first: []item{{"a", 1}, {"b", 2}, {"c", 5}},
		less:  func(a, b item) bool { return a.weight < b.weight },
	}
	q.Push(item{"X", 2})
	q.Push(item{"Y", 3})

	expect := []string{"a", "b", "X", "Y", "c"}
	for _, name := range expect {
		if q.Len() == 0 {
			t.Fatalf("queues empty, expected %q", name)
		}
		actual := q.TakeMin()
		if actual.name != name {
			t.Errorf("expected %q, got %q", name, actual.name)
		}
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queues, got Len()=%d", q.Len())
	}
}
