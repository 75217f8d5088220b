package hashindex

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTable_InsertLookup(t *testing.T) {
	tbl := New[int](0, 1)
	if tbl.Capacity() != DefaultCapacity {
		t.Fatalf("Capacity = %d, want %d", tbl.Capacity(), DefaultCapacity)
	}
	for i := 0; i < 100; i++ {
		if err := tbl.Insert(fmt.Sprintf("--opt-%d", i), i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if tbl.Len() != 100 {
		t.Errorf("Len = %d, want 100", tbl.Len())
	}
	for i := 0; i < 100; i++ {
		v, ok := tbl.Lookup(fmt.Sprintf("--opt-%d", i))
		if !ok || v != i {
			t.Errorf("Lookup(--opt-%d) = %d, %v", i, v, ok)
		}
	}
	if _, ok := tbl.Lookup("--missing"); ok {
		t.Error("Lookup of missing key succeeded")
	}
}

func TestTable_UpdateInPlace(t *testing.T) {
	tbl := New[string](8, 3)
	_ = tbl.Insert("-x", "first")
	_ = tbl.Insert("-x", "second")
	if tbl.Len() != 1 {
		t.Errorf("Len = %d after re-insert, want 1", tbl.Len())
	}
	if v, _ := tbl.Lookup("-x"); v != "second" {
		t.Errorf("value = %q, want second", v)
	}
}

func TestTable_ResizeKeepsEntries(t *testing.T) {
	tbl := New[int](4, 9)
	want := map[string]int{}
	for i := 0; i < 50; i++ {
		k := fmt.Sprintf("k%d", i)
		want[k] = i
		if err := tbl.Insert(k, i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if float64(tbl.Len())/float64(tbl.Capacity()) > MaxLoadFactor {
			t.Fatalf("load factor %d/%d exceeded after insert", tbl.Len(), tbl.Capacity())
		}
	}
	if tbl.Capacity() != 128 {
		t.Errorf("Capacity = %d, want 128", tbl.Capacity())
	}
	got := map[string]int{}
	for k := range want {
		if v, ok := tbl.Lookup(k); ok {
			got[k] = v
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries after resize (-want +got):\n%s", diff)
	}
}

func TestTable_CapacityIsPowerOfTwo(t *testing.T) {
	for _, c := range []int{1, 3, 5, 100, 256, 257} {
		got := New[int](c, 0).Capacity()
		if got < c || got&(got-1) != 0 {
			t.Errorf("New(%d).Capacity() = %d", c, got)
		}
	}
}

func TestTable_GrowthLimit(t *testing.T) {
	tbl := NewLimited[int](2, 0, 4)
	var err error
	for i := 0; i < 4 && err == nil; i++ {
		err = tbl.Insert(fmt.Sprintf("k%d", i), i)
	}
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}
	if _, ok := tbl.Lookup("k3"); !ok {
		t.Error("entry inserted before the failed resize is missing")
	}
}

func TestTable_SeedChangesBuckets(t *testing.T) {
	a, b := New[int](1024, 1), New[int](1024, 2)
	same := 0
	for i := 0; i < 64; i++ {
		k := fmt.Sprintf("--flag-%d", i)
		if a.bucket(k) == b.bucket(k) {
			same++
		}
	}
	if same == 64 {
		t.Error("different seeds produced identical bucket layout")
	}
	if a.Seed() != 1 || b.Seed() != 2 {
		t.Error("Seed() does not report the creation seed")
	}
}

func TestTable_Clear(t *testing.T) {
	tbl := New[int](16, 0)
	_ = tbl.Insert("a", 1)
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len = %d after Clear", tbl.Len())
	}
	if _, ok := tbl.Lookup("a"); ok {
		t.Error("Lookup found a cleared key")
	}
}

func BenchmarkTable_Lookup(b *testing.B) {
	tbl := New[int](0, 42)
	for i := 0; i < 64; i++ {
		_ = tbl.Insert(fmt.Sprintf("--option-%d", i), i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tbl.Lookup("--option-63")
	}
}
