package tree

import (
	"math/rand"
	"testing"
)

// testCreateBST builds a tree from keys in the given order; each value is key*10.
func testCreateBST(keys ...int) *BST[int, int] {
	tree := NewOrderedBST[int, int]()
	for _, k := range keys {
		tree.Insert(k, k*10)
	}
	return tree
}

func TestBST_FindComparisons(t *testing.T) {
	tree := testCreateBST(2, 1, 3)
	cases := []struct {
		key   int
		found bool
		cmp   int
	}{
		{2, true, 2},  // root: less fails both ways
		{1, true, 3},  // one step left, then equal
		{3, true, 4},  // one step right, then equal
		{4, false, 4}, // right, right, nil
		{0, false, 2}, // left, left, nil
	}
	for _, c := range cases {
		tree.ResetMetrics()
		_, ok := tree.Find(c.key)
		if ok != c.found {
			t.Errorf("Find(%d) found=%v, want %v", c.key, ok, c.found)
		}
		if tree.Comparisons() != c.cmp {
			t.Errorf("Find(%d) took %d comparisons, want %d", c.key, tree.Comparisons(), c.cmp)
		}
	}
}

func TestBST_RangeApplyComparisons(t *testing.T) {
	tree := testCreateBST(2, 1, 3)
	tree.ResetMetrics()
	var keys []int
	tree.RangeApply(1, 3, func(key int, val *int) {
		keys = append(keys, key)
	})
	if len(keys) != 3 || keys[0] != 1 || keys[1] != 2 || keys[2] != 3 {
		t.Fatalf("RangeApply visited %v", keys)
	}
	// four comparisons per visited node: descend left, two bound checks, descend right
	if tree.Comparisons() != 12 {
		t.Errorf("RangeApply took %d comparisons, want 12", tree.Comparisons())
	}
}

func TestBST_RangeApplyPrunes(t *testing.T) {
	// a degenerate right spine, the range only touches the head of it
	tree := NewOrderedBST[int, int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i, i)
	}
	tree.ResetMetrics()
	tree.RangeApply(0, 1, func(key int, val *int) {})
	if tree.Comparisons() > 8 {
		t.Errorf("RangeApply should prune beyond hi, took %d comparisons", tree.Comparisons())
	}
}

func TestBST_MetricsCumulative(t *testing.T) {
	tree := testCreateBST(2, 1, 3)
	tree.ResetMetrics()
	tree.ResetMetrics()
	if tree.Comparisons() != 0 {
		t.Errorf("two resets should read 0, got %d", tree.Comparisons())
	}
	tree.Find(2)
	tree.Find(2)
	if tree.Comparisons() != 4 {
		t.Errorf("counting should accumulate without reset, got %d", tree.Comparisons())
	}
}

func TestBST_Erase(t *testing.T) {
	//      50
	//    30  70
	//   20 40  80
	//            90
	tree := testCreateBST(50, 30, 70, 20, 40, 80, 90)
	// leaf
	if !tree.Erase(20) {
		t.Fatal("Erase(20) should succeed")
	}
	// one child
	if !tree.Erase(80) {
		t.Fatal("Erase(80) should succeed")
	}
	// two children, successor is 70
	if !tree.Erase(50) {
		t.Fatal("Erase(50) should succeed")
	}
	if tree.root.key != 70 || tree.root.val != 700 {
		t.Errorf("root should be replaced by successor 70, got %d", tree.root.key)
	}
	if tree.Erase(50) {
		t.Errorf("second Erase(50) should fail")
	}
	want := []int{30, 40, 70, 90}
	var got []int
	tree.Ascend(func(key int, val *int) bool {
		if *val != key*10 {
			t.Errorf("key %d lost its value, got %d", key, *val)
		}
		got = append(got, key)
		return true
	})
	if len(got) != len(want) {
		t.Fatalf("got keys %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got keys %v, want %v", got, want)
		}
	}
	if tree.Len() != 4 {
		t.Errorf("Len should be 4, got %d", tree.Len())
	}
}

func TestBST_EraseRoot(t *testing.T) {
	tree := testCreateBST(1)
	if !tree.Erase(1) {
		t.Fatal("Erase(1) should succeed")
	}
	if tree.root != nil || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("tree should be empty")
	}
	if tree.Erase(1) {
		t.Errorf("Erase on empty tree should fail")
	}
}

func TestBST_Height(t *testing.T) {
	if h := testCreateBST().Height(); h != 0 {
		t.Errorf("empty height should be 0, got %d", h)
	}
	if h := testCreateBST(2, 1, 3).Height(); h != 2 {
		t.Errorf("balanced height should be 2, got %d", h)
	}
	if h := testCreateBST(1, 2, 3, 4).Height(); h != 4 {
		t.Errorf("spine height should be 4, got %d", h)
	}
}

func TestBST_FindBoundedByHeight(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := NewOrderedBST[int, int]()
	for i := 0; i < 2000; i++ {
		tree.Insert(r.Intn(10000), i)
	}
	h := tree.Height()
	for i := 0; i < 500; i++ {
		tree.ResetMetrics()
		tree.Find(r.Intn(10000))
		if c := tree.Comparisons(); c < 0 || c > 2*h {
			t.Fatalf("Find took %d comparisons, height %d", c, h)
		}
	}
}

func TestBST_FindReferenceIsMutable(t *testing.T) {
	tree := NewOrderedBST[string, []int]()
	tree.Insert("smith", []int{0})
	ref, ok := tree.Find("smith")
	if !ok {
		t.Fatal("smith should be found")
	}
	*ref = append(*ref, 4)
	got, _ := tree.Find("smith")
	if len(*got) != 2 || (*got)[1] != 4 {
		t.Errorf("update through reference lost, got %v", *got)
	}
}
