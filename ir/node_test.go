package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromMapOrder(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"zeta":  FromInt(1),
		"alpha": FromInt(2),
		"mid":   FromInt(3),
	})
	var keys []string
	for _, f := range obj.Fields {
		keys = append(keys, f.String)
	}
	want := []string{"alpha", "mid", "zeta"}
	if d := cmp.Diff(want, keys); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}
	for i, v := range obj.Values {
		if v.Parent != obj {
			t.Errorf("value %d parent not set", i)
		}
		if v.ParentIndex != i {
			t.Errorf("value %d parent index %d", i, v.ParentIndex)
		}
		if v.ParentField != obj.Fields[i].String {
			t.Errorf("value %d parent field %q", i, v.ParentField)
		}
	}
}

func TestFromSliceOrder(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(3), FromInt(1), FromInt(2)})
	if arr.Type != ArrayType {
		t.Fatalf("type %s", arr.Type)
	}
	for i, want := range []int64{3, 1, 2} {
		if arr.Values[i].Int64 != want {
			t.Errorf("element %d = %d, want %d", i, arr.Values[i].Int64, want)
		}
		if arr.Values[i].Parent != arr || arr.Values[i].ParentIndex != i {
			t.Errorf("element %d parent links wrong", i)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"nested": FromMap(map[string]*Node{
			"x": FromInt(7),
		}),
	})
	clone := orig.Clone()

	// reparenting the clone must not disturb the original
	FromMap(map[string]*Node{"holder": clone})
	if orig.Values[0].Parent != orig {
		t.Errorf("original child reparented by clone")
	}

	clone.Values[0].Values[0].Int64 = 99
	if got := Get(Get(orig, "nested"), "x").Int64; got != 7 {
		t.Errorf("original mutated through clone: %d", got)
	}
}

func TestGet(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"a": FromString("one"),
		"b": FromBool(true),
	})
	if got := Get(obj, "a"); got == nil || got.String != "one" {
		t.Errorf("Get a = %+v", got)
	}
	if got := Get(obj, "missing"); got != nil {
		t.Errorf("Get missing = %+v", got)
	}
}

func TestRoot(t *testing.T) {
	leaf := FromInt(1)
	inner := FromMap(map[string]*Node{"leaf": leaf})
	outer := FromMap(map[string]*Node{"inner": inner})
	if leaf.Root() != outer {
		t.Errorf("leaf root is not the outermost object")
	}
}

func TestInterface(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"n":   FromInt(26),
		"s":   FromString("hey"),
		"b":   FromBool(false),
		"arr": FromSlice([]*Node{FromInt(1), FromInt(2)}),
	})
	want := map[string]any{
		"n":   int64(26),
		"s":   "hey",
		"b":   false,
		"arr": []any{int64(1), int64(2)},
	}
	if d := cmp.Diff(want, obj.Interface()); d != "" {
		t.Errorf("Interface (-want +got):\n%s", d)
	}
}

func TestToMap(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"k": FromInt(5),
	})
	m := ToMap(obj)
	if len(m) != 1 || m["k"].Int64 != 5 {
		t.Errorf("ToMap = %+v", m)
	}
	if ToMap(FromInt(1)) != nil {
		t.Errorf("ToMap of a leaf should be nil")
	}
}
