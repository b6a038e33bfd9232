package maps

import (
	"testing"
)

// TestOf 测试通用构造器的插入语义
func TestOf(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []Pair[string, int]
		wantLen int
		want    map[string]int
	}{
		{
			name:    "基础键值对",
			pairs:   []Pair[string, int]{P("apple", 1), P("banana", 2)},
			wantLen: 2,
			want:    map[string]int{"apple": 1, "banana": 2},
		},
		{
			name:    "重复键后者覆盖前者",
			pairs:   []Pair[string, int]{P("apple", 1), P("apple", 9)},
			wantLen: 1,
			want:    map[string]int{"apple": 9},
		},
		{
			name:    "零个键值对返回空map",
			pairs:   nil,
			wantLen: 0,
			want:    map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Of(tt.pairs...)
			if m == nil {
				t.Fatal("Of should never return nil")
			}
			if len(m) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(m), tt.wantLen)
			}
			for k, v := range tt.want {
				if got, ok := m[k]; !ok || got != v {
					t.Errorf("m[%q] = %d(%v), want %d", k, got, ok, v)
				}
			}
		})
	}
}

// TestOfFast 测试快速构造器与通用构造器语义一致
func TestOfFast(t *testing.T) {
	pairs := []Pair[string, int]{P("apple", 1), P("banana", 2), P("apple", 3)}

	fast := OfFast(pairs...)
	general := Of(pairs...)

	if len(fast) != len(general) {
		t.Fatalf("len mismatch: fast=%d general=%d", len(fast), len(general))
	}
	for k, v := range general {
		if fast[k] != v {
			t.Errorf("fast[%q] = %d, want %d", k, fast[k], v)
		}
	}
	if fast["apple"] != 3 {
		t.Errorf("duplicate key should be overwritten, got %d", fast["apple"])
	}
}

// TestKeys 测试键提取
func TestKeys(t *testing.T) {
	m := Of(P("a", 1), P("b", 2), P("c", 3))

	keys := Keys(m)
	if len(keys) != 3 {
		t.Fatalf("len = %d, want 3", len(keys))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	for _, k := range []string{"a", "b", "c"} {
		if !seen[k] {
			t.Errorf("missing key %q", k)
		}
	}
}

// TestContainsKeys 测试键存在性检查
func TestContainsKeys(t *testing.T) {
	m := Of(P("a", 1), P("b", 2))

	if !ContainsKeys(m, "a", "b") {
		t.Error("expected all keys present")
	}
	if !ContainsKeys(m) {
		t.Error("empty key list should return true")
	}
	if ContainsKeys(m, "a", "missing") {
		t.Error("expected false for missing key")
	}
}

// TestFromKeys 测试按键列表构造
func TestFromKeys(t *testing.T) {
	m := FromKeys([]string{"a", "bb", "ccc"}, func(k string) int { return len(k) })

	if len(m) != 3 {
		t.Fatalf("len = %d, want 3", len(m))
	}
	if m["a"] != 1 || m["bb"] != 2 || m["ccc"] != 3 {
		t.Errorf("unexpected values: %v", m)
	}
}
