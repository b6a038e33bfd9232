package validator

import (
	"testing"

	"katydid-common-utils/pkg/enums"
)

// TestScene_BitOperations 测试场景位运算
func TestScene_BitOperations(t *testing.T) {
	s := SceneNone.Add(SceneCreate).Add(SceneUpdate)

	if !s.Has(SceneCreate) || !s.Has(SceneUpdate) {
		t.Error("expected added scenes to be present")
	}
	if s.Has(SceneDelete) {
		t.Error("unexpected scene present")
	}

	s = s.Remove(SceneCreate)
	if s.Has(SceneCreate) {
		t.Error("expected removed scene to be absent")
	}

	if !SceneAll.Has(SceneQuery) {
		t.Error("SceneAll should contain every scene")
	}
}

// TestScene_Values 测试全成员访问器满足 Enumerable 约定
func TestScene_Values(t *testing.T) {
	values := Scene(0).Values()
	if len(values) != 4 {
		t.Fatalf("len = %d, want 4", len(values))
	}

	seen := map[Scene]bool{}
	for _, s := range values {
		if seen[s] {
			t.Errorf("duplicate member %v", s)
		}
		seen[s] = true
		if s == SceneNone || s == SceneAll {
			t.Errorf("sentinel %v must not be a member", s)
		}
	}
}

// TestValidateSceneTable 测试场景表覆盖验证
func TestValidateSceneTable(t *testing.T) {
	full := map[Scene]string{
		SceneCreate: "c", SceneUpdate: "u", SceneDelete: "d", SceneQuery: "q",
	}
	if !ValidateSceneTable(full) {
		t.Error("expected full table to validate")
	}
	if !enums.ValidateCoverageOf(full, SceneNone) {
		t.Error("table must satisfy the generic coverage predicate too")
	}

	delete(full, SceneQuery)
	if ValidateSceneTable(full) {
		t.Error("expected partial table to fail")
	}

	report := CheckSceneTable(full)
	if report.Ok() {
		t.Fatal("expected diagnostic failure")
	}
	if len(report.Missing) != 1 || report.Missing[0] != SceneQuery {
		t.Errorf("Missing = %v, want [SceneQuery]", report.Missing)
	}
}
