package table

import (
	"errors"
	"testing"
)

func TestRequireMissingSorted(t *testing.T) {
	tbl := New("segment", "ead")
	err := tbl.Require("segment", "pd_estimate", "default_flag")
	if err == nil {
		t.Fatalf("expected error")
	}
	var mce *MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnsError, got %T", err)
	}
	if len(mce.Columns) != 2 || mce.Columns[0] != "default_flag" || mce.Columns[1] != "pd_estimate" {
		t.Fatalf("unexpected missing set %v", mce.Columns)
	}
}

func TestRequireAllPresent(t *testing.T) {
	tbl := New("a", "b")
	if err := tbl.Require("a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	tbl := New("x")
	tbl.SetColumn("x", []any{1.0, 2.0})
	cp := tbl.Copy()
	cp.Column("x")[0] = 99.0
	if tbl.Floats("x")[0] != 1.0 {
		t.Fatalf("copy mutated original")
	}
	cp.SetColumn("y", []any{0.0, 0.0})
	if tbl.Has("y") {
		t.Fatalf("copy column leaked into original")
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	a := New("v")
	a.SetColumn("v", []any{1.0})
	b := New("v")
	b.SetColumn("v", []any{2.0, 3.0})
	if err := a.Append(b); err != nil {
		t.Fatalf("append: %v", err)
	}
	got := a.Floats("v")
	if len(got) != 3 || got[0] != 1.0 || got[2] != 3.0 {
		t.Fatalf("unexpected rows %v", got)
	}
}

func TestFloatsCoercion(t *testing.T) {
	tbl := New("v")
	tbl.SetColumn("v", []any{true, false, 3, 2.5})
	got := tbl.Floats("v")
	want := []float64{1, 0, 3, 2.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestFromRowsHintOrder(t *testing.T) {
	rows := []map[string]any{
		{"segment": "Prime", "ead": 100.0, "zeta": 1.0},
		{"segment": "Subprime", "ead": 200.0, "zeta": 2.0},
	}
	tbl := FromRows(rows, "ead", "segment")
	cols := tbl.Columns()
	if cols[0] != "ead" || cols[1] != "segment" || cols[2] != "zeta" {
		t.Fatalf("unexpected column order %v", cols)
	}
	if tbl.Len() != 2 {
		t.Fatalf("unexpected len %d", tbl.Len())
	}
	if tbl.Strings("segment")[1] != "Subprime" {
		t.Fatalf("unexpected cell")
	}
}
