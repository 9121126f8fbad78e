package diag

import (
	"testing"

	"rsmin/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(NewError(LexUnknownChar, source.Span{Start: uint32(i), End: uint32(i + 1)}, "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d returned %v, want %v", i, ok, want)
		}
	}
	if b.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", b.Cap())
	}
	if NewBag(0).Cap() != 1 {
		t.Fatalf("NewBag(0) must hold one diagnostic")
	}
	if b.Len() != 2 || !b.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d errors=%v", b.Len(), b.HasErrors())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, LexBadNumber, source.Span{Start: 5, End: 6}, "w"))
	b.Add(NewError(LexUnknownChar, source.Span{Start: 1, End: 2}, "e1"))
	b.Add(NewError(LexUnknownChar, source.Span{Start: 1, End: 2}, "e1 again"))
	b.Add(NewError(LexBadNumber, source.Span{Start: 5, End: 6}, "e2"))

	b.Dedup()
	if b.Len() != 3 {
		t.Fatalf("expected 3 items after dedup, got %d", b.Len())
	}
	b.Sort()
	items := b.Items()
	if items[0].Message != "e1" {
		t.Errorf("first item = %q, want e1", items[0].Message)
	}
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Errorf("errors must sort before warnings on the same span: %v, %v", items[1].Severity, items[2].Severity)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(4)
	r := BagReporter{Bag: b}
	rb := ReportError(r, LexUnclosedDelimiter, source.Span{Start: 0, End: 1}, "unclosed").
		WithNote(source.Span{Start: 3, End: 4}, "closer expected here")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("expected a single diagnostic, got %d", b.Len())
	}
	if len(b.Items()[0].Notes) != 1 {
		t.Errorf("note lost: %+v", b.Items()[0])
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(4)
	r := NewDedupReporter(BagReporter{Bag: b})
	sp := source.Span{Start: 2, End: 3}
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	if b.Len() != 1 {
		t.Fatalf("duplicates not filtered: %d", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnknownChar.ID(); got != "LEX1001" {
		t.Errorf("ID = %q", got)
	}
	if got := IOLoadFileError.ID(); got != "IO4001" {
		t.Errorf("ID = %q", got)
	}
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Errorf("Title = %q", got)
	}
}
