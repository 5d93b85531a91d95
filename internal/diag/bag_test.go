package diag

import (
	"testing"

	"github.com/mohamed/svlang/internal/source"
)

func TestBagRespectsCapacity(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{}

	if !b.Add(New(SevError, UnexpectedToken, sp, "one")) {
		t.Fatal("first Add should succeed")
	}
	if !b.Add(New(SevError, UnexpectedToken, sp, "two")) {
		t.Fatal("second Add should succeed")
	}
	if b.Add(New(SevError, UnexpectedToken, sp, "three")) {
		t.Fatal("third Add should be rejected once at capacity")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBagHasErrorsAndFatal(t *testing.T) {
	b := NewBag(4)
	b.Add(New(SevWarning, MissingFractionalDigits, source.Span{}, "warn"))
	if b.HasErrors() {
		t.Fatal("bag with only warnings should not HasErrors")
	}
	b.Add(New(SevError, DivideByZero, source.Span{}, "boom"))
	if !b.HasErrors() {
		t.Fatal("bag with an error should HasErrors")
	}
	if b.HasFatal() {
		t.Fatal("bag without a fatal diagnostic should not HasFatal")
	}
	b.Add(NewFatal(MaxInstanceDepthExceeded, source.Span{}, "too deep"))
	if !b.HasFatal() {
		t.Fatal("bag with a fatal diagnostic should HasFatal")
	}
}

func TestBagSortOrdersByFileStartEndSeverityCode(t *testing.T) {
	b := NewBag(8)
	sp := func(file source.FileID, start, end uint32) source.Span {
		return source.Span{File: file, Start: start, End: end}
	}
	b.Add(New(SevWarning, UnexpectedToken, sp(0, 10, 12), "later, lower sev"))
	b.Add(New(SevError, ExpectedIdentifier, sp(0, 10, 12), "later, higher sev"))
	b.Add(New(SevError, UnexpectedToken, sp(0, 0, 1), "earliest"))

	b.Sort()
	items := b.Items()
	if items[0].Message != "earliest" {
		t.Fatalf("expected earliest span first, got %q", items[0].Message)
	}
	if items[1].Message != "later, higher sev" {
		t.Fatalf("expected higher severity before lower at same span, got %q", items[1].Message)
	}
}

func TestDedupReporterSuppressesRepeats(t *testing.T) {
	bag := NewBag(8)
	dedup := NewDedupReporter(BagReporter{Bag: bag})

	sp := source.Span{File: 0, Start: 5, End: 6}
	dedup.Report(RecursiveResolution, SevError, sp, "cycle", nil, nil)
	dedup.Report(RecursiveResolution, SevError, sp, "cycle", nil, nil)
	dedup.Report(RecursiveResolution, SevError, sp, "different message", nil, nil)

	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (one suppressed duplicate)", bag.Len())
	}
}

func TestCodeStageClassification(t *testing.T) {
	cases := []struct {
		code  Code
		stage Stage
	}{
		{NonPrintableChar, StageLexer},
		{UnknownDirective, StagePreprocessor},
		{UnexpectedToken, StageParser},
		{UnknownMember, StageLookup},
		{MaxInstanceDepthExceeded, StageElaboration},
		{DivideByZero, StageTypeExpr},
	}
	for _, c := range cases {
		if got := c.code.Stage(); got != c.stage {
			t.Errorf("%v.Stage() = %v, want %v", c.code, got, c.stage)
		}
	}
}
