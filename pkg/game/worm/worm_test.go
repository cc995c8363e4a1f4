package worm

import (
	"errors"
	"slices"
	"testing"

	"wormholes/pkg/engine/spatial"
)

func TestNew_EmptyIsTailless(t *testing.T) {
	w := New(spatial.Vec(1, 2, 3), nil)
	if !w.IsTailless() {
		t.Error("New(head, nil).IsTailless() = false, want true")
	}
	if w.NumSegments() != 1 {
		t.Errorf("NumSegments() = %d, want 1", w.NumSegments())
	}
	if w.HeadPosition() != spatial.Vec(1, 2, 3) {
		t.Errorf("HeadPosition() = %v, want (1, 2, 3)", w.HeadPosition())
	}
	if w.Policy() != AutoReverse {
		t.Errorf("Policy() = %v, want auto_reverse by default", w.Policy())
	}
}

func TestNew_NumSegments(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.East, spatial.South})
	if w.IsTailless() {
		t.Error("IsTailless() = true, want false")
	}
	if w.NumSegments() != 3 {
		t.Errorf("NumSegments() = %d, want 3", w.NumSegments())
	}
}

func TestTryLengthen_Tailed(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.North})
	if err := w.TryLengthen(); err != nil {
		t.Fatalf("TryLengthen() on tailed worm: %v", err)
	}
	if w.NumSegments() != 3 {
		t.Errorf("NumSegments() = %d, want 3 after lengthening", w.NumSegments())
	}
	dirs := w.Directions()
	if dirs[0] != dirs[len(dirs)-1] {
		t.Errorf("new tail direction %v, want same as existing tail %v", dirs[len(dirs)-1], dirs[0])
	}
}

func TestTryLengthen_IncreasesByOne(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.East, spatial.East, spatial.Up})
	for i := 0; i < 5; i++ {
		before := w.NumSegments()
		if err := w.TryLengthen(); err != nil {
			t.Fatalf("TryLengthen() #%d: %v", i, err)
		}
		if w.NumSegments() != before+1 {
			t.Errorf("NumSegments() = %d, want %d", w.NumSegments(), before+1)
		}
	}
	positions := w.Positions()
	tail := positions[len(positions)-1]
	if tail != spatial.Vec(2, 0, 6) {
		t.Errorf("tail position = %v, want (2, 0, 6) after growing straight up", tail)
	}
}

func TestTryLengthen_TaillessResolve(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), nil)

	err := w.TryLengthen()
	var tailless *LengthenTaillessError
	if !errors.As(err, &tailless) {
		t.Fatalf("TryLengthen() on tailless worm err = %v, want *LengthenTaillessError", err)
	}
	if !w.IsTailless() {
		t.Fatal("failed TryLengthen() changed the worm")
	}

	if err := tailless.Resolve(spatial.North); err != nil {
		t.Fatalf("Resolve(North): %v", err)
	}
	if w.IsTailless() {
		t.Fatal("Resolve should create a tail")
	}
	if w.NumSegments() != 2 {
		t.Errorf("NumSegments() = %d, want 2 after resolution", w.NumSegments())
	}
	if got := w.Directions(); !slices.Equal(got, []spatial.Direction{spatial.North}) {
		t.Errorf("Directions() = %v, want [North]", got)
	}
}

func TestTryLengthen_StaleResolve(t *testing.T) {
	tests := []struct {
		name   string
		change func(*Worm, *LengthenTaillessError)
	}{
		{"crawled", func(w *Worm, _ *LengthenTaillessError) { w.Crawl(spatial.East) }},
		{"resolved twice", func(_ *Worm, e *LengthenTaillessError) { _ = e.Resolve(spatial.West) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(spatial.Vec(0, 0, 0), nil)
			var tailless *LengthenTaillessError
			if !errors.As(w.TryLengthen(), &tailless) {
				t.Fatal("expected *LengthenTaillessError")
			}
			tt.change(w, tailless)
			before := w.Positions()

			if err := tailless.Resolve(spatial.South); !errors.Is(err, ErrStaleResolution) {
				t.Errorf("Resolve after change err = %v, want ErrStaleResolution", err)
			}
			if got := w.Positions(); !slices.Equal(got, before) {
				t.Errorf("stale Resolve changed worm to %v, want %v", got, before)
			}
		})
	}
}

func TestCrawl_Tailless(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), nil)
	for _, d := range spatial.AllDirections() {
		start := w.HeadPosition()
		w.Crawl(d)
		if w.HeadPosition() != start.Step(d) {
			t.Errorf("Crawl(%v) head = %v, want %v", d, w.HeadPosition(), start.Step(d))
		}
		if !w.IsTailless() {
			t.Errorf("Crawl(%v) grew a tail on a tailless worm", d)
		}
	}
}

func TestCrawl_NormalAdvance(t *testing.T) {
	// head at origin, body trailing south then east
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.South, spatial.South, spatial.East})
	w.Crawl(spatial.North)

	if w.HeadPosition() != spatial.Vec(0, 1, 0) {
		t.Errorf("head = %v, want (0, 1, 0)", w.HeadPosition())
	}
	want := []spatial.Vector3i{
		spatial.Vec(0, 1, 0),
		spatial.Vec(0, 0, 0),
		spatial.Vec(0, -1, 0),
		spatial.Vec(0, -2, 0),
	}
	if got := w.Positions(); !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

func TestCrawl_PreservesLength(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.West, spatial.West, spatial.South, spatial.Down})
	n := w.NumSegments()
	for _, d := range []spatial.Direction{spatial.North, spatial.East, spatial.East, spatial.Up, spatial.South, spatial.South} {
		w.Crawl(d)
		if w.NumSegments() != n {
			t.Fatalf("after Crawl(%v) NumSegments() = %d, want %d", d, w.NumSegments(), n)
		}
	}
}

func TestCrawl_BodyFollowsHead(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.West, spatial.West})
	before := w.Positions()
	w.Crawl(spatial.North)
	after := w.Positions()
	// every body segment moves into the cell previously held by the one ahead of it
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("segment %d at %v, want %v", i, after[i], before[i-1])
		}
	}
}

func TestCrawl_SingleSegmentStaysTailed(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.West})
	w.Crawl(spatial.East)
	if w.IsTailless() {
		t.Error("one-segment worm lost its tail on a normal crawl")
	}
	want := []spatial.Vector3i{spatial.Vec(1, 0, 0), spatial.Vec(0, 0, 0)}
	if got := w.Positions(); !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

// facingNorth returns a worm heading north: its neck lies south of the head.
func facingNorth() *Worm {
	return New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.South, spatial.South, spatial.East})
}

func TestCrawl_ReversalIntoNeck(t *testing.T) {
	w := facingNorth()
	n := w.NumSegments()
	w.Crawl(spatial.South)

	if w.NumSegments() != n {
		t.Errorf("reversal changed NumSegments() to %d, want %d", w.NumSegments(), n)
	}
	want := []spatial.Vector3i{
		spatial.Vec(0, -1, 0),
		spatial.Vec(0, -2, 0),
		spatial.Vec(1, -2, 0),
		spatial.Vec(2, -2, 0),
	}
	if got := w.Positions(); !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

func TestCrawl_ReversalSingleSegment(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.Up})
	w.Crawl(spatial.Up)
	if w.IsTailless() || w.NumSegments() != 2 {
		t.Fatalf("NumSegments() = %d, want 2", w.NumSegments())
	}
	want := []spatial.Vector3i{spatial.Vec(0, 0, 1), spatial.Vec(0, 0, 2)}
	if got := w.Positions(); !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

func TestTryCrawl_RejectsNeck(t *testing.T) {
	w := facingNorth()
	before := w.Positions()
	beforeDirs := w.Directions()

	err := w.TryCrawl(spatial.South)
	var invalid *InvalidDirectionError
	if !errors.As(err, &invalid) {
		t.Fatalf("TryCrawl(South) err = %v, want *InvalidDirectionError", err)
	}
	if invalid.Direction != spatial.South {
		t.Errorf("error direction = %v, want South", invalid.Direction)
	}
	if got := w.Positions(); !slices.Equal(got, before) {
		t.Errorf("rejected crawl moved worm to %v", got)
	}
	if got := w.Directions(); !slices.Equal(got, beforeDirs) {
		t.Errorf("rejected crawl changed chain to %v", got)
	}
}

func TestTryCrawl_AllowsOtherDirections(t *testing.T) {
	for _, d := range []spatial.Direction{spatial.North, spatial.East, spatial.West, spatial.Up, spatial.Down} {
		t.Run(d.String(), func(t *testing.T) {
			w := facingNorth()
			if err := w.TryCrawl(d); err != nil {
				t.Errorf("TryCrawl(%v) = %v, want nil", d, err)
			}
			if w.HeadPosition() != spatial.Vec(0, 0, 0).Step(d) {
				t.Errorf("head = %v, want %v", w.HeadPosition(), spatial.Vec(0, 0, 0).Step(d))
			}
		})
	}
}

func TestTryCrawl_TaillessNeverRejects(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), nil)
	for _, d := range spatial.AllDirections() {
		if err := w.TryCrawl(d); err != nil {
			t.Errorf("TryCrawl(%v) on tailless worm = %v", d, err)
		}
	}
}

func TestMove_FollowsPolicy(t *testing.T) {
	auto := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.South}, WithPolicy(AutoReverse))
	if err := auto.Move(spatial.South); err != nil {
		t.Errorf("AutoReverse Move into neck = %v, want nil", err)
	}
	if auto.HeadPosition() != spatial.Vec(0, -1, 0) {
		t.Errorf("AutoReverse head = %v, want (0, -1, 0)", auto.HeadPosition())
	}

	strict := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.South}, WithPolicy(RejectNeck))
	var invalid *InvalidDirectionError
	if err := strict.Move(spatial.South); !errors.As(err, &invalid) {
		t.Errorf("RejectNeck Move into neck = %v, want *InvalidDirectionError", err)
	}
	if strict.HeadPosition() != spatial.Vec(0, 0, 0) {
		t.Errorf("RejectNeck head = %v, want unchanged", strict.HeadPosition())
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		want    MovementPolicy
		wantErr bool
	}{
		{"auto_reverse", AutoReverse, false},
		{"", AutoReverse, false},
		{"reject_neck", RejectNeck, false},
		{"sideways", AutoReverse, true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSegmentPositions_Tailless(t *testing.T) {
	head := spatial.Vec(5, 3, 8)
	w := New(head, nil)
	got := w.Positions()
	if len(got) != 1 || got[0] != head {
		t.Errorf("Positions() = %v, want only the head %v", got, head)
	}
}

func TestSegmentPositions_PrefixSums(t *testing.T) {
	head := spatial.Vec(2, 9, 1)
	dirs := []spatial.Direction{
		spatial.North,
		spatial.North,
		spatial.East,
		spatial.Up,
		spatial.West,
		spatial.West,
		spatial.Down,
	}
	w := New(head, dirs)

	want := []spatial.Vector3i{head}
	ongoing := head
	for _, d := range dirs {
		ongoing = ongoing.Add(d.Vector())
		want = append(want, ongoing)
	}

	got := w.Positions()
	if !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
	if got[len(got)-1] != spatial.Vec(1, 11, 1) {
		t.Errorf("tail = %v, want (1, 11, 1)", got[len(got)-1])
	}
}

func TestSegmentPositions_HeadFirstAfterMoves(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.East, spatial.East})
	steps := []spatial.Direction{spatial.North, spatial.West, spatial.East, spatial.Down}
	for _, d := range steps {
		w.Crawl(d)
		for pos := range w.SegmentPositions() {
			if pos != w.HeadPosition() {
				t.Errorf("first position %v, want head %v", pos, w.HeadPosition())
			}
			break
		}
	}
}

func TestSegmentPositions_Restartable(t *testing.T) {
	w := New(spatial.Vec(0, 0, 0), []spatial.Direction{spatial.Up, spatial.East})
	seq := w.SegmentPositions()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}
}

func TestWorm_String(t *testing.T) {
	w := New(spatial.Vec(1, 2, 3), []spatial.Direction{spatial.East, spatial.Down})
	if got := w.String(); got != "(1, 2, 3) >o" {
		t.Errorf("String() = %q", got)
	}
	if got := New(spatial.Vec(0, 0, 0), nil).String(); got != "(0, 0, 0)" {
		t.Errorf("tailless String() = %q", got)
	}
}
