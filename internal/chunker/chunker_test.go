package chunker

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, s.chunkSize)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, s.overlap)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		s := New(WithChunkSize(200), WithOverlap(40))
		if s.chunkSize != 200 {
			t.Errorf("expected chunkSize 200, got %d", s.chunkSize)
		}
		if s.overlap != 40 {
			t.Errorf("expected overlap 40, got %d", s.overlap)
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		s := New(WithChunkSize(100), WithOverlap(150))
		if s.overlap >= s.chunkSize {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		s := New(WithChunkSize(0), WithOverlap(-1))
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", s.chunkSize)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", s.overlap)
		}
	})
}

func TestSplit_Empty(t *testing.T) {
	s := New()
	if pieces := s.Split(""); len(pieces) != 0 {
		t.Errorf("expected 0 pieces for empty content, got %d", len(pieces))
	}
	if pieces := s.Split("  \n\n  "); len(pieces) != 0 {
		t.Errorf("expected 0 pieces for whitespace content, got %d", len(pieces))
	}
}

func TestSplit_SmallContent(t *testing.T) {
	s := New(WithChunkSize(100), WithOverlap(20))
	pieces := s.Split("A short paragraph.")

	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
	if pieces[0].Content != "A short paragraph." {
		t.Errorf("expected content to be kept whole, got %q", pieces[0].Content)
	}
	if pieces[0].Position != 0 {
		t.Errorf("expected position 0, got %d", pieces[0].Position)
	}
}

func TestSplit_Paragraphs(t *testing.T) {
	s := New(WithChunkSize(100), WithOverlap(20))
	pieces := s.Split("First paragraph.\n\nSecond paragraph.\n\nThird paragraph.")

	if len(pieces) != 3 {
		t.Fatalf("expected 3 pieces, got %d", len(pieces))
	}
	for i, p := range pieces {
		if p.Position != i {
			t.Errorf("piece %d: expected position %d, got %d", i, i, p.Position)
		}
	}
	if pieces[1].Content != "Second paragraph." {
		t.Errorf("unexpected piece content: %q", pieces[1].Content)
	}
}

func TestSplit_LongParagraphWindows(t *testing.T) {
	s := New(WithChunkSize(50), WithOverlap(10))
	content := strings.Repeat("abcde ", 40) // 240 runes, one paragraph
	pieces := s.Split(content)

	if len(pieces) < 2 {
		t.Fatalf("expected multiple windows, got %d", len(pieces))
	}

	// Windows respect the size bound.
	for i, p := range pieces {
		if n := len([]rune(p.Content)); n > 50 {
			t.Errorf("window %d exceeds chunk size: %d runes", i, n)
		}
	}

	// Adjacent windows overlap by the configured amount.
	first := []rune(pieces[0].Content)
	second := []rune(pieces[1].Content)
	tail := string(first[len(first)-10:])
	head := string(second[:10])
	if tail != head {
		t.Errorf("expected 10-rune overlap, got tail %q head %q", tail, head)
	}
}

func TestSplit_NothingDropped(t *testing.T) {
	s := New(WithChunkSize(30), WithOverlap(5))
	content := strings.Repeat("x", 1000)
	pieces := s.Split(content)

	// Every rune of the input appears in at least one window.
	total := 0
	for _, p := range pieces {
		total += len([]rune(p.Content))
	}
	if total < 1000 {
		t.Errorf("windows cover %d runes, want at least 1000", total)
	}
}

func TestSplit_MultibyteRunes(t *testing.T) {
	s := New(WithChunkSize(10), WithOverlap(2))
	content := strings.Repeat("知识库助手", 6) // 30 runes
	pieces := s.Split(content)

	if len(pieces) < 3 {
		t.Fatalf("expected at least 3 windows, got %d", len(pieces))
	}
	for i, p := range pieces {
		if n := len([]rune(p.Content)); n > 10 {
			t.Errorf("window %d exceeds 10 runes: %d", i, n)
		}
	}
}
