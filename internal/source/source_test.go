package source

import "testing"

func TestNextAndEOF(t *testing.T) {
	s := New("ab")

	c, err := s.Next()
	if err != nil || c != 'a' {
		t.Fatalf("Next() = %q, %v, want 'a', nil", c, err)
	}

	c, err = s.Next()
	if err != nil || c != 'b' {
		t.Fatalf("Next() = %q, %v, want 'b', nil", c, err)
	}

	c, err = s.Next()
	if err != nil || c != EOF {
		t.Fatalf("Next() at end = %q, %v, want EOF, nil", c, err)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := New("xy")
	s.Next()

	p, _ := s.Peek()
	if p != 'y' {
		t.Fatalf("Peek() = %q, want 'y'", p)
	}

	n, _ := s.Next()
	if n != 'y' {
		t.Fatalf("Next() after Peek() = %q, want 'y'", n)
	}
}

func TestUnget(t *testing.T) {
	s := New("ab")
	s.Next()
	s.Next()
	s.Unget()

	n, _ := s.Next()
	if n != 'b' {
		t.Fatalf("Next() after Unget() = %q, want 'b'", n)
	}
}

func TestEmptyBuffer(t *testing.T) {
	s := New("")
	_, err := s.Next()
	if err != ErrNoData {
		t.Fatalf("Next() on empty buffer err = %v, want ErrNoData", err)
	}
}

func TestRest(t *testing.T) {
	s := New("abc")
	s.Next()
	if got := s.Rest(); got != "bc" {
		t.Fatalf("Rest() = %q, want %q", got, "bc")
	}
}
