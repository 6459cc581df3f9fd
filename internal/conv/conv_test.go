package conv

import "testing"

func TestIntToUint32(t *testing.T) {
	if got := IntToUint32(42); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestIntToUint32PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative input")
		}
	}()
	IntToUint32(-1)
}

func TestIntToUint16PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	IntToUint16(70000)
}

func TestFitsUint8(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{-1, false},
		{0, true},
		{255, true},
		{256, false},
	}
	for _, c := range cases {
		if got := FitsUint8(c.n); got != c.want {
			t.Fatalf("FitsUint8(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestFitsUint16(t *testing.T) {
	if !FitsUint16(65535) {
		t.Fatal("expected 65535 to fit uint16")
	}
	if FitsUint16(65536) {
		t.Fatal("expected 65536 to not fit uint16")
	}
}

func TestUint64ToUint32(t *testing.T) {
	if got := Uint64ToUint32(100); got != 100 {
		t.Fatalf("got %d, want 100", got)
	}
}

func TestUint64ToUint32PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	Uint64ToUint32(1 << 40)
}
