package conv

import (
	"math"
	"testing"
)

func TestIndex(t *testing.T) {
	if got := Index(uint8(255)); got != 255 {
		t.Errorf("Index(uint8 255) = %d", got)
	}
	if got := Index(uint32(0)); got != 0 {
		t.Errorf("Index(uint32 0) = %d", got)
	}
	if got := Index(uint64(math.MaxInt)); got != math.MaxInt {
		t.Errorf("Index(MaxInt) = %d", got)
	}
}

func TestIndexOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Index should panic when the value does not fit in int")
		}
	}()
	Index(uint64(math.MaxUint64))
}

func TestUnsigned(t *testing.T) {
	if got := Unsigned[uint8](255); got != 255 {
		t.Errorf("Unsigned[uint8](255) = %d", got)
	}
	if got := Unsigned[uint64](42); got != 42 {
		t.Errorf("Unsigned[uint64](42) = %d", got)
	}
}

func TestUnsignedOverflowPanics(t *testing.T) {
	for _, n := range []int{-1, 256} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Unsigned[uint8](%d) should panic", n)
				}
			}()
			Unsigned[uint8](n)
		}()
	}
}
