package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got, ok := U32LEAt(data, 0); !ok || got != 0x67452301 {
		t.Fatalf("U32LEAt(0) = 0x%x,%v want 0x67452301,true", got, ok)
	}
	if got, ok := U32LEAt(data, 4); !ok || got != 0xefcdab89 {
		t.Fatalf("U32LEAt(4) = 0x%x,%v want 0xefcdab89,true", got, ok)
	}
	if _, ok := U32LEAt(data, 5); ok {
		t.Fatalf("U32LEAt(5) should fail on an 8-byte buffer")
	}
	if _, ok := U32LEAt(data, -1); ok {
		t.Fatalf("U32LEAt(-1) should fail")
	}
	if got := LE32(0x67452301); got != [4]byte{0x01, 0x23, 0x45, 0x67} {
		t.Fatalf("LE32 = %v", got)
	}

	if _, ok := U32LEAt([]byte{0xAA}, 0); ok {
		t.Fatalf("short reads should fail")
	}
}
