package model

import (
	"math"
	"testing"
)

func TestWindowSizes(t *testing.T) {
	for total := 0; total <= 23; total++ {
		for size := 1; size <= 7; size++ {
			for number := 1; number <= 6; number++ {
				req := PageRequest{Number: number, Size: size}
				offset, ok := req.Window(total)

				want := min(size, max(0, total-(number-1)*size))
				got := 0
				if ok {
					got = min(req.Limit(), total-offset)
				}
				if got != want {
					t.Fatalf("total=%d page=%d size=%d: got %d items, want %d", total, number, size, got, want)
				}
				if ok && offset != (number-1)*size {
					t.Fatalf("total=%d page=%d size=%d: offset %d", total, number, size, offset)
				}
			}
		}
	}
}

func TestWindowInvalidRequest(t *testing.T) {
	for _, req := range []PageRequest{{Number: 0, Size: 2}, {Number: 1, Size: 0}, {Number: -3, Size: 2}} {
		if _, ok := req.Window(3); ok {
			t.Errorf("%+v: expected no window for invalid request", req)
		}
	}
}

// TestWindowHugePageNumber はページ番号が大きくてもオフセットが負にならないことを確認します。
func TestWindowHugePageNumber(t *testing.T) {
	for _, req := range []PageRequest{
		{Number: math.MaxInt/10 + 2, Size: 10},
		{Number: math.MaxInt, Size: math.MaxInt},
		{Number: 2, Size: math.MaxInt},
	} {
		if offset, ok := req.Window(5); ok {
			t.Errorf("%+v: expected out-of-range page, got offset %d", req, offset)
		}
	}

	offset, ok := PageRequest{Number: 1, Size: math.MaxInt}.Window(5)
	if !ok || offset != 0 {
		t.Errorf("Expected first page at offset 0, got %d (%v)", offset, ok)
	}
}

func TestNewPageKeepsRequest(t *testing.T) {
	page := NewPage([]int{7}, 31, PageRequest{Number: 4, Size: 10})
	if page.PageNumber != 4 || page.PageSize != 10 || page.TotalRecords != 31 {
		t.Errorf("Unexpected page metadata: %+v", page)
	}

	empty := NewPage[int](nil, 0, PageRequest{Number: 1, Size: 10})
	if empty.Data == nil {
		t.Error("data must encode as [] not null")
	}
}
