package pagination

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name         string
		in           PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero_values", PageRequest{}, 1, DefaultPageSize},
		{"explicit", PageRequest{Page: 3, PageSize: 5}, 3, 5},
		{"oversized", PageRequest{Page: 1, PageSize: 500}, 1, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Defaults()
			if p.Page != tt.wantPage || p.PageSize != tt.wantPageSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", p.Page, p.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PageRequest{Page: 3, PageSize: 20}
	if p.Offset() != 40 {
		t.Errorf("expected offset 40, got %d", p.Offset())
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 1, 2, 5)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil {
		t.Error("expected empty slice, not nil")
	}

	exact := NewPageResponse([]int{1, 2}, 1, 2, 4)
	if exact.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", exact.TotalPages)
	}
}

func TestMap(t *testing.T) {
	in := NewPageResponse([]int{1, 2, 3}, 2, 3, 9)
	out := Map(in, func(i int) string { return string(rune('a' + i - 1)) })
	if len(out.Data) != 3 || out.Data[2] != "c" {
		t.Errorf("unexpected data %v", out.Data)
	}
	if out.Page != 2 || out.TotalItems != 9 || out.TotalPages != 3 {
		t.Errorf("metadata not preserved: %+v", out)
	}
}
