package terminal

import "testing"

func TestViewportFor(t *testing.T) {
	tests := []struct {
		w, h               int
		wantCols, wantRows int
	}{
		{80, 24, 80, 16},
		{120, 40, 120, 32},
		{10, 5, 10, 1},
		{0, 0, 1, 1},
	}
	for _, tt := range tests {
		cols, rows := viewportFor(tt.w, tt.h)
		if cols != tt.wantCols || rows != tt.wantRows {
			t.Errorf("viewportFor(%d,%d) = %d,%d, want %d,%d", tt.w, tt.h, cols, rows, tt.wantCols, tt.wantRows)
		}
	}
}
