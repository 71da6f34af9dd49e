package engine

import "testing"

func TestIntersects(t *testing.T) {
	viewport := Span{Top: 0, Height: 100}

	tests := []struct {
		name string
		el   Span
		th   Threshold
		want bool
	}{
		{
			name: "fully inside",
			el:   Span{Top: 20, Height: 10},
			th:   Threshold{Ratio: 0.1},
			want: true,
		},
		{
			name: "fully below",
			el:   Span{Top: 200, Height: 10},
			th:   Threshold{Ratio: 0.1},
			want: false,
		},
		{
			name: "fully above",
			el:   Span{Top: -50, Height: 10},
			th:   Threshold{Ratio: 0.1},
			want: false,
		},
		{
			name: "sliver over low threshold",
			el:   Span{Top: 98, Height: 20}, // 2 of 20 rows visible = 0.1
			th:   Threshold{Ratio: 0.1},
			want: true,
		},
		{
			name: "sliver under higher threshold",
			el:   Span{Top: 98, Height: 20},
			th:   Threshold{Ratio: 0.3},
			want: false,
		},
		{
			name: "margin shrinks viewport",
			el:   Span{Top: 5, Height: 10}, // inside raw viewport, above 20% inset
			th:   Threshold{Ratio: 0.5, Margin: 0.2},
			want: false,
		},
		{
			name: "centered survives margin",
			el:   Span{Top: 45, Height: 10},
			th:   Threshold{Ratio: 0.5, Margin: 0.2},
			want: true,
		},
		{
			name: "zero-height inside",
			el:   Span{Top: 50, Height: 0},
			th:   Threshold{Ratio: 0.1},
			want: true,
		},
		{
			name: "zero-height outside",
			el:   Span{Top: 150, Height: 0},
			th:   Threshold{Ratio: 0.1},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(viewport, tt.el, tt.th); got != tt.want {
				t.Errorf("Intersects(%+v, %+v, %+v) = %v, want %v", viewport, tt.el, tt.th, got, tt.want)
			}
		})
	}
}

func TestIntersects_DegenerateViewport(t *testing.T) {
	// Margin large enough to invert the viewport: nothing intersects.
	viewport := Span{Top: 0, Height: 10}
	el := Span{Top: 5, Height: 2}
	if Intersects(viewport, el, Threshold{Ratio: 0.1, Margin: 0.6}) {
		t.Error("element intersected an inverted viewport")
	}
}
