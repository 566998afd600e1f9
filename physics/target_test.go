package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/intercept/vmath"
)

func TestPredict_StaticTarget(t *testing.T) {
	tg := Target{Position: vmath.V2F(650, 150)}

	if !tg.Static() {
		t.Fatal("Expected zero-motion target to be static")
	}
	for _, tm := range []float64{0, 0.5, 1, 5.5, 100} {
		if got := tg.Predict(tm); got != tg.Position {
			t.Errorf("Predict(%v) = %v, expected %v", tm, got, tg.Position)
		}
	}
}

func TestPredict_Components(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		time   float64
		want   vmath.Vec2F
	}{
		{
			name:   "linear drift",
			target: Target{Position: vmath.V2F(450, 0), Velocity: vmath.V2F(100, 50)},
			time:   2,
			want:   vmath.V2F(650, 100),
		},
		{
			name:   "freefall",
			target: Target{Position: vmath.V2F(100, 200), Gravity: 10},
			time:   3,
			want:   vmath.V2F(100, 155),
		},
		{
			name:   "periodic offset at origin",
			target: Target{Position: vmath.V2F(650, 50), Radius: 100},
			time:   0,
			want:   vmath.V2F(750, 50),
		},
		{
			name:   "periodic offset quarter turn",
			target: Target{Position: vmath.V2F(650, 50), Radius: 100},
			time:   math.Pi / 2,
			want:   vmath.V2F(650, 150),
		},
		{
			name: "combined",
			target: Target{
				Position: vmath.V2F(10, 20),
				Velocity: vmath.V2F(-1, 2),
				Gravity:  4,
				Radius:   1,
			},
			time: math.Pi,
			want: vmath.V2F(10-math.Pi-1, 20+2*math.Pi-2*math.Pi*math.Pi),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.target.Predict(tt.time)
			if !vmath.V2FNear(got, tt.want, 1e-9) {
				t.Errorf("Predict(%v) = %v, expected %v", tt.time, got, tt.want)
			}
		})
	}
}

func TestPredict_OffsetStaysOnCircle(t *testing.T) {
	tg := Target{Position: vmath.V2F(-30, 70), Radius: 25}

	for tm := 0.0; tm < 10; tm += 0.37 {
		d := vmath.V2FDist(tg.Predict(tm), tg.Position)
		if math.Abs(d-25) > 1e-9 {
			t.Errorf("At t=%v offset distance %v, expected 25", tm, d)
		}
	}
}

func TestPredict_NonFiniteInputPropagates(t *testing.T) {
	tg := Target{Position: vmath.V2F(math.NaN(), 0)}
	if vmath.V2FFinite(tg.Predict(1)) {
		t.Error("Expected NaN position to propagate into prediction")
	}
}

func TestStatic(t *testing.T) {
	if (Target{Velocity: vmath.V2F(0, 1)}).Static() {
		t.Error("Expected drifting target to be non-static")
	}
	if (Target{Gravity: 1}).Static() {
		t.Error("Expected falling target to be non-static")
	}
	if (Target{Radius: 1}).Static() {
		t.Error("Expected orbiting target to be non-static")
	}
}
