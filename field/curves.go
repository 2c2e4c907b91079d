package field

import "github.com/chewxy/math32"

// Flower is the five-petal closed curve around the origin:
//
//	f(x,y) = x² + y² − 0.5·(2 + sin(5·atan2(y, x)))
//
// atan2(0,0) follows IEEE 754 (it is 0), so the origin evaluates to −1.
func Flower(x, y float32) float32 {
	return x*x + y*y - 0.5*(2+math32.Sin(5*math32.Atan2(y, x)))
}

// Circle returns the implicit function of the circle of radius r centred
// at the origin: x² + y² − r².
func Circle(r float32) ImplicitFunc {
	r2 := r * r

	return func(x, y float32) float32 {
		return x*x + y*y - r2
	}
}

// Translate shifts fn so that its origin lands at (cx, cy).
func Translate(fn ImplicitFunc, cx, cy float32) ImplicitFunc {
	return func(x, y float32) float32 {
		return fn(x-cx, y-cy)
	}
}

// Union seeds wherever any of fns is near zero: it returns the member value
// of smallest magnitude at each point.
func Union(fns ...ImplicitFunc) ImplicitFunc {
	return func(x, y float32) float32 {
		best := math32.Inf(1)
		for _, fn := range fns {
			if v := fn(x, y); math32.Abs(v) < math32.Abs(best) {
				best = v
			}
		}

		return best
	}
}
