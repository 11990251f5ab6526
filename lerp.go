package hoverlens

// Lerp blends from a toward b by fraction t: a*(1-t) + b*t.
// Lerp(a, b, 0) is a and Lerp(a, b, 1) is b.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// LerpVec applies Lerp to both components.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}
