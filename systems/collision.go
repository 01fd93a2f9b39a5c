package systems

import "github.com/solarlune/resolv"

// Overlaps reports whether two hitboxes intersect. Rectangles that only
// touch along an edge do not overlap. Any positive overlap counts, however
// small, so the space's cell grid is not consulted.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
