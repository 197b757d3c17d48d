package mat

import "github.com/chewxy/math32"

func roundEps(x, eps float32) float32 {
	return x - math32.Mod(x, eps)
}
