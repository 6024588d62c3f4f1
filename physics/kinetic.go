package physics

// Body is the kinetic state of one launched shape, world units and seconds
type Body struct {
	PosX, PosY     float64
	VelX, VelY     float64
	AccelX, AccelY float64
}

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
func Integrate(b *Body, dt float64) {
	b.VelX += b.AccelX * dt
	b.VelY += b.AccelY * dt
	b.PosX += b.VelX * dt
	b.PosY += b.VelY * dt
}

// ApplyImpulse adds velocity delta (unit mass)
func ApplyImpulse(b *Body, vx, vy float64) {
	b.VelX += vx
	b.VelY += vy
}

// SetImpulse overrides velocity
func SetImpulse(b *Body, vx, vy float64) {
	b.VelX = vx
	b.VelY = vy
}

// Contains reports whether (x, y) lies in the w×h box centered on the body, widened by slop
func Contains(b *Body, w, h, slop, x, y float64) bool {
	hw := w/2 + slop
	hh := h/2 + slop
	return x >= b.PosX-hw && x <= b.PosX+hw &&
		y >= b.PosY-hh && y <= b.PosY+hh
}
