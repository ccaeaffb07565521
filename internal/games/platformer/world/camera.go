package world

// DefaultLeadDistance is how far the player may move right of the camera
// before it scrolls.
const DefaultLeadDistance = 100.0

// Camera is the horizontal scroll offset. It only moves right.
type Camera struct {
	X    float64
	Lead float64
}

// NewCamera creates a camera at offset 0.
func NewCamera(lead float64) Camera {
	return Camera{Lead: lead}
}

// Update scrolls so the player stays at most Lead units right of the offset.
// A player exactly at X+Lead does not scroll.
func (c *Camera) Update(playerX float64) {
	if playerX > c.X+c.Lead {
		c.X = playerX - c.Lead
	}
}

// Reset returns the camera to the offset a fresh session derives for spawnX.
func (c *Camera) Reset(spawnX float64) {
	c.X = 0
	c.Update(spawnX)
}
