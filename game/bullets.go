package game

// bulletTemplate is the decagon shared by every bullet
var bulletTemplate = mustRegularPolygon(10)

// Bullet is a short-range projectile fired by the ship
type Bullet struct {
	ID EntityID
	Body
	Alive bool
}

// Bullets owns the projectiles in flight
type Bullets struct {
	list  []Bullet
	cfg   Config
	ids   *idSource
	fired int
}

// NewBullets creates an empty bullet collection
func NewBullets(cfg Config) *Bullets {
	return &Bullets{
		list: make([]Bullet, 0, 64),
		cfg:  cfg,
		ids:  &idSource{},
	}
}

// TryFire advances the ship's cooldown by dt and, if fire is pressed and the
// cooldown allows it, spawns a bullet from each cannon and applies recoil.
// It reports whether a pair was fired.
func (b *Bullets) TryFire(ship *Ship, firePressed bool, dt float64) bool {
	ship.FireCooldown.Advance(dt)
	if !firePressed || !ship.FireCooldown.Ready() {
		return false
	}
	ship.FireCooldown.Restart()

	forward := ship.Forward()
	offset := ship.Right().Scale(b.cfg.CannonOffsetRatio * ship.Scale)
	velocity := ship.LinearVelocity.Add(forward.Scale(b.cfg.BulletSpeed))

	b.Spawn(ship.Position.Add(offset), velocity)
	b.Spawn(ship.Position.Sub(offset), velocity)

	// Kick the ship backwards
	ship.ApplyImpulse(forward.Scale(-b.cfg.RecoilImpulse))

	b.fired++
	Logger().Debug("bullets fired", "pair", b.fired, "in_flight", len(b.list))
	return true
}

// Spawn adds a live bullet
func (b *Bullets) Spawn(position, velocity Vec2) EntityID {
	id := b.ids.nextID()
	b.list = append(b.list, Bullet{
		ID: id,
		Body: Body{
			Position:       position,
			LinearVelocity: velocity,
			Scale:          b.cfg.BulletScale,
		},
		Alive: true,
	})
	return id
}

// Tick moves bullets against the ship's velocity and removes those that
// left the bullet bound or were killed
func (b *Bullets) Tick(dt float64, shipVelocity Vec2) {
	for i := range b.list {
		bullet := &b.list[i]
		bullet.Integrate(dt, shipVelocity)
		if !InBounds(bullet.Position, b.cfg.BulletBound) {
			bullet.Alive = false
		}
	}

	removed := b.compact()
	if removed > 0 {
		Logger().Debug("bullets despawned", "count", removed, "in_flight", len(b.list))
	}
}

// compact swap-removes dead bullets and returns how many were dropped
func (b *Bullets) compact() int {
	removed := 0
	for i := 0; i < len(b.list); {
		if b.list[i].Alive {
			i++
			continue
		}
		last := len(b.list) - 1
		b.list[i] = b.list[last]
		b.list[last] = Bullet{}
		b.list = b.list[:last]
		removed++
	}
	return removed
}

// Kill marks the bullet with the given ID dead; it is removed on the next Tick
func (b *Bullets) Kill(id EntityID) bool {
	for i := range b.list {
		if b.list[i].ID == id {
			b.list[i].Alive = false
			return true
		}
	}
	return false
}

// Clear removes every bullet
func (b *Bullets) Clear() {
	clear(b.list)
	b.list = b.list[:0]
	b.fired = 0
}

// Len returns the number of bullets in flight
func (b *Bullets) Len() int {
	return len(b.list)
}

// All returns the bullets. The slice is owned by the collection and must not be modified.
func (b *Bullets) All() []Bullet {
	return b.list
}

// Template returns the decagon drawn for every bullet
func (b *Bullets) Template() Polygon {
	return bulletTemplate
}

// Scale returns the render scale of bullets
func (b *Bullets) Scale() float64 {
	return b.cfg.BulletScale
}

// Fired returns how many pairs were fired since the last Clear
func (b *Bullets) Fired() int {
	return b.fired
}
