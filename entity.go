package sapling

// entityIDCounter is a plain counter. Sapling is single-threaded.
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is a node of the composition tree. It runs one state per tick,
// owns an ordered list of child groups and remembers every group it belongs
// to so that Kill can detach it from all of them.
type Entity struct {
	// Identity. ID is reset to 0 when the entity is killed.
	ID   uint32
	Name string

	// Body is the entity's spatial extent, or nil for logical entities.
	Body *Body

	// OnDraw renders custom visuals after the body image and before the
	// child groups. Nil by default.
	OnDraw func(s Surface, debug bool)

	// Metadata
	UserData any

	state        StateFunc
	tick         int
	updating     bool
	stateChanged bool

	children []*Group // owned, in layer order
	groups   []*Group // memberships; relation only

	killing bool
	dead    bool
}

// NewEntity creates an entity in the no-op state and adds it to groups.
func NewEntity(name string, groups ...*Group) *Entity {
	e := &Entity{ID: nextEntityID(), Name: name, state: Noop}
	for _, g := range groups {
		g.Add(e)
	}
	return e
}

// State returns the current state.
func (e *Entity) State() StateFunc {
	return e.state
}

// SetState makes fn the current state and resets the tick-in-state counter
// to 0. When called during the entity's own Update the counter stays at 0
// for the rest of that tick, so the first run of fn always observes Tick 0.
// A nil fn is replaced by Noop.
func (e *Entity) SetState(fn StateFunc) {
	if fn == nil {
		fn = Noop
	}
	e.state = fn
	e.tick = 0
	if e.updating {
		e.stateChanged = true
	}
}

// Tick returns the number of completed updates since the current state was
// entered.
func (e *Entity) Tick() int {
	return e.tick
}

// Update runs the current state once, updates every child group in order,
// then advances the tick-in-state counter unless the state changed during
// this update. Dead entities do nothing.
func (e *Entity) Update() {
	if e.dead {
		if globalDebug {
			debugCheckDead(e, "Update")
		}
		return
	}
	e.updating = true
	e.stateChanged = false

	e.state()

	if !e.dead {
		n := len(e.children)
		for i := 0; i < n; i++ {
			e.children[i].Update()
		}
	}

	e.updating = false
	if e.dead {
		return
	}
	if e.stateChanged {
		e.stateChanged = false
		return
	}
	e.tick++
}

// Draw renders the body image, the OnDraw hook and, when debug is set, the
// body outline and centre marker. Child groups are drawn afterwards in
// order, so later groups paint over earlier ones.
func (e *Entity) Draw(s Surface, debug bool) {
	if e.dead {
		return
	}
	b := e.Body
	if b != nil && b.Image != nil {
		s.DrawImage(b.Image, b.ImageRect())
	}
	if e.OnDraw != nil {
		e.OnDraw(s, debug)
	}
	if debug && b != nil {
		c := b.debugColor()
		s.StrokeRect(b.Rect, 1, c)
		cx, cy := b.Rect.Center()
		s.FillCircle(cx, cy, 2, c)
	}
	n := len(e.children)
	for i := 0; i < n; i++ {
		e.children[i].Draw(s, debug)
	}
}

// Kill kills every entity in the child groups, removes this entity from all
// groups holding it and marks it dead. Calling Kill more than once, or from
// the entity's own state, is safe.
func (e *Entity) Kill() {
	if e.dead || e.killing {
		return
	}
	e.killing = true
	for _, g := range e.children {
		g.Kill()
	}
	for len(e.groups) > 0 {
		g := e.groups[len(e.groups)-1]
		if globalDebug {
			debugCheckMembership(e, g)
		}
		g.detach(e)
	}
	e.killing = false
	e.dead = true
	e.ID = 0
	e.state = Noop
}

// IsDead reports whether Kill has completed on this entity.
func (e *Entity) IsDead() bool {
	return e.dead
}

// AddChildGroup appends g to this entity's layers and returns it. A group
// has exactly one owner.
// Panics if g is nil or already owned.
func (e *Entity) AddChildGroup(g *Group) *Group {
	if g == nil {
		panic("sapling: cannot add nil child group")
	}
	if g.owner != nil {
		panic("sapling: group " + g.Name + " already has an owner")
	}
	if globalDebug {
		debugCheckDead(e, "AddChildGroup")
	}
	g.owner = e
	e.children = append(e.children, g)
	return g
}

// ChildGroups returns the owned groups in layer order. The returned slice
// MUST NOT be mutated by the caller.
func (e *Entity) ChildGroups() []*Group {
	return e.children
}

// Groups returns a copy of the groups this entity currently belongs to.
func (e *Entity) Groups() []*Group {
	out := make([]*Group, len(e.groups))
	copy(out, e.groups)
	return out
}

// Parent returns the owner of the first group this entity joined, or nil.
func (e *Entity) Parent() *Entity {
	if len(e.groups) == 0 {
		return nil
	}
	return e.groups[0].owner
}

// AnimationFrame converts the tick-in-state into an animation frame index
// using Body.FrameDuration. Returns 0 for entities without a body or with a
// non-positive frame duration.
func (e *Entity) AnimationFrame() int {
	if e.Body == nil || e.Body.FrameDuration <= 0 {
		return 0
	}
	return e.tick / e.Body.FrameDuration
}

// Ref returns a weak reference to e.
func (e *Entity) Ref() Ref {
	return Ref{e: e, id: e.ID}
}

// Ref is a weak handle to an entity. It resolves to nil once the entity has
// been killed, so holders never act on a dead entity by accident.
type Ref struct {
	e  *Entity
	id uint32
}

// Get returns the entity, or nil if it is dead or the Ref is zero.
func (r Ref) Get() *Entity {
	if r.e == nil || r.e.dead || r.e.ID != r.id {
		return nil
	}
	return r.e
}

// removeGroup drops g from the membership list.
func (e *Entity) removeGroup(g *Group) {
	for i, m := range e.groups {
		if m == g {
			copy(e.groups[i:], e.groups[i+1:])
			e.groups[len(e.groups)-1] = nil
			e.groups = e.groups[:len(e.groups)-1]
			return
		}
	}
}

// inGroup reports whether g is in the membership list.
func (e *Entity) inGroup(g *Group) bool {
	for _, m := range e.groups {
		if m == g {
			return true
		}
	}
	return false
}
