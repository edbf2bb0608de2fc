package sapling

// Group is an ordered container of entities. Its order is update order and
// draw order. A group does not own its members: membership is bookkeeping,
// and the entity keeps a back-reference to every group holding it.
//
// Removing a member while the group is mid-pass leaves a tombstone (nil
// slot) that is compacted once no pass is running, so every pass visits the
// members that were live when it started exactly once.
type Group struct {
	Name string

	owner   *Entity
	members []*Entity
	live    int
	holes   int
	passes  int
}

// NewGroup creates an empty group.
func NewGroup(name string, entities ...*Entity) *Group {
	g := &Group{Name: name}
	g.Add(entities...)
	return g
}

// Owner returns the entity this group is a layer of, or nil.
func (g *Group) Owner() *Entity {
	return g.owner
}

// Add appends entities to the group. Entities already in the group keep
// their position. Entities added during a pass are first visited by the
// next pass.
// Panics if an entity is nil.
func (g *Group) Add(entities ...*Entity) {
	for _, e := range entities {
		if e == nil {
			panic("sapling: cannot add nil entity")
		}
		if e.dead {
			if globalDebug {
				debugCheckDead(e, "Group.Add")
			}
			continue
		}
		if e.inGroup(g) {
			continue
		}
		g.members = append(g.members, e)
		g.live++
		e.groups = append(e.groups, g)
		if globalDebug {
			debugCheckTreeDepth(e)
			debugCheckGroupSize(g)
		}
	}
}

// Remove takes entities out of the group without killing them.
func (g *Group) Remove(entities ...*Entity) {
	for _, e := range entities {
		if e != nil && e.inGroup(g) {
			g.detach(e)
		}
	}
}

// Has reports whether e is a live member.
func (g *Group) Has(e *Entity) bool {
	return e != nil && e.inGroup(g)
}

// Len returns the number of live members.
func (g *Group) Len() int {
	return g.live
}

// Entities returns the live members in order.
func (g *Group) Entities() []*Entity {
	out := make([]*Entity, 0, g.live)
	for _, e := range g.members {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// MoveTo moves e to index among the live members.
// Panics if e is not a member, index is out of range, or a pass is running.
func (g *Group) MoveTo(e *Entity, index int) {
	if g.passes > 0 {
		panic("sapling: cannot reorder group " + g.Name + " during a pass")
	}
	g.compact()
	if index < 0 || index >= len(g.members) {
		panic("sapling: entity index out of range")
	}
	oldIndex := g.indexOf(e)
	if oldIndex < 0 {
		panic("sapling: entity is not in group " + g.Name)
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(g.members[oldIndex:], g.members[oldIndex+1:index+1])
	} else {
		copy(g.members[index+1:], g.members[index:oldIndex])
	}
	g.members[index] = e
}

// Update updates every member that was live when the pass started, in
// order. Members killed or removed during the pass are skipped.
func (g *Group) Update() {
	g.passes++
	n := len(g.members)
	for i := 0; i < n; i++ {
		if e := g.members[i]; e != nil {
			e.Update()
		}
	}
	g.passes--
	g.compact()
}

// Draw draws every live member in order.
func (g *Group) Draw(s Surface, debug bool) {
	g.passes++
	n := len(g.members)
	for i := 0; i < n; i++ {
		if e := g.members[i]; e != nil {
			e.Draw(s, debug)
		}
	}
	g.passes--
	g.compact()
}

// Kill kills every member. Unlike Clear, this also detaches the members from
// every other group they belong to.
func (g *Group) Kill() {
	for _, e := range g.Entities() {
		e.Kill()
	}
}

// Clear removes every member without killing it.
func (g *Group) Clear() {
	for _, e := range g.Entities() {
		g.detach(e)
	}
}

// detach removes e from the group and the group from e's memberships.
func (g *Group) detach(e *Entity) {
	e.removeGroup(g)
	i := g.indexOf(e)
	if i < 0 {
		return
	}
	g.live--
	if g.passes > 0 {
		g.members[i] = nil
		g.holes++
		return
	}
	copy(g.members[i:], g.members[i+1:])
	g.members[len(g.members)-1] = nil
	g.members = g.members[:len(g.members)-1]
}

func (g *Group) indexOf(e *Entity) int {
	for i, m := range g.members {
		if m == e {
			return i
		}
	}
	return -1
}

// compact drops tombstones once no pass is running.
func (g *Group) compact() {
	if g.passes > 0 || g.holes == 0 {
		return
	}
	j := 0
	for _, e := range g.members {
		if e != nil {
			g.members[j] = e
			j++
		}
	}
	for k := j; k < len(g.members); k++ {
		g.members[k] = nil
	}
	g.members = g.members[:j]
	g.holes = 0
}
