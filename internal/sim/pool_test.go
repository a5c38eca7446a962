package sim

import (
	"math/rand"
	"testing"
)

func TestPool_ActivateDeactivate(t *testing.T) {
	p := NewPool(10)

	if p.Count() != 0 || p.Capacity() != 10 {
		t.Fatalf("new pool: count=%d cap=%d", p.Count(), p.Capacity())
	}
	for i := 0; i < p.Capacity(); i++ {
		if p.IsActive(i) {
			t.Fatalf("slot %d active in a fresh pool", i)
		}
	}

	p.Activate(3, Particle{Position: Vec3{X: 1}, Size: 2, Life: 1})
	if !p.IsActive(3) || p.Count() != 1 {
		t.Errorf("after activate: active=%v count=%d", p.IsActive(3), p.Count())
	}

	// Activating an already-active slot must not inflate the count.
	p.Activate(3, Particle{Size: 5, Life: 1})
	if p.Count() != 1 {
		t.Errorf("double activate: count=%d, want 1", p.Count())
	}

	p.deactivate(3)
	if p.IsActive(3) || p.Count() != 0 {
		t.Errorf("after deactivate: active=%v count=%d", p.IsActive(3), p.Count())
	}
	if p.slots[3].Position.Z > inactiveDepth {
		t.Errorf("deactivated slot depth = %f, want sentinel", p.slots[3].Position.Z)
	}
	if p.slots[3].Size != 0 {
		t.Errorf("deactivated slot size = %f, want 0", p.slots[3].Size)
	}

	// Double deactivation must not drive the count negative.
	p.deactivate(3)
	if p.Count() != 0 {
		t.Errorf("double deactivate: count=%d, want 0", p.Count())
	}
}

func TestPool_ActivityIsDerived(t *testing.T) {
	p := NewPool(4)
	p.Activate(0, Particle{Life: 1})

	// Lifetime reaching zero makes the slot inactive without any flag.
	p.slots[0].Life = 0
	if p.IsActive(0) {
		t.Error("slot with zero lifetime should read inactive")
	}
}

func TestPool_FirstInactive(t *testing.T) {
	p := NewPool(3)
	for i := 0; i < 3; i++ {
		if got := p.FirstInactive(); got != i {
			t.Fatalf("FirstInactive = %d, want %d", got, i)
		}
		p.Activate(i, Particle{Life: 1})
	}

	if got := p.FirstInactive(); got != -1 {
		t.Errorf("full pool FirstInactive = %d, want -1", got)
	}

	// Recycling: freeing a middle slot makes it the next candidate.
	p.deactivate(1)
	if got := p.FirstInactive(); got != 1 {
		t.Errorf("FirstInactive after recycle = %d, want 1", got)
	}
}

func TestPool_Seed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPool(100)
	scheme, _ := LookupScheme("cosmic")

	p.Seed(50, 350, scheme, 2.0, rng)
	if p.Count() != 50 {
		t.Fatalf("seeded count = %d, want 50", p.Count())
	}

	active := 0
	for i := 0; i < p.Capacity(); i++ {
		if !p.IsActive(i) {
			continue
		}
		active++
		pt := &p.slots[i]
		if pt.Position.Len() > 350+1e-9 {
			t.Errorf("slot %d outside seed radius: %f", i, pt.Position.Len())
		}
		if pt.Life != 1.0 {
			t.Errorf("slot %d life = %f, want 1", i, pt.Life)
		}
		if pt.Size < 2.0 || pt.Size >= 2.0+spawnSizeSpread {
			t.Errorf("slot %d size = %f out of range", i, pt.Size)
		}
	}
	if active != p.Count() {
		t.Errorf("derived active slots = %d, stored count = %d", active, p.Count())
	}

	// Seeding past capacity stops at capacity.
	p.Seed(200, 350, scheme, 2.0, rng)
	if p.Count() != 100 {
		t.Errorf("overfull seed: count = %d, want 100", p.Count())
	}
}

func TestPool_Retint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewPool(1000)
	scheme, _ := LookupScheme("fire")

	for i := 0; i < 1000; i++ {
		p.Activate(i, Particle{Color: RGB{R: -1}, Life: 1})
	}

	p.Retint(0.3, scheme, rng)

	retinted := 0
	for i := range p.slots {
		if p.slots[i].Color.R >= 0 {
			retinted++
		}
	}
	// ~30% with generous slack for randomness.
	if retinted < 200 || retinted > 400 {
		t.Errorf("retinted %d of 1000, want roughly 300", retinted)
	}
}

func TestPool_CopySnapshot(t *testing.T) {
	p := NewPool(3)
	p.Activate(1, Particle{
		Position: Vec3{X: 1, Y: 2, Z: 3},
		Color:    RGB{R: 0.5, G: 0.25, B: 1},
		Size:     4,
		Life:     1,
	})

	var snap Snapshot
	p.CopySnapshot(&snap)

	if snap.Count != 1 {
		t.Errorf("snapshot count = %d, want 1", snap.Count)
	}
	if len(snap.Positions) != 9 || len(snap.Colors) != 9 || len(snap.Sizes) != 3 {
		t.Fatalf("snapshot lengths = %d/%d/%d", len(snap.Positions), len(snap.Colors), len(snap.Sizes))
	}
	if snap.Positions[3] != 1 || snap.Positions[4] != 2 || snap.Positions[5] != 3 {
		t.Errorf("slot 1 position = %v", snap.Positions[3:6])
	}
	if snap.Sizes[1] != 4 {
		t.Errorf("slot 1 size = %f", snap.Sizes[1])
	}

	// Inactive slots are parked at the sentinel depth.
	if snap.Positions[2] > float32(inactiveDepth) {
		t.Errorf("inactive slot depth = %f, want sentinel", snap.Positions[2])
	}

	// Buffers are reused across calls.
	first := &snap.Positions[0]
	p.CopySnapshot(&snap)
	if first != &snap.Positions[0] {
		t.Error("snapshot buffer was reallocated on second copy")
	}
}
