package powerup

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/resource"
	"github.com/bloops-games/colorparty/internal/scheduler"
	"github.com/google/uuid"
)

type fixture struct {
	sched    *scheduler.Scheduler
	world    *arena.Memory
	entities *entity.Memory
	messages []string
	manager  *Manager
	now      time.Time
}

func newFixture(seed uint32) *fixture {
	f := &fixture{
		sched:    scheduler.New(),
		world:    arena.NewMemory(),
		entities: entity.NewMemory(),
		now:      time.Unix(1000, 0),
	}
	arena.Fill(f.world, arena.Floor, arena.RedTerracotta)
	f.manager = New(context.Background(), Config{
		Scheduler: f.sched,
		Source:    f.world,
		Entities:  f.entities,
		Rand:      random.New(seed),
		SafeColor: func() arena.Material { return arena.BlueTerracotta },
		Broadcast: func(text string) { f.messages = append(f.messages, text) },
		Now:       func() time.Time { return f.now },
	})
	return f
}

func newSession(name string) (*player.Session, *player.Memory) {
	c := player.NewMemory(uuid.New(), name)
	return player.NewSession(c, time.Unix(0, 0)), c
}

func TestApplyAnnouncesAndLocks(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	s, c := newSession("Alex")

	g := f.manager.Apply(s, arena.Block{X: 0, Y: arena.DecorY, Z: 0}, KindLeapAxe)
	if g.Kind != KindLeapAxe || g.Target != c.ID() {
		t.Errorf("unexpected grant %#v", g)
	}
	if c.Find(player.LabelLeapAxe) < 0 {
		t.Errorf("expected leap axe in inventory")
	}
	if expected := fmt.Sprintf(resource.TextLeapAxeGrantMsg, "Alex"); len(f.messages) != 1 || f.messages[0] != expected {
		t.Errorf("expected %#v got %#v", expected, f.messages)
	}
	if !s.Locked(f.now.Add(200 * time.Millisecond)) {
		t.Errorf("expected usage lock")
	}
}

func TestApplyAnnouncements(t *testing.T) {
	t.Parallel()

	cases := map[Kind]string{
		KindLeapAxe:        resource.TextLeapAxeGrantMsg,
		KindColorCow:       resource.TextColorCowGrantMsg,
		KindJumpPotion:     resource.TextJumpPotionGrantMsg,
		KindSpeedPotion:    resource.TextSpeedPotionGrantMsg,
		KindColorTrail:     resource.TextColorTrailGrantMsg,
		KindTeleportClock:  resource.TextTeleportClockGrantMsg,
		KindRandomTeleport: resource.TextRandomTeleportGrantMsg,
		KindStarve:         resource.TextStarveGrantMsg,
		KindMagicCarpet:    resource.TextMagicCarpetGrantMsg,
	}

	for kind, tmpl := range cases {
		f := newFixture(1)
		s, c := newSession("Alex")
		f.manager.Apply(s, arena.Block{X: 0, Y: arena.DecorY, Z: 0}, kind)
		expected := fmt.Sprintf(tmpl, "Alex")
		if len(f.messages) != 1 || f.messages[0] != expected {
			t.Errorf("expected %#v got %#v", expected, f.messages)
		}
		if kind == KindRandomTeleport {
			msgs := c.Messages()
			if len(msgs) == 0 || msgs[len(msgs)-1] != resource.TextRandomTeleportMsg {
				t.Errorf("expected %#v got %#v", resource.TextRandomTeleportMsg, msgs)
			}
		}
		f.manager.RemoveCarpet(s)
	}
}

func TestRollGrantsExactlyOne(t *testing.T) {
	t.Parallel()

	f := newFixture(7)
	seen := map[Kind]bool{}
	for i := 0; i < 200; i++ {
		s, _ := newSession(fmt.Sprintf("p%d", i))
		before := len(f.messages)
		g := f.manager.Roll(s, arena.Block{Y: arena.DecorY})
		if len(f.messages) != before+1 {
			t.Fatalf("expected exactly one announcement per grant")
		}
		if g.Kind >= kindCount {
			t.Fatalf("kind out of range: %d", g.Kind)
		}
		seen[g.Kind] = true
		f.manager.RemoveCarpet(s)
	}
	if len(seen) != int(kindCount) {
		t.Errorf("expected %#v got %#v", int(kindCount), len(seen))
	}
}

func TestColorCowPaintsSafeColor(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	s, _ := newSession("Alex")
	f.world.SetBlock(3, arena.FloorY, 0, arena.Air)

	f.manager.Apply(s, arena.Block{X: 0, Y: arena.DecorY, Z: 0}, KindColorCow)
	if f.entities.Count(entity.KindCow) != 1 {
		t.Fatalf("expected cow to be spawned")
	}

	f.sched.Advance(cowFuseTicks - 1)
	if f.world.Block(0, arena.FloorY, 0) != arena.RedTerracotta {
		t.Fatalf("cow detonated early")
	}

	f.sched.Tick()
	if f.entities.Count(entity.KindCow) != 0 {
		t.Errorf("expected cow to be removed")
	}
	if m := f.world.Block(0, arena.FloorY, 0); m != arena.BlueTerracotta {
		t.Errorf("expected %#v got %#v", arena.BlueTerracotta, m)
	}
	if m := f.world.Block(2, arena.FloorY, 2); m != arena.BlueTerracotta {
		t.Errorf("expected %#v got %#v", arena.BlueTerracotta, m)
	}
	if m := f.world.Block(3, arena.FloorY, 0); m != arena.Air {
		t.Errorf("air must stay air, got %#v", m)
	}
	if m := f.world.Block(6, arena.FloorY, 6); m != arena.RedTerracotta {
		t.Errorf("expected %#v got %#v", arena.RedTerracotta, m)
	}
}

func TestStopCancelsCows(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	s, _ := newSession("Alex")
	f.manager.Apply(s, arena.Block{Y: arena.DecorY}, KindColorCow)
	f.manager.Stop()
	f.sched.Advance(40)

	if f.entities.Count(0) != 0 || f.manager.PendingCows() != 0 {
		t.Errorf("expected no cows left")
	}
	if f.world.Block(0, arena.FloorY, 0) != arena.RedTerracotta {
		t.Errorf("cancelled cow detonated")
	}
}

func TestMagicCarpetOnlyOnAir(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	arena.Fill(f.world, arena.Floor, arena.Air)
	f.world.SetBlock(1, arena.FloorY, 1, arena.RedTerracotta)

	s, c := newSession("Alex")
	c.Teleport(arena.Vec3{X: 0.5, Y: 121, Z: 0.5})
	f.manager.Apply(s, arena.Block{Y: arena.DecorY}, KindMagicCarpet)

	if n := f.world.Count(arena.Floor, arena.Glass); n != 8 {
		t.Fatalf("expected %#v got %#v", 8, n)
	}
	if f.world.Block(1, arena.FloorY, 1) != arena.RedTerracotta {
		t.Errorf("carpet overwrote a floor block")
	}

	c.Teleport(arena.Vec3{X: 10.5, Y: 121, Z: 10.5})
	f.sched.Advance(carpetPeriod + 1)
	if f.world.Block(0, arena.FloorY, 0) != arena.Air {
		t.Errorf("old carpet not cleared")
	}
	if f.world.Block(10, arena.FloorY, 10) != arena.Glass {
		t.Errorf("carpet did not follow the player")
	}

	f.manager.RemoveCarpet(s)
	f.sched.Advance(10)
	if n := f.world.Count(arena.Floor, arena.Glass); n != 0 {
		t.Errorf("expected %#v got %#v", 0, n)
	}
}

func TestMagicCarpetStaysInBounds(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	arena.Fill(f.world, arena.Floor, arena.Air)
	s, c := newSession("Alex")
	c.Teleport(arena.Vec3{X: arena.StartX + 0.5, Y: 121, Z: arena.StartZ + 0.5})
	f.manager.Apply(s, arena.Block{Y: arena.DecorY}, KindMagicCarpet)

	if n := f.world.Count(arena.Floor, arena.Glass); n != 4 {
		t.Errorf("expected %#v got %#v", 4, n)
	}
	if f.world.Block(arena.StartX-1, arena.FloorY, arena.StartZ) != arena.Air {
		t.Errorf("carpet escaped the arena")
	}
}

func TestStarveRestore(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	s, c := newSession("Alex")
	f.manager.Apply(s, arena.Block{Y: arena.DecorY}, KindStarve)
	if c.Food() != 0 || !s.Starved {
		t.Fatalf("expected player to be starved")
	}

	f.manager.RestoreStarved(s)
	if c.Food() != player.FoodFull || s.Starved {
		t.Errorf("expected hunger to be restored")
	}
}

func TestTeleportToSafeTile(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	_, c := newSession("Alex")

	if f.manager.TeleportToSafeTile(c) {
		t.Fatalf("teleport without safe tiles must fail")
	}
	msgs := c.Messages()
	if msgs[len(msgs)-1] != resource.TextNoSafeTileMsg {
		t.Errorf("unexpected message %#v", msgs)
	}

	f.world.SetBlock(5, arena.FloorY, 6, arena.BlueTerracotta)
	if !f.manager.TeleportToSafeTile(c) {
		t.Fatalf("expected teleport")
	}
	pos := c.Position()
	if pos.X != 5.5 || pos.Z != 6.5 || math.Abs(pos.Y-(arena.FloorY+1.1)) > 1e-9 {
		t.Errorf("expected %#v got %#v", arena.Vec3{X: 5.5, Y: arena.FloorY + 1.1, Z: 6.5}, pos)
	}
	if msgs = c.Messages(); msgs[len(msgs)-1] != resource.TextSafeTeleportMsg {
		t.Errorf("expected %#v got %#v", resource.TextSafeTeleportMsg, msgs)
	}
}

func TestLeap(t *testing.T) {
	t.Parallel()

	f := newFixture(1)
	_, c := newSession("Alex")
	c.Look(arena.Vec3{X: 1})
	f.manager.Leap(c)

	v := c.Velocity()
	if v.X != leapStrength || v.Y != 0.1 {
		t.Errorf("unexpected leap velocity %#v", v)
	}
}
