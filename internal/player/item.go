package player

import "github.com/bloops-games/colorparty/internal/arena"

const InventorySize = 36

const (
	SlotStartNormal = 0
	SlotStartCrazy  = 1
	SlotSafeColor   = 7
	SlotExit        = 8
)

type ItemKind uint8

const (
	ItemEmerald ItemKind = iota + 1
	ItemShard
	ItemBed
	ItemAxe
	ItemPotion
	ItemClock
	ItemBlock
)

const (
	LabelStartNormal = "Start Normal Mode"
	LabelStartCrazy  = "Start Crazy Mode"
	LabelExit        = "Exit"
	LabelLeapAxe     = "Leap Axe"
	LabelJumpPotion  = "Jump Potion"
	LabelSpeedPotion = "Speed Potion"
	LabelTeleport    = "Teleport"
	LabelSafeColor   = "Stand on this!"
)

type Item struct {
	Kind  ItemKind       `json:"kind"`
	Label string         `json:"label"`
	Block arena.Material `json:"block,omitempty"`
}

func StartNormalItem() *Item {
	return &Item{Kind: ItemEmerald, Label: LabelStartNormal}
}

func StartCrazyItem() *Item {
	return &Item{Kind: ItemShard, Label: LabelStartCrazy}
}

func ExitItem() *Item {
	return &Item{Kind: ItemBed, Label: LabelExit}
}

func LeapAxeItem() *Item {
	return &Item{Kind: ItemAxe, Label: LabelLeapAxe}
}

func JumpPotionItem() *Item {
	return &Item{Kind: ItemPotion, Label: LabelJumpPotion}
}

func SpeedPotionItem() *Item {
	return &Item{Kind: ItemPotion, Label: LabelSpeedPotion}
}

func TeleportItem() *Item {
	return &Item{Kind: ItemClock, Label: LabelTeleport}
}

func SafeColorItem(m arena.Material) *Item {
	return &Item{Kind: ItemBlock, Label: LabelSafeColor, Block: m}
}
