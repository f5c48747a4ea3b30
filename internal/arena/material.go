package arena

import "strings"

type Material uint8

const (
	Air Material = iota
	WhiteTerracotta
	OrangeTerracotta
	MagentaTerracotta
	LightBlueTerracotta
	YellowTerracotta
	LimeTerracotta
	PinkTerracotta
	GrayTerracotta
	LightGrayTerracotta
	CyanTerracotta
	PurpleTerracotta
	BlueTerracotta
	BrownTerracotta
	GreenTerracotta
	RedTerracotta
	BlackTerracotta
	Beacon
	Snow
	Glass
)

// Terracottas lists the floor colors in their canonical order.
var Terracottas = []Material{
	WhiteTerracotta,
	OrangeTerracotta,
	MagentaTerracotta,
	LightBlueTerracotta,
	YellowTerracotta,
	LimeTerracotta,
	PinkTerracotta,
	GrayTerracotta,
	LightGrayTerracotta,
	CyanTerracotta,
	PurpleTerracotta,
	BlueTerracotta,
	BrownTerracotta,
	GreenTerracotta,
	RedTerracotta,
	BlackTerracotta,
}

var materialNames = map[Material]string{
	Air:                 "AIR",
	WhiteTerracotta:     "WHITE_TERRACOTTA",
	OrangeTerracotta:    "ORANGE_TERRACOTTA",
	MagentaTerracotta:   "MAGENTA_TERRACOTTA",
	LightBlueTerracotta: "LIGHT_BLUE_TERRACOTTA",
	YellowTerracotta:    "YELLOW_TERRACOTTA",
	LimeTerracotta:      "LIME_TERRACOTTA",
	PinkTerracotta:      "PINK_TERRACOTTA",
	GrayTerracotta:      "GRAY_TERRACOTTA",
	LightGrayTerracotta: "LIGHT_GRAY_TERRACOTTA",
	CyanTerracotta:      "CYAN_TERRACOTTA",
	PurpleTerracotta:    "PURPLE_TERRACOTTA",
	BlueTerracotta:      "BLUE_TERRACOTTA",
	BrownTerracotta:     "BROWN_TERRACOTTA",
	GreenTerracotta:     "GREEN_TERRACOTTA",
	RedTerracotta:       "RED_TERRACOTTA",
	BlackTerracotta:     "BLACK_TERRACOTTA",
	Beacon:              "BEACON",
	Snow:                "SNOW_BLOCK",
	Glass:               "GLASS",
}

var materialsByName = func() map[string]Material {
	m := make(map[string]Material, len(materialNames))
	for k, v := range materialNames {
		m[v] = k
	}
	return m
}()

func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// Terracotta reports whether m is one of the sixteen floor colors.
func (m Material) Terracotta() bool {
	return m >= WhiteTerracotta && m <= BlackTerracotta
}

// ParseMaterial resolves names like "red_terracotta" or "minecraft:RED_TERRACOTTA".
func ParseMaterial(name string) (Material, bool) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	m, ok := materialsByName[name]
	return m, ok
}

// MaterialSet is an insertion-ordered set of materials.
type MaterialSet struct {
	items []Material
	seen  map[Material]struct{}
}

func NewMaterialSet(items ...Material) *MaterialSet {
	s := &MaterialSet{seen: make(map[Material]struct{}, len(items))}
	for _, m := range items {
		s.Add(m)
	}
	return s
}

func (s *MaterialSet) Add(m Material) {
	if s.seen == nil {
		s.seen = map[Material]struct{}{}
	}
	if _, ok := s.seen[m]; ok {
		return
	}
	s.seen[m] = struct{}{}
	s.items = append(s.items, m)
}

func (s *MaterialSet) Contains(m Material) bool {
	_, ok := s.seen[m]
	return ok
}

func (s *MaterialSet) Len() int {
	return len(s.items)
}

func (s *MaterialSet) At(i int) Material {
	return s.items[i]
}

func (s *MaterialSet) Slice() []Material {
	out := make([]Material, len(s.items))
	copy(out, s.items)
	return out
}
