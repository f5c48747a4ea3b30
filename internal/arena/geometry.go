package arena

import "math"

const (
	Size      = 64
	StartX    = -Size / 2
	StartZ    = -Size / 2
	FloorY    = 120
	DecorY    = FloorY + 1
	VoidLevel = 80
	ObserverY = 127
)

// SpawnOffsets are the eight slots around the arena center used for floor and observer spawns.
var SpawnOffsets = [8][2]int{
	{-2, -2}, {-2, 0}, {-2, 2},
	{0, -2}, {0, 2},
	{2, -2}, {2, 0}, {2, 2},
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector of v, the zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) DistanceSquared(o Vec3) float64 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Block returns the integer cell containing v.
func (v Vec3) Block() Block {
	return Block{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y)), Z: int(math.Floor(v.Z))}
}

type Block struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Center returns the point in the middle of the top face offset by dy.
func (b Block) Center(dy float64) Vec3 {
	return Vec3{X: float64(b.X) + 0.5, Y: float64(b.Y) + dy, Z: float64(b.Z) + 0.5}
}

// Region is a square horizontal slice of the world at altitude Y.
type Region struct {
	StartX int
	StartZ int
	Size   int
	Y      int
}

// Floor is the playable dance floor.
var Floor = Region{StartX: StartX, StartZ: StartZ, Size: Size, Y: FloorY}

func (r Region) Contains(x, z int) bool {
	return x >= r.StartX && x < r.StartX+r.Size && z >= r.StartZ && z < r.StartZ+r.Size
}

// Each visits every cell of the region in x-major order.
func (r Region) Each(fn func(x, z int)) {
	for x := r.StartX; x < r.StartX+r.Size; x++ {
		for z := r.StartZ; z < r.StartZ+r.Size; z++ {
			fn(x, z)
		}
	}
}

func (r Region) Center() (float64, float64) {
	half := float64(r.Size) / 2
	return float64(r.StartX) + half, float64(r.StartZ) + half
}

// SpawnPoint returns the position of spawn slot i at altitude y.
func SpawnPoint(i int, y float64) Vec3 {
	o := SpawnOffsets[i%len(SpawnOffsets)]
	return Vec3{X: 0.5 + float64(o[0]), Y: y, Z: 0.5 + float64(o[1])}
}
