// Package worldmodel holds the plain data records produced by a world
// decode: chests, signs, NPCs, entities, and the World aggregate that
// owns the tile grid.
package worldmodel

import (
	"github.com/udisondev/worldfile/internal/header"
	"github.com/udisondev/worldfile/internal/tile"
)

// Item is one resolved chest slot. Slots with stack == 0 are elided
// entirely — they never become an Item.
type Item struct {
	Stack  int16
	Name   string
	Prefix string
}

// Chest is a world chest with its resolved, non-empty item slots.
type Chest struct {
	X, Y  int32
	Name  string
	Items []Item
}

// Sign is a world sign.
type Sign struct {
	X, Y int32
	Text string
}

// Npc is a homed or homeless town NPC.
type Npc struct {
	Sprite        int32
	Head          int32
	Title         string
	Name          string
	X, Y          float32
	Homeless      bool
	HomeX, HomeY  int32
	TownVariation *int32
}

// EntityKind tags the concrete variant stored in an Entity.
type EntityKind int

const (
	EntityTrainingDummy EntityKind = iota
	EntityItemFrame
	EntityLogicSensor
)

// TrainingDummy is a placeable training dummy entity.
type TrainingDummy struct {
	ID    int32
	X, Y  int16
	NpcID int16
}

// ItemFrame is a placeable item-frame entity.
type ItemFrame struct {
	ID      int32
	X, Y    int16
	ItemID  int16
	Prefix  uint8
	Stack   int16
}

// LogicSensor is a placeable logic-sensor entity.
type LogicSensor struct {
	ID   int32
	X, Y int16
	Type uint8
	On   bool
}

// Entity is a tagged-variant wrapper over the three placeable entity
// kinds this format stores in its "entities" section.
type Entity struct {
	Kind          EntityKind
	TrainingDummy TrainingDummy
	ItemFrame     ItemFrame
	LogicSensor   LogicSensor
}

// World is the root aggregate produced by a successful decode.
type World struct {
	TilesWide, TilesHigh int32
	Tiles                []tile.Tile
	Header               header.Bag

	Chests   []Chest
	Signs    []Sign
	Npcs     []Npc
	Entities []Entity

	Kills        map[string]int32
	SeenSpecies  []string
	ChatSpecies  []string
	Shimmered    map[int32]struct{}
}

// TileAt returns the tile at grid coordinate (x, y). Callers must keep
// x, y within [0, TilesWide) x [0, TilesHigh).
func (w *World) TileAt(x, y int32) tile.Tile {
	return w.Tiles[int64(y)*int64(w.TilesWide)+int64(x)]
}

// SetTileAt writes the tile at grid coordinate (x, y).
func (w *World) SetTileAt(x, y int32, t tile.Tile) {
	w.Tiles[int64(y)*int64(w.TilesWide)+int64(x)] = t
}
