package infodb

import "log/slog"

// Static is an InfoDB backed by plain Go maps built once at
// construction time: build a flat table, log the count, serve lookups
// from memory.
type Static struct {
	items         map[int32]string
	prefixes      map[uint8]string
	npcsByID      map[int32]NpcMeta
	npcsByName    map[string]NpcMeta
	tileTypeCount uint16
}

// StaticConfig is the literal data used to build a Static InfoDB.
type StaticConfig struct {
	Items         map[int32]string
	Prefixes      map[uint8]string
	Npcs          []NpcMeta
	TileTypeCount uint16
}

// NewStatic builds a Static InfoDB from literal config, copying each
// table into its own map.
func NewStatic(cfg StaticConfig) *Static {
	s := &Static{
		items:         make(map[int32]string, len(cfg.Items)),
		prefixes:      make(map[uint8]string, len(cfg.Prefixes)),
		npcsByID:      make(map[int32]NpcMeta, len(cfg.Npcs)),
		npcsByName:    make(map[string]NpcMeta, len(cfg.Npcs)),
		tileTypeCount: cfg.TileTypeCount,
	}
	for id, name := range cfg.Items {
		s.items[id] = name
	}
	for id, name := range cfg.Prefixes {
		s.prefixes[id] = name
	}
	for _, npc := range cfg.Npcs {
		s.npcsByID[npc.ID] = npc
		s.npcsByName[npc.Title] = npc
	}

	slog.Info("loaded static infodb",
		"items", len(s.items),
		"prefixes", len(s.prefixes),
		"npcs", len(s.npcsByID),
		"tile_types", s.tileTypeCount,
	)

	return s
}

func (s *Static) ItemName(id int32) string {
	return s.items[id]
}

func (s *Static) PrefixName(id uint8) string {
	return s.prefixes[id]
}

func (s *Static) NpcByID(id int32) (NpcMeta, bool) {
	m, ok := s.npcsByID[id]
	return m, ok
}

func (s *Static) NpcByName(title string) (NpcMeta, bool) {
	m, ok := s.npcsByName[title]
	return m, ok
}

func (s *Static) TileTypeCount() uint16 {
	return s.tileTypeCount
}
