package worldfile

// HighestVersion and MinimumVersion bound the range of format versions
// this decoder accepts. They are ordinary configuration constants, not
// magic numbers baked into control flow — see the version-gated
// section/field thresholds below for the actual format-evolution
// points.
const (
	HighestVersion int32 = 279
	MinimumVersion int32 = 28
)

// Version thresholds at which individual behaviors change. Named here
// so every gate in the decoder reads as a sentence, not a bare number.
const (
	versionMiscFlag2          int32 = 50
	versionOneByteTileID      int32 = 77
	versionLegacyPlayerMapMax int32 = 91
	versionRawDeflatePlayerV2 int32 = 93
	versionEntitiesSection    int32 = 116
	versionEntitiesNotDummies int32 = 122
	versionHomelessNPCs       int32 = 140
	versionRelogicMagic       int32 = 135
	versionPressurePlates     int32 = 170
	versionTownManager        int32 = 189
	versionNpcBySprite        int32 = 190
	versionBestiary           int32 = 210
	versionTownVariation      int32 = 213
	versionCreativePowers     int32 = 220
	versionShimmered          int32 = 268
)

const (
	relogicMagic      = "relogic"
	worldFileTypeByte = byte(2)
)

// sectionCount is the number of tabled section offsets a modern world
// file declares: the ten sections this decoder dispatches (header,
// tiles, chests, signs, npcs, entities, pressure plates, town manager,
// bestiary, creative powers) plus a trailing footer offset the file
// format reserves for end-of-data bounds checking and this decoder
// never seeks to.
const sectionCount = 11

const (
	sectionHeader = iota
	sectionTiles
	sectionChests
	sectionSigns
	sectionNPCs
	sectionEntities
	sectionPressurePlates
	sectionTownManager
	sectionBestiary
	sectionCreativePowers
)
