package worldfile

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/worldfile/internal/binutil"
	"github.com/udisondev/worldfile/internal/header"
	"github.com/udisondev/worldfile/internal/infodb"
	"github.com/udisondev/worldfile/internal/playermap"
	"github.com/udisondev/worldfile/internal/tile"
	"github.com/udisondev/worldfile/internal/worlderr"
	"github.com/udisondev/worldfile/internal/worldmodel"
)

// statusBuffer bounds how many undelivered status events queue up
// before new ones are dropped — status is advisory (§5), so a full
// buffer means "drop", never "block".
const statusBuffer = 16

// Decoder drives a single world-file load. It holds no per-load state
// itself; all mutable state for one Load call lives in the loadState
// it constructs.
type Decoder struct {
	infoDB infodb.InfoDB
	schema map[int32]header.Schema
}

// NewDecoder constructs a Decoder against the given InfoDB and header
// schema table. Both are required collaborators (spec.md §6); a nil
// schema table is replaced with header.DefaultSchema().
func NewDecoder(db infodb.InfoDB, schema map[int32]header.Schema) *Decoder {
	if schema == nil {
		schema = header.DefaultSchema()
	}
	return &Decoder{infoDB: db, schema: schema}
}

// Load decodes the world file at path, optionally overlaying a
// companion player "seen" map derived from playerPath — the player's
// own save file (e.g. "Steve.plr"), not its directory; pass "" to skip
// the overlay — and returns a channel of Events. The decode runs
// on a single background worker coordinated via errgroup.WithContext,
// which supplies the cancellation context. Exactly one terminal event
// (EventLoaded or EventError) is sent before the channel is closed.
func (d *Decoder) Load(ctx context.Context, path string, playerPath string) <-chan Event {
	events := make(chan Event, statusBuffer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)

		st := &loadState{
			decoder:    d,
			ctx:        gctx,
			events:     events,
		}

		world, err := st.run(path, playerPath)
		if err != nil {
			events <- errorEvent(err)
			return err
		}
		events <- loadedEvent(world)
		return nil
	})

	// The caller observes results exclusively through the events
	// channel; g.Wait() only exists to keep the errgroup idiom intact
	// (its error is already delivered as an EventError) and to avoid a
	// goroutine leak warning from static analysis of unchecked errgroups.
	go func() { _ = g.Wait() }()

	return events
}

// loadState carries the mutable state of one Load call: the section
// offset table, the extra-data bitmap, the in-progress world, and the
// handle currently being read.
type loadState struct {
	decoder *Decoder
	ctx     context.Context
	events  chan Event

	version   int32
	sections  []int64
	extraData []bool

	world *worldmodel.World
}

func (st *loadState) status(msg string) {
	select {
	case st.events <- statusEvent(msg):
	default:
	}
}

func (st *loadState) cancelled() error {
	if err := st.ctx.Err(); err != nil {
		return fmt.Errorf("load cancelled: %w", err)
	}
	return nil
}

func (st *loadState) run(path, playerPath string) (*worldmodel.World, error) {
	h, err := binutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := st.readPrologue(h); err != nil {
		return nil, err
	}

	st.world = &worldmodel.World{
		Kills:     make(map[string]int32),
		Shimmered: make(map[int32]struct{}),
	}

	if err := st.dispatchSections(h); err != nil {
		return nil, err
	}

	if playerPath != "" {
		st.status("Loading player map...")
		if err := playermap.Overlay(playerPath, st.world); err != nil {
			return nil, err
		}
	}

	return st.world, nil
}

// readPrologue implements spec.md §4.4.1: version check, relogic magic
// and file-type byte (version >= 135), section offset table, and the
// per-tile-type extra-data bitmap.
func (st *loadState) readPrologue(h *binutil.Handle) error {
	version, err := h.R32()
	if err != nil {
		return err
	}
	if version > HighestVersion {
		return &worlderr.UnsupportedVersionError{Found: version, Highest: HighestVersion}
	}
	if version < MinimumVersion {
		return &worlderr.VersionTooOldError{Found: version, Minimum: MinimumVersion}
	}
	st.version = version

	if version >= versionRelogicMagic {
		magic, err := h.Read(7)
		if err != nil {
			return err
		}
		if magic != relogicMagic {
			return &worlderr.NotARelogicMapError{Got: magic}
		}
		fileType, err := h.R8()
		if err != nil {
			return err
		}
		if fileType != worldFileTypeByte {
			return &worlderr.NotAMapFileError{Got: fileType}
		}
		h.Skip(4 + 8) // revision + favorites bits
	}

	numSections, err := h.R16()
	if err != nil {
		return err
	}
	sections := make([]int64, numSections)
	for i := range sections {
		off, err := h.R32()
		if err != nil {
			return err
		}
		sections[i] = int64(off)
	}
	st.sections = sections

	numTileTypes, err := h.R16()
	if err != nil {
		return err
	}
	extra, err := h.ReadBitmap(int(numTileTypes))
	if err != nil {
		return err
	}
	st.extraData = extra

	if want := st.decoder.infoDB.TileTypeCount(); want != 0 && int16(want) != numTileTypes {
		st.status(fmt.Sprintf("tile type count mismatch: file declares %d, infodb knows %d", numTileTypes, want))
	}

	return nil
}

func (st *loadState) seekSection(h *binutil.Handle, idx int) {
	if idx < len(st.sections) {
		h.Seek(st.sections[idx])
	}
}

// dispatchSections implements spec.md §4.4.2: seek to each tabled
// offset and invoke the matching section decoder, version-gating the
// sections that were added after v0.
func (st *loadState) dispatchSections(h *binutil.Handle) error {
	if err := st.cancelled(); err != nil {
		return err
	}

	st.seekSection(h, sectionHeader)
	st.status("Loading header...")
	bag, err := header.Decode(h, st.version, st.decoder.schema)
	if err != nil {
		return err
	}
	st.world.Header = bag

	tilesWide, err := bag.GetI32("tilesWide")
	if err != nil {
		return err
	}
	tilesHigh, err := bag.GetI32("tilesHigh")
	if err != nil {
		return err
	}
	st.world.TilesWide = tilesWide
	st.world.TilesHigh = tilesHigh
	st.world.Tiles = make([]tile.Tile, int64(tilesWide)*int64(tilesHigh))

	st.seekSection(h, sectionTiles)
	if err := st.decodeTiles(h); err != nil {
		return err
	}

	st.seekSection(h, sectionChests)
	st.status("Loading chests...")
	if err := st.decodeChests(h); err != nil {
		return err
	}

	st.seekSection(h, sectionSigns)
	st.status("Loading signs...")
	if err := st.decodeSigns(h); err != nil {
		return err
	}

	st.seekSection(h, sectionNPCs)
	st.status("Loading NPCs...")
	if err := st.decodeNPCs(h); err != nil {
		return err
	}

	if st.version >= versionEntitiesSection {
		st.seekSection(h, sectionEntities)
		st.status("Loading entities...")
		if err := st.decodeEntities(h); err != nil {
			return err
		}
	}

	if st.version >= versionPressurePlates {
		if err := st.cancelled(); err != nil {
			return err
		}
		st.seekSection(h, sectionPressurePlates)
		if err := st.decodePressurePlates(h); err != nil {
			return err
		}
	}

	if st.version >= versionTownManager {
		st.seekSection(h, sectionTownManager)
		if err := st.decodeTownManager(h); err != nil {
			return err
		}
	}

	if st.version >= versionBestiary {
		st.status("Loading bestiary...")
		st.seekSection(h, sectionBestiary)
		if err := st.decodeBestiary(h); err != nil {
			return err
		}
	}

	if st.version >= versionCreativePowers {
		st.seekSection(h, sectionCreativePowers)
		// Present but ignored: spec.md §4.4.3 — nothing downstream
		// depends on the cursor position past this point.
	}

	return nil
}
