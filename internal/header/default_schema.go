package header

// DefaultSchema returns a schema table covering the header fields this
// repository's decoders actually consume (tilesWide, tilesHigh,
// groundLevel, worldID, and — from version 140 onward, when the format
// gained a stable world identity — guid). It is intentionally not an
// exhaustive rendition of every field a real save file carries; building
// the full field catalogue for every historical version is the
// "TileInfo/ItemInfo/NpcInfo definitions registry"-style subsystem
// spec.md places out of scope. Two demonstration fields gated on
// versions far beyond any format constant this repository knows about
// show that new fields are added to the table, not to the decoder's
// control flow, without disturbing any of the seed test byte layouts.
func DefaultSchema() map[int32]Schema {
	base := Schema{
		{Name: "tilesWide", Kind: FieldI32},
		{Name: "tilesHigh", Kind: FieldI32},
		{Name: "groundLevel", Kind: FieldI32},
		{Name: "worldID", Kind: FieldI32},
	}

	withGUID := append(append(Schema{}, base...), FieldDesc{
		Name: "guid",
		Kind: FieldGUID16,
	})

	withFuture := append(append(Schema{}, withGUID...),
		FieldDesc{
			Name:  "torchGodEnabled",
			Kind:  FieldBool,
			Guard: func(version int32) bool { return version >= 300 },
		},
		FieldDesc{
			Name:  "biomeSeed",
			Kind:  FieldI64,
			Guard: func(version int32) bool { return version >= 400 },
		},
	)

	return map[int32]Schema{
		0:   base,
		140: withGUID,
		250: withFuture,
	}
}
