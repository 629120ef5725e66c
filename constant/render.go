package constant

// Palette, 0xRRGGBB
const (
	ColorBackground = 0x0b1020
	ColorBorder     = 0x2b3350
	ColorText       = 0xffffff
	ColorPlayer     = 0x4cc9f0
	ColorOrb        = 0xfed766
	ColorBomb       = 0xff006e
	ColorHitTint    = 0xff5555
)

// Glyphs
const (
	GlyphPlayer = '█'
	GlyphOrb    = '●'
	GlyphBomb   = '✹'
)

// Layout
const (
	// HUDRows is the number of terminal rows above the arena border (score, lives)
	HUDRows = 2

	// MinArenaCols and MinArenaRows are the smallest drawable arena interior
	MinArenaCols = 10
	MinArenaRows = 5
)
