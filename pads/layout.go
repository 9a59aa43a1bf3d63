package pads

// Layout maps a note to the pad that plays it
type Layout func(note uint8) uint8

// DefaultLayout is the identity. In programmer mode the Launchpad Pro reports
// the pressed pad id in the note byte, so note n lives on pad n.
func DefaultLayout(note uint8) uint8 {
	return note
}

// TableLayout builds a layout from a literal note->pad table (e.g. copied from
// the device manual). Notes missing from the table fall back to DefaultLayout.
func TableLayout(table map[uint8]uint8) Layout {
	return func(note uint8) uint8 {
		if pad, ok := table[note]; ok {
			return pad
		}
		return DefaultLayout(note)
	}
}
