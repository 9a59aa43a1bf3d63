package pads

import (
	"fmt"
	"math"
)

// Supported note range (inclusive)
const (
	MinNote uint8 = 20
	MaxNote uint8 = 119
)

// Key colors, Launchpad palette indices
const (
	ColorRoot       uint8 = 29 // green: a C in any octave
	ColorInScale    uint8 = 1  // white: the rest of C major
	ColorOutOfScale uint8 = 0  // off
)

// Key is one playable note and the pad that plays it
type Key struct {
	Pad   uint8
	Color uint8
	Note  uint8
	Freq  float64
}

// Frequency converts a MIDI note to Hertz, A4 (note 69) = 440Hz
func Frequency(note uint8) float64 {
	return 440 * math.Pow(2, (float64(note)-69)/12)
}

// ColorFor picks the pad color for a note from its position in the octave
func ColorFor(note uint8) uint8 {
	switch note % 12 {
	case 0:
		return ColorRoot
	case 2, 4, 5, 7, 9, 11:
		return ColorInScale
	default:
		return ColorOutOfScale
	}
}

// NewKey builds the key for a note using the given layout
func NewKey(note uint8, layout Layout) Key {
	return Key{
		Pad:   layout(note),
		Color: ColorFor(note),
		Note:  note,
		Freq:  Frequency(note),
	}
}

// KeyTable holds every key in [MinNote, MaxNote], indexed by note and by pad.
// Built once; never mutated.
type KeyTable struct {
	byNote [int(MaxNote-MinNote) + 1]Key
	byPad  [128]int // index into byNote, -1 if unused
}

// NewKeyTable builds the table. The layout must be one-to-one over the note
// range and keep every pad below 128.
func NewKeyTable(layout Layout) (*KeyTable, error) {
	if layout == nil {
		layout = DefaultLayout
	}
	t := &KeyTable{}
	for i := range t.byPad {
		t.byPad[i] = -1
	}
	for n := int(MinNote); n <= int(MaxNote); n++ {
		k := NewKey(uint8(n), layout)
		if k.Pad > 127 {
			return nil, fmt.Errorf("note %d: pad %d out of range", n, k.Pad)
		}
		if prev := t.byPad[k.Pad]; prev >= 0 {
			return nil, fmt.Errorf("notes %d and %d both map to pad %d", t.byNote[prev].Note, n, k.Pad)
		}
		idx := n - int(MinNote)
		t.byNote[idx] = k
		t.byPad[k.Pad] = idx
	}
	return t, nil
}

// MustKeyTable is NewKeyTable for layouts known to be valid
func MustKeyTable(layout Layout) *KeyTable {
	t, err := NewKeyTable(layout)
	if err != nil {
		panic(fmt.Sprintf("key table: %v", err))
	}
	return t
}

// ByPad returns the key played by pad
func (t *KeyTable) ByPad(pad uint8) (Key, bool) {
	if int(pad) >= len(t.byPad) {
		return Key{}, false
	}
	idx := t.byPad[pad]
	if idx < 0 {
		return Key{}, false
	}
	return t.byNote[idx], true
}

// ByNote returns the key for a note in the supported range
func (t *KeyTable) ByNote(note uint8) (Key, bool) {
	if note < MinNote || note > MaxNote {
		return Key{}, false
	}
	return t.byNote[note-MinNote], true
}

// Keys returns every key in ascending note order
func (t *KeyTable) Keys() []Key {
	keys := make([]Key, len(t.byNote))
	copy(keys, t.byNote[:])
	return keys
}
