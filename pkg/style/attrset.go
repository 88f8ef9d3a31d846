package style

// Flag is the tri-state value of one attribute: no opinion, explicitly off,
// or explicitly on. Unset is the zero value so zero-initialized state has no
// opinion about anything.
type Flag uint8

// The numeric values are the 2-bit patterns used in attrSet: the high bit
// says whether the flag is set at all, the low bit carries on/off. The 0b01
// pattern is unused and reads back as Unset.
const (
	Unset Flag = 0b00
	Off   Flag = 0b10
	On    Flag = 0b11
)

func (f Flag) String() string {
	switch f {
	case Off:
		return "off"
	case On:
		return "on"
	default:
		return "unset"
	}
}

// attrSet packs the six attribute flags, two bits each. Each attribute was a
// separate Flag field once; packing keeps Style small enough to copy around
// freely.
type attrSet uint16

// Bit positions, from the LSBs up.
const (
	posBlink uint = iota
	posUnderline
	posDim
	posBold
	posSecure
	posReverse
)

func (s attrSet) get(pos uint) Flag {
	switch (s >> (pos * 2)) & 0b11 {
	case attrSet(Off):
		return Off
	case attrSet(On):
		return On
	default:
		return Unset
	}
}

func (s attrSet) with(pos uint, v Flag) attrSet {
	s &^= 0b11 << (pos * 2)
	return s | attrSet(v&0b11)<<(pos*2)
}

// merge takes o's flags wherever o has an opinion and keeps s's flags
// elsewhere. Done with bit operations over all six flags at once: the
// resulting set bit is the OR of both set bits, the resulting value bit is
// o's where o's set bit is high and s's otherwise.
func (s attrSet) merge(o attrSet) attrSet {
	const (
		setBits   = 0b1010101010101010
		valueBits = 0b0101010101010101
	)
	return ((s | o) & setBits) | (((o>>1)&o | ^(o>>1)&s) & valueBits)
}
