package bleep

// Property is the characteristic property bitmask. The bit layout
// matches the characteristic declaration on the wire.
type Property byte

// Characteristic property flags.
const (
	CharBroadcast   Property = 0x01 // may be broadcast
	CharRead        Property = 0x02 // may be read
	CharWriteNR     Property = 0x04 // may be written, without response
	CharWrite       Property = 0x08 // may be written, with response
	CharNotify      Property = 0x10 // supports notifications
	CharIndicate    Property = 0x20 // supports indications
	CharSignedWrite Property = 0x40 // supports signed writes
	CharExtended    Property = 0x80 // extended properties descriptor present
)

var propTags = []struct {
	bit Property
	tag string
}{
	{CharBroadcast, "B"},
	{CharRead, "R"},
	{CharWriteNR, "w"},
	{CharWrite, "W"},
	{CharNotify, "N"},
	{CharIndicate, "I"},
	{CharSignedWrite, "S"},
	{CharExtended, "E"},
}

// String returns a compact flag string, e.g. "RWN".
func (p Property) String() string {
	s := ""
	for _, t := range propTags {
		if p&t.bit != 0 {
			s += t.tag
		}
	}
	return s
}
