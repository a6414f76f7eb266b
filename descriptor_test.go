package bleep

import "testing"

func TestDescriptorString(t *testing.T) {
	dev := newTestDevice(&recordingRequester{})

	tests := []struct {
		uuid UUID
		want string
	}{
		{UUID16(0x2902), "Client Characteristic Configuration"},
		{MustParse("00002901-0000-1000-8000-00805f9b34fb"), "Characteristic User Description"},
		{UUID16(0x2999), "2999"},
		{MustParse("34da3ad1-7110-41a1-b1ef-4430f509cde7"), "34da3ad1711041a1b1ef4430f509cde7"},
	}

	for i, tt := range tests {
		d := NewDescriptor(dev, uint16(10+i), tt.uuid)
		if got := d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
