package bleep

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestEmptyRangeSkipsDiscovery(t *testing.T) {
	req := &recordingRequester{}
	dev := newTestDevice(req)

	c, err := NewCharacteristic(dev, 3, 4, 4, MustParse("2a19"), CharRead)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if len(req.discCalls) != 0 {
		t.Errorf("discovery called %d times for empty range", len(req.discCalls))
	}
	if len(c.DescriptorList()) != 0 {
		t.Errorf("descriptor list = %v, want empty", c.DescriptorList())
	}
}

func TestDescriptorDiscoveryBuckets(t *testing.T) {
	uuidA := MustParse("00002902-0000-1000-8000-00805f9b34fb")
	uuidB := UUID16(0x2901)
	req := &recordingRequester{
		descs: []DescriptorInfo{
			{Handle: 10, UUID: uuidA},
			{Handle: 11, UUID: uuidB},
			{Handle: 12, UUID: uuidA},
		},
	}
	dev := newTestDevice(req)

	c, err := NewCharacteristic(dev, 8, 9, 12, MustParse("2a37"), CharNotify)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}

	if want := [][2]uint16{{10, 12}}; !reflect.DeepEqual(req.discCalls, want) {
		t.Errorf("discovery calls = %v, want %v", req.discCalls, want)
	}

	all := c.Descriptors(UUID16(0x2902))
	if len(all) != 2 || all[0].ValueHandle() != 10 || all[1].ValueHandle() != 12 {
		t.Errorf("Descriptors(2902) handles = %v", handles(all))
	}

	if _, err := c.Descriptor(UUID16(0x2902)); errors.Cause(err) != ErrAmbiguous {
		t.Errorf("expected ErrAmbiguous, got %v", err)
	}

	b, err := c.Descriptor(uuidB)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if b.ValueHandle() != 11 {
		t.Errorf("Descriptor(2901) handle = %d, want 11", b.ValueHandle())
	}

	// the discovered descriptors are registered for inbound routing
	var got []byte
	all[0].Notify(func(data []byte) { got = data })
	dev.HandleNotification(10, []byte{0xaa})
	if len(got) != 1 || got[0] != 0xaa {
		t.Errorf("descriptor did not receive routed notification, got %x", got)
	}
}

func TestDiscoveryNotFoundKeepsPartialResult(t *testing.T) {
	req := &recordingRequester{
		descs:   []DescriptorInfo{{Handle: 6, UUID: UUID16(0x2902)}},
		descErr: ErrAttrNotFound,
	}
	dev := newTestDevice(req)

	c, err := NewCharacteristic(dev, 4, 5, 8, MustParse("2a37"), CharNotify)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if len(c.DescriptorList()) != 1 {
		t.Fatalf("descriptor count = %d, want 1", len(c.DescriptorList()))
	}
	if want := [][2]uint16{{6, 8}}; !reflect.DeepEqual(req.discCalls, want) {
		t.Errorf("discovery calls = %v, want %v", req.discCalls, want)
	}
}

func TestDiscoveryWrappedNotFound(t *testing.T) {
	req := &recordingRequester{
		descErr: errors.Wrap(ErrAttrNotFound, "find information"),
	}
	dev := newTestDevice(req)

	c, err := NewCharacteristic(dev, 4, 5, 8, MustParse("2a37"), CharNotify)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if len(c.DescriptorList()) != 0 {
		t.Errorf("descriptor list = %v, want empty", c.DescriptorList())
	}
}

func TestDiscoveryTransportErrorFatal(t *testing.T) {
	req := &recordingRequester{descErr: errors.New("link down")}
	dev := newTestDevice(req)

	if _, err := NewCharacteristic(dev, 4, 5, 8, MustParse("2a37"), CharNotify); err == nil {
		t.Fatal("expected construction to fail on transport error")
	}
}

func TestSubscribe(t *testing.T) {
	req := &recordingRequester{
		descs: []DescriptorInfo{{Handle: 6, UUID: UUID16(0x2902)}},
	}
	dev := newTestDevice(req)

	c, err := NewCharacteristic(dev, 3, 4, 6, MustParse("2a37"), CharNotify|CharIndicate)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}

	var got []byte
	if err := c.Subscribe(false, func(data []byte) { got = data }); err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if err := c.Subscribe(true, func(data []byte) {}); err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if err := c.Unsubscribe(false); err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}

	want := []writeCall{
		{6, []byte{0x01, 0x00}, true},
		{6, []byte{0x03, 0x00}, true},
		{6, []byte{0x02, 0x00}, true},
	}
	if !reflect.DeepEqual(req.writeCalls, want) {
		t.Errorf("cccd writes = %v, want %v", req.writeCalls, want)
	}

	dev.HandleNotification(4, []byte{0x06, 0x48})
	if len(got) != 2 || got[0] != 0x06 {
		t.Errorf("subscribed handler got %x", got)
	}
}

func TestSubscribeWithoutCCCD(t *testing.T) {
	dev := newTestDevice(&recordingRequester{})

	c, err := NewCharacteristic(dev, 3, 4, 4, MustParse("2a37"), CharNotify)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if err := c.Subscribe(false, func(data []byte) {}); errors.Cause(err) != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCharacteristicString(t *testing.T) {
	dev := newTestDevice(&recordingRequester{})

	c, err := NewCharacteristic(dev, 3, 4, 4, MustParse("2a37"), CharNotify)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if got := c.String(); got != "Heart Rate Measurement" {
		t.Errorf("String() = %q", got)
	}

	u, err := NewCharacteristic(dev, 5, 6, 6, MustParse("34da3ad1-7110-41a1-b1ef-4430f509cde7"), CharRead)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if got := u.String(); got != "34da3ad1711041a1b1ef4430f509cde7" {
		t.Errorf("String() = %q", got)
	}
}

func handles(ds []*Descriptor) []uint16 {
	var hh []uint16
	for _, d := range ds {
		hh = append(hh, d.ValueHandle())
	}
	return hh
}
