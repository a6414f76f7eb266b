package bleep

import (
	"sync"

	"github.com/pkg/errors"
)

// A Device is one connected BLE peripheral: it owns the requester, the
// handle registry used to route inbound notification and indication
// frames, and the characteristics constructed on it. The connection
// lifecycle itself (scanning, connect, MTU) lives in the transport
// layer.
type Device struct {
	addr          Addr
	requester     Requester
	logger        Logger
	onCallbackErr func(error)

	mu       sync.RWMutex
	handles  map[uint16]*Attribute
	chars    *UUIDAccessor[*Characteristic]
	charList []*Characteristic
}

// NewDevice wraps a transport requester for the peripheral at addr.
func NewDevice(addr Addr, r Requester, opts ...Option) *Device {
	d := &Device{
		addr:      addr,
		requester: r,
		logger:    GetLogger().ChildLogger(map[string]interface{}{"device": addr.String()}),
		handles:   make(map[uint16]*Attribute),
		chars:     newUUIDAccessor[*Characteristic](),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.onCallbackErr == nil {
		d.onCallbackErr = func(err error) { d.logger.Error(err) }
	}
	return d
}

// Addr returns the peripheral's address.
func (d *Device) Addr() Addr {
	return d.addr
}

// NewCharacteristic constructs a characteristic on d from the handles
// reported by characteristic discovery and runs its descriptor
// discovery.
func (d *Device) NewCharacteristic(handle, valueHandle, endHandle uint16, u UUID, p Property) (*Characteristic, error) {
	c, err := NewCharacteristic(d, handle, valueHandle, endHandle, u, p)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.chars.add(u, c)
	d.charList = append(d.charList, c)
	d.mu.Unlock()
	return c, nil
}

// Characteristic returns the unique characteristic with the given
// UUID. It fails with ErrNotFound or ErrAmbiguous like
// UUIDAccessor.Unique.
func (d *Device) Characteristic(u UUID) (*Characteristic, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.chars.Unique(u)
}

// Characteristics returns every characteristic with the given UUID, in
// construction order.
func (d *Device) Characteristics(u UUID) []*Characteristic {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.chars.All(u)
}

// CharacteristicList returns every constructed characteristic in
// construction order.
func (d *Device) CharacteristicList() []*Characteristic {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.charList
}

func (d *Device) registerHandle(handle uint16, a *Attribute) {
	d.mu.Lock()
	d.handles[handle] = a
	d.mu.Unlock()
}

func (d *Device) lookupHandle(handle uint16) *Attribute {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.handles[handle]
}

// HandleNotification routes an inbound notification frame to the
// attribute registered at handle. Frames for unregistered handles are
// logged and dropped. The transport layer calls this from its own
// goroutine.
func (d *Device) HandleNotification(handle uint16, data []byte) {
	a := d.lookupHandle(handle)
	if a == nil {
		d.logger.Warnf("notification for unregistered handle 0x%04x", handle)
		return
	}
	a.handleNotification(data)
}

// HandleIndication routes an inbound indication frame to the attribute
// registered at handle. Frames for unregistered handles are logged and
// dropped.
func (d *Device) HandleIndication(handle uint16, data []byte) {
	a := d.lookupHandle(handle)
	if a == nil {
		d.logger.Warnf("indication for unregistered handle 0x%04x", handle)
		return
	}
	a.handleIndication(data)
}

// callbackFailure is the side channel for handler panics during
// dispatch. Failures never propagate back to the transport layer.
func (d *Device) callbackFailure(handle uint16, v interface{}) {
	d.onCallbackErr(errors.Errorf("callback failed on handle 0x%04x: %v", handle, v))
}

// Profile returns a snapshot of the constructed GATT tree, suitable
// for caching.
func (d *Device) Profile() Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var p Profile
	for _, c := range d.charList {
		cs := CharacteristicSnapshot{
			Handle:      c.handle,
			ValueHandle: c.valueHandle,
			EndHandle:   c.endHandle,
			UUID:        c.uuid.String(),
			Property:    c.property,
		}
		for _, desc := range c.descList {
			cs.Descriptors = append(cs.Descriptors, DescriptorSnapshot{
				Handle: desc.valueHandle,
				UUID:   desc.uuid.String(),
			})
		}
		p.Characteristics = append(p.Characteristics, cs)
	}
	return p
}

// RestoreProfile rebuilds the characteristic tree from a cached
// snapshot instead of running discovery. Attributes register their
// handles exactly as they do on the discovery path.
func (d *Device) RestoreProfile(p Profile) error {
	for _, cs := range p.Characteristics {
		u, err := Parse(cs.UUID)
		if err != nil {
			return errors.Wrapf(err, "restore characteristic %q", cs.UUID)
		}
		c := &Characteristic{
			Attribute:   newAttribute(d, cs.ValueHandle, u),
			handle:      cs.Handle,
			endHandle:   cs.EndHandle,
			property:    cs.Property,
			descriptors: newUUIDAccessor[*Descriptor](),
		}
		for _, ds := range cs.Descriptors {
			du, err := Parse(ds.UUID)
			if err != nil {
				return errors.Wrapf(err, "restore descriptor %q", ds.UUID)
			}
			c.addDescriptor(NewDescriptor(d, ds.Handle, du))
		}
		d.mu.Lock()
		d.chars.add(u, c)
		d.charList = append(d.charList, c)
		d.mu.Unlock()
	}
	return nil
}
