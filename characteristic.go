package bleep

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ClientCharacteristicConfigUUID is the CCCD descriptor UUID (0x2902).
var ClientCharacteristicConfigUUID = UUID16(0x2902)

const (
	cccNotify   = 0x0001
	cccIndicate = 0x0002
)

// A Characteristic is a GATT characteristic: an attribute that also
// carries its declaration handle, the last handle of its range, a
// property bitmask and the descriptors discovered inside that range.
// All fields are fixed once construction returns.
type Characteristic struct {
	*Attribute

	handle    uint16
	endHandle uint16
	property  Property

	descriptors *UUIDAccessor[*Descriptor]
	descList    []*Descriptor

	ccc uint16
}

// NewCharacteristic builds a Characteristic and synchronously discovers
// the descriptors in (valueHandle, endHandle]. An empty range skips
// the discovery request entirely. ErrAttrNotFound from the requester
// marks the end of the range and keeps whatever pairs were already
// returned; any other transport error aborts construction.
func NewCharacteristic(d *Device, handle, valueHandle, endHandle uint16, u UUID, p Property) (*Characteristic, error) {
	c := &Characteristic{
		Attribute:   newAttribute(d, valueHandle, u),
		handle:      handle,
		endHandle:   endHandle,
		property:    p,
		descriptors: newUUIDAccessor[*Descriptor](),
	}
	if err := c.discoverDescriptors(); err != nil {
		return nil, errors.Wrapf(err, "discover descriptors for %s", c.Shortest())
	}
	return c, nil
}

func (c *Characteristic) discoverDescriptors() error {
	if c.valueHandle >= c.endHandle {
		return nil
	}

	infos, err := c.device.requester.DiscoverDescriptors(c.valueHandle+1, c.endHandle)
	if err != nil && errors.Cause(err) != ErrAttrNotFound {
		return err
	}

	for _, info := range infos {
		c.addDescriptor(NewDescriptor(c.device, info.Handle, info.UUID))
	}
	return nil
}

func (c *Characteristic) addDescriptor(d *Descriptor) {
	c.descriptors.add(d.uuid, d)
	c.descList = append(c.descList, d)
}

// Handle returns the characteristic declaration handle.
func (c *Characteristic) Handle() uint16 {
	return c.handle
}

// EndHandle returns the last handle in the characteristic's range.
func (c *Characteristic) EndHandle() uint16 {
	return c.endHandle
}

// Property returns the characteristic property bitmask.
func (c *Characteristic) Property() Property {
	return c.property
}

// Descriptor returns the unique descriptor with the given UUID. It
// fails with ErrNotFound or ErrAmbiguous like UUIDAccessor.Unique.
func (c *Characteristic) Descriptor(u UUID) (*Descriptor, error) {
	return c.descriptors.Unique(u)
}

// Descriptors returns every descriptor with the given UUID, in
// discovery order.
func (c *Characteristic) Descriptors(u UUID) []*Descriptor {
	return c.descriptors.All(u)
}

// DescriptorList returns every discovered descriptor in discovery
// order.
func (c *Characteristic) DescriptorList() []*Descriptor {
	return c.descList
}

// Subscribe registers f for notifications, or for indications when ind
// is set, and enables them by writing the characteristic's CCCD.
func (c *Characteristic) Subscribe(ind bool, f NotificationHandler) error {
	cccd, err := c.descriptors.Unique(ClientCharacteristicConfigUUID)
	if err != nil {
		return errors.Wrap(err, "subscribe")
	}
	if ind {
		c.Indicate(f)
		c.ccc |= cccIndicate
	} else {
		c.Notify(f)
		c.ccc |= cccNotify
	}
	return c.writeCCC(cccd)
}

// Unsubscribe clears the CCCD notify or indicate bit so the peripheral
// stops sending. Handlers registered earlier stay in place, they just
// go quiet.
func (c *Characteristic) Unsubscribe(ind bool) error {
	cccd, err := c.descriptors.Unique(ClientCharacteristicConfigUUID)
	if err != nil {
		return errors.Wrap(err, "unsubscribe")
	}
	if ind {
		c.ccc &^= cccIndicate
	} else {
		c.ccc &^= cccNotify
	}
	return c.writeCCC(cccd)
}

func (c *Characteristic) writeCCC(cccd *Descriptor) error {
	v := make([]byte, 2)
	binary.LittleEndian.PutUint16(v, c.ccc)
	return cccd.Write(v, true)
}

// String returns the well-known characteristic name when the UUID is
// in the assigned-numbers table, the canonical UUID form otherwise.
func (c *Characteristic) String() string {
	if name := CharacteristicName(c.uuid); name != "" {
		return name
	}
	return c.Shortest()
}
