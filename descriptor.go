package bleep

// A Descriptor is a leaf GATT attribute attached to a characteristic.
type Descriptor struct {
	*Attribute
}

// NewDescriptor creates a Descriptor and registers its handle with the
// device.
func NewDescriptor(d *Device, handle uint16, u UUID) *Descriptor {
	return &Descriptor{Attribute: newAttribute(d, handle, u)}
}

// String returns the well-known descriptor name when the UUID is in
// the assigned-numbers table, the canonical UUID form otherwise.
func (d *Descriptor) String() string {
	if name := DescriptorName(d.uuid); name != "" {
		return name
	}
	return d.Shortest()
}
