package bleep

// A Profile is a serializable snapshot of a device's GATT tree. It
// carries handles and UUIDs only: no live callbacks, no device
// references. Snapshots are what the cache stores between connections.
type Profile struct {
	Characteristics []CharacteristicSnapshot `json:"characteristics"`
}

// CharacteristicSnapshot records one characteristic and its
// descriptors.
type CharacteristicSnapshot struct {
	Handle      uint16               `json:"handle"`
	ValueHandle uint16               `json:"value_handle"`
	EndHandle   uint16               `json:"end_handle"`
	UUID        string               `json:"uuid"`
	Property    Property             `json:"property"`
	Descriptors []DescriptorSnapshot `json:"descriptors,omitempty"`
}

// DescriptorSnapshot records one descriptor.
type DescriptorSnapshot struct {
	Handle uint16 `json:"handle"`
	UUID   string `json:"uuid"`
}
