package bleep

import "github.com/pkg/errors"

// ErrAttrNotFound is reported by a Requester when the peripheral
// answers a discovery request with an attribute-not-found error.
// During descriptor discovery it marks the end of the discoverable
// range and is not fatal.
var ErrAttrNotFound = errors.New("attribute not found")

// DescriptorInfo is one handle/UUID pair returned by descriptor
// discovery.
type DescriptorInfo struct {
	Handle uint16
	UUID   UUID
}

// A Requester performs the blocking GATT operations against the remote
// peripheral. Implementations belong to the transport layer; this
// package only consumes them. Calls either complete or fail, there is
// no partial state, and the Requester is responsible for serializing
// operations on the link.
type Requester interface {
	// ReadHandle reads the value of the attribute at handle.
	ReadHandle(handle uint16) ([]byte, error)

	// WriteHandle writes data to the attribute at handle. withResponse
	// selects write-with-response vs write-without-response semantics.
	WriteHandle(handle uint16, data []byte, withResponse bool) error

	// DiscoverDescriptors returns the handle/UUID pairs in the
	// inclusive range [start, end], in handle order. ErrAttrNotFound,
	// possibly alongside a partial result, signals end of range.
	DiscoverDescriptors(start, end uint16) ([]DescriptorInfo, error)
}
