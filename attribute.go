package bleep

import "sync"

// NotificationHandler receives the payload of an inbound notification
// or indication frame.
type NotificationHandler func(data []byte)

// An Attribute is a single GATT attribute: the identity and I/O
// contract shared by characteristics and descriptors. Its value handle
// and UUID never change after construction. Constructing an attribute
// registers its value handle with the owning device so inbound frames
// can be routed back to it.
type Attribute struct {
	device      *Device
	valueHandle uint16
	uuid        UUID

	mu            sync.Mutex
	notifications []NotificationHandler
	indications   []NotificationHandler
}

func newAttribute(d *Device, handle uint16, u UUID) *Attribute {
	a := &Attribute{
		device:      d,
		valueHandle: handle,
		uuid:        u,
	}
	d.registerHandle(handle, a)
	return a
}

// ValueHandle returns the attribute's value handle.
func (a *Attribute) ValueHandle() uint16 {
	return a.valueHandle
}

// UUID returns the attribute's UUID.
func (a *Attribute) UUID() UUID {
	return a.uuid
}

// Shortest returns the canonical display form of the attribute's UUID.
func (a *Attribute) Shortest() string {
	return a.uuid.Shortest()
}

// Read reads the attribute value from the device. Blocking.
func (a *Attribute) Read() ([]byte, error) {
	return a.device.requester.ReadHandle(a.valueHandle)
}

// Write writes data to the attribute. withResponse selects
// write-with-response vs write-without-response at the transport
// layer. Blocking.
func (a *Attribute) Write(data []byte, withResponse bool) error {
	return a.device.requester.WriteHandle(a.valueHandle, data, withResponse)
}

// Notify registers f to be called for every inbound notification.
// Registration order is call order; registering the same function
// twice fires it twice.
func (a *Attribute) Notify(f NotificationHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notifications = append(a.notifications, f)
}

// Indicate registers f to be called for every inbound indication.
func (a *Attribute) Indicate(f NotificationHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.indications = append(a.indications, f)
}

func (a *Attribute) handleNotification(data []byte) {
	a.mu.Lock()
	handlers := append([]NotificationHandler(nil), a.notifications...)
	a.mu.Unlock()
	a.dispatch(handlers, data)
}

func (a *Attribute) handleIndication(data []byte) {
	a.mu.Lock()
	handlers := append([]NotificationHandler(nil), a.indications...)
	a.mu.Unlock()
	a.dispatch(handlers, data)
}

// dispatch fans data out to handlers in registration order. A handler
// that panics is reported through the device's callback error handler
// and does not stop the remaining handlers.
func (a *Attribute) dispatch(handlers []NotificationHandler, data []byte) {
	for _, f := range handlers {
		a.callHandler(f, data)
	}
}

func (a *Attribute) callHandler(f NotificationHandler, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			a.device.callbackFailure(a.valueHandle, r)
		}
	}()
	f(data)
}
