package bleep

import "strings"

// Addr identifies a peripheral. It's a MAC address on Linux or a
// device UUID on OS X.
type Addr interface {
	String() string
}

// NewAddr creates an Addr from its string form.
func NewAddr(s string) Addr {
	return addr(strings.ToLower(s))
}

type addr string

func (a addr) String() string {
	return string(a)
}
