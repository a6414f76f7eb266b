package bleep

// GattCache persists discovered GATT profile snapshots between
// connections so discovery can be skipped on reconnect. The live
// attribute graph is still rebuilt per connection; only the snapshot
// is stored.
type GattCache interface {
	Store(Addr, Profile, bool) error
	Load(Addr) (Profile, error)
	Clear() error
}
