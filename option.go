package bleep

// An Option configures a Device at construction time.
type Option func(*Device)

// WithLogger overrides the device's logger.
func WithLogger(l Logger) Option {
	return func(d *Device) {
		d.logger = l
	}
}

// WithCallbackErrorHandler sets the side channel that receives
// failures raised by notification/indication handlers during
// dispatch. The default logs them through the device's logger.
func WithCallbackErrorHandler(f func(error)) Option {
	return func(d *Device) {
		d.onCallbackErr = f
	}
}
