package ddc

// Output is one active logical display output (an HMONITOR): the OS's
// view of a rectangle of desktop, behind which one or more physical
// monitors may sit. Outputs are enumerated fresh on every call and must
// not be cached — attached hardware can change between calls.
type Output struct {
	handle outputHandle
	host   host
}

// Rect is a display rectangle in virtual-screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// OutputInfo describes a logical display output.
type OutputInfo struct {
	// Device is the GDI device name, e.g. `\\.\DISPLAY1`.
	Device  string
	Bounds  Rect
	Primary bool
}

// Outputs enumerates the active logical display outputs.
func Outputs() ([]Output, error) {
	return outputs(defaultHost())
}

func outputs(h host) ([]Output, error) {
	handles, err := h.Outputs()
	if err != nil {
		return nil, wrapKind("enumerate outputs", "", ErrEnumeration, err)
	}
	outs := make([]Output, len(handles))
	for i, oh := range handles {
		outs[i] = Output{handle: oh, host: h}
	}
	return outs, nil
}

// Info retrieves the output's device name, bounds and primary flag.
func (o Output) Info() (OutputInfo, error) {
	info, err := o.host.OutputInfo(o.handle)
	if err != nil {
		return OutputInfo{}, classify("get output info", err)
	}
	return info, nil
}

// Monitors retrieves the physical monitors multiplexed behind this
// output. An output whose count is zero (power or capability services
// unavailable) yields an empty slice, not an error. Each returned
// Monitor owns its handle; close every one of them.
func (o Output) Monitors() ([]*Monitor, error) {
	device := ""
	if info, err := o.Info(); err == nil {
		device = info.Device
	}

	n, err := o.host.CountPhysicalMonitors(o.handle)
	if err != nil {
		return nil, wrapKind("get monitor count", device, ErrEnumeration, err)
	}
	if n == 0 {
		return nil, nil
	}

	records, err := o.host.PhysicalMonitors(o.handle, n)
	if err != nil {
		return nil, wrapKind("get physical monitors", device, ErrEnumeration, err)
	}

	// Wrap every raw handle before anything else can fail so a partial
	// failure never leaks an OS resource.
	monitors := make([]*Monitor, len(records))
	for i, rec := range records {
		monitors[i] = newMonitor(o.host, rec.handle, rec.description, device)
	}
	return monitors, nil
}
