package ddc

// Enumerate discovers every physical monitor behind every active display
// output. Discovery is report-and-continue: a host failure on one output
// is recorded and enumeration moves on, so a flaky secondary display
// cannot hide the others. Callers decide whether a partial result is
// acceptable by inspecting errs.
//
// Every returned Monitor owns an OS handle; close each one when done.
func Enumerate() (monitors []*Monitor, errs []error) {
	return enumerate(defaultHost())
}

func enumerate(h host) (monitors []*Monitor, errs []error) {
	outs, err := outputs(h)
	if err != nil {
		return nil, []error{err}
	}
	for _, out := range outs {
		found, err := out.Monitors()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		monitors = append(monitors, found...)
	}
	return monitors, errs
}
