package ddc

import "sync"

// fakeFeature is one VCP register on a fake monitor.
type fakeFeature struct {
	current uint32
	maximum uint32
	ty      uint32
}

// fakeHost scripts the display subsystem for tests. Writes echo into
// reads, handles count their releases, and per-handle errors can be
// injected to simulate bus faults and stale handles.
type fakeHost struct {
	mu sync.Mutex

	outs       []outputHandle
	outsErr    error
	infos      map[outputHandle]OutputInfo
	counts     map[outputHandle]uint32
	countErrs  map[outputHandle]error
	phys       map[outputHandle][]physicalMonitor
	physErrs   map[outputHandle]error
	features   map[monitorHandle]map[VCPCode]fakeFeature
	getErrs    map[monitorHandle]error
	setErrs    map[monitorHandle]error
	caps       map[monitorHandle][]byte // raw string including trailing NUL
	capsLen    map[monitorHandle]uint32 // length override to force a mismatch
	capsErrs   map[monitorHandle]error
	destroyed  map[monitorHandle]int
	destroyErr error
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		infos:     make(map[outputHandle]OutputInfo),
		counts:    make(map[outputHandle]uint32),
		countErrs: make(map[outputHandle]error),
		phys:      make(map[outputHandle][]physicalMonitor),
		physErrs:  make(map[outputHandle]error),
		features:  make(map[monitorHandle]map[VCPCode]fakeFeature),
		getErrs:   make(map[monitorHandle]error),
		setErrs:   make(map[monitorHandle]error),
		caps:      make(map[monitorHandle][]byte),
		capsLen:   make(map[monitorHandle]uint32),
		capsErrs:  make(map[monitorHandle]error),
		destroyed: make(map[monitorHandle]int),
	}
}

// addOutput registers one logical output with the given physical
// monitors behind it.
func (f *fakeHost) addOutput(device string, monitors ...physicalMonitor) outputHandle {
	out := outputHandle(0x1000 + len(f.outs))
	f.outs = append(f.outs, out)
	f.infos[out] = OutputInfo{Device: device}
	f.counts[out] = uint32(len(monitors))
	f.phys[out] = monitors
	for _, m := range monitors {
		f.features[m.handle] = make(map[VCPCode]fakeFeature)
	}
	return out
}

func (f *fakeHost) setFeature(h monitorHandle, code VCPCode, ff fakeFeature) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.features[h] == nil {
		f.features[h] = make(map[VCPCode]fakeFeature)
	}
	f.features[h][code] = ff
}

func (f *fakeHost) releaseCount(h monitorHandle) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.destroyed[h]
}

func (f *fakeHost) Outputs() ([]outputHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.outsErr != nil {
		return nil, f.outsErr
	}
	return append([]outputHandle(nil), f.outs...), nil
}

func (f *fakeHost) OutputInfo(out outputHandle) (OutputInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.infos[out], nil
}

func (f *fakeHost) CountPhysicalMonitors(out outputHandle) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.countErrs[out]; err != nil {
		return 0, err
	}
	return f.counts[out], nil
}

func (f *fakeHost) PhysicalMonitors(out outputHandle, n uint32) ([]physicalMonitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.physErrs[out]; err != nil {
		return nil, err
	}
	monitors := f.phys[out]
	if uint32(len(monitors)) != n {
		return nil, win32Error(errInvalidParameter)
	}
	return append([]physicalMonitor(nil), monitors...), nil
}

func (f *fakeHost) DestroyMonitor(h monitorHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed[h]++
	return f.destroyErr
}

func (f *fakeHost) GetVCPFeature(h monitorHandle, code VCPCode) (vcpType, current, maximum uint32, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.getErrs[h]; err != nil {
		return 0, 0, 0, err
	}
	ff, ok := f.features[h][code]
	if !ok {
		return 0, 0, 0, win32Error(errGraphicsDDCCIVCPNotSupported)
	}
	return ff.ty, ff.current, ff.maximum, nil
}

func (f *fakeHost) SetVCPFeature(h monitorHandle, code VCPCode, value uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.setErrs[h]; err != nil {
		return err
	}
	ff := f.features[h][code]
	ff.current = value
	f.features[h][code] = ff
	return nil
}

func (f *fakeHost) CapabilitiesLength(h monitorHandle) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.capsLen[h]; ok {
		return n, nil
	}
	return uint32(len(f.caps[h])), nil
}

func (f *fakeHost) Capabilities(h monitorHandle, buf []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.capsErrs[h]; err != nil {
		return err
	}
	data := f.caps[h]
	if len(buf) != len(data) {
		return win32Error(errGraphicsDDCCIInvalidMessageLength)
	}
	copy(buf, data)
	return nil
}

func (f *fakeHost) TimingReport(h monitorHandle) (TimingReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.getErrs[h]; err != nil {
		return TimingReport{}, err
	}
	return TimingReport{HorizontalFrequencyHz: 67500, VerticalFrequencyHz: 60, StatusByte: 0x4D}, nil
}

func (f *fakeHost) SaveSettings(h monitorHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setErrs[h]
}
