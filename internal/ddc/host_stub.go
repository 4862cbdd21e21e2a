//go:build !windows

package ddc

// stubHost stands in on platforms without the Monitor Configuration
// API. Every call fails with errNoHost, which classifies as
// ErrUnsupported.
type stubHost struct{}

func defaultHost() host { return stubHost{} }

func (stubHost) Outputs() ([]outputHandle, error) { return nil, errNoHost }

func (stubHost) OutputInfo(outputHandle) (OutputInfo, error) { return OutputInfo{}, errNoHost }

func (stubHost) CountPhysicalMonitors(outputHandle) (uint32, error) { return 0, errNoHost }

func (stubHost) PhysicalMonitors(outputHandle, uint32) ([]physicalMonitor, error) {
	return nil, errNoHost
}

func (stubHost) DestroyMonitor(monitorHandle) error { return errNoHost }

func (stubHost) GetVCPFeature(monitorHandle, VCPCode) (vcpType, current, maximum uint32, err error) {
	return 0, 0, 0, errNoHost
}

func (stubHost) SetVCPFeature(monitorHandle, VCPCode, uint32) error { return errNoHost }

func (stubHost) CapabilitiesLength(monitorHandle) (uint32, error) { return 0, errNoHost }

func (stubHost) Capabilities(monitorHandle, []byte) error { return errNoHost }

func (stubHost) TimingReport(monitorHandle) (TimingReport, error) { return TimingReport{}, errNoHost }

func (stubHost) SaveSettings(monitorHandle) error { return errNoHost }
