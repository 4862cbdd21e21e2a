// Package ddc binds the Windows Monitor Configuration API for DDC/CI
// monitor control: enumeration of the physical monitors behind each
// display output, exclusive ownership of their handles, VCP feature
// get/set and capability-string retrieval.
//
// Every operation is a single blocking host call; a DDC/CI transaction
// runs over the monitor's I2C bus and typically takes tens of
// milliseconds. The package never retries — bus errors are transient and
// retry policy belongs to the caller. Operations on one Monitor must be
// serialized by the caller; distinct Monitors are independent.
package ddc

// outputHandle is an opaque HMONITOR value.
type outputHandle uintptr

// monitorHandle is an opaque physical-monitor HANDLE.
type monitorHandle uintptr

// physicalMonitor is one record returned by the physical-monitor query:
// a raw handle plus the description the driver reports for it, already
// decoded from its fixed UTF-16 buffer.
type physicalMonitor struct {
	handle      monitorHandle
	description string
}

// host is the seam between the platform-neutral core and the OS display
// subsystem. The Windows backend maps each method onto one user32/dxva2
// call; tests substitute a scripted fake.
type host interface {
	// Outputs enumerates the active logical display outputs.
	Outputs() ([]outputHandle, error)

	// OutputInfo describes one output. Best-effort during enumeration.
	OutputInfo(out outputHandle) (OutputInfo, error)

	// CountPhysicalMonitors reports how many physical monitors are
	// multiplexed behind an output.
	CountPhysicalMonitors(out outputHandle) (uint32, error)

	// PhysicalMonitors fetches n physical-monitor records in one call.
	PhysicalMonitors(out outputHandle, n uint32) ([]physicalMonitor, error)

	// DestroyMonitor releases a physical-monitor handle.
	DestroyMonitor(h monitorHandle) error

	// GetVCPFeature reads current value, maximum value and code type for
	// one VCP feature.
	GetVCPFeature(h monitorHandle, code VCPCode) (vcpType, current, maximum uint32, err error)

	// SetVCPFeature writes one VCP feature value.
	SetVCPFeature(h monitorHandle, code VCPCode, value uint32) error

	// CapabilitiesLength reports the size of the capability string,
	// including its trailing NUL.
	CapabilitiesLength(h monitorHandle) (uint32, error)

	// Capabilities fills buf with the capability string. Fails if the
	// string no longer fits buf exactly.
	Capabilities(h monitorHandle, buf []byte) error

	// TimingReport reads the monitor's sync frequencies.
	TimingReport(h monitorHandle) (TimingReport, error)

	// SaveSettings persists the current settings to the monitor's
	// nonvolatile storage.
	SaveSettings(h monitorHandle) error
}
