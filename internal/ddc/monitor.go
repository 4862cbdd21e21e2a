package ddc

import (
	"sync/atomic"

	"github.com/monctl/monctl/internal/logger"
)

// Monitor is the exclusive owner of one physical-monitor handle and the
// channel for DDC/CI commands against it. The raw handle never leaves
// this type, so a released handle cannot be used by accident.
//
// The DDC/CI bus behind a monitor carries one transaction at a time:
// callers must serialize operations on a single Monitor. Operations on
// distinct Monitors are independent and may run concurrently.
type Monitor struct {
	host   host
	handle monitorHandle
	desc   string
	device string
	closed atomic.Bool
}

func newMonitor(h host, handle monitorHandle, desc, device string) *Monitor {
	return &Monitor{host: h, handle: handle, desc: desc, device: device}
}

// Description is the driver-reported monitor description, copied at
// discovery time ("Generic PnP Monitor" on most systems).
func (m *Monitor) Description() string { return m.desc }

// OutputDevice is the GDI device name of the output this monitor was
// discovered behind, empty if it could not be determined.
func (m *Monitor) OutputDevice() string { return m.device }

// Close releases the underlying handle. It is idempotent: the release
// runs at most once and later calls are no-ops. A release failure is
// logged and swallowed — cleanup must never fail the caller's unrelated
// work. After Close every operation fails with ErrInvalidHandle.
func (m *Monitor) Close() {
	if !m.closed.CompareAndSwap(false, true) {
		return
	}
	if err := m.host.DestroyMonitor(m.handle); err != nil {
		logger.Warn("failed to release monitor handle",
			"monitor", m.desc, "error", wrapKind("destroy monitor", m.device, ErrRelease, err))
	}
}

func (m *Monitor) check(op string) error {
	if m.closed.Load() {
		return &Error{Op: op, kind: ErrInvalidHandle}
	}
	return nil
}

// GetVCPFeature reads the current value, maximum value and type of one
// VCP feature. One blocking host call; expect tens of milliseconds.
func (m *Monitor) GetVCPFeature(code VCPCode) (VCPValue, error) {
	const op = "get vcp feature"
	if err := m.check(op); err != nil {
		return VCPValue{}, err
	}
	ty, cur, max, err := m.host.GetVCPFeature(m.handle, code)
	if err != nil {
		return VCPValue{}, classify(op, err)
	}
	return VCPValue{
		Current: uint16(cur),
		Maximum: uint16(max),
		Type:    VCPType(ty),
	}, nil
}

// SetVCPFeature writes value to one VCP feature. Success means the host
// accepted the write, not that the monitor applied it; there is no
// read-back.
func (m *Monitor) SetVCPFeature(code VCPCode, value uint16) error {
	const op = "set vcp feature"
	if err := m.check(op); err != nil {
		return err
	}
	return classify(op, m.host.SetVCPFeature(m.handle, code, uint32(value)))
}

// Capabilities retrieves the monitor's MCCS capability string as raw
// bytes, trailing NUL removed. The string is not parsed here.
//
// The read is two host calls, length then content. A monitor
// reconfigured between the two can legitimately change the size; that
// surfaces as ErrSizeMismatch and is worth retrying, unlike a real bus
// fault.
func (m *Monitor) Capabilities() ([]byte, error) {
	if err := m.check("get capabilities"); err != nil {
		return nil, err
	}

	length, err := m.host.CapabilitiesLength(m.handle)
	if err != nil {
		return nil, classify("get capabilities length", err)
	}
	if length == 0 {
		// Valid: the monitor declares no capabilities.
		return []byte{}, nil
	}

	buf := make([]byte, length)
	if err := m.host.Capabilities(m.handle, buf); err != nil {
		return nil, classify("get capabilities", err)
	}
	if n := len(buf); buf[n-1] == 0 {
		buf = buf[:n-1]
	}
	return buf, nil
}

// TimingReport reads the monitor's horizontal and vertical sync
// frequencies.
func (m *Monitor) TimingReport() (TimingReport, error) {
	const op = "get timing report"
	if err := m.check(op); err != nil {
		return TimingReport{}, err
	}
	report, err := m.host.TimingReport(m.handle)
	if err != nil {
		return TimingReport{}, classify(op, err)
	}
	return report, nil
}

// SaveSettings asks the monitor to persist its current settings to
// nonvolatile storage.
func (m *Monitor) SaveSettings() error {
	const op = "save current settings"
	if err := m.check(op); err != nil {
		return err
	}
	return classify(op, m.host.SaveSettings(m.handle))
}
