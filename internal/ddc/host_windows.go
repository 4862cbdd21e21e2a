//go:build windows

package ddc

import (
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The Monitor Configuration API lives in dxva2.dll; output enumeration
// in user32.dll. Both are loaded lazily on first use.
var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")
	moddxva2  = windows.NewLazySystemDLL("dxva2.dll")

	procEnumDisplayMonitors                 = moduser32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW                     = moduser32.NewProc("GetMonitorInfoW")
	procGetNumberOfPhysicalMonitors         = moddxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	procGetPhysicalMonitorsFromHMONITOR     = moddxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	procDestroyPhysicalMonitor              = moddxva2.NewProc("DestroyPhysicalMonitor")
	procGetVCPFeatureAndVCPFeatureReply     = moddxva2.NewProc("GetVCPFeatureAndVCPFeatureReply")
	procSetVCPFeature                       = moddxva2.NewProc("SetVCPFeature")
	procGetCapabilitiesStringLength         = moddxva2.NewProc("GetCapabilitiesStringLength")
	procCapabilitiesRequestAndCapabilities  = moddxva2.NewProc("CapabilitiesRequestAndCapabilitiesReply")
	procGetTimingReport                     = moddxva2.NewProc("GetTimingReport")
	procSaveCurrentSettings                 = moddxva2.NewProc("SaveCurrentSettings")
)

// physicalMonitorRecord mirrors PHYSICAL_MONITOR: a handle followed by a
// fixed 128-WCHAR description buffer.
type physicalMonitorRecord struct {
	Handle      windows.Handle
	Description [128]uint16
}

type monitorInfoExW struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
	Device  [32]uint16
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type timingReportRecord struct {
	HorizontalFrequencyHz uint32
	VerticalFrequencyHz   uint32
	TimingStatusByte      uint8
}

// call invokes p and converts a FALSE return into the thread's last
// error, preserving the raw code.
//
//go:uintptrescapes
func call(p *windows.LazyProc, args ...uintptr) error {
	r1, _, e1 := p.Call(args...)
	if r1 == 0 {
		if errno, ok := e1.(syscall.Errno); ok {
			return win32Error(errno)
		}
		return win32Error(errInvalidParameter)
	}
	return nil
}

// win32Host implements host on top of the real display subsystem.
type win32Host struct{}

func defaultHost() host { return win32Host{} }

// EnumDisplayMonitors wants a C callback; callbacks created with
// syscall.NewCallback are never freed, so one shared callback appends
// into a package-level accumulator guarded by a mutex.
var enumAcc struct {
	sync.Mutex
	handles []outputHandle
}

var enumCallback = sync.OnceValue(func() uintptr {
	return syscall.NewCallback(func(hMonitor, hdc, lprc, lparam uintptr) uintptr {
		enumAcc.handles = append(enumAcc.handles, outputHandle(hMonitor))
		return 1 // continue enumeration
	})
})

func (win32Host) Outputs() ([]outputHandle, error) {
	enumAcc.Lock()
	defer enumAcc.Unlock()
	enumAcc.handles = nil
	if err := call(procEnumDisplayMonitors, 0, 0, enumCallback(), 0); err != nil {
		return nil, err
	}
	handles := make([]outputHandle, len(enumAcc.handles))
	copy(handles, enumAcc.handles)
	return handles, nil
}

func (win32Host) OutputInfo(out outputHandle) (OutputInfo, error) {
	var mi monitorInfoExW
	mi.Size = uint32(unsafe.Sizeof(mi))
	if err := call(procGetMonitorInfoW, uintptr(out), uintptr(unsafe.Pointer(&mi))); err != nil {
		return OutputInfo{}, err
	}
	const monitorinfofPrimary = 0x1
	return OutputInfo{
		Device: windows.UTF16ToString(mi.Device[:]),
		Bounds: Rect{
			Left:   mi.Monitor.Left,
			Top:    mi.Monitor.Top,
			Right:  mi.Monitor.Right,
			Bottom: mi.Monitor.Bottom,
		},
		Primary: mi.Flags&monitorinfofPrimary != 0,
	}, nil
}

func (win32Host) CountPhysicalMonitors(out outputHandle) (uint32, error) {
	var n uint32
	if err := call(procGetNumberOfPhysicalMonitors, uintptr(out), uintptr(unsafe.Pointer(&n))); err != nil {
		return 0, err
	}
	return n, nil
}

func (win32Host) PhysicalMonitors(out outputHandle, n uint32) ([]physicalMonitor, error) {
	records := make([]physicalMonitorRecord, n)
	err := call(procGetPhysicalMonitorsFromHMONITOR,
		uintptr(out), uintptr(n), uintptr(unsafe.Pointer(&records[0])))
	if err != nil {
		return nil, err
	}
	monitors := make([]physicalMonitor, n)
	for i, rec := range records {
		monitors[i] = physicalMonitor{
			handle:      monitorHandle(rec.Handle),
			description: windows.UTF16ToString(rec.Description[:]),
		}
	}
	return monitors, nil
}

func (win32Host) DestroyMonitor(h monitorHandle) error {
	return call(procDestroyPhysicalMonitor, uintptr(h))
}

func (win32Host) GetVCPFeature(h monitorHandle, code VCPCode) (vcpType, current, maximum uint32, err error) {
	err = call(procGetVCPFeatureAndVCPFeatureReply,
		uintptr(h), uintptr(code),
		uintptr(unsafe.Pointer(&vcpType)),
		uintptr(unsafe.Pointer(&current)),
		uintptr(unsafe.Pointer(&maximum)))
	return
}

func (win32Host) SetVCPFeature(h monitorHandle, code VCPCode, value uint32) error {
	return call(procSetVCPFeature, uintptr(h), uintptr(code), uintptr(value))
}

func (win32Host) CapabilitiesLength(h monitorHandle) (uint32, error) {
	var n uint32
	if err := call(procGetCapabilitiesStringLength, uintptr(h), uintptr(unsafe.Pointer(&n))); err != nil {
		return 0, err
	}
	return n, nil
}

func (win32Host) Capabilities(h monitorHandle, buf []byte) error {
	return call(procCapabilitiesRequestAndCapabilities,
		uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
}

func (win32Host) TimingReport(h monitorHandle) (TimingReport, error) {
	var rec timingReportRecord
	if err := call(procGetTimingReport, uintptr(h), uintptr(unsafe.Pointer(&rec))); err != nil {
		return TimingReport{}, err
	}
	return TimingReport{
		HorizontalFrequencyHz: rec.HorizontalFrequencyHz,
		VerticalFrequencyHz:   rec.VerticalFrequencyHz,
		StatusByte:            rec.TimingStatusByte,
	}, nil
}

func (win32Host) SaveSettings(h monitorHandle) error {
	return call(procSaveCurrentSettings, uintptr(h))
}
