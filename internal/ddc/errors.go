package ddc

import (
	"errors"
	"fmt"
)

// Error kinds. An *Error unwraps to exactly one of these, so callers can
// classify failures with errors.Is without inspecting Win32 codes.
var (
	// ErrEnumeration is a discovery-step failure. Enumeration keeps going
	// past it; monitors found on other outputs remain usable.
	ErrEnumeration = errors.New("monitor enumeration failed")

	// ErrInvalidHandle means the host rejected the monitor handle, or the
	// monitor was already closed. The Monitor is dead; drop it and
	// re-enumerate.
	ErrInvalidHandle = errors.New("monitor handle invalid")

	// ErrBusFailure is a DDC/CI transaction failure on the I2C bus
	// (timeout, NAK, garbled reply). Transient; the caller may retry the
	// whole command.
	ErrBusFailure = errors.New("ddc/ci bus communication failed")

	// ErrUnsupported means the monitor does not implement the requested
	// VCP feature, or the platform has no monitor-configuration API.
	ErrUnsupported = errors.New("operation not supported")

	// ErrSizeMismatch means the capability string changed size between the
	// length and content calls. Transient; retry the read.
	ErrSizeMismatch = errors.New("capability string size mismatch")

	// ErrRelease is a handle-release failure. It is logged, never
	// returned from Close.
	ErrRelease = errors.New("monitor handle release failed")
)

// Error is a failed host call. Code is the raw Win32 status preserved
// for diagnostics; it is zero when the failure originated in this
// package (for example an operation on a closed Monitor).
type Error struct {
	Op     string // host operation, e.g. "get vcp feature"
	Device string // source output device, set for enumeration failures
	Code   uint32
	kind   error
}

func (e *Error) Error() string {
	msg := e.kind.Error()
	if e.Device != "" {
		msg = fmt.Sprintf("%s: %s (%s)", e.Op, msg, e.Device)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s: win32 code 0x%08X", msg, e.Code)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.kind }

// win32Error carries a raw Win32 status code out of a host backend. The
// Windows backend produces these from GetLastError; the test host injects
// them directly.
type win32Error uint32

func (e win32Error) Error() string {
	return fmt.Sprintf("win32 error 0x%08X", uint32(e))
}

// Win32 status codes this package classifies. The graphics codes are the
// Monitor Configuration API range from winerror.h.
const (
	errInvalidHandle      = 6
	errInvalidParameter   = 87
	errInsufficientBuffer = 122

	errGraphicsI2CNotSupported                 = 0xC0262981
	errGraphicsI2CDeviceDoesNotExist           = 0xC0262982
	errGraphicsI2CErrorTransmittingData        = 0xC0262983
	errGraphicsI2CErrorReceivingData           = 0xC0262984
	errGraphicsDDCCIVCPNotSupported            = 0xC0262985
	errGraphicsDDCCIInvalidData                = 0xC0262986
	errGraphicsInvalidTimingStatusByte         = 0xC0262987
	errGraphicsMCAInvalidCapabilitiesString    = 0xC0262988
	errGraphicsMCAInternalError                = 0xC0262989
	errGraphicsDDCCIInvalidMessageCommand      = 0xC026298A
	errGraphicsDDCCIInvalidMessageLength       = 0xC026298B
	errGraphicsDDCCIInvalidMessageChecksum     = 0xC026298C
	errGraphicsInvalidPhysicalMonitorHandle    = 0xC026298D
	errGraphicsMonitorNoLongerExists           = 0xC026298E
)

// classify converts a host backend error into an *Error for op. A nil
// err returns nil.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var code win32Error
	if !errors.As(err, &code) {
		if errors.Is(err, errNoHost) {
			return &Error{Op: op, kind: ErrUnsupported}
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return &Error{Op: op, Code: uint32(code), kind: kindOf(uint32(code))}
}

func kindOf(code uint32) error {
	switch code {
	case errInvalidHandle,
		errGraphicsInvalidPhysicalMonitorHandle,
		errGraphicsMonitorNoLongerExists:
		return ErrInvalidHandle
	case errGraphicsDDCCIVCPNotSupported,
		errGraphicsI2CNotSupported:
		return ErrUnsupported
	case errInsufficientBuffer,
		errGraphicsDDCCIInvalidMessageLength:
		return ErrSizeMismatch
	default:
		// I2C transmit/receive errors, checksum failures and anything else
		// the monitor path reports is treated as a bus-level fault.
		return ErrBusFailure
	}
}

// wrapKind builds an *Error with a fixed kind, keeping the raw Win32
// code when the backend supplied one. A platform without a backend
// always reports ErrUnsupported, whatever the requested kind.
func wrapKind(op, device string, kind, err error) *Error {
	if errors.Is(err, errNoHost) {
		kind = ErrUnsupported
	}
	e := &Error{Op: op, Device: device, kind: kind}
	var code win32Error
	if errors.As(err, &code) {
		e.Code = uint32(code)
	}
	return e
}

// errNoHost is returned by every host call on platforms without a
// monitor-configuration subsystem.
var errNoHost = errors.New("no monitor configuration backend on this platform")
