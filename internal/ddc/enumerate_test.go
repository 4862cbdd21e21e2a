package ddc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateNoPhysicalMonitors(t *testing.T) {
	f := newFakeHost()
	f.addOutput(`\\.\DISPLAY1`)
	f.addOutput(`\\.\DISPLAY2`)

	monitors, errs := enumerate(f)
	assert.Empty(t, errs, "zero monitors behind an output is not an error")
	assert.Empty(t, monitors)
}

func TestEnumeratePairsMonitorsWithOutputs(t *testing.T) {
	f := newFakeHost()
	f.addOutput(`\\.\DISPLAY1`,
		physicalMonitor{handle: 1, description: "Dell U2720Q"},
		physicalMonitor{handle: 2, description: "Dell U2720Q (2)"})
	f.addOutput(`\\.\DISPLAY2`,
		physicalMonitor{handle: 3, description: "LG 27UK850"})

	monitors, errs := enumerate(f)
	require.Empty(t, errs)
	require.Len(t, monitors, 3)

	assert.Equal(t, "Dell U2720Q", monitors[0].Description())
	assert.Equal(t, `\\.\DISPLAY1`, monitors[0].OutputDevice())
	assert.Equal(t, "Dell U2720Q (2)", monitors[1].Description())
	assert.Equal(t, `\\.\DISPLAY1`, monitors[1].OutputDevice())
	assert.Equal(t, "LG 27UK850", monitors[2].Description())
	assert.Equal(t, `\\.\DISPLAY2`, monitors[2].OutputDevice())

	for _, m := range monitors {
		m.Close()
	}
	for h := monitorHandle(1); h <= 3; h++ {
		assert.Equal(t, 1, f.releaseCount(h))
	}
}

func TestEnumerateContinuesPastFailingOutput(t *testing.T) {
	f := newFakeHost()
	bad := f.addOutput(`\\.\DISPLAY1`)
	f.addOutput(`\\.\DISPLAY2`, physicalMonitor{handle: 7, description: "BenQ PD2700U"})
	f.countErrs[bad] = win32Error(errGraphicsMCAInternalError)

	monitors, errs := enumerate(f)
	require.Len(t, monitors, 1, "healthy output must survive a flaky sibling")
	assert.Equal(t, "BenQ PD2700U", monitors[0].Description())

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrEnumeration)

	var enumErr *Error
	require.ErrorAs(t, errs[0], &enumErr)
	assert.Equal(t, "get monitor count", enumErr.Op)
	assert.Equal(t, `\\.\DISPLAY1`, enumErr.Device)
	assert.Equal(t, uint32(errGraphicsMCAInternalError), enumErr.Code)

	monitors[0].Close()
}

func TestEnumerateReportsFetchStep(t *testing.T) {
	f := newFakeHost()
	bad := f.addOutput(`\\.\DISPLAY1`, physicalMonitor{handle: 5, description: "ghost"})
	f.physErrs[bad] = win32Error(errGraphicsI2CDeviceDoesNotExist)

	monitors, errs := enumerate(f)
	assert.Empty(t, monitors)
	require.Len(t, errs, 1)

	var enumErr *Error
	require.ErrorAs(t, errs[0], &enumErr)
	assert.Equal(t, "get physical monitors", enumErr.Op)
	assert.ErrorIs(t, errs[0], ErrEnumeration)
}

func TestEnumerateOutputWalkFailure(t *testing.T) {
	f := newFakeHost()
	f.outsErr = win32Error(errInvalidParameter)

	monitors, errs := enumerate(f)
	assert.Empty(t, monitors)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrEnumeration)
}

func TestOutputsFreshPerCall(t *testing.T) {
	f := newFakeHost()
	f.addOutput(`\\.\DISPLAY1`, physicalMonitor{handle: 1, description: "a"})

	first, errs := enumerate(f)
	require.Empty(t, errs)

	// Hardware changes between discovery passes must be visible.
	f.addOutput(`\\.\DISPLAY2`, physicalMonitor{handle: 2, description: "b"})
	second, errs := enumerate(f)
	require.Empty(t, errs)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)

	for _, m := range append(first, second...) {
		m.Close()
	}
}

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		kind error
	}{
		{"invalid handle", errInvalidHandle, ErrInvalidHandle},
		{"stale physical monitor handle", errGraphicsInvalidPhysicalMonitorHandle, ErrInvalidHandle},
		{"monitor unplugged", errGraphicsMonitorNoLongerExists, ErrInvalidHandle},
		{"vcp not supported", errGraphicsDDCCIVCPNotSupported, ErrUnsupported},
		{"i2c not supported", errGraphicsI2CNotSupported, ErrUnsupported},
		{"message length", errGraphicsDDCCIInvalidMessageLength, ErrSizeMismatch},
		{"insufficient buffer", errInsufficientBuffer, ErrSizeMismatch},
		{"i2c transmit", errGraphicsI2CErrorTransmittingData, ErrBusFailure},
		{"i2c receive", errGraphicsI2CErrorReceivingData, ErrBusFailure},
		{"checksum", errGraphicsDDCCIInvalidMessageChecksum, ErrBusFailure},
		{"unknown", 0xDEADBEEF, ErrBusFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", win32Error(tt.code))
			assert.ErrorIs(t, err, tt.kind)

			var hostErr *Error
			require.ErrorAs(t, err, &hostErr)
			assert.Equal(t, tt.code, hostErr.Code)
		})
	}
}
