package ddc

// VCPCode identifies one monitor control per the MCCS standard
// (0x10 brightness, 0x12 contrast, ...). Opaque to this package: codes
// are passed through to the monitor, never validated against a registry.
type VCPCode uint8

// VCPType distinguishes continuous controls (a linear range) from
// momentary ones (enumerated or one-shot). Values match the Win32
// MC_VCP_CODE_TYPE enumeration.
type VCPType uint32

const (
	// Momentary features trigger or select; the value is not a level.
	Momentary VCPType = iota
	// SetParameter features hold a continuous value up to a maximum.
	SetParameter
)

func (t VCPType) String() string {
	switch t {
	case Momentary:
		return "momentary"
	case SetParameter:
		return "continuous"
	default:
		return "unknown"
	}
}

// VCPValue is the reply to a feature read.
type VCPValue struct {
	Current uint16
	Maximum uint16
	Type    VCPType
}

// Continuous reports whether the feature holds a linear range, i.e. its
// Maximum is meaningful.
func (v VCPValue) Continuous() bool { return v.Type == SetParameter }

// TimingReport is a monitor's sync-frequency report.
type TimingReport struct {
	HorizontalFrequencyHz uint32
	VerticalFrequencyHz   uint32
	StatusByte            uint8
}
