package domain

// Channel is a single readable/writable value stream on a device.
type Channel struct {
	Name        string
	ExternalID  ExternalId
	Kind        ChannelKind
	DataType    ChannelDataType
	Flags       ChannelFlag
	Unit        string
	MinValue    float64
	MaxValue    float64
	StepValue   float64
	MetaJSON    JsonText
	Choices     []AdapterConfigOption

	LastValue    ScalarValue
	LastUpdateMs int64
	HasValue     bool
}
