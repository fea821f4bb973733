package domain

// CmdStatus is the outcome of a command or action invocation.
type CmdStatus uint8

const (
	StatusSuccess             CmdStatus = 0
	StatusFailure             CmdStatus = 1
	StatusTimeout             CmdStatus = 2
	StatusNotSupported        CmdStatus = 3
	StatusInvalidArgument     CmdStatus = 4
	StatusBusy                CmdStatus = 5
	StatusTemporarilyOffline  CmdStatus = 6
	StatusNotAuthorized       CmdStatus = 7
	StatusNotImplemented      CmdStatus = 8
	StatusInternalError       CmdStatus = 255
)

// ActionResultType tags the shape of an action's result value.
type ActionResultType uint8

const (
	ActionResultNone       ActionResultType = 0
	ActionResultBoolean    ActionResultType = 1
	ActionResultInteger    ActionResultType = 2
	ActionResultFloat      ActionResultType = 3
	ActionResultString     ActionResultType = 4
	ActionResultStringList ActionResultType = 5
)

// DeviceClass is the closed set of device families.
type DeviceClass uint8

const (
	DeviceClassUnknown     DeviceClass = 0
	DeviceClassLight       DeviceClass = 1
	DeviceClassSwitch      DeviceClass = 2
	DeviceClassSensor      DeviceClass = 3
	DeviceClassButton      DeviceClass = 4
	DeviceClassPlug        DeviceClass = 5
	DeviceClassCover       DeviceClass = 6
	DeviceClassThermostat  DeviceClass = 7
	DeviceClassGateway     DeviceClass = 8
	DeviceClassMediaPlayer DeviceClass = 9
	DeviceClassHeater      DeviceClass = 10
	DeviceClassGate        DeviceClass = 11
	DeviceClassValve       DeviceClass = 12
)

// DeviceEffect enumerates built-in lighting/media effects. CustomVendor is
// part of the schema but unused by the dispatcher (spec Open Question).
type DeviceEffect uint16

const (
	DeviceEffectNone DeviceEffect = iota
	DeviceEffectCandle
	DeviceEffectFireplace
	DeviceEffectSparkle
	DeviceEffectColorLoop
	DeviceEffectAlarm
	DeviceEffectRelax
	DeviceEffectConcentrate
	DeviceEffectCustomVendor
)

// ButtonEventCode enumerates button/rocker press semantics.
type ButtonEventCode uint8

const (
	ButtonEventNone              ButtonEventCode = 0
	ButtonEventInitialPress      ButtonEventCode = 1
	ButtonEventDoublePress       ButtonEventCode = 2
	ButtonEventTriplePress       ButtonEventCode = 3
	ButtonEventQuadruplePress    ButtonEventCode = 4
	ButtonEventQuintuplePress    ButtonEventCode = 5
	ButtonEventLongPress         ButtonEventCode = 10
	ButtonEventLongPressRelease  ButtonEventCode = 11
	ButtonEventShortPressRelease ButtonEventCode = 12
	ButtonEventRepeat            ButtonEventCode = 20
)

// RockerMode describes a physical rocker/push switch's layout.
type RockerMode uint8

const (
	RockerModeUnknown      RockerMode = 0
	RockerModeSingleRocker RockerMode = 1
	RockerModeDualRocker   RockerMode = 2
	RockerModeSinglePush   RockerMode = 3
	RockerModeDualPush     RockerMode = 4
)

// SensitivityLevel is a coarse sensor sensitivity setting.
type SensitivityLevel uint8

const (
	SensitivityUnknown  SensitivityLevel = 0
	SensitivityLow      SensitivityLevel = 1
	SensitivityMedium   SensitivityLevel = 2
	SensitivityHigh     SensitivityLevel = 3
	SensitivityVeryHigh SensitivityLevel = 4
	SensitivityMax      SensitivityLevel = 5
)

// OperatingLevel is a coarse fan/heater/appliance speed setting.
type OperatingLevel uint8

const (
	OperatingLevelUnknown OperatingLevel = 0
	OperatingLevelOff     OperatingLevel = 1
	OperatingLevelLow     OperatingLevel = 2
	OperatingLevelMedium  OperatingLevel = 3
	OperatingLevelHigh    OperatingLevel = 4
	OperatingLevelAuto    OperatingLevel = 5
)

// PresetMode is a coarse thermostat/appliance preset.
type PresetMode uint8

const (
	PresetModeUnknown PresetMode = 0
	PresetModeEco     PresetMode = 1
	PresetModeNormal  PresetMode = 2
	PresetModeComfort PresetMode = 3
	PresetModeSleep   PresetMode = 4
	PresetModeAway    PresetMode = 5
	PresetModeBoost   PresetMode = 6
)

// ChannelKind is the closed set of channel semantics.
type ChannelKind uint16

const (
	ChannelKindUnknown                ChannelKind = 0
	ChannelKindPowerOnOff             ChannelKind = 1
	ChannelKindButtonEvent            ChannelKind = 2
	ChannelKindBrightness             ChannelKind = 10
	ChannelKindColorTemperature       ChannelKind = 11
	ChannelKindColorRGB               ChannelKind = 12
	ChannelKindColorTemperaturePreset ChannelKind = 13
	ChannelKindVolume                 ChannelKind = 30
	ChannelKindMute                   ChannelKind = 31
	ChannelKindHdmiInput              ChannelKind = 32
	ChannelKindPlayPause              ChannelKind = 33
	ChannelKindTemperature            ChannelKind = 50
	ChannelKindHumidity               ChannelKind = 51
	ChannelKindIlluminance            ChannelKind = 52
	ChannelKindMotion                 ChannelKind = 53
	ChannelKindBattery                ChannelKind = 54
	ChannelKindCO2                    ChannelKind = 55
	ChannelKindRelativeRotation       ChannelKind = 56
	ChannelKindConnectivityStatus     ChannelKind = 57
	ChannelKindDeviceSoftwareUpdate   ChannelKind = 58
	ChannelKindSignalStrength         ChannelKind = 59
	ChannelKindPower                  ChannelKind = 60
	ChannelKindVoltage                ChannelKind = 61
	ChannelKindCurrent                ChannelKind = 62
	ChannelKindEnergy                 ChannelKind = 63
	ChannelKindLinkQuality            ChannelKind = 64
	ChannelKindDuration               ChannelKind = 65
	ChannelKindContact                ChannelKind = 66
	ChannelKindTamper                 ChannelKind = 67
	ChannelKindAmbientLightLevel      ChannelKind = 68
	ChannelKindPhValue                ChannelKind = 200
	ChannelKindOrpValue               ChannelKind = 201
	ChannelKindSaltPpm                ChannelKind = 202
	ChannelKindConductivity           ChannelKind = 203
	ChannelKindTdsValue               ChannelKind = 204
	ChannelKindSpecificGravity        ChannelKind = 205
	ChannelKindWaterHardness          ChannelKind = 206
	ChannelKindFreeChlorine           ChannelKind = 207
	ChannelKindFilterPressure         ChannelKind = 208
	ChannelKindWaterFlow              ChannelKind = 209
	ChannelKindSceneTrigger           ChannelKind = 300
)

// ChannelDataType is the scalar shape carried by a channel's value.
type ChannelDataType uint8

const (
	ChannelDataTypeUnknown ChannelDataType = 0
	ChannelDataTypeBool    ChannelDataType = 1
	ChannelDataTypeInt     ChannelDataType = 2
	ChannelDataTypeFloat   ChannelDataType = 3
	ChannelDataTypeString  ChannelDataType = 4
	ChannelDataTypeColor   ChannelDataType = 5
	ChannelDataTypeEnum    ChannelDataType = 6
)

// ConnectivityStatus reports a device's reachability.
type ConnectivityStatus uint8

const (
	ConnectivityUnknown      ConnectivityStatus = 0
	ConnectivityConnected    ConnectivityStatus = 1
	ConnectivityLimited      ConnectivityStatus = 2
	ConnectivityDisconnected ConnectivityStatus = 3
)

// SceneState reports whether a scene is currently applied.
type SceneState uint8

const (
	SceneStateUnknown       SceneState = 0
	SceneStateInactive      SceneState = 1
	SceneStateActiveStatic  SceneState = 2
	SceneStateActiveDynamic SceneState = 3
)

// SceneAction is the verb sent with cmd.scene.invoke.
type SceneAction uint8

const (
	SceneActionActivate   SceneAction = 0
	SceneActionDeactivate SceneAction = 1
	SceneActionDynamic    SceneAction = 2
)

// DiscoveryKind is the mechanism used to find a device on the network.
type DiscoveryKind uint8

const (
	DiscoveryKindMdns    DiscoveryKind = 0
	DiscoveryKindSsdp    DiscoveryKind = 1
	DiscoveryKindNetScan DiscoveryKind = 2
	DiscoveryKindManual  DiscoveryKind = 3
)

// MessageType tags a frame's payload kind.
type MessageType uint8

const (
	MessageTypeHello      MessageType = 1
	MessageTypeHeartbeat  MessageType = 2
	MessageTypeRequest    MessageType = 3
	MessageTypeResponse   MessageType = 4
	MessageTypeEvent      MessageType = 5
	MessageTypeError      MessageType = 6
	MessageTypeGoodbye    MessageType = 7
)

// ChannelFlag is a bitmask of channel behaviors.
type ChannelFlag uint32

const (
	ChannelFlagNone       ChannelFlag = 0x00000000
	ChannelFlagReadable   ChannelFlag = 0x00000001
	ChannelFlagWritable   ChannelFlag = 0x00000002
	ChannelFlagReportable ChannelFlag = 0x00000004
	ChannelFlagRetained   ChannelFlag = 0x00000008
	ChannelFlagInactive   ChannelFlag = 0x00000010
	ChannelFlagNoTrigger  ChannelFlag = 0x00000020
	ChannelFlagSuppress   ChannelFlag = 0x00000040
)

// ChannelFlagDefaultWrite/Read mirror the C++ contract's default flag sets.
const (
	ChannelFlagDefaultWrite = ChannelFlagReadable | ChannelFlagWritable | ChannelFlagReportable | ChannelFlagRetained
	ChannelFlagDefaultRead  = ChannelFlagReadable | ChannelFlagReportable | ChannelFlagRetained
)

// Has reports whether all bits of flag are set in v.
func (v ChannelFlag) Has(flag ChannelFlag) bool { return v&flag == flag }

// DeviceFlag is a bitmask of device behaviors.
type DeviceFlag uint32

const (
	DeviceFlagNone      DeviceFlag = 0x00000000
	DeviceFlagWireless  DeviceFlag = 0x00000001
	DeviceFlagBattery   DeviceFlag = 0x00000002
	DeviceFlagFlushable DeviceFlag = 0x00000004
	DeviceFlagBle       DeviceFlag = 0x00000008
)

func (v DeviceFlag) Has(flag DeviceFlag) bool { return v&flag == flag }

// SceneFlag is a bitmask of scene behaviors.
type SceneFlag uint32

const (
	SceneFlagNone               SceneFlag = 0x00000000
	SceneFlagOriginAdapter      SceneFlag = 0x00000001
	SceneFlagSupportsDynamic    SceneFlag = 0x00000002
	SceneFlagSupportsDeactivate SceneFlag = 0x00000004
)

func (v SceneFlag) Has(flag SceneFlag) bool { return v&flag == flag }

// AdapterFlag is a bitmask of adapter instance behaviors.
type AdapterFlag uint32

const (
	AdapterFlagNone              AdapterFlag = 0x00000000
	AdapterFlagUseTls            AdapterFlag = 0x00000001
	AdapterFlagCloudServices     AdapterFlag = 0x00000002
	AdapterFlagEnableLogs        AdapterFlag = 0x00000004
	AdapterFlagRequiresPolling   AdapterFlag = 0x00000008
	AdapterFlagSupportsDiscovery AdapterFlag = 0x00000010
	AdapterFlagSupportsProbe     AdapterFlag = 0x00000020
	AdapterFlagSupportsRename    AdapterFlag = 0x00000040
)

func (v AdapterFlag) Has(flag AdapterFlag) bool { return v&flag == flag }

// AdapterConfigFieldType is the closed set of config field widget kinds.
type AdapterConfigFieldType uint8

const (
	FieldTypeString   AdapterConfigFieldType = 0
	FieldTypePassword AdapterConfigFieldType = 1
	FieldTypeInteger  AdapterConfigFieldType = 2
	FieldTypeBoolean  AdapterConfigFieldType = 3
	FieldTypeHostname AdapterConfigFieldType = 4
	FieldTypePort     AdapterConfigFieldType = 5
	FieldTypeQrCode   AdapterConfigFieldType = 6
	FieldTypeSelect   AdapterConfigFieldType = 7
	FieldTypeAction   AdapterConfigFieldType = 8
)

// AdapterConfigLabelPosition places a field's label relative to its control.
type AdapterConfigLabelPosition uint8

const (
	LabelPositionTop   AdapterConfigLabelPosition = 0
	LabelPositionLeft  AdapterConfigLabelPosition = 1
	LabelPositionRight AdapterConfigLabelPosition = 2
)

// AdapterConfigActionPosition places an inline action button.
type AdapterConfigActionPosition uint8

const (
	ActionPositionNone   AdapterConfigActionPosition = 0
	ActionPositionInline AdapterConfigActionPosition = 1
	ActionPositionBelow  AdapterConfigActionPosition = 2
)

// AdapterConfigVisibilityOp is the comparator for conditional field visibility.
type AdapterConfigVisibilityOp uint8

const (
	VisibilityEquals   AdapterConfigVisibilityOp = 0
	VisibilityContains AdapterConfigVisibilityOp = 1
)

// AdapterConfigFieldFlag is a bitmask of config field behaviors.
type AdapterConfigFieldFlag uint8

const (
	FieldFlagNone         AdapterConfigFieldFlag = 0x00
	FieldFlagRequired     AdapterConfigFieldFlag = 0x01
	FieldFlagSecret       AdapterConfigFieldFlag = 0x02
	FieldFlagReadOnly     AdapterConfigFieldFlag = 0x04
	FieldFlagTransient    AdapterConfigFieldFlag = 0x08
	FieldFlagMulti        AdapterConfigFieldFlag = 0x10
	FieldFlagInstanceOnly AdapterConfigFieldFlag = 0x20
)

func (v AdapterConfigFieldFlag) Has(flag AdapterConfigFieldFlag) bool { return v&flag == flag }

// AdapterRequirement is a bitmask of adapter setup requirements.
type AdapterRequirement uint32

const (
	RequirementNone              AdapterRequirement = 0x00000000
	RequirementHost              AdapterRequirement = 0x00000001
	RequirementPort              AdapterRequirement = 0x00000002
	RequirementUsername          AdapterRequirement = 0x00000004
	RequirementPassword          AdapterRequirement = 0x00000008
	RequirementAppKey            AdapterRequirement = 0x00000010
	RequirementToken             AdapterRequirement = 0x00000020
	RequirementQrCode            AdapterRequirement = 0x00000040
	RequirementSupportsTls       AdapterRequirement = 0x00000080
	RequirementManualConfirm     AdapterRequirement = 0x00000100
	RequirementUsesRetryInterval AdapterRequirement = 0x00000200
)

func (v AdapterRequirement) Has(flag AdapterRequirement) bool { return v&flag == flag }
