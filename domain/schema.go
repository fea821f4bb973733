package domain

// Adapter is the effective configuration of one adapter instance as sent by
// phi-core in a bootstrap request.
type Adapter struct {
	Name string
	Host string
	IP   string
	Port uint16
	User string
	// Password is populated from either the "pw" or "password" bootstrap
	// field, first one wins per the spec's alias tolerance rules.
	Password string
	Token    string

	PluginType string
	ExternalID ExternalId
	MetaJSON   JsonText
	Flags      AdapterFlag
}

// AdapterConfigOption is one selectable value in a select-type config field
// or channel choice list.
type AdapterConfigOption struct {
	Value string
	Label string
}

// AdapterConfigResponsiveInt is a breakpoint-keyed integer used for grid
// layout spans (xs..xxl).
type AdapterConfigResponsiveInt struct {
	Xs, Sm, Md, Lg, Xl, Xxl int
}

// AdapterConfigFieldVisibility conditions a field's visibility on another
// field's value.
type AdapterConfigFieldVisibility struct {
	FieldKey string
	Value    ScalarValue
	Op       AdapterConfigVisibilityOp
}

// AdapterConfigFieldLayout places a field within its section's grid.
type AdapterConfigFieldLayout struct {
	Span               AdapterConfigResponsiveInt
	Position           int
	HasLabelPosition   bool
	LabelPosition      AdapterConfigLabelPosition
	LabelSpan          int
	ControlSpan        int
	HasActionPosition  bool
	ActionPosition     AdapterConfigActionPosition
	ActionSpan         int
}

// AdapterConfigField describes one form control in an adapter's config UI.
type AdapterConfigField struct {
	Key  string
	Type AdapterConfigFieldType

	Label       string
	Description string
	ActionID    string
	ActionLabel string

	Placeholder  string
	DefaultValue ScalarValue

	Visibility     AdapterConfigFieldVisibility
	Layout         AdapterConfigFieldLayout
	ParentActionID string

	Options  []AdapterConfigOption
	MetaJSON JsonText
	Flags    AdapterConfigFieldFlag
}

// AdapterConfigSectionLayoutDefaults are the fallback layout values applied
// to any field in a section that doesn't override them.
type AdapterConfigSectionLayoutDefaults struct {
	Span           AdapterConfigResponsiveInt
	LabelPosition  AdapterConfigLabelPosition
	LabelSpan      int
	ControlSpan    int
	ActionPosition AdapterConfigActionPosition
	ActionSpan     int
}

// AdapterConfigSectionLayout is the grid definition for one config section.
type AdapterConfigSectionLayout struct {
	GridUnits int
	GutterX   int
	GutterY   int
	Defaults  AdapterConfigSectionLayoutDefaults
}

// AdapterConfigSection is one group of config fields (factory or instance).
type AdapterConfigSection struct {
	Title       string
	Description string
	Layout      AdapterConfigSectionLayout
	Fields      []AdapterConfigField
}

// AdapterConfigSchema splits config fields between factory-time (choosing
// which adapter to add) and instance-time (configuring one instance) forms.
type AdapterConfigSchema struct {
	Factory  AdapterConfigSection
	Instance AdapterConfigSection
}

// AdapterActionDescriptor advertises one invokable adapter- or
// factory-scoped action.
type AdapterActionDescriptor struct {
	ID          string
	Label       string
	Description string
	HasForm     bool
	Danger      bool
	CooldownMs  int
	ConfirmJSON JsonText
	MetaJSON    JsonText
}

// AdapterCapabilities is the static capability set of an adapter plugin.
type AdapterCapabilities struct {
	Required        AdapterRequirement
	Optional        AdapterRequirement
	Flags           AdapterFlag
	FactoryActions  []AdapterActionDescriptor
	InstanceActions []AdapterActionDescriptor
	DefaultsJSON    JsonText
}

// AdapterDescriptor is the first-class static descriptor a typed adapter
// (component F) sends to phi-core on bootstrap, replacing static meta
// transport for identity, capabilities, and config layout.
type AdapterDescriptor struct {
	PluginType       string
	DisplayName      string
	Description      string
	APIVersion       string
	IconSVG          string
	ImageBase64      string
	TimeoutMs        int
	MaxInstances     int
	Capabilities     AdapterCapabilities
	ConfigSchemaJSON JsonText
}

// DefaultSectionLayout returns the C++ defaults: 24 grid units,
// label span 8, control span 16.
func DefaultSectionLayout() AdapterConfigSectionLayout {
	return AdapterConfigSectionLayout{
		GridUnits: 24,
		GutterX:   12,
		GutterY:   8,
		Defaults: AdapterConfigSectionLayoutDefaults{
			LabelPosition: LabelPositionLeft,
			LabelSpan:     8,
			ControlSpan:   16,
			ActionSpan:    6,
		},
	}
}
