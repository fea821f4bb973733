package domain

// Scene is a stored or dynamic activation of device/channel state.
type Scene struct {
	ExternalID       ExternalId
	Name             string
	Description      string
	ScopeExternalID  ExternalId
	ScopeType        string
	AvatarColor      string
	Image            string
	PresetTag        string
	State            SceneState
	Flags            SceneFlag
	MetaJSON         JsonText
}
