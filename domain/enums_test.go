package domain

import "testing"

func TestChannelFlagHas(t *testing.T) {
	v := ChannelFlagReadable | ChannelFlagWritable
	if !v.Has(ChannelFlagReadable) {
		t.Error("expected Has(Readable) true")
	}
	if !v.Has(ChannelFlagReadable | ChannelFlagWritable) {
		t.Error("expected Has(Readable|Writable) true")
	}
	if v.Has(ChannelFlagReportable) {
		t.Error("expected Has(Reportable) false")
	}
	if v.Has(ChannelFlagReadable | ChannelFlagReportable) {
		t.Error("expected Has of a mixed set with an absent bit to be false")
	}
}

func TestChannelFlagDefaults(t *testing.T) {
	if !ChannelFlagDefaultWrite.Has(ChannelFlagWritable) {
		t.Error("default write flags should include Writable")
	}
	if ChannelFlagDefaultRead.Has(ChannelFlagWritable) {
		t.Error("default read flags should not include Writable")
	}
}

func TestDeviceFlagHas(t *testing.T) {
	v := DeviceFlagWireless | DeviceFlagBattery
	if !v.Has(DeviceFlagBattery) {
		t.Error("expected Has(Battery) true")
	}
	if v.Has(DeviceFlagBle) {
		t.Error("expected Has(Ble) false")
	}
	if v.Has(DeviceFlagNone) != true {
		t.Error("Has(None) should always be true, all bits of zero are trivially set")
	}
}

func TestSceneFlagHas(t *testing.T) {
	v := SceneFlagOriginAdapter | SceneFlagSupportsDynamic
	if !v.Has(SceneFlagSupportsDynamic) {
		t.Error("expected Has(SupportsDynamic) true")
	}
	if v.Has(SceneFlagSupportsDeactivate) {
		t.Error("expected Has(SupportsDeactivate) false")
	}
}

func TestAdapterFlagHas(t *testing.T) {
	v := AdapterFlagUseTls | AdapterFlagSupportsDiscovery
	if !v.Has(AdapterFlagUseTls) {
		t.Error("expected Has(UseTls) true")
	}
	if v.Has(AdapterFlagSupportsRename) {
		t.Error("expected Has(SupportsRename) false")
	}
}

func TestAdapterConfigFieldFlagHas(t *testing.T) {
	v := FieldFlagRequired | FieldFlagReadOnly
	if !v.Has(FieldFlagRequired) {
		t.Error("expected Has(Required) true")
	}
	if v.Has(FieldFlagSecret) {
		t.Error("expected Has(Secret) false")
	}
}

func TestAdapterRequirementHas(t *testing.T) {
	v := RequirementHost | RequirementPort
	if !v.Has(RequirementHost | RequirementPort) {
		t.Error("expected Has of both bits true")
	}
	if v.Has(RequirementUsername) {
		t.Error("expected Has(Username) false")
	}
}
