package profile

// FeatureState encodes two orthogonal booleans (is the feature enabled, and
// is the setting mandatory for the consuming backend) as one tagged value.
// Every feature-gated setting in a profile uses this type.
type FeatureState string

const (
	MandatoryOn  FeatureState = "mandatory_on"
	MandatoryOff FeatureState = "mandatory_off"
	OptionalOn   FeatureState = "optional_on"
	OptionalOff  FeatureState = "optional_off"
)

// EncodeFeatureState builds the tagged value from its two booleans.
// DecodeFeatureState(EncodeFeatureState(e, m)) == (e, m) for all four
// combinations.
func EncodeFeatureState(enabled, mandatory bool) FeatureState {
	switch {
	case enabled && mandatory:
		return MandatoryOn
	case !enabled && mandatory:
		return MandatoryOff
	case enabled:
		return OptionalOn
	default:
		return OptionalOff
	}
}

// DecodeFeatureState splits the tagged value back into its two booleans.
// Invalid values decode as (false, false).
func DecodeFeatureState(s FeatureState) (enabled, mandatory bool) {
	switch s {
	case MandatoryOn:
		return true, true
	case MandatoryOff:
		return false, true
	case OptionalOn:
		return true, false
	default:
		return false, false
	}
}

// Enabled reports whether the feature is turned on.
func (s FeatureState) Enabled() bool {
	enabled, _ := DecodeFeatureState(s)
	return enabled
}

// Mandatory reports whether the setting is forced for the backend.
func (s FeatureState) Mandatory() bool {
	_, mandatory := DecodeFeatureState(s)
	return mandatory
}

// Valid reports whether s is one of the four variants.
func (s FeatureState) Valid() bool {
	switch s {
	case MandatoryOn, MandatoryOff, OptionalOn, OptionalOff:
		return true
	}
	return false
}

// Cycle advances to the next variant in display order. Used by the wizard to
// step a feature field with a single key.
func (s FeatureState) Cycle() FeatureState {
	switch s {
	case OptionalOff:
		return OptionalOn
	case OptionalOn:
		return MandatoryOn
	case MandatoryOn:
		return MandatoryOff
	default:
		return OptionalOff
	}
}

// FeatureStates lists the variants in display order.
func FeatureStates() []FeatureState {
	return []FeatureState{OptionalOff, OptionalOn, MandatoryOn, MandatoryOff}
}

// WinecfgFeaturePolicy layers a tri-state (wine default / forced on / forced
// off) on top of FeatureState. When UseWineDefault is true the backend
// ignores State, but State must still hold a valid value so the profile
// round-trips losslessly.
type WinecfgFeaturePolicy struct {
	State          FeatureState `json:"state"`
	UseWineDefault bool         `json:"use_wine_default"`
}
