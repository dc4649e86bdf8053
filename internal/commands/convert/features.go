package convertcmd

// FeatureGates exposes the runtime feature toggles required by conversion
// command handlers. Callers supply closures reading from the module
// configuration so handlers stay decoupled from it while honouring flags.
type FeatureGates struct {
	ConvertEnabled func() bool
}

func (g FeatureGates) convertEnabled() bool {
	if g.ConvertEnabled == nil {
		return true
	}
	return g.ConvertEnabled()
}
