package compat

// Engine is a runtime whose support history the compatibility data tracks.
// ENUM(chrome, deno, edge, firefox, ie, ios, node, opera, safari)
type Engine int

// IsBrowser reports whether the engine renders CSS. Constraints for the
// remaining engines never influence stylesheet decisions.
func (e Engine) IsBrowser() bool {
	switch e {
	case EngineChrome, EngineEdge, EngineFirefox, EngineIe, EngineIos, EngineOpera, EngineSafari:
		return true
	default:
		return false
	}
}
