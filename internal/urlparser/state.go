package urlparser

// State names one of the twelve-ish parser states of spec.md section 4.5.
// Modelled as a plain tagged enumeration per the design notes: no
// polymorphic state type, just a dispatch on this tag.
type State int

const (
	StateSchemeStart State = iota
	StateScheme
	StateNoScheme
	StateSpecialRelativeOrAuthority
	StatePathOrAuthority
	StateRelative
	StateRelativeSlash
	StateSpecialAuthoritySlashes
	StateSpecialAuthorityIgnoreSlashes
	StateAuthority
	StateHost
	StateHostname
	StatePort
	StateFile
	StateFileSlash
	StateFileHost
	StatePathStart
	StatePath
	StateCannotBeABaseURLPath
	StateQuery
	StateFragment
)

// action is the transition result a state function returns, per the design
// notes' explicit discriminated result (not cursor peek/unpeek).
type action int

const (
	actionIncrement action = iota
	actionContinue
	actionSuccess
)
