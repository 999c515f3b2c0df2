package component

// Factory constructs a new component instance. Positional arguments are
// forwarded from the construction site; implementations are free to ignore
// them.
type Factory func(args ...any) any

// Property is a single named value applied to an instance after construction.
// Properties are kept as an ordered slice so overlay order is deterministic.
type Property struct {
	Name  string
	Value any
}

// Definition is the bound form of a component type: its name, the compiled
// factory that builds instances, and the default properties collected from
// its definition file (parents first when the definition extends another).
type Definition struct {
	// Name is the component type name.
	Name string
	// Impl is the compiled factory key. Empty means the factory is keyed by
	// Name itself.
	Impl string
	// Extends names a parent definition whose defaults this one inherits.
	Extends string
	// Defaults are applied, in order, to every freshly constructed instance
	// before any descriptor properties.
	Defaults []Property
	// New builds an instance. Populated when the definition is bound.
	New Factory
}
