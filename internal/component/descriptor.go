package component

// Descriptor declares what to construct and how to configure it: a type name
// plus an ordered list of properties overlaid on the instance after
// construction. A bare type-name string is also accepted anywhere a
// Descriptor is.
type Descriptor struct {
	Type       string
	Properties []Property
}

// Set appends a property to the descriptor and returns it, for fluent
// construction in code.
func (d *Descriptor) Set(name string, value any) *Descriptor {
	d.Properties = append(d.Properties, Property{Name: name, Value: value})
	return d
}
