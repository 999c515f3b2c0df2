// Package component builds configured instances from declarative descriptors.
package component

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/corekit/internal/ctxlog"
)

// ErrConfiguration is returned when a descriptor lacks a type identifier or
// is of an unsupported kind.
var ErrConfiguration = errors.New("component: invalid configuration")

// Resolver turns a type name into a bound definition. A miss is reported via
// the boolean, not an error, so optional types can be probed cheaply.
type Resolver interface {
	Resolve(ctx context.Context, name string) (*Definition, bool, error)
}

// PropertySetter lets a component take over property assignment instead of
// the reflective field overlay.
type PropertySetter interface {
	SetProperty(name string, value any) error
}

// NewFactory returns a Factory backed by the given resolver.
func NewFactory(resolver Resolver) *ComponentFactory {
	return &ComponentFactory{resolver: resolver}
}

// ComponentFactory constructs instances from descriptors.
type ComponentFactory struct {
	resolver Resolver
}

// Construct builds an instance from desc, forwarding ctorArgs to the
// component's factory. desc is either a bare type-name string (no properties
// applied) or a Descriptor whose Type field identifies the component; a
// Descriptor without a Type fails with ErrConfiguration.
//
// The bound definition's defaults are applied first, then the descriptor's
// own properties, each in order; later keys overwrite earlier ones. The
// overlay performs no validation of property values.
func (f *ComponentFactory) Construct(ctx context.Context, desc any, ctorArgs ...any) (any, error) {
	name, props, err := splitDescriptor(desc)
	if err != nil {
		return nil, err
	}

	def, ok, err := f.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("component: type %q is not resolvable", name)
	}

	instance := def.New(ctorArgs...)
	ctxlog.Trace(ctx, fmt.Sprintf("constructed component %q", name), "component")

	for _, p := range def.Defaults {
		if err := applyProperty(instance, p.Name, p.Value); err != nil {
			return nil, fmt.Errorf("component %q: default %q: %w", name, p.Name, err)
		}
	}
	for _, p := range props {
		if err := applyProperty(instance, p.Name, p.Value); err != nil {
			return nil, fmt.Errorf("component %q: property %q: %w", name, p.Name, err)
		}
	}
	return instance, nil
}

// splitDescriptor normalizes the accepted descriptor forms.
func splitDescriptor(desc any) (string, []Property, error) {
	switch d := desc.(type) {
	case string:
		if d == "" {
			return "", nil, fmt.Errorf("%w: empty type name", ErrConfiguration)
		}
		return d, nil, nil
	case *Descriptor:
		if d == nil || d.Type == "" {
			return "", nil, fmt.Errorf("%w: descriptor has no type", ErrConfiguration)
		}
		return d.Type, d.Properties, nil
	case Descriptor:
		if d.Type == "" {
			return "", nil, fmt.Errorf("%w: descriptor has no type", ErrConfiguration)
		}
		return d.Type, d.Properties, nil
	default:
		return "", nil, fmt.Errorf("%w: unsupported descriptor %T", ErrConfiguration, desc)
	}
}

// applyProperty assigns one named value onto an instance. Components
// implementing PropertySetter receive the value as-is; otherwise the value is
// set on the exported struct field matching the name via a `prop` tag or,
// failing that, a case-insensitive name comparison.
func applyProperty(instance any, name string, value any) error {
	if setter, ok := instance.(PropertySetter); ok {
		return setter.SetProperty(name, value)
	}

	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("instance %T does not accept properties", instance)
	}
	elem := rv.Elem()
	field, ok := fieldByProperty(elem.Type(), name)
	if !ok {
		return fmt.Errorf("no field for property on %T", instance)
	}

	target := elem.FieldByIndex(field.Index)
	if !target.CanSet() {
		return fmt.Errorf("field %s on %T is not settable", field.Name, instance)
	}
	if value == nil {
		target.SetZero()
		return nil
	}

	val := reflect.ValueOf(value)
	switch {
	case val.Type().AssignableTo(target.Type()):
		target.Set(val)
	case val.Type().ConvertibleTo(target.Type()):
		target.Set(val.Convert(target.Type()))
	default:
		return fmt.Errorf("cannot assign %T to field %s (%s)", value, field.Name, target.Type())
	}
	return nil
}

// fieldByProperty finds the exported struct field for a property name,
// preferring an explicit `prop` tag over a case-insensitive field-name match.
func fieldByProperty(t reflect.Type, name string) (reflect.StructField, bool) {
	var fallback reflect.StructField
	var haveFallback bool
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if tag := field.Tag.Get("prop"); tag != "" {
			if strings.Split(tag, ",")[0] == name {
				return field, true
			}
			continue
		}
		if !haveFallback && strings.EqualFold(field.Name, name) {
			fallback = field
			haveFallback = true
		}
	}
	return fallback, haveFallback
}
