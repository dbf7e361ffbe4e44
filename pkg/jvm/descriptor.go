package jvm

import (
	"fmt"
	"strings"
)

// Type is a JVM field type as it appears inside a method descriptor.
type Type struct {
	code  byte   // primitive code, 'L' for objects, 0 invalid
	class string // internal class name, objects only
	dims  int    // array dimensions
}

// Primitive types and the void return type.
var (
	Byte    = Type{code: 'B'}
	Char    = Type{code: 'C'}
	Double  = Type{code: 'D'}
	Float   = Type{code: 'F'}
	Int     = Type{code: 'I'}
	Long    = Type{code: 'J'}
	Short   = Type{code: 'S'}
	Boolean = Type{code: 'Z'}
	Void    = Type{code: 'V'}
)

// Object returns the reference type for the given internal class name,
// e.g. Object("java/lang/String") encodes as "Ljava/lang/String;".
func Object(internalName string) Type {
	return Type{code: 'L', class: internalName}
}

// Array returns t with dims additional array dimensions.
func Array(dims int, elem Type) Type {
	elem.dims += dims
	return elem
}

// Descriptor renders the type in descriptor form.
func (t Type) Descriptor() string {
	var b strings.Builder
	for i := 0; i < t.dims; i++ {
		b.WriteByte('[')
	}
	if t.code == 'L' {
		b.WriteByte('L')
		b.WriteString(t.class)
		b.WriteByte(';')
	} else {
		b.WriteByte(t.code)
	}
	return b.String()
}

// ClassName returns the internal class name for reference types and ""
// for primitives.
func (t Type) ClassName() string { return t.class }

// Method identifies one method by name and descriptor, the pair the
// instrumentation layer extracts per call site. The descriptor is
// computed once at construction and never changes.
type Method struct {
	Name       string
	Descriptor string
}

// NewMethod builds a Method whose descriptor is derived from the
// parameter and return types, e.g. NewMethod("render", []Type{Int}, Void)
// yields descriptor "(I)V".
func NewMethod(name string, params []Type, ret Type) Method {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range params {
		b.WriteString(p.Descriptor())
	}
	b.WriteByte(')')
	b.WriteString(ret.Descriptor())
	return Method{Name: name, Descriptor: b.String()}
}

// MethodDescriptor builds just the descriptor string for the given
// signature.
func MethodDescriptor(params []Type, ret Type) string {
	return NewMethod("", params, ret).Descriptor
}

// ParseMethodDescriptor parses a method descriptor of the form
// "(<params>)<return>" into its component types. It is strict: trailing
// bytes, missing parentheses, or unknown type codes are errors.
func ParseMethodDescriptor(desc string) (params []Type, ret Type, err error) {
	if len(desc) == 0 || desc[0] != '(' {
		return nil, Type{}, fmt.Errorf("method descriptor %q: missing '('", desc)
	}

	pos := 1
	for pos < len(desc) && desc[pos] != ')' {
		t, next, perr := parseType(desc, pos)
		if perr != nil {
			return nil, Type{}, fmt.Errorf("method descriptor %q: %w", desc, perr)
		}
		if t.code == 'V' {
			return nil, Type{}, fmt.Errorf("method descriptor %q: void parameter at index %d", desc, pos)
		}
		params = append(params, t)
		pos = next
	}
	if pos >= len(desc) {
		return nil, Type{}, fmt.Errorf("method descriptor %q: missing ')'", desc)
	}
	pos++ // consume ')'

	ret, next, perr := parseType(desc, pos)
	if perr != nil {
		return nil, Type{}, fmt.Errorf("method descriptor %q: %w", desc, perr)
	}
	if next != len(desc) {
		return nil, Type{}, fmt.Errorf("method descriptor %q: trailing bytes at index %d", desc, next)
	}
	return params, ret, nil
}

// ValidMethodDescriptor reports whether desc parses as a method
// descriptor.
func ValidMethodDescriptor(desc string) bool {
	_, _, err := ParseMethodDescriptor(desc)
	return err == nil
}

// parseType parses one field type starting at pos and returns the type
// and the index just past it.
func parseType(desc string, pos int) (Type, int, error) {
	dims := 0
	for pos < len(desc) && desc[pos] == '[' {
		dims++
		pos++
	}
	if pos >= len(desc) {
		return Type{}, 0, fmt.Errorf("truncated type at index %d", pos)
	}

	c := desc[pos]
	switch c {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return Type{code: c, dims: dims}, pos + 1, nil
	case 'V':
		if dims > 0 {
			return Type{}, 0, fmt.Errorf("array of void at index %d", pos)
		}
		return Type{code: 'V'}, pos + 1, nil
	case 'L':
		end := strings.IndexByte(desc[pos:], ';')
		if end < 0 {
			return Type{}, 0, fmt.Errorf("unterminated class type at index %d", pos)
		}
		name := desc[pos+1 : pos+end]
		if name == "" {
			return Type{}, 0, fmt.Errorf("empty class name at index %d", pos)
		}
		return Type{code: 'L', class: name, dims: dims}, pos + end + 1, nil
	default:
		return Type{}, 0, fmt.Errorf("unknown type code %q at index %d", string(c), pos)
	}
}
