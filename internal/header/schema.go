package header

import (
	"fmt"

	"github.com/udisondev/worldfile/internal/binutil"
)

// FieldKind names the wire representation of one schema field.
type FieldKind int

const (
	FieldU8 FieldKind = iota
	FieldI16
	FieldI32
	FieldI64
	FieldF32
	FieldF64
	FieldBool
	FieldString
	FieldGUID16
	FieldList
)

// FieldDesc is one entry of a version's ordered field schema. Guard, if
// set, gates whether the field is present for a given version; fields
// without a Guard are always read. List fields read ElemKind
// ListLength(bag-so-far) times.
type FieldDesc struct {
	Name       string
	Kind       FieldKind
	Guard      func(version int32) bool
	ElemKind   FieldKind
	ListLength func(soFar Bag) int
}

// Schema is the ordered field sequence for one version.
type Schema []FieldDesc

// InitFailureError is returned when the schema table itself is
// malformed (e.g. a list field with a nil ListLength).
type InitFailureError struct {
	Reason string
}

func (e *InitFailureError) Error() string {
	return fmt.Sprintf("header schema init failure: %s", e.Reason)
}

// Decode reads the header blob per the schema registered for version.
// If no schema is registered for exactly that version, the highest
// registered version not exceeding it is used — this is what lets the
// schema table describe "field added at version N" without every
// version needing its own literal entry.
func Decode(h *binutil.Handle, version int32, table map[int32]Schema) (Bag, error) {
	schema, err := resolveSchema(version, table)
	if err != nil {
		return nil, err
	}

	bag := make(Bag, len(schema))
	for _, fd := range schema {
		if fd.Guard != nil && !fd.Guard(version) {
			continue
		}
		v, err := decodeField(h, fd, bag)
		if err != nil {
			return nil, err
		}
		bag[fd.Name] = v
	}
	return bag, nil
}

func resolveSchema(version int32, table map[int32]Schema) (Schema, error) {
	if table == nil {
		return nil, &InitFailureError{Reason: "nil schema table"}
	}
	var bestVersion int32 = -1
	var best Schema
	found := false
	for v, s := range table {
		if v <= version && (!found || v > bestVersion) {
			bestVersion = v
			best = s
			found = true
		}
	}
	if !found {
		return nil, &InitFailureError{Reason: fmt.Sprintf("no schema registered for version %d or earlier", version)}
	}
	return best, nil
}

func decodeField(h *binutil.Handle, fd FieldDesc, soFar Bag) (Value, error) {
	switch fd.Kind {
	case FieldU8:
		v, err := h.R8()
		return U8Value(v), err
	case FieldI16:
		v, err := h.R16()
		return I16Value(v), err
	case FieldI32:
		v, err := h.R32()
		return I32Value(v), err
	case FieldI64:
		v, err := h.R64()
		return I64Value(v), err
	case FieldF32:
		v, err := h.RF()
		return F32Value(v), err
	case FieldF64:
		v, err := h.RD()
		return F64Value(v), err
	case FieldBool:
		v, err := h.RBool()
		return BoolValue(v), err
	case FieldString:
		v, err := h.RS()
		return StringValue(v), err
	case FieldGUID16:
		v, err := h.ReadBytes(16)
		return BytesValue(v), err
	case FieldList:
		if fd.ListLength == nil {
			return Value{}, &InitFailureError{Reason: fmt.Sprintf("field %q: list kind without ListLength", fd.Name)}
		}
		n := fd.ListLength(soFar)
		elems := make([]Value, 0, n)
		for i := 0; i < n; i++ {
			v, err := decodeField(h, FieldDesc{Name: fd.Name, Kind: fd.ElemKind}, soFar)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return ListValue(elems), nil
	default:
		return Value{}, &InitFailureError{Reason: fmt.Sprintf("field %q: unknown kind %d", fd.Name, fd.Kind)}
	}
}
