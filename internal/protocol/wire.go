package protocol

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// field is one decoded tag/value pair. Scalar values land in v, length-delimited values in b.
type field struct {
	num protowire.Number
	typ protowire.Type
	v   uint64
	b   []byte
}

// eachField walks every top-level field of a message.
func eachField(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.v, n = protowire.ConsumeVarint(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.v = uint64(v)
		case protowire.Fixed64Type:
			f.v, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.b, n = protowire.ConsumeBytes(b)
		default:
			// groups are skipped whole
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func (f field) expect(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("field %d: wire type %d, want %d", f.num, f.typ, typ)
	}
	return nil
}

func (f field) int32() (int32, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return 0, err
	}
	return int32(f.v), nil
}

func (f field) bool() (bool, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return false, err
	}
	return protowire.DecodeBool(f.v), nil
}

func (f field) float32() (float32, error) {
	if err := f.expect(protowire.Fixed32Type); err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(f.v)), nil
}

func (f field) float64() (float64, error) {
	if err := f.expect(protowire.Fixed64Type); err != nil {
		return 0, err
	}
	return math.Float64frombits(f.v), nil
}

func (f field) fixed64() (uint64, error) {
	if err := f.expect(protowire.Fixed64Type); err != nil {
		return 0, err
	}
	return f.v, nil
}

func (f field) bytes() ([]byte, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return nil, err
	}
	return f.b, nil
}

// repeatedInt32 accepts both packed and unpacked encodings.
func (f field) repeatedInt32(dst []int32) ([]int32, error) {
	if f.typ == protowire.VarintType {
		return append(dst, int32(f.v)), nil
	}
	if err := f.expect(protowire.BytesType); err != nil {
		return dst, err
	}
	b := f.b
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return dst, protowire.ParseError(n)
		}
		dst = append(dst, int32(v))
		b = b[n:]
	}
	return dst, nil
}

// repeatedFloat32 accepts both packed and unpacked encodings.
func (f field) repeatedFloat32(dst []float32) ([]float32, error) {
	if f.typ == protowire.Fixed32Type {
		return append(dst, math.Float32frombits(uint32(f.v))), nil
	}
	if err := f.expect(protowire.BytesType); err != nil {
		return dst, err
	}
	b := f.b
	for len(b) > 0 {
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return dst, protowire.ParseError(n)
		}
		dst = append(dst, math.Float32frombits(v))
		b = b[n:]
	}
	return dst, nil
}
