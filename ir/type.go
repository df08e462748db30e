package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	DecimalType
	StringType
	ObjectType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		IntegerType: "Integer",
		DecimalType: "Decimal",
		StringType:  "String",
		ObjectType:  "Object",
		ListType:    "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Bool":    BoolType,
		"Integer": IntegerType,
		"Decimal": DecimalType,
		"String":  StringType,
		"Object":  ObjectType,
		"List":    ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		DecimalType,
		StringType,
		ObjectType,
		ListType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ListType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	return t == IntegerType || t == DecimalType
}
