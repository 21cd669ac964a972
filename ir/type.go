package ir

type Type int

const (
	InvalidType Type = iota
	NullType
	BoolType
	NumberType
	StringType
	RawType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	return map[Type]string{
		InvalidType: "invalid",
		NullType:    "null",
		BoolType:    "bool",
		NumberType:  "number",
		StringType:  "string",
		RawType:     "raw",
		ArrayType:   "array",
		ObjectType:  "object",
	}[t]
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		RawType,
		ArrayType,
		ObjectType,
	}
}
