package argparse

// ArgType is the type tag of a defined argument.
type ArgType int

const (
	// ArgTypeInt holds a signed 32-bit range integer.
	ArgTypeInt ArgType = iota
	// ArgTypeDouble holds a finite float64.
	ArgTypeDouble
	// ArgTypeString holds an optional string.
	ArgTypeString
	// ArgTypeBool is a flag; its presence sets it to true.
	ArgTypeBool
	// ArgTypeIntList accumulates integers.
	ArgTypeIntList
	// ArgTypeDoubleList accumulates floats.
	ArgTypeDoubleList
	// ArgTypeStringList accumulates strings.
	ArgTypeStringList
)

// String returns a short name for the type.
func (t ArgType) String() string {
	switch t {
	case ArgTypeInt:
		return "int"
	case ArgTypeDouble:
		return "double"
	case ArgTypeString:
		return "string"
	case ArgTypeBool:
		return "bool"
	case ArgTypeIntList:
		return "[]int"
	case ArgTypeDoubleList:
		return "[]double"
	case ArgTypeStringList:
		return "[]string"
	default:
		return "unknown"
	}
}

// IsList reports whether t is one of the list variants.
func (t ArgType) IsList() bool {
	return t == ArgTypeIntList || t == ArgTypeDoubleList || t == ArgTypeStringList
}

// Elem returns the scalar element type of a list type, or t itself.
func (t ArgType) Elem() ArgType {
	switch t {
	case ArgTypeIntList:
		return ArgTypeInt
	case ArgTypeDoubleList:
		return ArgTypeDouble
	case ArgTypeStringList:
		return ArgTypeString
	default:
		return t
	}
}

// listOf returns the list variant of a scalar element type.
func listOf(elem ArgType) (ArgType, bool) {
	switch elem {
	case ArgTypeInt, ArgTypeIntList:
		return ArgTypeIntList, true
	case ArgTypeDouble, ArgTypeDoubleList:
		return ArgTypeDoubleList, true
	case ArgTypeString, ArgTypeStringList:
		return ArgTypeStringList, true
	default:
		return 0, false
	}
}

// DelimiterSeparate is the default list delimiter: every value is its own token.
const DelimiterSeparate byte = ' '

// Argument is one declared option. Only the parse driver mutates it,
// through its value store and set flag.
type Argument struct {
	Short     string
	Long      string
	Type      ArgType
	Help      string
	Required  bool
	Suffix    byte // GNU joining character, 0 when disabled
	Delimiter byte // list delimiter, DelimiterSeparate by default

	set       bool
	value     valueStore
	validator any
}

// IsSet reports whether a value was assigned during parsing.
func (a *Argument) IsSet() bool { return a.set }

// IsList is derived from the type tag.
func (a *Argument) IsList() bool { return a.Type.IsList() }

// primaryName prefers the short name; used for syntax and required errors.
func (a *Argument) primaryName() string {
	if a.Short != "" {
		return a.Short
	}
	return a.Long
}

// label prefers the long name; used for conversion errors.
func (a *Argument) label() string {
	if a.Long != "" {
		return a.Long
	}
	return a.Short
}

// matches reports an exact, case-sensitive name match.
func (a *Argument) matches(name string) bool {
	return name != "" && (a.Short == name || a.Long == name)
}
