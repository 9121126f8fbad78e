package syntax

// Kind is the syntactic category of an Item.
type Kind uint8

const (
	Verbatim Kind = iota
	Mod
	Fn
	Struct
	Enum
	Union
	Trait
	TraitAlias
	Impl
	TypeAlias
	Const
	Static
	Use
	ExternCrate
	ForeignMod
	MacroRules
	MacroCall
	Field
	Variant
	Stmt
)

var kindNames = [...]string{
	Verbatim:    "Verbatim",
	Mod:         "Mod",
	Fn:          "Fn",
	Struct:      "Struct",
	Enum:        "Enum",
	Union:       "Union",
	Trait:       "Trait",
	TraitAlias:  "TraitAlias",
	Impl:        "Impl",
	TypeAlias:   "TypeAlias",
	Const:       "Const",
	Static:      "Static",
	Use:         "Use",
	ExternCrate: "ExternCrate",
	ForeignMod:  "ForeignMod",
	MacroRules:  "MacroRules",
	MacroCall:   "MacroCall",
	Field:       "Field",
	Variant:     "Variant",
	Stmt:        "Stmt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
