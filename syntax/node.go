// Package syntax models the subset of the program syntax tree that doc
// block grammars and name resolution consume. The tree itself is built by
// an external parser; a semantic pass attaches resolved names and parent
// links before name resolution runs.
//
// The set of node types is closed. Every type implements Accept, and
// Visitor has one method per type, so adding a node type breaks every
// visitor until it handles the new case.
package syntax

type Node interface {
	Accept(v Visitor)
	Kind() Kind
}

type Visitor interface {
	VisitName(n *Name)
	VisitIdentifier(n *Identifier)
	VisitClass(n *Class)
	VisitInterface(n *Interface)
	VisitTrait(n *Trait)
	VisitEnum(n *Enum)
	VisitFunction(n *Function)
	VisitClassMethod(n *ClassMethod)
	VisitClassConst(n *ClassConst)
	VisitConst(n *Const)
	VisitProperty(n *Property)
	VisitPropertyItem(n *PropertyItem)
	VisitUse(n *Use)
	VisitUseItem(n *UseItem)
	VisitParam(n *Param)
	VisitVariable(n *Variable)
	VisitClassConstFetch(n *ClassConstFetch)
	VisitStaticCall(n *StaticCall)
	VisitMethodCall(n *MethodCall)
	VisitFuncCall(n *FuncCall)
	VisitPropertyFetch(n *PropertyFetch)
	VisitConstFetch(n *ConstFetch)
	VisitEmpty(n *Empty)
	VisitExpr(n *Expr)
}

// Name is a possibly qualified name such as Foo\Bar. Resolved holds the
// fully qualified form when the semantic pass could determine it.
type Name struct {
	Value    string
	Resolved string
}

func (n *Name) String() string { return n.Value }

// Identifier is an unqualified name: a method, constant or property name.
type Identifier struct {
	Value string
}

func (n *Identifier) String() string { return n.Value }

// Class is a class declaration. Name is nil for anonymous classes.
type Class struct {
	Name           *Identifier
	NamespacedName string
	Extends        *Name
	Implements     []*Name
}

type Interface struct {
	Name           *Identifier
	NamespacedName string
	Extends        []*Name
}

type Trait struct {
	Name           *Identifier
	NamespacedName string
}

type Enum struct {
	Name           *Identifier
	NamespacedName string
}

// Function is a function declaration. NamespacedName is carried for
// callers; name resolution uses the short Name, as functions are matched
// by their declared identifier.
type Function struct {
	Name           *Identifier
	NamespacedName string
	Params         []*Param
}

type ClassMethod struct {
	Name   *Identifier
	Params []*Param
	Static bool
}

// ClassConst groups one or more class constants declared together.
type ClassConst struct {
	Consts []*Const
}

type Const struct {
	Name  *Identifier
	Value Node
}

// Property groups one or more properties declared together.
type Property struct {
	Props []*PropertyItem
}

type PropertyItem struct {
	Name    *Identifier
	Default Node
}

// Use groups the imports of a single use statement.
type Use struct {
	Uses []*UseItem
}

type UseItem struct {
	Name  *Name
	Alias *Identifier
}

type Param struct {
	Var      *Variable
	Type     Node
	Variadic bool
	ByRef    bool
}

// Variable is $name, or $$expr when NameExpr is set. Parent is attached by
// the semantic pass.
type Variable struct {
	Name     string
	NameExpr Node
	Parent   Node
}

// ClassConstFetch is Class::CONST.
type ClassConstFetch struct {
	Class Node
	Name  Node
}

// StaticCall is Class::method(...). Name is an Identifier or, for dynamic
// calls, an arbitrary expression.
type StaticCall struct {
	Class Node
	Name  Node
	Args  []Node
}

type MethodCall struct {
	Var  Node
	Name Node
	Args []Node
}

type FuncCall struct {
	Name Node
	Args []Node
}

type PropertyFetch struct {
	Var  Node
	Name Node
}

type ConstFetch struct {
	Name *Name
}

// Empty is the empty(...) check.
type Empty struct {
	Expr Node
}

// Expr is any expression the resolver has no rule for, such as literals
// and operators. Label is informational.
type Expr struct {
	Label string
}

func (n *Name) Accept(v Visitor)            { v.VisitName(n) }
func (n *Identifier) Accept(v Visitor)      { v.VisitIdentifier(n) }
func (n *Class) Accept(v Visitor)           { v.VisitClass(n) }
func (n *Interface) Accept(v Visitor)       { v.VisitInterface(n) }
func (n *Trait) Accept(v Visitor)           { v.VisitTrait(n) }
func (n *Enum) Accept(v Visitor)            { v.VisitEnum(n) }
func (n *Function) Accept(v Visitor)        { v.VisitFunction(n) }
func (n *ClassMethod) Accept(v Visitor)     { v.VisitClassMethod(n) }
func (n *ClassConst) Accept(v Visitor)      { v.VisitClassConst(n) }
func (n *Const) Accept(v Visitor)           { v.VisitConst(n) }
func (n *Property) Accept(v Visitor)        { v.VisitProperty(n) }
func (n *PropertyItem) Accept(v Visitor)    { v.VisitPropertyItem(n) }
func (n *Use) Accept(v Visitor)             { v.VisitUse(n) }
func (n *UseItem) Accept(v Visitor)         { v.VisitUseItem(n) }
func (n *Param) Accept(v Visitor)           { v.VisitParam(n) }
func (n *Variable) Accept(v Visitor)        { v.VisitVariable(n) }
func (n *ClassConstFetch) Accept(v Visitor) { v.VisitClassConstFetch(n) }
func (n *StaticCall) Accept(v Visitor)      { v.VisitStaticCall(n) }
func (n *MethodCall) Accept(v Visitor)      { v.VisitMethodCall(n) }
func (n *FuncCall) Accept(v Visitor)        { v.VisitFuncCall(n) }
func (n *PropertyFetch) Accept(v Visitor)   { v.VisitPropertyFetch(n) }
func (n *ConstFetch) Accept(v Visitor)      { v.VisitConstFetch(n) }
func (n *Empty) Accept(v Visitor)           { v.VisitEmpty(n) }
func (n *Expr) Accept(v Visitor)            { v.VisitExpr(n) }

func (n *Name) Kind() Kind            { return KindName }
func (n *Identifier) Kind() Kind      { return KindIdentifier }
func (n *Class) Kind() Kind           { return KindClass }
func (n *Interface) Kind() Kind       { return KindInterface }
func (n *Trait) Kind() Kind           { return KindTrait }
func (n *Enum) Kind() Kind            { return KindEnum }
func (n *Function) Kind() Kind        { return KindFunction }
func (n *ClassMethod) Kind() Kind     { return KindClassMethod }
func (n *ClassConst) Kind() Kind      { return KindClassConst }
func (n *Const) Kind() Kind           { return KindConst }
func (n *Property) Kind() Kind        { return KindProperty }
func (n *PropertyItem) Kind() Kind    { return KindPropertyItem }
func (n *Use) Kind() Kind             { return KindUse }
func (n *UseItem) Kind() Kind         { return KindUseItem }
func (n *Param) Kind() Kind           { return KindParam }
func (n *Variable) Kind() Kind        { return KindVariable }
func (n *ClassConstFetch) Kind() Kind { return KindClassConstFetch }
func (n *StaticCall) Kind() Kind      { return KindStaticCall }
func (n *MethodCall) Kind() Kind      { return KindMethodCall }
func (n *FuncCall) Kind() Kind        { return KindFuncCall }
func (n *PropertyFetch) Kind() Kind   { return KindPropertyFetch }
func (n *ConstFetch) Kind() Kind      { return KindConstFetch }
func (n *Empty) Kind() Kind           { return KindEmpty }
func (n *Expr) Kind() Kind            { return KindExpr }

// Ident and QName are shorthands for building trees in code.
func Ident(value string) *Identifier { return &Identifier{Value: value} }

func QName(value string) *Name { return &Name{Value: value} }
