package syntax

type Kind int

const (
	KindInvalid Kind = iota

	// Concrete node kinds
	KindName
	KindIdentifier
	KindClass
	KindInterface
	KindTrait
	KindEnum
	KindFunction
	KindClassMethod
	KindClassConst
	KindConst
	KindProperty
	KindPropertyItem
	KindUse
	KindUseItem
	KindParam
	KindVariable
	KindClassConstFetch
	KindStaticCall
	KindMethodCall
	KindFuncCall
	KindPropertyFetch
	KindConstFetch
	KindEmpty
	KindExpr

	// Abstract kinds, used as host-matching targets
	KindNode
	KindDeclaration
	KindClassLike
	KindFunctionLike
	KindClassMember
	KindStatement
	KindExpression
	KindCall
)

var kindNames = map[Kind]string{
	KindInvalid:         "invalid",
	KindName:            "name",
	KindIdentifier:      "identifier",
	KindClass:           "class",
	KindInterface:       "interface",
	KindTrait:           "trait",
	KindEnum:            "enum",
	KindFunction:        "function",
	KindClassMethod:     "class_method",
	KindClassConst:      "class_const",
	KindConst:           "const",
	KindProperty:        "property",
	KindPropertyItem:    "property_item",
	KindUse:             "use",
	KindUseItem:         "use_item",
	KindParam:           "param",
	KindVariable:        "variable",
	KindClassConstFetch: "class_const_fetch",
	KindStaticCall:      "static_call",
	KindMethodCall:      "method_call",
	KindFuncCall:        "func_call",
	KindPropertyFetch:   "property_fetch",
	KindConstFetch:      "const_fetch",
	KindEmpty:           "empty",
	KindExpr:            "expr",
	KindNode:            "node",
	KindDeclaration:     "declaration",
	KindClassLike:       "class_like",
	KindFunctionLike:    "function_like",
	KindClassMember:     "class_member",
	KindStatement:       "statement",
	KindExpression:      "expression",
	KindCall:            "call",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		if k != KindInvalid {
			m[name] = k
		}
	}
	return m
}()

// kindParents lists the direct supertypes of each kind. A kind may have
// several, e.g. a method is both function-like and a class member.
var kindParents = map[Kind][]Kind{
	KindName:            {KindNode},
	KindIdentifier:      {KindNode},
	KindClass:           {KindClassLike},
	KindInterface:       {KindClassLike},
	KindTrait:           {KindClassLike},
	KindEnum:            {KindClassLike},
	KindFunction:        {KindFunctionLike},
	KindClassMethod:     {KindFunctionLike, KindClassMember},
	KindClassConst:      {KindClassMember},
	KindConst:           {KindDeclaration},
	KindProperty:        {KindClassMember},
	KindPropertyItem:    {KindNode},
	KindUse:             {KindStatement},
	KindUseItem:         {KindNode},
	KindParam:           {KindDeclaration},
	KindVariable:        {KindExpression},
	KindClassConstFetch: {KindExpression},
	KindStaticCall:      {KindCall},
	KindMethodCall:      {KindCall},
	KindFuncCall:        {KindCall},
	KindPropertyFetch:   {KindExpression},
	KindConstFetch:      {KindExpression},
	KindEmpty:           {KindExpression},
	KindExpr:            {KindExpression},
	KindClassLike:       {KindDeclaration},
	KindFunctionLike:    {KindDeclaration},
	KindClassMember:     {KindDeclaration},
	KindCall:            {KindExpression},
	KindDeclaration:     {KindStatement},
	KindStatement:       {KindNode},
	KindExpression:      {KindNode},
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind looks up a kind by its String form.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Is reports whether k is target or has target among its ancestors.
func (k Kind) Is(target Kind) bool {
	if k == KindInvalid || target == KindInvalid {
		return false
	}
	if k == target {
		return true
	}
	for _, parent := range kindParents[k] {
		if parent.Is(target) {
			return true
		}
	}
	return false
}

// KindOf returns the kind of n, or KindInvalid for a nil node.
func KindOf(n Node) Kind {
	if n == nil {
		return KindInvalid
	}
	return n.Kind()
}
