// Package names computes canonical names for program nodes and matches
// them against the patterns used by transformation rules.
package names

import (
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/docfront/syntax"
)

var log = commonlog.GetLogger("docfront.names")

// Resolver derives names from syntax nodes. It is safe for concurrent use;
// compiled regular expressions are cached per pattern.
type Resolver struct {
	mu      sync.Mutex
	regexps map[string]*regexp2.Regexp
}

func NewResolver() *Resolver {
	return &Resolver{regexps: make(map[string]*regexp2.Regexp)}
}

// GetName returns the best-effort canonical name of n. The second result
// is false when the name cannot be determined statically.
func (r *Resolver) GetName(n syntax.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	v := &nameVisitor{r: r}
	n.Accept(v)
	return v.name, v.ok
}

// AreNamesEqual compares the resolved names of a and b. Two nodes whose
// names both cannot be resolved are equal.
func (r *Resolver) AreNamesEqual(a, b syntax.Node) bool {
	nameA, okA := r.GetName(a)
	nameB, okB := r.GetName(b)
	if !okA || !okB {
		return okA == okB
	}
	return nameA == nameB
}

type nameVisitor struct {
	r    *Resolver
	name string
	ok   bool
}

func (v *nameVisitor) set(name string) {
	v.name, v.ok = name, name != ""
}

func (v *nameVisitor) from(n syntax.Node) {
	v.name, v.ok = v.r.GetName(n)
}

func (v *nameVisitor) fromIdentifier(id *syntax.Identifier) {
	if id == nil {
		return
	}
	v.set(id.Value)
}

// fromNameField applies the fallback rule for nodes whose name may be an
// arbitrary expression: only literal names resolve.
func (v *nameVisitor) fromNameField(n syntax.Node) {
	switch name := n.(type) {
	case *syntax.Identifier:
		v.fromIdentifier(name)
	case *syntax.Name:
		if name != nil {
			v.set(name.Value)
		}
	}
}

func (v *nameVisitor) fromClassLike(id *syntax.Identifier, namespaced string) {
	if namespaced != "" {
		v.set(namespaced)
		return
	}
	v.fromIdentifier(id)
}

func (v *nameVisitor) VisitEmpty(n *syntax.Empty) {
	v.set("empty")
}

func (v *nameVisitor) VisitClassConst(n *syntax.ClassConst) {
	if len(n.Consts) == 0 || n.Consts[0] == nil {
		return
	}
	v.from(n.Consts[0])
}

func (v *nameVisitor) VisitProperty(n *syntax.Property) {
	if len(n.Props) == 0 || n.Props[0] == nil {
		return
	}
	v.from(n.Props[0])
}

func (v *nameVisitor) VisitUse(n *syntax.Use) {
	if len(n.Uses) == 0 || n.Uses[0] == nil {
		return
	}
	v.from(n.Uses[0])
}

func (v *nameVisitor) VisitParam(n *syntax.Param) {
	if n.Var == nil {
		return
	}
	v.from(n.Var)
}

func (v *nameVisitor) VisitName(n *syntax.Name) {
	if n.Resolved != "" {
		v.set(n.Resolved)
		return
	}
	v.set(n.Value)
}

func (v *nameVisitor) VisitIdentifier(n *syntax.Identifier) {
	v.set(n.Value)
}

func (v *nameVisitor) VisitClass(n *syntax.Class) {
	v.fromClassLike(n.Name, n.NamespacedName)
}

func (v *nameVisitor) VisitInterface(n *syntax.Interface) {
	v.fromClassLike(n.Name, n.NamespacedName)
}

func (v *nameVisitor) VisitTrait(n *syntax.Trait) {
	v.fromClassLike(n.Name, n.NamespacedName)
}

func (v *nameVisitor) VisitEnum(n *syntax.Enum) {
	v.fromClassLike(n.Name, n.NamespacedName)
}

func (v *nameVisitor) VisitClassConstFetch(n *syntax.ClassConstFetch) {
	class, ok := v.r.GetName(n.Class)
	if !ok {
		return
	}
	name, ok := v.r.GetName(n.Name)
	if !ok {
		return
	}
	v.set(class + "::" + name)
}

func (v *nameVisitor) VisitVariable(n *syntax.Variable) {
	if n.NameExpr != nil {
		return
	}
	// $var::method() gives no way to know which class $var holds.
	if call, ok := n.Parent.(*syntax.StaticCall); ok && call != nil && call.Class == syntax.Node(n) {
		return
	}
	v.set(n.Name)
}

func (v *nameVisitor) VisitFunction(n *syntax.Function) {
	v.fromIdentifier(n.Name)
}

func (v *nameVisitor) VisitClassMethod(n *syntax.ClassMethod) {
	v.fromIdentifier(n.Name)
}

func (v *nameVisitor) VisitConst(n *syntax.Const) {
	v.fromIdentifier(n.Name)
}

func (v *nameVisitor) VisitPropertyItem(n *syntax.PropertyItem) {
	v.fromIdentifier(n.Name)
}

func (v *nameVisitor) VisitUseItem(n *syntax.UseItem) {
	if n.Name == nil {
		return
	}
	v.set(n.Name.Value)
}

func (v *nameVisitor) VisitStaticCall(n *syntax.StaticCall) {
	v.fromNameField(n.Name)
}

func (v *nameVisitor) VisitMethodCall(n *syntax.MethodCall) {
	v.fromNameField(n.Name)
}

func (v *nameVisitor) VisitFuncCall(n *syntax.FuncCall) {
	v.fromNameField(n.Name)
}

func (v *nameVisitor) VisitPropertyFetch(n *syntax.PropertyFetch) {
	v.fromNameField(n.Name)
}

func (v *nameVisitor) VisitConstFetch(n *syntax.ConstFetch) {
	if n.Name == nil {
		return
	}
	v.set(n.Name.Value)
}

func (v *nameVisitor) VisitExpr(n *syntax.Expr) {}
