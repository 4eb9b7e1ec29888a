// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package allevents implements a Go analysis pass that verifies that every
// event.Logger implementation handles all known container event types.
// Implementations that handle none of them, such as no-op or fake loggers,
// are ignored.
package allevents

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// EventPackage is the import path of the package declaring the events.
const EventPackage = "github.com/sappy-go/di/event"

// Analyzer reports event.Logger implementations that leave some event types
// unhandled.
var Analyzer = &analysis.Analyzer{
	Name: "allevents",
	Doc:  "check for unhandled event.Events",
	Run:  run,
	Requires: []*analysis.Analyzer{
		inspect.Analyzer,
	},
}

var _filter = []ast.Node{
	&ast.File{},
	&ast.FuncDecl{},
	&ast.CaseClause{},
	&ast.TypeAssertExpr{},
}

func run(pass *analysis.Pass) (interface{}, error) {
	pkg, ok := findPackage(pass.Pkg, EventPackage)
	if !ok {
		return nil, nil
	}

	v := visitor{
		Events: inspectEvents(pkg),
		Fset:   pass.Fset,
		Info:   pass.TypesInfo,
		Report: pass.Report,
	}
	pass.ResultOf[inspect.Analyzer].(*inspector.Inspector).Nodes(_filter, v.Visit)
	return nil, nil
}

type visitor struct {
	Fset   *token.FileSet
	Info   *types.Info
	Events eventPackage
	Report func(analysis.Diagnostic)

	// State of the LogEvent method being visited.
	logger    types.Type
	unhandled *typeSet
}

func (v *visitor) Visit(n ast.Node, push bool) bool {
	switch n := n.(type) {
	case *ast.File:
		if !push {
			return false
		}
		// Test fakes are allowed to be partial.
		name := v.Fset.File(n.Pos()).Name()
		return !strings.HasSuffix(name, "_test.go")

	case *ast.FuncDecl:
		if !push {
			v.exitLogEvent(n)
			return false
		}
		return v.enterLogEvent(n)

	case *ast.CaseClause:
		if push {
			for _, expr := range n.List {
				v.handled(expr)
			}
		}

	case *ast.TypeAssertExpr:
		if push && n.Type != nil {
			v.handled(n.Type)
		}
	}
	return false
}

func (v *visitor) handled(expr ast.Expr) {
	if t := v.Info.Types[expr].Type; t != nil && v.unhandled != nil {
		v.unhandled.Remove(t)
	}
}

func (v *visitor) enterLogEvent(n *ast.FuncDecl) bool {
	if n.Recv == nil || n.Name.Name != "LogEvent" {
		return false
	}

	t := v.Info.Types[n.Recv.List[0].Type].Type
	if t == nil || !types.Implements(t, v.Events.Logger) {
		return false
	}

	v.logger = t
	v.unhandled = v.Events.Types.Clone()
	return true
}

func (v *visitor) exitLogEvent(n *ast.FuncDecl) {
	unhandled := v.unhandled
	v.logger, v.unhandled = nil, nil
	if unhandled == nil {
		return
	}

	count := unhandled.Len()
	if count == 0 || count == v.Events.Types.Len() {
		return
	}

	missing := make([]string, 0, count)
	unhandled.Iterate(func(t types.Type) {
		missing = append(missing, types.TypeString(t, emptyQualifier))
	})
	sort.Strings(missing)

	v.Report(analysis.Diagnostic{
		Pos: n.Pos(),
		Message: fmt.Sprintf("%v doesn't handle %v",
			types.TypeString(v.logger, emptyQualifier), missing),
	})
}

func findPackage(pkg *types.Package, path string) (*types.Package, bool) {
	if pkg.Path() == path {
		return pkg, true
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return imp, true
		}
	}
	return nil, false
}

// eventPackage is the type information of the event package needed to
// check loggers.
type eventPackage struct {
	Logger *types.Interface
	Types  typeSet
}

func inspectEvents(pkg *types.Package) eventPackage {
	scope := pkg.Scope()
	event := scope.Lookup("Event").Type()

	var events typeSet
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if name == "Event" || !obj.Exported() {
			continue
		}
		if _, ok := obj.(*types.TypeName); !ok {
			continue
		}

		typ := obj.Type()
		if !types.ConvertibleTo(typ, event) {
			typ = types.NewPointer(typ)
			if !types.ConvertibleTo(typ, event) {
				continue
			}
		}
		events.Put(typ)
	}

	return eventPackage{
		Logger: scope.Lookup("Logger").Type().Underlying().(*types.Interface),
		Types:  events,
	}
}

// typeSet is a set of types. The zero value is empty.
type typeSet struct{ m typeutil.Map }

func (ts *typeSet) Len() int { return ts.m.Len() }

func (ts *typeSet) Put(t types.Type) { ts.m.Set(t, struct{}{}) }

func (ts *typeSet) Remove(t types.Type) bool { return ts.m.Delete(t) }

func (ts *typeSet) Iterate(f func(types.Type)) {
	ts.m.Iterate(func(t types.Type, _ interface{}) { f(t) })
}

func (ts *typeSet) Clone() *typeSet {
	var out typeSet
	ts.Iterate(out.Put)
	return &out
}

func emptyQualifier(*types.Package) string { return "" }
