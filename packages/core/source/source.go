// Package source recovers the source text of expressions passed to the
// expectation entry points. It reads the caller's file and locates the
// call via go/parser, so reports can name the expression under test
// ("expect.That(t, user.Age)" reports about "user.Age") without any
// code generation.
package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

var (
	mu    sync.Mutex
	cache = map[string]*parsedFile{}
)

// Expr returns the text of the argument at argIndex of the call to
// fnName on the stack frame skip frames above Expr (as counted by
// runtime.Caller). The second result is false when the source is not
// available, for example in stripped builds or generated callers.
func Expr(skip int, fnName string, argIndex int) (string, bool) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", false
	}
	pf := load(file)
	if pf.err != nil {
		return "", false
	}
	call := findCall(pf, fnName, line)
	if call == nil || argIndex >= len(call.Args) {
		return "", false
	}
	arg := call.Args[argIndex]
	start := pf.fset.Position(arg.Pos()).Offset
	end := pf.fset.Position(arg.End()).Offset
	if start < 0 || end > len(pf.src) || start >= end {
		return "", false
	}
	return string(pf.src[start:end]), true
}

// Location returns "file:line" for the frame skip frames above Location.
func Location(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func load(path string) *parsedFile {
	mu.Lock()
	defer mu.Unlock()
	if pf, ok := cache[path]; ok {
		return pf
	}
	pf := &parsedFile{fset: token.NewFileSet()}
	pf.src, pf.err = os.ReadFile(path)
	if pf.err == nil {
		pf.file, pf.err = parser.ParseFile(pf.fset, path, pf.src, 0)
	}
	cache[path] = pf
	return pf
}

func findCall(pf *parsedFile, fnName string, line int) *ast.CallExpr {
	var exact, spanning *ast.CallExpr
	ast.Inspect(pf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || calleeName(call) != fnName {
			return true
		}
		if pf.fset.Position(call.Lparen).Line == line && exact == nil {
			exact = call
		}
		from := pf.fset.Position(call.Pos()).Line
		to := pf.fset.Position(call.End()).Line
		if from <= line && line <= to && spanning == nil {
			spanning = call
		}
		return true
	})
	if exact != nil {
		return exact
	}
	return spanning
}

func calleeName(call *ast.CallExpr) string {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		return fn.Name
	case *ast.SelectorExpr:
		return fn.Sel.Name
	default:
		return ""
	}
}
