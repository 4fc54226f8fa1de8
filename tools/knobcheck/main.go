/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Command knobcheck cross-checks the documented §6 tunable knob names against the
// actual const declarations in package sortcore, and against the names package
// tuning knows how to overlay. It never runs as part of a normal build or test; it is
// a standalone guard against the knob table and the override-file grammar drifting
// apart, invoked by hand or from CI.
package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"

	"golang.org/x/tools/go/packages"
)

// documentedKnobs is the knob table named in the external interface (§6). Keep this in
// lockstep with sortcore.Tunables and tuning.knobSetters by hand; that manual upkeep is
// exactly what this command checks.
var documentedKnobs = []string{
	"InsertionThreshold",
	"MixedInsertionThreshold",
	"TryMergeRunsThreshold",
	"MinFirstRunLength",
	"MaxRunCapacity",
	"MinFirstRunsFactor",
	"MinParallelSortSize",
	"MinParallelMergeSize",
	"MinCountingSortSizeByte",
	"MinCountingSortSizeWord",
	"MaxRecursionDepth",
	"DepthStep",
	"SplitUnit",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "knobcheck:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedSyntax | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, "github.com/launix-de/duoqsort/sortcore", "github.com/launix-de/duoqsort/tuning")
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return fmt.Errorf("package load reported errors")
	}

	var sortcorePkg, tuningPkg *packages.Package
	for _, p := range pkgs {
		switch p.PkgPath {
		case "github.com/launix-de/duoqsort/sortcore":
			sortcorePkg = p
		case "github.com/launix-de/duoqsort/tuning":
			tuningPkg = p
		}
	}
	if sortcorePkg == nil {
		return fmt.Errorf("sortcore package not found")
	}

	declared := constNames(sortcorePkg)
	fieldNames := structFieldNames(sortcorePkg, "Tunables")
	overlaid := map[string]bool{}
	if tuningPkg != nil {
		overlaid = knobSetterKeys(tuningPkg)
	}

	wanted := map[string]bool{}
	for _, k := range documentedKnobs {
		wanted[k] = true
	}

	var problems []string
	for _, k := range documentedKnobs {
		if !declared[k] {
			problems = append(problems, fmt.Sprintf("knob %q is documented but has no sortcore const", k))
		}
		if !fieldNames[k] {
			problems = append(problems, fmt.Sprintf("knob %q is documented but missing from sortcore.Tunables", k))
		}
		if tuningPkg != nil && !overlaid[k] {
			problems = append(problems, fmt.Sprintf("knob %q is documented but tuning.Load cannot overlay it", k))
		}
	}
	for name := range declared {
		if !wanted[name] {
			problems = append(problems, fmt.Sprintf("sortcore declares const %q which is not a documented knob", name))
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		return fmt.Errorf("%d knob-table mismatch(es)", len(problems))
	}
	fmt.Println("knobcheck: knob table matches documentation")
	return nil
}

// constNames collects every top-level untyped const identifier declared in pkg.
func constNames(pkg *packages.Package) map[string]bool {
	names := map[string]bool{}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}
			for _, spec := range gen.Specs {
				vspec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, id := range vspec.Names {
					if id.Name != "_" {
						names[id.Name] = true
					}
				}
			}
		}
	}
	return names
}

// structFieldNames collects the field names of the named struct type in pkg.
func structFieldNames(pkg *packages.Package, typeName string) map[string]bool {
	names := map[string]bool{}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok || tspec.Name.Name != typeName {
					continue
				}
				st, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}
				for _, field := range st.Fields.List {
					for _, id := range field.Names {
						names[id.Name] = true
					}
				}
			}
		}
	}
	return names
}

// knobSetterKeys collects the string keys of the package-level map literal named
// knobSetters in pkg — the set of knob names tuning.Load actually recognises.
func knobSetterKeys(pkg *packages.Package) map[string]bool {
	keys := map[string]bool{}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}
			for _, spec := range gen.Specs {
				vspec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, id := range vspec.Names {
					if id.Name != "knobSetters" || i >= len(vspec.Values) {
						continue
					}
					lit, ok := vspec.Values[i].(*ast.CompositeLit)
					if !ok {
						continue
					}
					for _, elt := range lit.Elts {
						kv, ok := elt.(*ast.KeyValueExpr)
						if !ok {
							continue
						}
						bl, ok := kv.Key.(*ast.BasicLit)
						if !ok || bl.Kind != token.STRING {
							continue
						}
						if unquoted, err := unquote(bl.Value); err == nil {
							keys[unquoted] = true
						}
					}
				}
			}
		}
	}
	return keys
}

func unquote(s string) (string, error) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1], nil
	}
	return "", fmt.Errorf("not a quoted string: %s", s)
}
