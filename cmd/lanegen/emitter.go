package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// fileBuf accumulates one generated file: routine bodies, the imports
// they need, and any shared helper functions they asked for.
type fileBuf struct {
	body    bytes.Buffer
	imports map[string]bool
	helpers map[string]string
}

func newFileBuf() *fileBuf {
	return &fileBuf{
		imports: make(map[string]bool),
		helpers: make(map[string]string),
	}
}

func (f *fileBuf) ln(format string, args ...any) {
	fmt.Fprintf(&f.body, format+"\n", args...)
}

func (f *fileBuf) needImport(path string) { f.imports[path] = true }

// needHelper registers a file-level helper function. Helpers are keyed
// by name so rules can request the same one freely.
func (f *fileBuf) needHelper(name, src string) { f.helpers[name] = src }

// camelParts title-cases snake_case segments: "round_ties_even" becomes
// "RoundTiesEven", "f32x4" becomes "F32x4".
func camelParts(s string) string {
	caser := cases.Title(language.English)
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		b.WriteString(caser.String(part))
	}
	return b.String()
}

// exportedName is the dispatch wrapper's name: AddF32x4, CvtU32FastF32x8.
func exportedName(op Op, ty VecType) string {
	return camelParts(op.Method) + camelParts(ty.Name())
}

// internalName is the per-target routine's name: addF32x4_avx2.
func internalName(op Op, ty VecType, tgt Target) string {
	n := exportedName(op, ty)
	return strings.ToLower(n[:1]) + n[1:] + "_" + tgt.Suffix
}

type param struct {
	name string
	typ  string
}

// opParams returns op's parameter list at ty. Names here are the names
// the rule bodies refer to.
func opParams(op Op, ty VecType) []param {
	vec := ty.Go()
	switch op.Sig {
	case SigSplat:
		if ty.Scalar.IsMask() {
			return []param{{"x", "bool"}}
		}
		return []param{{"x", ty.Scalar.Go()}}
	case SigUnary, SigSplit, SigReinterpret, SigCvt, SigWiden, SigNarrow, SigStoreInterleaved:
		return []param{{"a", vec}}
	case SigLoadInterleaved:
		return []param{{"src", vec}}
	case SigTernary:
		return []param{{"a", vec}, {"b", vec}, {"c", vec}}
	case SigSelect:
		return []param{{"m", ty.Mask().Go()}, {"a", vec}, {"b", vec}}
	case SigShiftImm:
		return []param{{"a", vec}, {"k", "uint"}}
	case SigCombine:
		return []param{{"lo", vec}, {"hi", vec}}
	case SigSlide, SigSlideWithin:
		return []param{{"a", vec}, {"b", vec}, {"shift", "int"}}
	case SigMaskReduce:
		return []param{{"m", vec}}
	default: // SigBinary, SigCompare, SigZip, SigUnzip, SigShiftVar
		return []param{{"a", vec}, {"b", vec}}
	}
}

// opResults returns op's result type string at ty.
func opResults(op Op, ty VecType) string {
	switch op.Sig {
	case SigCompare:
		return ty.Mask().Go()
	case SigCombine:
		return ty.Double().Go()
	case SigSplit:
		h := ty.Half().Go()
		return fmt.Sprintf("(%s, %s)", h, h)
	case SigCvt:
		return ty.SameLanes(op.To).Go()
	case SigReinterpret:
		return ty.WithScalar(op.To).Go()
	case SigWiden:
		return ty.SameLanes(scalarU16).Go()
	case SigNarrow:
		return ty.SameLanes(scalarU8).Go()
	case SigMaskReduce:
		return "bool"
	default:
		return ty.Go()
	}
}

// renderParams prints a parameter list, folding runs of the same type:
// "a, b [4]float32, shift int".
func renderParams(ps []param) string {
	var parts []string
	for i := 0; i < len(ps); {
		j := i
		for j+1 < len(ps) && ps[j+1].typ == ps[i].typ {
			j++
		}
		names := lo.Map(ps[i:j+1], func(p param, _ int) string { return p.name })
		parts = append(parts, strings.Join(names, ", ")+" "+ps[i].typ)
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

func callArgs(ps []param) string {
	names := lo.Map(ps, func(p param, _ int) string { return p.name })
	return strings.Join(names, ", ")
}

// renderFile assembles the final source: generated-file marker, build
// constraint, package clause, imports, routine bodies, then helpers.
func renderFile(pkg, buildTag string, f *fileBuf) []byte {
	var out bytes.Buffer
	out.WriteString("// Code generated by lanegen. DO NOT EDIT.\n\n")
	if buildTag != "" {
		fmt.Fprintf(&out, "//go:build %s\n\n", buildTag)
	}
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	if len(f.imports) > 0 {
		paths := lo.Keys(f.imports)
		sort.Strings(paths)
		out.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&out, "%q\n", p)
		}
		out.WriteString(")\n\n")
	}
	out.Write(f.body.Bytes())
	names := lo.Keys(f.helpers)
	sort.Strings(names)
	for _, n := range names {
		out.WriteString(f.helpers[n])
		out.WriteString("\n\n")
	}
	return out.Bytes()
}

// writeFile formats the assembled source and writes it under the output
// directory. Formatting failures are generator bugs; the error carries
// the file name so the offending emitter is easy to find.
func (g *Generator) writeFile(name string, src []byte) error {
	path := filepath.Join(g.Output, name)
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", name, err)
	}
	return os.WriteFile(path, formatted, 0644)
}

// emitTarget writes one backend's routine file.
func (g *Generator) emitTarget(tgt Target) error {
	f := newFileBuf()
	for _, ty := range vecTypes {
		for _, op := range opsForType(ty) {
			rule, ok := lowerRule(tgt, op, ty)
			if !ok {
				return fmt.Errorf("no lowering for operation %q on %s for target %s", op.Method, ty.Name(), tgt.Name)
			}
			f.ln("func %s(%s) %s {", internalName(op, ty, tgt), renderParams(opParams(op, ty)), opResults(op, ty))
			rule(f, op, ty, tgt)
			f.ln("}")
			f.ln("")
		}
	}
	name := fmt.Sprintf("%s_%s.gen.go", g.Prefix, tgt.Suffix)
	return g.writeFile(name, renderFile(g.Pkg, tgt.BuildTag, f))
}

var dispatchTags = map[string]string{
	"amd64": "amd64",
	"arm64": "arm64",
	"wasm":  "wasm",
	"other": "!amd64 && !arm64 && !wasm",
}

// emitDispatch writes one architecture's wrapper file. Wrappers switch
// on the active capability level, probing the group's targets from most
// to least capable; the portable routines are always the default. An
// architecture with no accelerated targets in the run calls the portable
// routines directly.
func (g *Generator) emitDispatch(arch string, group []Target) error {
	f := newFileBuf()
	if len(group) > 0 {
		f.needImport("github.com/veclane/go-lanes/lanes")
	}
	for _, ty := range vecTypes {
		for _, op := range opsForType(ty) {
			name := exportedName(op, ty)
			args := callArgs(opParams(op, ty))
			f.ln("// %s %s.", name, op.Doc)
			f.ln("func %s(%s) %s {", name, renderParams(opParams(op, ty)), opResults(op, ty))
			if len(group) == 0 {
				f.ln("return %s(%s)", internalName(op, ty, fallbackTarget), args)
			} else {
				f.ln("switch lanes.Active() {")
				for _, tgt := range group {
					f.ln("case lanes.%s:", tgt.LevelName)
					f.ln("return %s(%s)", internalName(op, ty, tgt), args)
				}
				f.ln("default:")
				f.ln("return %s(%s)", internalName(op, ty, fallbackTarget), args)
				f.ln("}")
			}
			f.ln("}")
			f.ln("")
		}
	}
	name := fmt.Sprintf("%s_dispatch_%s.gen.go", g.Prefix, arch)
	return g.writeFile(name, renderFile(g.Pkg, dispatchTags[arch], f))
}
