package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Generator drives one run: prove the catalogue closed over the chosen
// targets, then emit every routine file and dispatch file in parallel.
type Generator struct {
	Output  string
	Pkg     string
	Prefix  string
	Targets []Target
}

// check proves completeness before anything is written: every applicable
// (operation, type) pair must resolve to a rule on every target, either
// directly or through generic decomposition. A hole fails the whole run
// with the exact triple, so a catalogue edit can't silently emit a
// partial API.
func (g *Generator) check() error {
	for _, tgt := range g.Targets {
		for _, ty := range vecTypes {
			for _, op := range opsForType(ty) {
				if _, ok := lowerRule(tgt, op, ty); !ok {
					return fmt.Errorf("no lowering for operation %q on %s for target %s", op.Method, ty.Name(), tgt.Name)
				}
			}
		}
	}
	return nil
}

// Run generates all files for the configured targets.
func (g *Generator) Run() error {
	if err := verifyTargets(g.Targets); err != nil {
		return err
	}
	if err := g.check(); err != nil {
		return err
	}
	if err := os.MkdirAll(g.Output, 0755); err != nil {
		return err
	}

	byArch := targetsByArch(g.Targets)
	var eg errgroup.Group
	for _, tgt := range g.Targets {
		tgt := tgt
		eg.Go(func() error {
			return g.emitTarget(tgt)
		})
	}
	for _, arch := range []string{"amd64", "arm64", "wasm", "other"} {
		arch := arch
		group := byArch[arch]
		eg.Go(func() error {
			return g.emitDispatch(arch, group)
		})
	}
	return eg.Wait()
}
