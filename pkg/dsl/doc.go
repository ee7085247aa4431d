/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing state machines.

States are referred to by name instead of by the *fsm.State handles the core API returns, which keeps
graph definitions short and readable. Names must therefore be unique within one builder; the core
package itself allows duplicates.

Example usage:

	package main

	import (
		"github.com/aretw0/fsm/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Initial("locked").
			Describe("Turnstile is locked").
			Go("unlocked").
			Loop()

		b.Add("unlocked").
			Describe("Turnstile lets one person through").
			Go("locked")

		m, err := b.Build()
		if err != nil {
			panic(err)
		}

		w, _ := m.Start()
		m.MoveTo(w, "unlocked") // true
	}
*/
package dsl
