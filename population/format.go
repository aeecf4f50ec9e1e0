// SPDX-License-Identifier: MIT

package population

import (
	"fmt"
	"strings"
)

// Brief returns a one-line summary, e.g. "Population(n=5; layers: h, s)".
func (p *Population) Brief() string {
	keys := p.contacts.Keys()
	if len(keys) == 0 {
		return fmt.Sprintf("Population(n=%d; no layers)", p.size)
	}

	return fmt.Sprintf("Population(n=%d; layers: %s)", p.size, strings.Join(keys, ", "))
}

// Format renders the population. The brief form is one line; the verbose
// form adds per-group key counts, per-layer edge counts and state counts.
// The mode is always passed explicitly.
func (p *Population) Format(verbose bool) string {
	if !verbose {
		return p.Brief()
	}

	var sb strings.Builder
	sb.WriteString(p.Brief())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  keys: %d person, %d state, %d date, %d duration\n",
		len(p.PersonKeys()), len(p.StateKeys()), len(p.DateKeys()), len(p.DurKeys()))
	fmt.Fprintf(&sb, "  edges: %d\n", p.contacts.Len())
	for _, k := range p.contacts.Keys() {
		l, _ := p.contacts.Layer(k)
		fmt.Fprintf(&sb, "    %s: %d\n", k, l.Len())
	}
	states := p.StateKeys()
	if len(states) > 0 {
		sb.WriteString("  states:\n")
		for _, k := range states {
			n, _ := p.Count(k)
			fmt.Fprintf(&sb, "    %s: %d\n", k, n)
		}
	}
	if extra := p.ExtraKeys(); len(extra) > 0 {
		fmt.Fprintf(&sb, "  extra: %s\n", strings.Join(extra, ", "))
	}

	return sb.String()
}

// String implements fmt.Stringer with the brief form.
func (p *Population) String() string {
	return p.Brief()
}
