package compose

import (
	"fmt"

	"github.com/ra-bench/ra-gen/guard"
	"github.com/ra-bench/ra-gen/ra"
)

// mergeRegisters folds src's registers into b by name: a register not yet
// in known is declared fresh (forbidInitial rejects it up front if it
// carries an initial value, for splice sites that must stay uninitialised);
// a register already known must not be re-initialised by src, on pain of
// conflictErr.
func mergeRegisters(b *ra.Builder, known map[string]bool, src *ra.RegisterAutomaton, forbidInitial error, conflictErr error) error {
	for _, reg := range src.Registers() {
		if known[reg.Name] {
			if reg.HasInitial {
				return fmt.Errorf("%w: %q", conflictErr, reg.Name)
			}
			continue
		}
		if forbidInitial != nil && reg.HasInitial {
			return fmt.Errorf("%w: %q", forbidInitial, reg.Name)
		}
		var initial *guard.Num
		if reg.HasInitial {
			v := reg.Initial
			initial = &v
		}
		if _, err := b.AddRegister(reg.Name, initial); err != nil {
			return err
		}
		known[reg.Name] = true
	}
	return nil
}
