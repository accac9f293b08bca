package compose

import "github.com/ra-bench/ra-gen/ra"

// addRenamedLocations declares src's locations into b under rename, for
// every location whose *original* name is not in skip. b is assumed to
// already have a location named rename(src.InitialLocation().Name) (created
// by ra.NewBuilder, defaulting to non-accepting) — if that location isn't
// itself skipped, its acceptance is corrected via MarkAccepting rather than
// through AddLocation, which would reject the correction as a conflicting
// re-declaration.
func addRenamedLocations(b *ra.Builder, src *ra.RegisterAutomaton, skip map[string]bool, rename func(string) string) error {
	srcInit := src.InitialLocation().Name
	for _, loc := range src.Locations() {
		if skip[loc.Name] {
			continue
		}
		name := rename(loc.Name)
		if loc.Name == srcInit {
			b.MarkAccepting(name, loc.IsAccepting)
			continue
		}
		if _, err := b.AddLocation(name, loc.IsAccepting); err != nil {
			return err
		}
	}
	return nil
}
