package world

import (
	"errors"
	"fmt"

	"consoleroom/internal/assets"
	"consoleroom/internal/components"
	"consoleroom/internal/engine"
)

var (
	ErrPlayerCount      = errors.New("scene must contain exactly one player")
	ErrNoInteractMesh   = errors.New("interactable has no material below it")
	ErrMissingMaterial  = errors.New("mesh references a missing material")
	ErrScreenWithoutMat = errors.New("screen effect without a mesh")
)

// Validate checks the invariants the per-tick systems rely on. All
// violations are reported together.
func Validate(scene *engine.Scene, materials *assets.Manager) error {
	var errs []error

	if players := engine.Query[*components.Player](scene); len(players) != 1 {
		errs = append(errs, fmt.Errorf("%w: found %d", ErrPlayerCount, len(players)))
	}

	engine.Each(scene, func(g *engine.GameObject, _ *components.Interactable) {
		for _, d := range append([]*engine.GameObject{g}, g.Descendants()...) {
			if engine.HasComponent[*components.MeshRenderer](d) {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%w: %s", ErrNoInteractMesh, g.Name))
	})

	engine.Each(scene, func(g *engine.GameObject, mr *components.MeshRenderer) {
		if _, ok := materials.Material(mr.Material); !ok {
			errs = append(errs, fmt.Errorf("%w: %s (%d)", ErrMissingMaterial, g.Name, mr.Material))
		}
	})

	engine.Each(scene, func(g *engine.GameObject, _ *components.ScreenEffect) {
		if !engine.HasComponent[*components.MeshRenderer](g) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrScreenWithoutMat, g.Name))
		}
	})

	return errors.Join(errs...)
}
