package systems

import (
	"fmt"

	"consoleroom/internal/assets"
	"consoleroom/internal/components"
	"consoleroom/internal/engine"
	"consoleroom/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InRange returns the interactables closer to the player than the interact
// range, in scene order.
func InRange(scene *engine.Scene, s Settings) ([]*engine.GameObject, error) {
	player, _, err := engine.Single[*components.Player](scene)
	if err != nil {
		return nil, fmt.Errorf("interact: %w", err)
	}
	playerPos := player.WorldPosition()

	var near []*engine.GameObject
	engine.Each(scene, func(g *engine.GameObject, _ *components.Interactable) {
		if rl.Vector3Distance(playerPos, g.WorldPosition()) < s.InteractRange {
			near = append(near, g)
		}
	})
	return near, nil
}

// InteractWithConsoles highlights every interactable in range when the
// interact key went down this tick. Each highlighted mesh gets a newly
// allocated material, so repeated presses keep growing the table. It
// returns the objects that fired. A missing player is an error.
func InteractWithConsoles(scene *engine.Scene, in *input.State, materials *assets.Manager, s Settings) ([]*engine.GameObject, error) {
	near, err := InRange(scene, s)
	if err != nil {
		return nil, err
	}
	if !in.KeyPressed(s.InteractKey) {
		return nil, nil
	}
	for _, g := range near {
		highlight(g, materials, s.Highlight)
	}
	return near, nil
}

func highlight(g *engine.GameObject, materials *assets.Manager, color rl.Color) {
	targets := append([]*engine.GameObject{g}, g.Descendants()...)
	for _, t := range targets {
		mr := engine.GetComponent[*components.MeshRenderer](t)
		if mr == nil {
			continue
		}
		mr.Material = materials.AddMaterial(&assets.Material{
			Name:      "highlight",
			BaseColor: color,
			Roughness: 0.5,
		})
	}
}
