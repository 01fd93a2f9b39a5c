package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// loadCharacters reads both characters' frames from the asset root. Any
// missing directory or frame is returned as an error naming the path.
func loadCharacters(root string) (player, enemy *assets.AnimationSet, err error) {
	fsys := os.DirFS(root)
	manifest, err := assets.LoadManifest(fsys, config.CharacterAnimations)
	if err != nil {
		return nil, nil, err
	}

	player, err = newLoader(fsys, manifest, config.Player).Load(config.Player.CharType)
	if err != nil {
		return nil, nil, fmt.Errorf("player: %w", err)
	}
	enemy, err = newLoader(fsys, manifest, config.Enemy).Load(config.Enemy.CharType)
	if err != nil {
		return nil, nil, fmt.Errorf("enemy: %w", err)
	}
	return player, enemy, nil
}

func newLoader(fsys fs.FS, manifest config.AnimationManifest, c config.CharacterConfig) *assets.AnimationLoader {
	scale := c.Scale
	if config.Debug.Scale > 0 {
		scale = config.Debug.Scale
	}
	return assets.NewAnimationLoader(fsys, manifest, scale)
}

func main() {
	assetRoot := flag.String("assets", config.Debug.AssetRoot, "directory containing img/")
	debug := flag.Bool("debug", config.Debug.Overlay, "start with the debug overlay visible")
	scale := flag.Float64("scale", 0, "sprite scale for both characters (0 keeps the configured scale)")
	flag.Parse()

	config.Debug.AssetRoot = *assetRoot
	config.Debug.Overlay = *debug
	config.Debug.Scale = *scale

	if err := fonts.LoadDefaults(config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	player, enemy, err := loadCharacters(config.Debug.AssetRoot)
	if err != nil {
		log.Fatalf("Failed to load animations: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewDuelScene(player, enemy))); err != nil {
		log.Fatal(err)
	}
}
