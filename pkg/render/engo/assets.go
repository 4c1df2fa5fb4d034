// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-slingshot/pkg/entity"
)

// AssetManager handles loading and managing game sprites. Everything is
// generated procedurally; there are no image files to ship.
type AssetManager struct {
	// Body sprites by type
	bodySprites map[entity.BodyType]common.Drawable

	// Rocket sprite
	rocketSprite common.Drawable

	// Dot sprites for trails, prediction points and particles
	dotSprite common.Drawable

	// UI textures
	backgroundTexture common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		bodySprites: make(map[entity.BodyType]common.Drawable),
	}
}

// LoadAssets builds all sprites. Requires a live OpenGL context.
func (am *AssetManager) LoadAssets() error {
	if err := am.loadBodySprites(); err != nil {
		return err
	}
	if err := am.loadRocketSprite(); err != nil {
		return err
	}
	if err := am.loadDotSprite(); err != nil {
		return err
	}
	return am.loadUIAssets()
}

// loadBodySprites creates a filled circle per body type. All sprites are
// white; the per-body tint comes from the render component color.
func (am *AssetManager) loadBodySprites() error {
	sizes := map[entity.BodyType]int{
		entity.Star:         64,
		entity.LaunchPoint:  24,
		entity.TargetPoint:  24,
		entity.Moon:         12,
		entity.RingedPlanet: 32,
		entity.Obstacle:     8,
	}
	for bodyType, diameter := range sizes {
		am.bodySprites[bodyType] = am.createSprite(diameter, diameter, circlePattern(diameter))
	}
	return nil
}

// loadRocketSprite creates the rocket: a slim upward triangle
func (am *AssetManager) loadRocketSprite() error {
	am.rocketSprite = am.createSprite(11, 16, [][]int{
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 0, 1, 1, 1, 1, 1, 0, 1, 1},
		{1, 0, 0, 1, 1, 1, 1, 1, 0, 0, 1},
		{0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
	})
	return nil
}

// loadDotSprite creates the shared dot used for trails and particles
func (am *AssetManager) loadDotSprite() error {
	am.dotSprite = am.createSprite(4, 4, [][]int{
		{0, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 1, 1, 0},
	})
	return nil
}

// loadUIAssets builds a sparse starfield background
func (am *AssetManager) loadUIAssets() error {
	backgroundPattern := make([][]int, 64)
	for i := range backgroundPattern {
		backgroundPattern[i] = make([]int, 64)
		if i%8 == 0 && (i/8)%3 == 0 {
			backgroundPattern[i][(i*11)%64] = 1
		}
	}

	am.backgroundTexture = am.createSprite(64, 64, backgroundPattern)
	return nil
}

// circlePattern builds a filled-circle pixel grid of the given diameter
func circlePattern(diameter int) [][]int {
	pattern := make([][]int, diameter)
	r := float64(diameter-1) / 2
	for y := range pattern {
		pattern[y] = make([]int, diameter)
		for x := range pattern[y] {
			dx := float64(x) - r
			dy := float64(y) - r
			if dx*dx+dy*dy <= r*r {
				pattern[y][x] = 1
			}
		}
	}
	return pattern
}

// createSprite creates a sprite from a 2D pixel pattern
func (am *AssetManager) createSprite(width, height int, pattern [][]int) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// GetBodySprite returns the sprite for a body type
func (am *AssetManager) GetBodySprite(bodyType entity.BodyType) common.Drawable {
	if sprite, exists := am.bodySprites[bodyType]; exists {
		return sprite
	}
	return am.bodySprites[entity.Obstacle] // Default fallback
}

// GetRocketSprite returns the rocket sprite
func (am *AssetManager) GetRocketSprite() common.Drawable {
	return am.rocketSprite
}

// GetDotSprite returns the shared trail/particle dot sprite
func (am *AssetManager) GetDotSprite() common.Drawable {
	return am.dotSprite
}

// GetBackgroundTexture returns the background texture
func (am *AssetManager) GetBackgroundTexture() common.Drawable {
	return am.backgroundTexture
}
