// Package viz draws the aura radar and holds the shared terminal styles.
//
//   - [Project]: maps a soul's distance and bearing onto the display plane
//   - [Canvas]: braille pixel grid with glyph overlays
//   - [RenderRadar]: rings, the user at the center, one marker per soul
//   - Two neutral themes around the six aura colors
package viz
