package render

// renderStandard fills the background, draws the centered text block and
// places the device upright below the reserved text area.
func renderStandard(rc *renderContext, in Input) error {
	rc.fill(in.Text.Background)
	drawTextBlock(rc.canvas, in.Text, rc.faces, rc.layout, alignCenter)
	rc.placeFlat(in.Frame)
	return nil
}
