package render

// renderPanoramic is the standard layout drawn over the panorama wave.
func renderPanoramic(rc *renderContext, in Input) error {
	rc.fill(in.Text.Background)
	DrawWave(rc.canvas, in.Text.Accent, in.Index, in.Total, rc.layout.Wave)
	drawTextBlock(rc.canvas, in.Text, rc.faces, rc.layout, alignCenter)
	rc.placeFlat(in.Frame)
	return nil
}
