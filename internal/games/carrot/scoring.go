package carrot

// credit awards one point for rising past a platform top, at most once per
// platform until a different platform is credited.
func (w *World) credit() bool {
	sc := w.cfg.Scoring
	if w.Actor.Y >= w.cfg.Viewport.Height*sc.CreditZone || w.Actor.VY >= 0 {
		return false
	}

	bottom := w.Actor.Bottom()
	box := w.Actor.Box()
	for _, p := range w.Platforms {
		if bottom < p.Y || bottom > p.Y+sc.CreditBand || !box.OverlapsX(p.Box()) {
			continue
		}
		// Only the first match counts, credited or not.
		if p.ID == w.LastCredited {
			return false
		}
		w.Score++
		w.LastCredited = p.ID
		return true
	}
	return false
}
