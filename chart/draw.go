package chart

import (
	"image"
	"image/color"
	"math"
	"strconv"
)

// valueRange returns the raw [lo, hi] spanned by every value,
// anchored at zero.
func valueRange(series []Series) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo == 0 && hi == 0 {
		hi = 1
	}
	return lo, hi
}

// niceStep picks a 1/2/5 x 10^k tick step for the span.
func niceStep(span float64) float64 {
	raw := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e7 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// drawAxes draws the axes box, gridlines and tick labels, returning
// the value-to-pixel mapping.
func (pl *plot) drawAxes(lo, hi float64) func(float64) int {
	axis := color.RGBA{R: 120, G: 120, B: 120, A: 255}
	grid := color.RGBA{R: 225, G: 225, B: 225, A: 255}
	lab := color.RGBA{R: 90, G: 90, B: 90, A: 255}

	step := niceStep(hi - lo)
	lo = math.Floor(lo/step) * step
	hi = math.Ceil(hi/step) * step
	if hi == lo {
		hi = lo + step
	}

	yOf := func(v float64) int {
		return pl.bottom - int((v-lo)/(hi-lo)*float64(pl.bottom-pl.top))
	}

	for v := lo; v <= hi+step/2; v += step {
		y := yOf(v)
		if y != pl.bottom {
			pl.drawLine(pl.left, y, pl.right, y, grid)
		}
		s := formatTick(v)
		pl.text(pl.left-8-textWidth(s), y+4, s, lab)
	}
	pl.drawLine(pl.left, pl.top, pl.left, pl.bottom, axis)
	pl.drawLine(pl.left, pl.bottom, pl.right, pl.bottom, axis)
	return yOf
}

// drawCategoryLabels centers one label under each category slot.
func (pl *plot) drawCategoryLabels(categories []string) {
	if len(categories) == 0 {
		return
	}
	lab := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	slot := float64(pl.right-pl.left) / float64(len(categories))
	for i, cat := range categories {
		s := fitLabel(cat, int(slot)-6)
		cx := pl.left + int(slot*(float64(i)+0.5))
		pl.text(cx-textWidth(s)/2, pl.bottom+18, s, lab)
	}
}

func (pl *plot) drawColumns(categories []string, series []Series) {
	if len(categories) == 0 || len(series) == 0 {
		pl.drawAxes(0, 1)
		return
	}
	lo, hi := valueRange(series)
	yOf := pl.drawAxes(lo, hi)
	zero := yOf(math.Max(lo, math.Min(0, hi)))

	slot := float64(pl.right-pl.left) / float64(len(categories))
	group := slot * 0.7
	barW := group / float64(len(series))

	for i := range categories {
		x0 := float64(pl.left) + slot*float64(i) + (slot-group)/2
		for j, s := range series {
			if i >= len(s.Values) {
				continue
			}
			y := yOf(s.Values[i])
			top, bot := y, zero
			if top > bot {
				top, bot = bot, top
			}
			x := int(x0 + barW*float64(j))
			pl.fillRect(image.Rect(x, top, x+int(barW)-1, bot), pl.palette[j%len(pl.palette)])
		}
	}
	pl.drawCategoryLabels(categories)
}

func (pl *plot) drawLines(categories []string, series []Series) {
	if len(categories) == 0 || len(series) == 0 {
		pl.drawAxes(0, 1)
		return
	}
	lo, hi := valueRange(series)
	yOf := pl.drawAxes(lo, hi)

	slot := float64(pl.right-pl.left) / float64(len(categories))
	for j, s := range series {
		c := pl.palette[j%len(pl.palette)]
		prevX, prevY := 0, 0
		for i, v := range s.Values {
			if i >= len(categories) {
				break
			}
			x := pl.left + int(slot*(float64(i)+0.5))
			y := yOf(v)
			if i > 0 {
				pl.drawLine(prevX, prevY, x, y, c)
			}
			// point marker
			pl.fillRect(image.Rect(x-2, y-2, x+3, y+3), c)
			prevX, prevY = x, y
		}
	}
	pl.drawCategoryLabels(categories)
}

// drawPie fills sectors of the first series by angle test per pixel.
// Non-positive values get a zero-width sector.
func (pl *plot) drawPie(series []Series) {
	if len(series) == 0 {
		return
	}
	vals := series[0].Values
	total := 0.0
	for _, v := range vals {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return
	}

	cum := make([]float64, 1, len(vals)+1)
	run := 0.0
	for _, v := range vals {
		if v > 0 {
			run += v / total
		}
		cum = append(cum, run)
	}

	cx := (pl.left + pl.right) / 2
	cy := (pl.top + pl.bottom) / 2
	r := (pl.bottom - pl.top) * 2 / 5
	if rw := (pl.right - pl.left) * 2 / 5; rw < r {
		r = rw
	}
	r2 := r * r

	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			// angle measured clockwise from 12 o'clock
			ang := math.Atan2(float64(dy), float64(dx)) + math.Pi/2
			if ang < 0 {
				ang += 2 * math.Pi
			}
			frac := ang / (2 * math.Pi)
			for k := 0; k < len(cum)-1; k++ {
				if frac >= cum[k] && frac < cum[k+1] {
					pl.img.SetRGBA(x, y, pl.palette[k%len(pl.palette)])
					break
				}
			}
		}
	}
}
