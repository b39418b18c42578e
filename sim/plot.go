package sim

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// New2DPlot creates new plot of the simulation from the three data sources:
// model:   idealised model values
// measure: measurement values
// filter:  filter values
// Each data matrix stores time in its first column and values in its second column.
// It returns error if the plot fails to be created. This can be due to either of the following conditions:
// * either of the supplied data matrices is nil
// * either of the supplied data matrices does not have at least 2 columns
// * gonum plot fails to be created
func New2DPlot(model, measure, filter *mat.Dense) (*plot.Plot, error) {
	if model == nil || measure == nil || filter == nil {
		return nil, fmt.Errorf("invalid data supplied")
	}

	_, cmd := model.Dims()
	_, cms := measure.Dims()
	_, cmf := filter.Dims()

	if cmd < 2 || cms < 2 || cmf < 2 {
		return nil, fmt.Errorf("invalid data dimensions")
	}

	p := plot.New()

	p.Title.Text = "Scalar Kalman Filter"
	p.X.Label.Text = "time"
	p.Y.Label.Text = "value"

	legend := plot.NewLegend()
	legend.Top = true
	p.Legend = legend

	// Make a line plotter for model data
	modelLine, err := plotter.NewLine(makePoints(model))
	if err != nil {
		return nil, fmt.Errorf("failed to create model line: %v", err)
	}
	modelLine.LineStyle.Color = color.RGBA{R: 255, B: 128, A: 255}
	modelLine.LineStyle.Width = vg.Points(1)

	p.Add(modelLine)
	p.Legend.Add("model", modelLine)

	// Make a scatter plotter for measurement data
	measScatter, err := plotter.NewScatter(makePoints(measure))
	if err != nil {
		return nil, fmt.Errorf("failed to create measurement scatter: %v", err)
	}
	measScatter.GlyphStyle.Color = color.RGBA{G: 255, A: 128}
	measScatter.GlyphStyle.Radius = vg.Points(2)

	p.Add(measScatter)
	p.Legend.Add("measurement", measScatter)

	// Make a scatter plotter for filter data
	filterScatter, err := plotter.NewScatter(makePoints(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to create filter scatter: %v", err)
	}
	filterScatter.GlyphStyle.Color = color.RGBA{R: 169, G: 169, B: 169, A: 255}
	filterScatter.Shape = draw.CrossGlyph{}
	filterScatter.GlyphStyle.Radius = vg.Points(3)

	p.Add(filterScatter)
	p.Legend.Add("filtered", filterScatter)

	return p, nil
}

// NewSeriesPlot creates new plot of truth, measurement and filter values sampled at times t.
// It returns error if the series lengths differ from the length of t or the plot fails to be created.
func NewSeriesPlot(t, truth, meas, filt []float64) (*plot.Plot, error) {
	n := len(t)
	if n == 0 || len(truth) != n || len(meas) != n || len(filt) != n {
		return nil, fmt.Errorf("invalid series lengths: t=%d truth=%d meas=%d filter=%d",
			n, len(truth), len(meas), len(filt))
	}

	return New2DPlot(series(t, truth), series(t, meas), series(t, filt))
}

func series(t, v []float64) *mat.Dense {
	m := mat.NewDense(len(t), 2, nil)
	m.SetCol(0, t)
	m.SetCol(1, v)

	return m
}

func makePoints(m *mat.Dense) plotter.XYs {
	r, _ := m.Dims()
	pts := make(plotter.XYs, r)
	for i := 0; i < r; i++ {
		pts[i].X = m.At(i, 0)
		pts[i].Y = m.At(i, 1)
	}

	return pts
}
