// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot renders a bar chart of the main genome scale factors of samples
// relative to base and saves it to the named file. The image format is
// taken from the file extension. Samples without main genome reads are
// plotted as zero.
func Plot(samples []Sample, base int, file string) error {
	if len(samples) == 0 {
		return errors.New("scale: no samples to plot")
	}
	p, err := plot.New()
	if err != nil {
		return err
	}

	v := make(plotter.Values, len(samples))
	labels := make([]string, len(samples))
	for i, s := range samples {
		v[i], _ = Factor(base, s.Main)
		labels[i] = s.Label
	}
	bars, err := plotter.NewBarChart(v, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)

	p.Title.Text = "Scale factors"
	p.Y.Label.Text = fmt.Sprintf("%.2e / main genome reads count", float64(base))

	width := vg.Length(len(samples))*vg.Centimeter + 8*vg.Centimeter
	return p.Save(width, 12*vg.Centimeter, file)
}
