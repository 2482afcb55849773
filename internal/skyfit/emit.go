package skyfit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
)

const valuesPerLine = 12

// WriteGo renders t as a gofmt'd Go source file declaring band0..band6 and
// the fit-domain constants in package pkg.
func WriteGo(w io.Writer, pkg string, t *Table) error {
	var buf bytes.Buffer
	o := t.Options

	fmt.Fprintf(&buf, "// Code generated by skyfit. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	buf.WriteString("// Domain the band tables were regressed over. Inputs outside it extrapolate.\n")
	buf.WriteString("const (\n")
	fmt.Fprintf(&buf, "\tFitThetaMin = %s\n", formatFloat(o.ThetaMin))
	fmt.Fprintf(&buf, "\tFitThetaMax = %s\n", formatFloat(o.ThetaMax))
	fmt.Fprintf(&buf, "\tFitTurbidityMin = %s\n", formatFloat(o.TurbidityMin))
	fmt.Fprintf(&buf, "\tFitTurbidityMax = %s\n", formatFloat(o.TurbidityMax))
	buf.WriteString(")\n")

	for l, table := range t.Bands {
		width := 2*l + 1
		fmt.Fprintf(&buf, "\n// band%d holds the l=%d polynomial fit, laid out [%d][ThetaPowers][TurbidityPowers][Channels].\n", l, l, width)
		fmt.Fprintf(&buf, "var band%d = [%d * bandStride]float64{\n", l, width)
		for bandIndex := 0; bandIndex < width; bandIndex++ {
			for i := 0; i < ThetaPowers; i++ {
				fmt.Fprintf(&buf, "\t// m=%d theta^%d\n", bandIndex-l, i)
				row := table[offset(bandIndex, i, 0, 0):offset(bandIndex, i+1, 0, 0)]
				for start := 0; start < len(row); start += valuesPerLine {
					buf.WriteByte('\t')
					for n, v := range row[start:min(start+valuesPerLine, len(row))] {
						if n > 0 {
							buf.WriteString(", ")
						}
						buf.WriteString(formatFloat(v))
					}
					buf.WriteString(",\n")
				}
			}
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
