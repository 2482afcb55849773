package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/skyprobe/pkg/skysh"
	"github.com/Faultbox/skyprobe/pkg/sunpos"
)

func probeParams() skysh.ProbeParams {
	return skysh.ProbeParams{
		Sun:        skysh.Sun{Theta: 0.6, Phi: 0.3, Turbidity: 3},
		NumBands:   3,
		SkyScale:   1,
		IncludeSun: true,
		SunScale:   1,
	}
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(probeParams())
	require.NoError(t, err)
	assert.Equal(t, 3, e.Bands)
	assert.True(t, e.SunIncluded)
	assert.True(t, e.InFitDomain)
	assert.Equal(t, 9, e.Coeffs.Len())
	assert.False(t, e.Sky.Night)
	assert.Greater(t, e.Sky.LuminanceAverage, e.Sky.LuminanceMin)
	assert.Less(t, e.Sky.LuminanceAverage, e.Sky.LuminanceMax)

	p := probeParams()
	p.NumBands = 0
	_, err = NewEntry(p)
	require.ErrorIs(t, err, skysh.ErrInvalidBandCount)
}

func TestWriteCoeffsYAML(t *testing.T) {
	e, err := NewEntry(probeParams())
	require.NoError(t, err)
	e.Time = time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteCoeffs(&buf, FormatYAML, e))

	var got []Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	if diff := cmp.Diff(e, got[0]); diff != "" {
		t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCoeffsJSON(t *testing.T) {
	e, err := NewEntry(probeParams())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCoeffs(&buf, FormatJSON, e, e))
	assert.NotContains(t, buf.String(), `"time"`, "zero time is omitted")

	var got []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	if diff := cmp.Diff(e, got[1]); diff != "" {
		t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCoeffsText(t *testing.T) {
	p := probeParams()
	p.Sun.Turbidity = 12
	e, err := NewEntry(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCoeffs(&buf, FormatText, e))
	out := buf.String()

	assert.Contains(t, out, "turbidity=12 bands=3 sun=true")
	assert.Contains(t, out, "outside fitted domain")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Sun comment, sky luminance, domain note, column names and nine rows.
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[1], "# sky luminance min="), lines[1])
	assert.Equal(t, []string{"l", "m", "r", "g", "b"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2", "2"}, strings.Fields(lines[12])[:2])
}

func TestWriteCoeffsUnknownFormat(t *testing.T) {
	err := WriteCoeffs(&bytes.Buffer{}, "xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestDayTimes(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	times := DayTimes(time.Date(2024, 3, 20, 15, 45, 0, 0, loc), time.Hour)
	require.Len(t, times, 24)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, loc), times[0])
	assert.Equal(t, time.Date(2024, 3, 20, 23, 0, 0, 0, loc), times[23])

	assert.Nil(t, DayTimes(time.Now(), 0))
}

func TestDayTable(t *testing.T) {
	times := DayTimes(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), time.Hour)
	params := DayParams{
		Latitude:  45,
		Longitude: 0,
		Model:     sunpos.ModelAnalytic,
		Probe:     probeParams(),
		Workers:   3,
	}

	entries, err := DayTable(context.Background(), params, times)
	require.NoError(t, err)
	// Roughly 15.5 hours of daylight at 45N on the solstice.
	assert.GreaterOrEqual(t, len(entries), 14)
	assert.LessOrEqual(t, len(entries), 17)

	for i, e := range entries {
		assert.Less(t, e.Sun.Theta, 1.5707963267948966)
		if i > 0 {
			assert.True(t, e.Time.After(entries[i-1].Time), "entries are in time order")
		}
		want := sunpos.Locate(sunpos.ModelAnalytic, e.Time, 45, 0)
		assert.Equal(t, want.Theta, e.Sun.Theta)
		assert.Equal(t, want.Phi, e.Sun.Phi)
	}

	// Each probe is independent of the sweep it ran in.
	noon := entries[len(entries)/2]
	p := probeParams()
	p.Sun.Theta, p.Sun.Phi = noon.Sun.Theta, noon.Sun.Phi
	single, err := NewEntry(p)
	require.NoError(t, err)
	assert.Equal(t, single.Coeffs, noon.Coeffs)
}

func TestDayTablePropagatesProbeErrors(t *testing.T) {
	params := DayParams{Latitude: 0, Model: sunpos.ModelAnalytic, Probe: probeParams()}
	params.Probe.NumBands = 9
	times := []time.Time{time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)}

	_, err := DayTable(context.Background(), params, times)
	require.ErrorIs(t, err, skysh.ErrInvalidBandCount)
}

func TestDayTableCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	params := DayParams{Model: sunpos.ModelAnalytic, Probe: probeParams()}
	_, err := DayTable(ctx, params, DayTimes(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), time.Hour))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPlotBands(t *testing.T) {
	times := DayTimes(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), 30*time.Minute)
	entries, err := DayTable(context.Background(), DayParams{Latitude: 45, Model: sunpos.ModelAnalytic, Probe: probeParams()}, times)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plots", "bands.png")
	require.NoError(t, PlotBands(path, entries, 1, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "output is a PNG")
}

func TestPlotBandsRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, PlotBands(filepath.Join(dir, "a.png"), nil, 0, 3))

	e, err := NewEntry(probeParams())
	require.NoError(t, err)
	assert.Error(t, PlotBands(filepath.Join(dir, "b.png"), []Entry{e}, 3, 3))
	assert.Error(t, PlotBands(filepath.Join(dir, "c.png"), []Entry{e}, 0, 0))
}
