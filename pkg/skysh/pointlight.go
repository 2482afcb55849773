package skysh

import (
	smath "github.com/Faultbox/skyprobe/pkg/math"
	"github.com/Faultbox/skyprobe/pkg/preetham"
	"github.com/Faultbox/skyprobe/pkg/sh"
)

// MaxPointLights bounds how many lights ProjectPointLights accepts per call.
const MaxPointLights = 32

// PointLight is a directional delta light: all of Color arrives from
// Direction.
type PointLight struct {
	Direction smath.Spherical `yaml:"direction" json:"direction"`
	Color     preetham.RGB    `yaml:"color" json:"color"`
}

// ProjectPointLight adds the SH projection of a delta light into r, g and b.
// Integrating a delta against a basis function yields the basis evaluated at
// the light direction, so each term gains Color * Y(l, m, Direction).
func ProjectPointLight(light PointLight, numBands int, r, g, b []float32) error {
	if err := checkArgs("project point light", numBands, r, g, b); err != nil {
		return err
	}
	d := light.Direction
	if !smath.Finite(d.Theta, d.Phi, light.Color[0], light.Color[1], light.Color[2]) {
		return &PreconditionError{Op: "project point light", NumBands: numBands, Err: ErrNonFinite}
	}
	addPointLight(light, numBands, r, g, b)
	return nil
}

// ProjectPointLights accumulates several lights. Lights past MaxPointLights
// are ignored. Nothing is written unless every accepted light is valid.
func ProjectPointLights(lights []PointLight, numBands int, r, g, b []float32) error {
	if len(lights) > MaxPointLights {
		lights = lights[:MaxPointLights]
	}
	if err := checkArgs("project point lights", numBands, r, g, b); err != nil {
		return err
	}
	for _, light := range lights {
		d := light.Direction
		if !smath.Finite(d.Theta, d.Phi, light.Color[0], light.Color[1], light.Color[2]) {
			return &PreconditionError{Op: "project point lights", NumBands: numBands, Err: ErrNonFinite}
		}
	}
	for _, light := range lights {
		addPointLight(light, numBands, r, g, b)
	}
	return nil
}

func addPointLight(light PointLight, numBands int, r, g, b []float32) {
	theta, phi := light.Direction.Theta, light.Direction.Phi
	for l := 0; l < numBands; l++ {
		for m := -l; m <= l; m++ {
			val := sh.Eval(l, m, theta, phi)
			k := sh.Index(l, m)
			r[k] += float32(light.Color[0] * val)
			g[k] += float32(light.Color[1] * val)
			b[k] += float32(light.Color[2] * val)
		}
	}
}
